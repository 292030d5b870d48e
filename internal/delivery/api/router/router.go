// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"envybase/internal/delivery/api/middleware"
	"envybase/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	OAuthHandler   *handler.OAuthHandler
	SystemHandler  *handler.SystemHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	oauthHandler   *handler.OAuthHandler
	systemHandler  *handler.SystemHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		oauthHandler:   params.OAuthHandler,
		systemHandler:  params.SystemHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.systemHandler.Health)
	e.GET("/frontendinfo", r.systemHandler.FrontendInfo)
	e.GET("/stats", r.systemHandler.Stats)

	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)
	e.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)

	oauthGroup := e.Group("/oauth2")
	{
		oauthGroup.GET("/login/:provider", r.oauthHandler.Login)
		oauthGroup.GET("/callback/:provider", r.oauthHandler.Callback)
	}
}
