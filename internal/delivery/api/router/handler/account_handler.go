// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"envybase/config"
	"envybase/internal/delivery/api/middleware"
	"envybase/internal/delivery/api/response"
	"envybase/internal/domain/constants"
	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/errors"
	"envybase/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AccountHandler serves local registration, password login and the profile endpoint.
type AccountHandler struct {
	accountUC     usecase.AccountUsecase
	secureCookies bool
	logger        *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:     params.AccountUC,
		secureCookies: params.Config.HTTP.SecureCookies,
		logger:        params.Logger,
	}
}

// LoginRequest represents the request body for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the request body for local registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// ProfileResponse is the public view of an account.
type ProfileResponse struct {
	Email      string    `json:"email"`
	Provider   string    `json:"provider"`
	Username   string    `json:"username,omitempty"`
	Name       string    `json:"name,omitempty"`
	GivenName  string    `json:"given_name,omitempty"`
	FamilyName string    `json:"family_name,omitempty"`
	Picture    string    `json:"picture,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Register handles local account creation
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	_, err := h.accountUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Username: req.Username,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.StatusResponse{
		Status:  response.StatusSuccess,
		Message: "User registered successfully",
	})
}

// Login handles password login and sets the access token cookie
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.accessTokenCookie(output.AccessToken, output.ExpiresIn))

	return c.JSON(http.StatusOK, response.StatusResponse{
		Status: response.StatusSuccess,
		Email:  output.User.Email,
	})
}

// Me returns the account of the authenticated caller
func (h *AccountHandler) Me(c echo.Context) error {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WithCause(errors.New("token carries no subject"))
	}

	user, err := h.accountUC.Profile(c.Request().Context(), subject)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(user))
}

func (h *AccountHandler) accessTokenCookie(token string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constants.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}

	return cookie
}

func toProfileResponse(user *entity.User) ProfileResponse {
	return ProfileResponse{
		Email:      user.Email,
		Provider:   user.Provider.String(),
		Username:   user.Username,
		Name:       user.Name,
		GivenName:  user.GivenName,
		FamilyName: user.FamilyName,
		Picture:    user.Picture,
		CreatedAt:  user.CreatedAt,
	}
}
