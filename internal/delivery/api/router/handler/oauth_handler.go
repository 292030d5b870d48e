package handler

import (
	"net/http"

	"envybase/internal/delivery/api/response"
	"envybase/internal/domain/constants"
	"envybase/internal/errors"
	"envybase/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	OAuthUC usecase.OAuthUsecase
}

// OAuthHandler serves the two legs of the authorization-code flow.
type OAuthHandler struct {
	oauthUC usecase.OAuthUsecase
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{oauthUC: params.OAuthUC}
}

// Login redirects the browser to the provider's consent page
func (h *OAuthHandler) Login(c echo.Context) error {
	redirectURL, err := h.oauthUC.Authorize(c.Request().Context(), c.Param("provider"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// Callback completes the flow and returns the issued access token
func (h *OAuthHandler) Callback(c echo.Context) error {
	output, err := h.oauthUC.Callback(c.Request().Context(), usecase.CallbackInput{
		Provider:         c.Param("provider"),
		Code:             c.QueryParam("code"),
		State:            c.QueryParam("state"),
		Error:            c.QueryParam("error"),
		ErrorDescription: c.QueryParam("error_description"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.StatusResponse{
		Status:      response.StatusSuccess,
		Message:     "Login successful",
		AccessToken: output.AccessToken,
		Type:        constants.BearerTokenType,
	})
}
