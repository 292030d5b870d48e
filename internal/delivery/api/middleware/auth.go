package middleware

import (
	"strings"

	deliverycontext "envybase/internal/delivery/context"
	"envybase/internal/domain/constants"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"
	"envybase/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware validates the access token carried by a request.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenService: params.TokenService}
}

// Authenticate accepts the token from the Authorization header or the
// access_token cookie and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return domainerrors.ErrInvalidToken.WithCause(errors.New("no access token presented"))
		}

		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// GetSubject returns the sub claim stored by Authenticate.
func GetSubject(c echo.Context) (string, bool) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return "", false
	}

	sub, ok := claims["sub"].(string)

	return sub, ok && sub != ""
}
