package auth

import (
	"maps"
	"time"

	"envybase/config"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"
	"envybase/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret            []byte        // Shared signing secret.
	issuer            string        // Value of the iss claim.
	ttl               time.Duration // Lifetime of issued tokens, zero for non-expiring.
	requireExpiration bool          // Reject tokens without exp.
	now               func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.Issuer == "" {
		return nil, errors.New("jwt issuer must be provided")
	}

	return &jwtService{
		secret:            []byte(cfg.JWT.Secret),
		issuer:            cfg.JWT.Issuer,
		ttl:               cfg.JWT.AccessTokenTTL,
		requireExpiration: cfg.JWT.RequireExpiration,
		now:               time.Now,
	}, nil
}

// IssueToken signs claims merged with iat, iss and, unless the caller set one or
// the TTL is zero, exp.
func (s *jwtService) IssueToken(claims map[string]any) (string, error) {
	now := s.now().UTC()

	mapClaims := jwt.MapClaims{}
	maps.Copy(mapClaims, claims)
	mapClaims["iat"] = now.Unix()
	mapClaims["iss"] = s.issuer
	if _, ok := claims["exp"]; !ok && s.ttl > 0 {
		mapClaims["exp"] = now.Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature, algorithm, issuer and expiry of tokenString.
func (s *jwtService) ValidateToken(tokenString string) (service.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	}
	if s.requireExpiration {
		opts = append(opts, jwt.WithExpirationRequired())
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrExpiredToken.WithCause(err)
		}

		return nil, domainerrors.ErrInvalidToken.WithCause(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	return service.TokenClaims(claims), nil
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
