package oauth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "https://issuer.test"
	testKeyID  = "test-key"
)

type oidcFixture struct {
	key     *rsa.PrivateKey
	jwks    *httptest.Server
	fetcher *oidcFetcher
}

func newOIDCFixture(t *testing.T) *oidcFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	jwks := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"keys": []map[string]any{{
				"kty": "RSA",
				"use": "sig",
				"alg": "RS256",
				"kid": testKeyID,
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			}},
		})
	}))
	t.Cleanup(jwks.Close)

	descriptor := &entity.ProviderDescriptor{
		Name:     entity.ProviderTypeGoogle,
		Kind:     entity.ProviderKindOIDC,
		ClientID: "client-id",
		AuthURL:  "https://issuer.test/auth",
		TokenURL: "https://issuer.test/token",
		JWKSURL:  jwks.URL,
		Issuer:   testIssuer,
	}

	return &oidcFixture{key: key, jwks: jwks, fetcher: newOIDCFetcher(descriptor, jwks.Client())}
}

func (f *oidcFixture) sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKeyID
	signed, err := token.SignedString(f.key)
	require.NoError(t, err)

	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()

	return jwt.MapClaims{
		"iss":         testIssuer,
		"aud":         "client-id",
		"sub":         "1234567890",
		"iat":         now.Unix(),
		"exp":         now.Add(time.Hour).Unix(),
		"email":       "Ada@Example.com",
		"name":        "Ada Lovelace",
		"given_name":  "Ada",
		"family_name": "Lovelace",
		"picture":     "https://example.com/ada.png",
	}
}

func TestOIDCFetcher_FetchIdentity(t *testing.T) {
	fixture := newOIDCFixture(t)

	identity, err := fixture.fetcher.FetchIdentity(context.Background(), &service.ProviderToken{
		AccessToken: "access",
		IDToken:     fixture.sign(t, validClaims()),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProviderTypeGoogle, identity.Provider)
	assert.Equal(t, "Ada@Example.com", identity.Email)
	assert.Equal(t, "Ada Lovelace", identity.Name)
	assert.Equal(t, "Ada", identity.GivenName)
	assert.Equal(t, "Lovelace", identity.FamilyName)
	assert.Equal(t, "https://example.com/ada.png", identity.Picture)
}

func TestOIDCFetcher_NoEmailIsNotAnError(t *testing.T) {
	fixture := newOIDCFixture(t)
	claims := validClaims()
	delete(claims, "email")

	identity, err := fixture.fetcher.FetchIdentity(context.Background(), &service.ProviderToken{IDToken: fixture.sign(t, claims)})
	require.NoError(t, err)
	assert.False(t, identity.HasEmail())
}

func TestOIDCFetcher_Rejects(t *testing.T) {
	fixture := newOIDCFixture(t)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token func() *service.ProviderToken
	}{
		{
			name:  "missing id token",
			token: func() *service.ProviderToken { return &service.ProviderToken{AccessToken: "access"} },
		},
		{
			name:  "nil token",
			token: func() *service.ProviderToken { return nil },
		},
		{
			name: "wrong audience",
			token: func() *service.ProviderToken {
				claims := validClaims()
				claims["aud"] = "someone-else"

				return &service.ProviderToken{IDToken: fixture.sign(t, claims)}
			},
		},
		{
			name: "wrong issuer",
			token: func() *service.ProviderToken {
				claims := validClaims()
				claims["iss"] = "https://evil.test"

				return &service.ProviderToken{IDToken: fixture.sign(t, claims)}
			},
		},
		{
			name: "expired",
			token: func() *service.ProviderToken {
				claims := validClaims()
				claims["exp"] = time.Now().Add(-time.Hour).Unix()

				return &service.ProviderToken{IDToken: fixture.sign(t, claims)}
			},
		},
		{
			name: "signed by an unknown key",
			token: func() *service.ProviderToken {
				token := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims())
				token.Header["kid"] = testKeyID
				signed, err := token.SignedString(otherKey)
				require.NoError(t, err)

				return &service.ProviderToken{IDToken: signed}
			},
		},
		{
			name:  "garbage",
			token: func() *service.ProviderToken { return &service.ProviderToken{IDToken: "not-a-jwt"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := fixture.fetcher.FetchIdentity(context.Background(), tt.token())
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, domainerrors.ErrUserinfoFetch)
		})
	}
}
