package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"
	"envybase/internal/errors"
)

// maxProfileBytes bounds the userinfo and emails response bodies.
const maxProfileBytes = 1 << 20

// userinfoFetcher queries the provider's REST API with the access token as a
// bearer credential.
type userinfoFetcher struct {
	baseFetcher
}

type userProfile struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

type accountEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func newUserinfoFetcher(descriptor *entity.ProviderDescriptor, client *http.Client) *userinfoFetcher {
	return &userinfoFetcher{baseFetcher: newBaseFetcher(descriptor, client)}
}

func (f *userinfoFetcher) FetchIdentity(ctx context.Context, token *service.ProviderToken) (*entity.ExternalIdentity, error) {
	if token == nil || token.AccessToken == "" {
		return nil, f.fetchError(errors.New("token response carries no access_token"))
	}

	var profile userProfile
	if err := f.getJSON(ctx, f.descriptor.UserInfoURL, token.AccessToken, &profile); err != nil {
		return nil, f.fetchError(errors.Wrap(err, "fetch userinfo"))
	}

	email := strings.TrimSpace(profile.Email)
	if email == "" && f.descriptor.EmailsURL != "" {
		var emails []accountEmail
		if err := f.getJSON(ctx, f.descriptor.EmailsURL, token.AccessToken, &emails); err != nil {
			return nil, f.fetchError(errors.Wrap(err, "fetch account emails"))
		}
		email = primaryVerifiedEmail(emails)
	}

	givenName, familyName := splitName(profile.Name)

	return &entity.ExternalIdentity{
		Provider:   f.descriptor.Name,
		Email:      email,
		Name:       profile.Name,
		GivenName:  givenName,
		FamilyName: familyName,
		Picture:    profile.AvatarURL,
	}, nil
}

func (f *userinfoFetcher) getJSON(ctx context.Context, endpoint, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProfileBytes)).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

func (f *userinfoFetcher) fetchError(cause error) error {
	return domainerrors.ErrUserinfoFetch.WithCause(cause).WithProvider(f.descriptor.Name.String())
}

// primaryVerifiedEmail returns the first address flagged both primary and verified.
func primaryVerifiedEmail(emails []accountEmail) string {
	for _, e := range emails {
		if e.Primary && e.Verified {
			return strings.TrimSpace(e.Email)
		}
	}

	return ""
}

// splitName takes the first word as the given name and the rest as the family name.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
