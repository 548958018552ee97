package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	ErrInvalidCode        = errors.New("invalid authorization code")
	ErrFailedToGetUser    = errors.New("failed to get user info from Google")
	ErrOAuthNotConfigured = errors.New("Google OAuth is not configured")
)

// GoogleUserInfo is the profile payload returned by Google's userinfo
// endpoint. Only verified emails are trusted for account linking.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleOAuthConfig holds the Google OAuth client settings.
type GoogleOAuthConfig struct {
	ClientID           string
	ClientSecret       string
	RedirectURL        string
	FrontendSuccessURL string
	FrontendErrorURL   string
}

// GoogleOAuthService wraps the Google OAuth code flow used for staff
// sign-in at the register.
type GoogleOAuthService struct {
	config             *oauth2.Config
	frontendSuccessURL string
	frontendErrorURL   string
}

// NewGoogleOAuthService creates a Google OAuth service with the email
// and profile scopes.
func NewGoogleOAuthService(cfg GoogleOAuthConfig) *GoogleOAuthService {
	return &GoogleOAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		frontendSuccessURL: cfg.FrontendSuccessURL,
		frontendErrorURL:   cfg.FrontendErrorURL,
	}
}

// IsConfigured reports whether client credentials are present. Venues
// that only use local accounts leave them empty.
func (s *GoogleOAuthService) IsConfigured() bool {
	return s.config.ClientID != "" && s.config.ClientSecret != ""
}

// GetAuthURL returns the consent page URL for the given state token.
func (s *GoogleOAuthService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode trades the authorization code for an OAuth token.
func (s *GoogleOAuthService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return token, nil
}

// GetUserInfo fetches the signed-in user's Google profile.
func (s *GoogleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUserInfo, error) {
	client := s.config.Client(ctx, token)

	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUser, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrFailedToGetUser, resp.StatusCode, string(body))
	}

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUser, err)
	}

	return &userInfo, nil
}

// GetFrontendSuccessURL returns where the OAuth callback should send
// the browser after a successful sign-in.
func (s *GoogleOAuthService) GetFrontendSuccessURL() string {
	return s.frontendSuccessURL
}

// GetFrontendErrorURL returns where the OAuth callback should send the
// browser when sign-in fails.
func (s *GoogleOAuthService) GetFrontendErrorURL() string {
	return s.frontendErrorURL
}
