package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/config"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

type googleOAuthService struct {
	config      *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

func NewGoogleOAuthService(cfg *config.Config) domain.OAuthService {
	return &googleOAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: cfg.GoogleUserInfoURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *googleOAuthService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return s.config.Exchange(ctx, code)
}

// GetUserInfo presents the access token to Google's identity endpoint. Any
// non-success status means the token is not acceptable and surfaces as
// domain.ErrInvalidToken.
func (s *googleOAuthService) GetUserInfo(ctx context.Context, accessToken string) (*domain.GoogleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: google returned %s", domain.ErrInvalidToken, resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("decode google userinfo: %w", err)
	}

	if userInfo.Email == "" {
		return nil, fmt.Errorf("%w: google userinfo has no email", domain.ErrInvalidToken)
	}

	return &userInfo, nil
}
