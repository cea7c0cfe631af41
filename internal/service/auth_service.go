package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain/dto"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/metrics"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/security"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/storage"
)

// Upload is an in-memory copy of a client-submitted file, handed from the
// multipart handlers to the services.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest, resume, picture *Upload) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GoogleLogin(ctx context.Context, accessToken string) (*dto.AuthResponse, error)
	// GoogleAuthURL returns the consent-screen URL for the redirect flow.
	GoogleAuthURL(state string) string
	// GoogleExchange completes the redirect flow: trade the authorization
	// code for an access token, then log in with it.
	GoogleExchange(ctx context.Context, code string) (*dto.AuthResponse, error)
}

type authService struct {
	users   domain.UserRepository
	files   domain.FileStore
	tokens  domain.TokenService
	oauth   domain.OAuthService
	metrics *metrics.Collector
	logger  zerolog.Logger
}

func NewAuthService(
	users domain.UserRepository,
	files domain.FileStore,
	tokens domain.TokenService,
	oauth domain.OAuthService,
	collector *metrics.Collector,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		users:   users,
		files:   files,
		tokens:  tokens,
		oauth:   oauth,
		metrics: collector,
		logger:  logger,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest, resume, picture *Upload) (*dto.AuthResponse, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(req.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyRegistered
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          email,
		HashedPassword: hash,
		Role:           domain.RoleUser,
		AuthProvider:   domain.AuthProviderLocal,
		GraduationYear: req.GraduationYear,
		Department:     req.Department,
		ContactNumber:  req.ContactNumber,
	}

	if picture != nil {
		if err := storage.ValidateImage(int64(len(picture.Data)), picture.ContentType); err != nil {
			return nil, fmt.Errorf("profile picture: %w", err)
		}
		path, err := s.files.Save(picture.Data, picture.Name, domain.FileCategoryProfile)
		if err != nil {
			return nil, fmt.Errorf("store profile picture: %w", err)
		}
		user.ProfilePicture = path
	}

	if resume != nil {
		if err := storage.ValidateResume(int64(len(resume.Data)), resume.ContentType); err != nil {
			return nil, fmt.Errorf("resume: %w", err)
		}
		path, err := s.files.Save(resume.Data, resume.Name, domain.FileCategoryResume)
		if err != nil {
			return nil, fmt.Errorf("store resume: %w", err)
		}
		user.ResumeURL = path
	}

	user.BeforeSave()
	user.RefreshCompleteness()

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.RecordAuth("signup", true)
	s.logger.Info().Str("email", user.Email).Msg("user signed up")

	return dto.NewAuthResponse(user, token), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := domain.NormalizeEmail(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	// "no such user" and "wrong password" produce the same error so
	// responses cannot be used to enumerate accounts.
	if user == nil {
		s.metrics.RecordAuth("login", false)
		return nil, domain.ErrInvalidCredentials
	}

	if user.AuthProvider != domain.AuthProviderLocal {
		s.metrics.RecordAuth("login", false)
		s.logger.Warn().Str("email", email).Msg("local login attempted on google account")
		return nil, domain.ErrGoogleAccount
	}

	if !security.VerifyPassword(user.HashedPassword, req.Password) {
		s.metrics.RecordAuth("login", false)
		s.logger.Warn().Str("email", email).Msg("failed login attempt")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.RecordAuth("login", true)
	s.logger.Info().Str("email", email).Msg("user logged in")

	return dto.NewAuthResponse(user, token), nil
}

func (s *authService) GoogleLogin(ctx context.Context, accessToken string) (*dto.AuthResponse, error) {
	userInfo, err := s.oauth.GetUserInfo(ctx, accessToken)
	if err != nil {
		s.metrics.RecordAuth("google_login", false)
		return nil, err
	}

	email := domain.NormalizeEmail(userInfo.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if user == nil {
		// First Google sign-in provisions the account from the claims.
		// Returning users keep their stored profile untouched so later
		// edits are not clobbered by stale claims.
		user = &domain.User{
			FirstName:      userInfo.GivenName,
			LastName:       userInfo.FamilyName,
			Email:          email,
			ProfilePicture: userInfo.Picture,
			Role:           domain.RoleUser,
			AuthProvider:   domain.AuthProviderGoogle,
		}
		user.BeforeSave()
		user.RefreshCompleteness()

		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		s.logger.Info().Str("email", email).Msg("provisioned user from google claims")
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.RecordAuth("google_login", true)
	s.logger.Info().Str("email", email).Msg("user logged in with google")

	return dto.NewAuthResponse(user, token), nil
}

func (s *authService) GoogleAuthURL(state string) string {
	return s.oauth.GetAuthURL(state)
}

func (s *authService) GoogleExchange(ctx context.Context, code string) (*dto.AuthResponse, error) {
	tok, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		s.metrics.RecordAuth("google_login", false)
		return nil, fmt.Errorf("%w: code exchange failed", domain.ErrInvalidToken)
	}
	return s.GoogleLogin(ctx, tok.AccessToken)
}
