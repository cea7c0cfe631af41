// internal/domain/interface.go
package domain

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// UserRepository is the durable user store. GetBy* return (nil, nil) when no
// matching user exists; email lookups are case-insensitive.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// File store categories.
const (
	FileCategoryResume  = "resumes"
	FileCategoryProfile = "profiles"
)

// FileStore persists uploaded byte blobs under a category and hands back a
// relative path suitable for storing on the user record.
type FileStore interface {
	Save(data []byte, originalName, category string) (string, error)
	Resolve(relativePath string) (string, error)
	Delete(relativePath string) bool
}

// TokenService issues and checks signed, time-bound session tokens. It is
// stateless: validity is recomputed from signature and expiry on every call,
// and there is no server-side revocation.
type TokenService interface {
	Issue(subject string) (string, error)
	Validate(token string) bool
	// ExtractSubject fails with ErrMalformedToken when the string cannot be
	// parsed or verified; callers treat that as "no identity".
	ExtractSubject(token string) (string, error)
}

// ResumeExtractor turns a PDF on disk into an ExtractionResult. The default
// implementation shells out to an external parser; the interface keeps that
// swappable without touching the merge engine.
type ResumeExtractor interface {
	Extract(ctx context.Context, pdfPath string) (*ExtractionResult, error)
}

// GoogleUserInfo is the claim set returned by Google's identity endpoint.
type GoogleUserInfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// OAuthService fronts Google's OAuth endpoints. GetUserInfo validates an
// access token by presenting it to the identity endpoint; a rejected token
// surfaces as ErrInvalidToken.
type OAuthService interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, accessToken string) (*GoogleUserInfo, error)
}
