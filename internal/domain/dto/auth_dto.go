package dto

import (
	"github.com/google/uuid"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

type SignupRequest struct {
	FirstName      string `form:"firstName" json:"firstName" validate:"required,max=100"`
	LastName       string `form:"lastName" json:"lastName" validate:"max=100"`
	Email          string `form:"email" json:"email" validate:"required,email"`
	Password       string `form:"password" json:"password" validate:"required,min=6,max=72"`
	GraduationYear *int   `form:"graduationYear" json:"graduationYear" validate:"omitempty,min=1950,max=2100"`
	Department     string `form:"department" json:"department" validate:"max=100"`
	ContactNumber  string `form:"contactNumber" json:"contactNumber" validate:"max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

// AuthResponse is the identity payload emitted by every successful
// authentication operation.
type AuthResponse struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	ProfilePicture  string    `json:"profilePicture,omitempty"`
	ResumeURL       string    `json:"resumeUrl,omitempty"`
	SessionToken    string    `json:"sessionToken"`
	ProfileComplete bool      `json:"profileComplete"`
}

func NewAuthResponse(user *domain.User, token string) *AuthResponse {
	return &AuthResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		ProfilePicture:  user.ProfilePicture,
		ResumeURL:       user.ResumeURL,
		SessionToken:    token,
		ProfileComplete: user.ProfileComplete,
	}
}
