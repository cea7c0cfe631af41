package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "LOCAL"
	AuthProviderGoogle AuthProvider = "GOOGLE"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the authenticable account record together with the mutable
// biographical profile attached to it. Identity fields (email, provider,
// hashed password, role) are set once at signup; the profile fields are
// mutated by manual edits and by resume-driven enrichment.
//
// Invariant: HashedPassword is non-empty iff AuthProvider is LOCAL.
type User struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	FirstName      string       `json:"firstName" db:"first_name"`
	LastName       string       `json:"lastName" db:"last_name"`
	Email          string       `json:"email" db:"email"`
	HashedPassword string       `json:"-" db:"hashed_password"`
	Role           Role         `json:"role" db:"role"`
	AuthProvider   AuthProvider `json:"authProvider" db:"auth_provider"`

	GraduationYear  *int   `json:"graduationYear,omitempty" db:"graduation_year"`
	Department      string `json:"department,omitempty" db:"department"`
	ProfilePicture  string `json:"profilePicture,omitempty" db:"profile_picture"`
	Bio             string `json:"bio,omitempty" db:"bio"`
	LinkedinProfile string `json:"linkedinProfile,omitempty" db:"linkedin_profile"`
	Website         string `json:"website,omitempty" db:"website"`
	Location        string `json:"location,omitempty" db:"location"`
	ContactNumber   string `json:"contactNumber,omitempty" db:"contact_number"`
	ResumeURL       string `json:"resumeUrl,omitempty" db:"resume_url"`

	WorkExperiences []WorkExperience `json:"workExperiences,omitempty" db:"-"`
	Educations      []Education      `json:"educations,omitempty" db:"-"`
	Projects        []Project        `json:"projects,omitempty" db:"-"`
	Skills          []string         `json:"skills,omitempty" db:"-"`
	FeaturedSkills  []FeaturedSkill  `json:"featuredSkills,omitempty" db:"-"`

	ProfileComplete bool      `json:"profileComplete" db:"profile_complete"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

type WorkExperience struct {
	Company      string   `json:"company"`
	JobTitle     string   `json:"jobTitle"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions,omitempty"`
}

type Education struct {
	School       string   `json:"school"`
	Degree       string   `json:"degree"`
	Date         string   `json:"date"`
	GPA          string   `json:"gpa,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

type Project struct {
	Name         string   `json:"project"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions,omitempty"`
}

type FeaturedSkill struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
}

// NormalizeEmail lowercases and trims an email for use as the unique
// case-insensitive join key of the user store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RefreshCompleteness recomputes the profile-complete flag. A profile is
// complete when graduation year, department and a non-empty contact number
// are all set. Idempotent; no side effects beyond the stored flag.
func (u *User) RefreshCompleteness() {
	u.ProfileComplete = u.GraduationYear != nil &&
		u.Department != "" &&
		u.ContactNumber != ""
}

// BeforeSave trims and sanitizes the free-text profile fields so untrusted
// input (manual edits and parsed resume text alike) never reaches the store
// with markup in it.
func (u *User) BeforeSave() {
	s := NewSecuritySanitizer()

	u.FirstName = strings.TrimSpace(s.SanitizeString(u.FirstName))
	u.LastName = strings.TrimSpace(s.SanitizeString(u.LastName))
	u.Department = strings.TrimSpace(s.SanitizeString(u.Department))
	u.Bio = strings.TrimSpace(s.SanitizeString(u.Bio))
	u.Location = strings.TrimSpace(s.SanitizeString(u.Location))
	u.ContactNumber = strings.TrimSpace(u.ContactNumber)
	u.LinkedinProfile = strings.TrimSpace(u.LinkedinProfile)
	u.Website = strings.TrimSpace(u.Website)

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
}
