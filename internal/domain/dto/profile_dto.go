package dto

import (
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

// ProfileUpdateRequest carries a manual profile edit. Nil fields mean
// "leave unchanged"; non-nil fields replace the stored value, including
// replacement with an empty value.
type ProfileUpdateRequest struct {
	FirstName       *string                 `json:"firstName" validate:"omitempty,max=100"`
	LastName        *string                 `json:"lastName" validate:"omitempty,max=100"`
	Bio             *string                 `json:"bio" validate:"omitempty,max=2000"`
	ContactNumber   *string                 `json:"contactNumber" validate:"omitempty,max=20"`
	LinkedinProfile *string                 `json:"linkedinProfile" validate:"omitempty,max=300"`
	Website         *string                 `json:"website" validate:"omitempty,max=300"`
	Location        *string                 `json:"location" validate:"omitempty,max=200"`
	GraduationYear  *int                    `json:"graduationYear" validate:"omitempty,min=1950,max=2100"`
	Department      *string                 `json:"department" validate:"omitempty,max=100"`
	WorkExperiences []domain.WorkExperience `json:"workExperiences"`
	Educations      []domain.Education      `json:"educations"`
	Projects        []domain.Project        `json:"projects"`
	Skills          []string                `json:"skills"`
	FeaturedSkills  []domain.FeaturedSkill  `json:"featuredSkills"`
}

// ApplyTo copies the present fields onto the user record.
func (r *ProfileUpdateRequest) ApplyTo(user *domain.User) {
	if r.FirstName != nil {
		user.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		user.LastName = *r.LastName
	}
	if r.Bio != nil {
		user.Bio = *r.Bio
	}
	if r.ContactNumber != nil {
		user.ContactNumber = *r.ContactNumber
	}
	if r.LinkedinProfile != nil {
		user.LinkedinProfile = *r.LinkedinProfile
	}
	if r.Website != nil {
		user.Website = *r.Website
	}
	if r.Location != nil {
		user.Location = *r.Location
	}
	if r.GraduationYear != nil {
		user.GraduationYear = r.GraduationYear
	}
	if r.Department != nil {
		user.Department = *r.Department
	}
	if r.WorkExperiences != nil {
		user.WorkExperiences = r.WorkExperiences
	}
	if r.Educations != nil {
		user.Educations = r.Educations
	}
	if r.Projects != nil {
		user.Projects = r.Projects
	}
	if r.Skills != nil {
		user.Skills = r.Skills
	}
	if r.FeaturedSkills != nil {
		user.FeaturedSkills = r.FeaturedSkills
	}
}
