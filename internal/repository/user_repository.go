package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, first_name, last_name, email, hashed_password, role, auth_provider,
	graduation_year, department, profile_picture, bio, linkedin_profile,
	website, location, contact_number, resume_url, work_experiences,
	educations, projects, skills, featured_skills, profile_complete,
	created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
                $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		domain.NormalizeEmail(user.Email),
		nullString(user.HashedPassword),
		string(user.Role),
		string(user.AuthProvider),
		nullInt(user.GraduationYear),
		nullString(user.Department),
		nullString(user.ProfilePicture),
		nullString(user.Bio),
		nullString(user.LinkedinProfile),
		nullString(user.Website),
		nullString(user.Location),
		nullString(user.ContactNumber),
		nullString(user.ResumeURL),
		mustJSON(user.WorkExperiences),
		mustJSON(user.Educations),
		mustJSON(user.Projects),
		mustJSON(user.Skills),
		mustJSON(user.FeaturedSkills),
		user.ProfileComplete,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return err
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)))
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET first_name = $2, last_name = $3, graduation_year = $4,
            department = $5, profile_picture = $6, bio = $7,
            linkedin_profile = $8, website = $9, location = $10,
            contact_number = $11, resume_url = $12, work_experiences = $13,
            educations = $14, projects = $15, skills = $16,
            featured_skills = $17, profile_complete = $18, updated_at = $19
        WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		nullInt(user.GraduationYear),
		nullString(user.Department),
		nullString(user.ProfilePicture),
		nullString(user.Bio),
		nullString(user.LinkedinProfile),
		nullString(user.Website),
		nullString(user.Location),
		nullString(user.ContactNumber),
		nullString(user.ResumeURL),
		mustJSON(user.WorkExperiences),
		mustJSON(user.Educations),
		mustJSON(user.Projects),
		mustJSON(user.Skills),
		mustJSON(user.FeaturedSkills),
		user.ProfileComplete,
		user.UpdatedAt,
	)

	return err
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}

	var (
		hashedPassword, department, picture, bio      sql.NullString
		linkedin, website, location, contact, resume  sql.NullString
		role, provider                                string
		gradYear                                      sql.NullInt64
		workExps, educations, projects, skills, rated []byte
	)

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&hashedPassword,
		&role,
		&provider,
		&gradYear,
		&department,
		&picture,
		&bio,
		&linkedin,
		&website,
		&location,
		&contact,
		&resume,
		&workExps,
		&educations,
		&projects,
		&skills,
		&rated,
		&user.ProfileComplete,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.HashedPassword = hashedPassword.String
	user.Role = domain.Role(role)
	user.AuthProvider = domain.AuthProvider(provider)
	user.Department = department.String
	user.ProfilePicture = picture.String
	user.Bio = bio.String
	user.LinkedinProfile = linkedin.String
	user.Website = website.String
	user.Location = location.String
	user.ContactNumber = contact.String
	user.ResumeURL = resume.String

	if gradYear.Valid {
		year := int(gradYear.Int64)
		user.GraduationYear = &year
	}

	if err := unmarshalJSON(workExps, &user.WorkExperiences); err != nil {
		return nil, fmt.Errorf("decode work experiences: %w", err)
	}
	if err := unmarshalJSON(educations, &user.Educations); err != nil {
		return nil, fmt.Errorf("decode educations: %w", err)
	}
	if err := unmarshalJSON(projects, &user.Projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	if err := unmarshalJSON(skills, &user.Skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	if err := unmarshalJSON(rated, &user.FeaturedSkills); err != nil {
		return nil, fmt.Errorf("decode featured skills: %w", err)
	}

	return user, nil
}

func mustJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return data
}

func unmarshalJSON(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

func nullInt(value *int) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}
