package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain/dto"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/merge"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/metrics"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/storage"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetProfileByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.ProfileUpdateRequest) (*domain.User, error)
	UpdateProfilePicture(ctx context.Context, userID uuid.UUID, picture *Upload) (*domain.User, error)
	UpdateProfileFromResume(ctx context.Context, userID uuid.UUID, resume *Upload, replaceExisting bool) (*domain.User, error)
	ReparseResume(ctx context.Context, userID uuid.UUID, replaceExisting bool) (*domain.User, error)
}

type profileService struct {
	users     domain.UserRepository
	files     domain.FileStore
	extractor domain.ResumeExtractor
	metrics   *metrics.Collector
	logger    zerolog.Logger
}

func NewProfileService(
	users domain.UserRepository,
	files domain.FileStore,
	extractor domain.ResumeExtractor,
	collector *metrics.Collector,
	logger zerolog.Logger,
) ProfileService {
	return &profileService{
		users:     users,
		files:     files,
		extractor: extractor,
		metrics:   collector,
		logger:    logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *profileService) GetProfileByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.ProfileUpdateRequest) (*domain.User, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(user)
	user.BeforeSave()
	user.RefreshCompleteness()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info().Str("user_id", userID.String()).Msg("profile updated")
	return user, nil
}

func (s *profileService) UpdateProfilePicture(ctx context.Context, userID uuid.UUID, picture *Upload) (*domain.User, error) {
	if picture == nil {
		return nil, storage.ErrEmptyFile
	}
	if err := storage.ValidateImage(int64(len(picture.Data)), picture.ContentType); err != nil {
		return nil, err
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.files.Save(picture.Data, picture.Name, domain.FileCategoryProfile)
	if err != nil {
		return nil, fmt.Errorf("store profile picture: %w", err)
	}

	if user.ProfilePicture != "" {
		s.files.Delete(user.ProfilePicture)
	}
	user.ProfilePicture = path
	user.BeforeSave()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *profileService) UpdateProfileFromResume(ctx context.Context, userID uuid.UUID, resume *Upload, replaceExisting bool) (*domain.User, error) {
	if resume == nil {
		return nil, storage.ErrEmptyFile
	}
	if err := storage.ValidateResume(int64(len(resume.Data)), resume.ContentType); err != nil {
		return nil, err
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.files.Save(resume.Data, resume.Name, domain.FileCategoryResume)
	if err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	if replaceExisting && user.ResumeURL != "" {
		s.files.Delete(user.ResumeURL)
	}
	user.ResumeURL = path

	s.parseAndEnrich(ctx, user, path, replaceExisting)

	user.BeforeSave()
	user.RefreshCompleteness()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *profileService) ReparseResume(ctx context.Context, userID uuid.UUID, replaceExisting bool) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ResumeURL == "" {
		return nil, domain.ErrNotFound
	}

	s.parseAndEnrich(ctx, user, user.ResumeURL, replaceExisting)

	user.BeforeSave()
	user.RefreshCompleteness()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// parseAndEnrich runs the resume parser and merges whatever it returns into
// the profile. Extraction is best effort: the resume itself is already
// stored, so a parser failure is logged and the rest of the update goes
// through.
func (s *profileService) parseAndEnrich(ctx context.Context, user *domain.User, relativePath string, replaceExisting bool) {
	abs, err := s.files.Resolve(relativePath)
	if err != nil {
		s.metrics.RecordExtraction("resolve_failed")
		s.logger.Error().Err(err).Str("path", relativePath).Msg("resolve resume path")
		return
	}

	res, err := s.extractor.Extract(ctx, abs)
	if err != nil {
		s.metrics.RecordExtraction("failed")
		s.logger.Error().Err(err).
			Str("user_id", user.ID.String()).
			Msg("resume extraction failed, keeping profile as is")
		return
	}

	merge.Apply(user, res, replaceExisting)
	s.metrics.RecordExtraction("ok")
	s.metrics.RecordMerge()
	s.logger.Info().
		Str("user_id", user.ID.String()).
		Bool("replace_existing", replaceExisting).
		Msg("profile enriched from resume")
}
