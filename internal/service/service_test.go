package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/metrics"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/token"
)

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == domain.NormalizeEmail(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.New("no such user")
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// memFileStore records saves and deletes without touching the disk.
type memFileStore struct {
	mu      sync.Mutex
	seq     int
	files   map[string][]byte
	deleted []string
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: map[string][]byte{}}
}

func (s *memFileStore) Save(data []byte, _, category string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	path := fmt.Sprintf("%s/file-%d.pdf", category, s.seq)
	s.files[path] = data
	return path, nil
}

func (s *memFileStore) Resolve(relativePath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[relativePath]; !ok {
		return "", errors.New("no such file")
	}
	return "/abs/" + relativePath, nil
}

func (s *memFileStore) Delete(relativePath string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[relativePath]; !ok {
		return false
	}
	delete(s.files, relativePath)
	s.deleted = append(s.deleted, relativePath)
	return true
}

// fakeExtractor returns a canned result or error.
type fakeExtractor struct {
	res   *domain.ExtractionResult
	err   error
	calls int
	last  string
}

func (e *fakeExtractor) Extract(_ context.Context, pdfPath string) (*domain.ExtractionResult, error) {
	e.calls++
	e.last = pdfPath
	if e.err != nil {
		return nil, e.err
	}
	return e.res, nil
}

// fakeOAuth resolves access tokens and authorization codes from fixed
// tables.
type fakeOAuth struct {
	tokens map[string]*domain.GoogleUserInfo
	codes  map[string]string
}

func (o *fakeOAuth) GetAuthURL(string) string { return "https://accounts.google.test/auth" }

func (o *fakeOAuth) ExchangeCode(_ context.Context, code string) (*oauth2.Token, error) {
	if tok, ok := o.codes[code]; ok {
		return &oauth2.Token{AccessToken: tok}, nil
	}
	return nil, errors.New("invalid authorization code")
}

func (o *fakeOAuth) GetUserInfo(_ context.Context, accessToken string) (*domain.GoogleUserInfo, error) {
	if info, ok := o.tokens[accessToken]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("%w: rejected by identity endpoint", domain.ErrInvalidToken)
}

func testTokens() domain.TokenService {
	return token.NewService("service-test-secret", time.Hour)
}

func testCollector() *metrics.Collector {
	return metrics.NewCollector(prometheus.NewRegistry())
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
