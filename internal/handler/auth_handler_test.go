package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain/dto"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/service"
)

// stubAuthService returns canned results so handler tests only exercise
// binding and error mapping.
type stubAuthService struct {
	resp       *dto.AuthResponse
	err        error
	lastSignup *dto.SignupRequest
	lastResume *service.Upload
}

func (s *stubAuthService) Signup(_ context.Context, req *dto.SignupRequest, resume, _ *service.Upload) (*dto.AuthResponse, error) {
	s.lastSignup = req
	s.lastResume = resume
	return s.resp, s.err
}

func (s *stubAuthService) Login(context.Context, *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) GoogleLogin(context.Context, string) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) GoogleAuthURL(string) string {
	return "https://accounts.google.test/consent"
}

func (s *stubAuthService) GoogleExchange(context.Context, string) (*dto.AuthResponse, error) {
	return s.resp, s.err
}

func newAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(svc)
	router.POST("/auth/signup", h.Signup)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/google", h.GoogleLogin)
	return router
}

func okResponse() *dto.AuthResponse {
	return &dto.AuthResponse{
		ID:           uuid.New(),
		FirstName:    "Asha",
		Email:        "asha@example.com",
		SessionToken: "token",
	}
}

func TestSignupMultipart(t *testing.T) {
	svc := &stubAuthService{resp: okResponse()}
	router := newAuthRouter(svc)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("firstName", "Asha"))
	require.NoError(t, w.WriteField("email", "asha@example.com"))
	require.NoError(t, w.WriteField("password", "hunter22"))
	part, err := w.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastSignup)
	assert.Equal(t, "asha@example.com", svc.lastSignup.Email)
	require.NotNil(t, svc.lastResume)
	assert.Equal(t, "cv.pdf", svc.lastResume.Name)
}

func TestSignupWithoutFiles(t *testing.T) {
	svc := &stubAuthService{resp: okResponse()}
	router := newAuthRouter(svc)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("firstName", "Asha"))
	require.NoError(t, w.WriteField("email", "asha@example.com"))
	require.NoError(t, w.WriteField("password", "hunter22"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, svc.lastResume)
}

func TestAuthErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"already registered", domain.ErrAlreadyRegistered, http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"google account", domain.ErrGoogleAccount, http.StatusUnauthorized},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(&stubAuthService{err: tt.err})

			payload, _ := json.Marshal(dto.LoginRequest{Email: "a@example.com", Password: "x"})
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	router := newAuthRouter(&stubAuthService{resp: okResponse()})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoogleLogin(t *testing.T) {
	router := newAuthRouter(&stubAuthService{resp: okResponse()})

	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{"accessToken":"tok"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sessionToken":"token"`)
}
