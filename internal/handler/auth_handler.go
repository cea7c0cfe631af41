package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain/dto"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /api/v1/auth/signup. The body is multipart form data
// so the client can attach a resume and a profile picture alongside the
// account fields.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	resume, err := readFormFile(c, "resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read resume upload"})
		return
	}
	picture, err := readFormFile(c, "profilePicture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read profile picture upload"})
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), &req, resume, picture)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleLogin handles POST /api/v1/auth/google. The client completes the
// OAuth dance itself and submits the resulting access token.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.authService.GoogleLogin(c.Request.Context(), req.AccessToken)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleAuthURL handles GET /api/v1/auth/google/url, returning the consent
// URL for clients that use the redirect flow.
func (h *AuthHandler) GoogleAuthURL(c *gin.Context) {
	state := c.Query("state")
	c.JSON(http.StatusOK, gin.H{"url": h.authService.GoogleAuthURL(state)})
}

// GoogleCallback handles GET /api/v1/auth/google/callback for the redirect
// flow.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code required"})
		return
	}

	resp, err := h.authService.GoogleExchange(c.Request.Context(), code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// readFormFile loads an optional multipart file into memory. A missing part
// is not an error; it just returns nil.
func readFormFile(c *gin.Context, field string) (*service.Upload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &service.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
