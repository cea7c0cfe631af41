package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain/dto"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/middleware"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /api/v1/profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profile with a partial JSON body.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfilePicture handles PUT /api/v1/profile/picture.
func (h *ProfileHandler) UpdateProfilePicture(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	picture, err := readFormFile(c, "profilePicture")
	if err != nil || picture == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile picture file is required"})
		return
	}

	profile, err := h.profileService.UpdateProfilePicture(c.Request.Context(), user.ID, picture)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadResume handles POST /api/v1/profile/resume. The optional
// replaceExisting query flag controls whether parsed fields overwrite
// already-filled profile fields.
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	resume, err := readFormFile(c, "resume")
	if err != nil || resume == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}

	profile, err := h.profileService.UpdateProfileFromResume(c.Request.Context(), user.ID, resume, replaceExistingFlag(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ReparseResume handles POST /api/v1/profile/resume/reparse, re-running the
// parser over the stored resume without a new upload.
func (h *ProfileHandler) ReparseResume(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.profileService.ReparseResume(c.Request.Context(), user.ID, replaceExistingFlag(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func replaceExistingFlag(c *gin.Context) bool {
	flag, err := strconv.ParseBool(c.DefaultQuery("replaceExisting", "false"))
	if err != nil {
		return false
	}
	return flag
}
