package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/service"
)

type ResumeHandler struct {
	resumeService service.ResumeService
}

func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Parse handles POST /api/v1/resume/parse: run the parser over an uploaded
// resume and return the extracted fields without touching any profile.
func (h *ResumeHandler) Parse(c *gin.Context) {
	resume, err := readFormFile(c, "resume")
	if err != nil || resume == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}

	res, path, err := h.resumeService.Parse(c.Request.Context(), resume)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"resumeUrl": path,
		"parsed":    res,
	})
}
