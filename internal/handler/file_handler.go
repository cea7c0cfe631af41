package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

type FileHandler struct {
	files domain.FileStore
}

func NewFileHandler(files domain.FileStore) *FileHandler {
	return &FileHandler{files: files}
}

// Serve handles GET /api/v1/files/*path, returning stored uploads. The
// store rejects anything that resolves outside its base directory.
func (h *FileHandler) Serve(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("path"), "/")
	if rel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File path required"})
		return
	}

	abs, err := h.files.Resolve(rel)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	if _, err := os.Stat(abs); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.File(abs)
}
