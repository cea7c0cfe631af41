package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/extract"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/storage"
)

// writeError maps service errors onto HTTP responses. Unrecognized errors
// collapse to a generic 500 so internals never leak to clients.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, domain.ErrGoogleAccount):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This account uses Google sign-in. Please log in with Google."})
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
	case errors.Is(err, domain.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
	case errors.Is(err, storage.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the size limit"})
	case errors.Is(err, storage.ErrInvalidType),
		errors.Is(err, storage.ErrEmptyFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, extract.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Resume parsing timed out"})
	case errors.Is(err, extract.ErrParserUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Resume parser is unavailable"})
	default:
		var parserErr *extract.ParserError
		var malformed *extract.MalformedOutputError
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &parserErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not parse resume", "details": parserErr.Message})
		case errors.As(err, &malformed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not parse resume"})
		case errors.As(err, &validationErrs):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrs.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}
