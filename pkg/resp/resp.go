package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/ImmrAD/the-digital-diner/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

func ServerError(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "something went wrong"})
}

// Error maps a service-layer error onto exactly one HTTP response.
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		ServerError(c, err)
		return
	}
	switch e.Kind {
	case apperr.Validation:
		BadRequest(c, e.Msg)
	case apperr.Conflict:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": e.Msg, "field": e.Field})
	case apperr.NotFound:
		NotFound(c, e.Msg)
	case apperr.Auth:
		Unauthorized(c, e.Msg)
	default:
		ServerError(c, err)
	}
}
