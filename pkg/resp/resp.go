package resp

import (
	"net/http"

	"medmatch/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func Paginated(c *gin.Context, items any, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": items, "total": total, "page": page, "limit": limit})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps a service error onto the matching HTTP status. Anything without
// a domain code is a 500.
func Error(c *gin.Context, err error) {
	switch apperr.CodeOf(err) {
	case apperr.CodeValidation:
		BadRequest(c, err.Error())
	case apperr.CodeConflict:
		Conflict(c, err.Error())
	case apperr.CodeNotFound:
		NotFound(c, err.Error())
	case apperr.CodeForbidden:
		Forbidden(c, err.Error())
	case apperr.CodeUnauthorized:
		Unauthorized(c, err.Error())
	default:
		ServerError(c, err)
	}
}
