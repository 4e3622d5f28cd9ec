package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// The wire contract for failures is a bare {"Error": "<message>"} object, and
// {"errors": {field: message}} for 422 validation failures. Success bodies are
// endpoint-specific and built by the handlers.

// Error writes a failure body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"Error": message})
}

// ValidationError writes a 422 with per-field errors. ozzo validation.Errors
// marshals to a {field: message} object already; anything else degrades to a
// plain string.
func ValidationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verrs})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
}
