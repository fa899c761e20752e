package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/validation"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/response"
)

// Redirect answers a mutating form post, successful or silently absorbed
// alike.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// SendPage hands the page model to the presentation layer.
func SendPage(c *gin.Context, data any, flashes []string) {
	c.JSON(http.StatusOK, response.PageResponse{
		Data:    data,
		Flashes: flashes,
	})
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError) {
	c.JSON(statusCode, response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	})
}

func SendValidationError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validation.FormatValidationErrors(err))
}

func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", []response.ValidationError{
		{Field: "server", Message: message},
	})
}
