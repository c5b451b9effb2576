package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/festy23/league_manager/internal/league/model"
)

// messageResponse writes the {"message": ...} body used by every non-data response.
func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, model.MessageResponse{Message: message})
}

// fieldErrors maps request struct fields to the presence error reported for them.
var fieldErrors = map[string]error{
	"Title":       model.ErrEmptyTitle,
	"Description": model.ErrEmptyDescription,
	"Email":       model.ErrEmptyEmail,
}

// bindingMessage turns a binding failure into a client-facing message.
func bindingMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		if fieldErr, ok := fieldErrors[validationErrs[0].StructField()]; ok {
			return fieldErr.Error()
		}
		return validationErrs[0].Error()
	}
	return "invalid request body"
}
