package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner/internal/models/response_models"
)

// Client-facing messages. They never carry internal detail.
const (
	MsgInvalidParameters = "Missing or invalid parameters"
	MsgMethodNotAllowed  = "Method not allowed"
	MsgGenerationFailed  = "Error generating meal plan"
	MsgHallNotFound      = "Dining hall not found"
	MsgInternalError     = "Internal server error"
)

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, response_models.ErrorResponse{Error: message})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidParameters):
		RespondError(c, http.StatusBadRequest, MsgInvalidParameters)
	case errors.Is(err, ErrMethodNotAllowed):
		RespondError(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	case errors.Is(err, ErrGenerationFailed):
		RespondError(c, http.StatusInternalServerError, MsgGenerationFailed)
	case errors.Is(err, ErrHallNotFound):
		RespondError(c, http.StatusNotFound, MsgHallNotFound)
	default:
		RespondError(c, http.StatusInternalServerError, MsgInternalError)
	}
}
