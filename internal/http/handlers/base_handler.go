// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelogue/internal/service"
)

// NoDestinationsMessage is shown when the destination list is empty.
const NoDestinationsMessage = "Please enter at least one destination."

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoDestinations):
		writeError(c, http.StatusBadRequest, NoDestinationsMessage)
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
