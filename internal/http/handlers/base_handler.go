// README: Base handler utilities (JSON helpers, assistant error mapping).
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/ai"
	"voyago/internal/modules/assistant"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeAssistantError maps the dispatcher error taxonomy onto HTTP statuses.
// Diagnostic detail (raw model text, parse errors) stays in the server log.
func writeAssistantError(c *gin.Context, err error) {
	var upstream *ai.UpstreamError
	var malformed *assistant.MalformedItineraryError

	switch {
	case errors.Is(err, assistant.ErrInvalidKind):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, assistant.ErrNoAPIKey):
		writeError(c, http.StatusInternalServerError, assistant.ErrNoAPIKey.Error())
	case errors.As(err, &upstream):
		writeError(c, http.StatusInternalServerError, upstream.Message)
	case errors.Is(err, assistant.ErrGenerationFailed):
		writeError(c, http.StatusInternalServerError, "Image generation failed.")
	case errors.As(err, &malformed):
		log.Printf("malformed itinerary output: %v (raw: %s)", err, malformed.RawText)
		writeError(c, http.StatusInternalServerError, "The model returned an invalid itinerary format.")
	default:
		log.Printf("assistant error: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
