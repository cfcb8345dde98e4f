// README: Assistant proxy handler (typed request dispatch to the generative upstream).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/assistant"
)

type AssistantHandler struct {
	svc *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// Handle serves POST /api/assistant. The body carries a "type" discriminator
// plus kind-specific fields that are passed to the builder as-is.
func (h *AssistantHandler) Handle(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	rawKind, _ := body["type"].(string)
	kind, err := assistant.ParseKind(rawKind)
	if err != nil {
		writeAssistantError(c, err)
		return
	}

	result, err := h.svc.Handle(c.Request.Context(), kind, body)
	if err != nil {
		writeAssistantError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}
