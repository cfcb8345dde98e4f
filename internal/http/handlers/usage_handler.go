// README: Usage summary handler (month-to-date request counters).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/usage"
)

type UsageHandler struct {
	usage *usage.Service
}

func NewUsageHandler(usageSvc *usage.Service) *UsageHandler {
	return &UsageHandler{usage: usageSvc}
}

// Summary serves GET /api/usage.
func (h *UsageHandler) Summary(c *gin.Context) {
	if h.usage == nil {
		writeJSON(c, http.StatusOK, gin.H{"enabled": false})
		return
	}
	counters, err := h.usage.Summary(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"enabled": true, "counters": counters})
}
