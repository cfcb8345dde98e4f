// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
	"voyago/internal/modules/assistant"
	"voyago/internal/modules/usage"
)

// NewRouter wires the gin engine. usageSvc may be nil when the ledger is
// disabled.
func NewRouter(assistantSvc *assistant.Service, usageSvc *usage.Service) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	// The assistant route accepts POST only; anything else is 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	assistantHandler := handlers.NewAssistantHandler(assistantSvc)
	r.POST("/api/assistant", assistantHandler.Handle)

	usageHandler := handlers.NewUsageHandler(usageSvc)
	r.GET("/api/usage", usageHandler.Summary)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
