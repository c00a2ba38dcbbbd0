package httpkit

import (
	"net/http"
	"time"

	"rolegate/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice for the gateway
// compose with per-module middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.LogRequestID,
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog,

		// cross-origin (the desktop client opens the flow in a popup)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
