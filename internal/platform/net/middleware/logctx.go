package middleware

import (
	"net/http"

	"rolegate/internal/platform/logger"
	pnet "rolegate/internal/platform/net"
)

// LogRequestID copies the routing layer's request id onto the logger's
// context key so logger.C lines carry request_id
func LogRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
