// Package http provides http transport for session verification
package http

import (
	stdhttp "net/http"

	"rolegate/internal/modkit/httpkit"
	perr "rolegate/internal/platform/errors"
	"rolegate/internal/services/api/session/domain"
	svc "rolegate/internal/services/api/session/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get("/verify", h.verify)
}

type handlers struct{ svc svc.Service }

// verify re-validates a bearer credential
// the body shape {ok, reason} is a client contract, so no envelope here
func (h *handlers) verify(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	raw, err := httpkit.Bearer(r)
	if err != nil {
		httpkit.JSON(w, stdhttp.StatusUnauthorized, domain.VerifyResult{Reason: domain.ReasonNoToken})
		return
	}
	if _, err := h.svc.Verify(r.Context(), raw); err != nil {
		httpkit.JSON(w, perr.HTTPStatus(err), domain.VerifyResult{Reason: perr.ReasonOf(err)})
		return
	}
	httpkit.JSON(w, stdhttp.StatusOK, domain.VerifyResult{OK: true})
}
