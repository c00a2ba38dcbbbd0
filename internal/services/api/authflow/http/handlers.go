// Package http provides http transport for the authorization flow
package http

import (
	stdhttp "net/http"

	"rolegate/internal/modkit/httpkit"
	perr "rolegate/internal/platform/errors"
	phttp "rolegate/internal/platform/net/http"
	"rolegate/internal/platform/net/http/bind"
	"rolegate/internal/services/api/authflow/domain"
	svc "rolegate/internal/services/api/authflow/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get("/discord", h.begin)
	r.Get("/discord/callback", h.callback)
}

type handlers struct{ svc svc.Service }

// callbackQuery binds the provider redirect's query string
type callbackQuery struct {
	Code string `json:"code" validate:"required"`
}

// begin redirects the browser to the provider authorization URL
func (h *handlers) begin(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	stdhttp.Redirect(w, r, h.svc.BeginURL(), stdhttp.StatusFound)
}

// callback completes the flow and renders the outcome page
func (h *handlers) callback(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q := callbackQuery{Code: r.URL.Query().Get("code")}
	if err := bind.Validate(q); err != nil {
		h.renderErr(w, r, perr.WithReason(err, domain.ReasonMissingCode))
		return
	}

	out, err := h.svc.Complete(r.Context(), q.Code)
	if err != nil {
		h.renderErr(w, r, err)
		return
	}
	body, rerr := renderSuccess(out)
	if rerr != nil {
		phttp.RespondError(w, r, rerr)
		return
	}
	phttp.HTML(w, stdhttp.StatusOK, body)
}

func (h *handlers) renderErr(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	body, rerr := renderFailure(perr.ReasonOf(err))
	if rerr != nil {
		phttp.RespondError(w, r, rerr)
		return
	}
	phttp.HTML(w, perr.HTTPStatus(err), body)
}
