// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"rolegate/internal/core/version"
	"rolegate/internal/modkit/httpkit"
	str "rolegate/internal/platform/strings"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time

	// client-facing constants surfaced by /config
	AuthorizeURL string
	ContactURL   string
	PurchaseURL  string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	r.Get("/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/config", h.config)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ConfigResponse exposes derived client-facing constants
type ConfigResponse struct {
	AuthorizeURL string `json:"authorize_url"`
	ContactURL   string `json:"contact_url,omitempty"`
	PurchaseURL  string `json:"purchase_url,omitempty"`
}

// health is a liveness probe; plain body, no envelope, so PaaS
// healthchecks and the desktop client can parse it directly
func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	httpkit.JSON(w, http.StatusOK, HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// blank-but-set link envs must not leak into the payload, so the
// optional fields go through EmptyToNil before omitempty applies
func (h *handlers) config(_ *http.Request) (any, error) {
	return ConfigResponse{
		AuthorizeURL: h.deps.AuthorizeURL,
		ContactURL:   str.EmptyToNil(h.deps.ContactURL),
		PurchaseURL:  str.EmptyToNil(h.deps.PurchaseURL),
	}, nil
}
