// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "rolegate/internal/modkit"
	"rolegate/internal/modkit/httpkit"
	"rolegate/internal/platform/config"
	str "rolegate/internal/platform/strings"

	metahttp "rolegate/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// Ports declares the injected surface meta consumes
// the flow module owns the authorize URL
type Ports struct {
	AuthorizeURL string
}

// Options holds the client-facing link values
type Options struct {
	ContactURL  string
	PurchaseURL string
}

// FromConfig reads optional link values from process config/env
func FromConfig(cfg config.Conf) Options {
	return Options{
		ContactURL:  cfg.MayString("CONTACT_URL", ""),
		PurchaseURL: cfg.MayString("PURCHASE_URL", ""),
	}
}

// New constructs a meta module with the provided dependencies and options
// meta mounts at the router root so probes hit /health without a prefix
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName:  "rolegate",
			StartedAt:    m.startedAt,
			AuthorizeURL: injected.AuthorizeURL,
			ContactURL:   cfg.ContactURL,
			PurchaseURL:  cfg.PurchaseURL,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
// meta registers at the root, so it uses Group rather than a prefixed Route
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
