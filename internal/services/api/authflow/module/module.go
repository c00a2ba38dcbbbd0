// Package module wires the authorization flow into the API using modkit
package module

import (
	"net/http"

	"rolegate/internal/adapters/discord"
	modkit "rolegate/internal/modkit"
	"rolegate/internal/modkit/httpkit"
	str "rolegate/internal/platform/strings"

	adom "rolegate/internal/services/api/authflow/domain"
	ahttp "rolegate/internal/services/api/authflow/http"
	asvc "rolegate/internal/services/api/authflow/service"
	sdom "rolegate/internal/services/api/session/domain"
)

// Module implements the auth flow API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc asvc.Service
}

// Ports declares the required injected port(s) for this module
// the session module owns the issuer
type Ports struct {
	Issuer sdom.IssuerPort
}

// Exposed is the surface the flow module offers to other modules
type Exposed struct {
	Flow adom.ServicePort
}

// New constructs the auth flow module (config-driven, parity with other API modules)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("authflow"),
		modkit.WithPrefix("/auth"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Issuer == nil {
		panic("authflow module requires Issuer port (from services/api/session)")
	}

	dc := discord.NewClient(discord.Options{
		BaseURL:      cfg.BaseURL,
		UserAgent:    cfg.UserAgent,
		Timeout:      cfg.Timeout,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
	})

	svc := asvc.New(asvc.Options{
		ClientID:       cfg.ClientID,
		RedirectURI:    cfg.RedirectURI,
		AuthorizeURL:   cfg.AuthorizeURL,
		Scope:          cfg.Scope,
		GuildID:        cfg.GuildID,
		RequiredRoleID: cfg.RequiredRoleID,
		Provider:       dc,
		Issuer:         injected.Issuer,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Exposed{Flow: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ahttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "authflow") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
