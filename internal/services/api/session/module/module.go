// Package module wires session verification into the API using modkit
package module

import (
	"context"
	"net/http"

	"rolegate/internal/adapters/discord"
	modkit "rolegate/internal/modkit"
	"rolegate/internal/modkit/httpkit"
	str "rolegate/internal/platform/strings"

	sdom "rolegate/internal/services/api/session/domain"
	shttp "rolegate/internal/services/api/session/http"
	ssvc "rolegate/internal/services/api/session/service"
)

// Module implements the session API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc ssvc.Service
}

// guildRoles adapts the privileged member lookup to the roles port
type guildRoles struct {
	c       *discord.Client
	guildID string
}

func (g guildRoles) MemberRoles(ctx context.Context, subject string) ([]string, error) {
	m, err := g.c.GuildMember(ctx, g.guildID, subject)
	if err != nil {
		return nil, err
	}
	return m.Roles, nil
}

// New constructs the session module (config-driven, parity with other API modules)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("session"),
		modkit.WithPrefix("/session"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	// the client owns recheck eligibility; no bot token means no roles port
	var roles sdom.RolesPort
	dc := discord.NewClient(discord.Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		BotToken:  cfg.BotToken,
	})
	if cfg.Liveness && dc.CanRecheck() {
		roles = guildRoles{c: dc, guildID: cfg.GuildID}
	}

	svc := ssvc.New(ssvc.Options{
		Secret:         cfg.Secret,
		TTL:            cfg.TTL,
		RequiredRoleID: cfg.RequiredRoleID,
		Roles:          roles,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Issuer: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		shttp.Register(r, m.svc)
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "session") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
