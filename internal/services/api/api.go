// Package api assembles the gateway's HTTP surface
package api

import (
	"time"

	"rolegate/internal/platform/config"
	"rolegate/internal/platform/logger"
	phttp "rolegate/internal/platform/net/http"
	"rolegate/internal/platform/net/middleware"

	modkit "rolegate/internal/modkit"
	"rolegate/internal/modkit/httpkit"
	"rolegate/internal/modkit/module"

	authflowmod "rolegate/internal/services/api/authflow/module"
	metamod "rolegate/internal/services/api/meta/module"
	sessionmod "rolegate/internal/services/api/session/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// session owns credential signing; its issuer port feeds the flow
	// verify makes at most one outbound call, so it gets a tighter timeout
	session := sessionmod.New(
		deps,
		modkit.WithMiddlewares(middleware.Timeout(15*time.Second)),
	)
	issuer := module.MustPortsOf[sessionmod.Ports](session).Issuer

	flow := authflowmod.New(
		deps,
		modkit.WithPorts(authflowmod.Ports{
			Issuer: issuer,
		}),
	)
	beginURL := module.MustPortsOf[authflowmod.Exposed](flow).Flow.BeginURL()

	meta := metamod.New(
		deps,
		modkit.WithPorts(metamod.Ports{
			AuthorizeURL: beginURL,
		}),
	)

	mods := []module.Module{
		meta,
		session,
		flow,
	}

	// the heartbeat goes on the mux itself; group middleware only wraps
	// matched routes and "/" has none
	r.Use(middleware.Heartbeat("/"))

	// flat surface with a common middleware stack; paths are part of the
	// desktop client contract, so no version prefix
	r.Group(func(root httpkit.Router) {
		for _, mw := range httpkit.CommonStack() {
			root.Use(mw)
		}

		for _, m := range mods {
			m.MountRoutes(root)
		}
	})
}
