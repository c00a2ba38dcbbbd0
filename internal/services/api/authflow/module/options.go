package module

import (
	"time"

	"rolegate/internal/platform/config"
	"rolegate/internal/platform/logger"
	"rolegate/internal/platform/net/http/bind"
)

// Options controls the OAuth2 application and Discord client settings
type Options struct {
	ClientID       string `validate:"required"`
	ClientSecret   string `validate:"required"`
	RedirectURI    string `validate:"required,url"`
	GuildID        string `validate:"required"`
	RequiredRoleID string `validate:"required"`

	AuthorizeURL string `validate:"required,url"`
	Scope        string `validate:"required"`

	// Discord client
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// FromConfig reads flow values from process config/env
// the process fails fast when a required value is absent or malformed
func FromConfig(cfg config.Conf) Options {
	cfg.Require("CLIENT_ID", "CLIENT_SECRET", "REDIRECT_URI", "GUILD_ID", "REQUIRED_ROLE_ID")
	o := Options{
		ClientID:       cfg.MustString("CLIENT_ID"),
		ClientSecret:   cfg.MustString("CLIENT_SECRET"),
		RedirectURI:    cfg.MustString("REDIRECT_URI"),
		GuildID:        cfg.MustString("GUILD_ID"),
		RequiredRoleID: cfg.MustString("REQUIRED_ROLE_ID"),
		AuthorizeURL:   cfg.MayString("DISCORD_AUTHORIZE_URL", "https://discord.com/oauth2/authorize"),
		Scope:          cfg.MayString("OAUTH_SCOPE", "identify guilds.members.read"),
		BaseURL:        cfg.MayString("DISCORD_BASE_URL", ""),
		UserAgent:      cfg.MayString("DISCORD_UA", "rolegate"),
		Timeout:        cfg.MayDuration("DISCORD_TIMEOUT", 10*time.Second),
	}
	if err := bind.Validate(o); err != nil {
		logger.Named("authflow").Panic().Err(err).Msg("invalid flow configuration")
	}
	return o
}
