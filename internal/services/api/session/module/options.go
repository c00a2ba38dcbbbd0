package module

import (
	"time"

	"rolegate/internal/platform/config"
)

// Options controls session signing and the optional live recheck
type Options struct {
	Secret         string
	TTL            time.Duration
	GuildID        string
	RequiredRoleID string

	// BotToken enables the privileged recheck path when set
	BotToken string

	// Liveness lets ops turn the recheck off even with a bot token configured
	Liveness bool

	// Discord client
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// FromConfig reads session values from process config/env
func FromConfig(cfg config.Conf) Options {
	cfg.Require("SESSION_SECRET", "GUILD_ID", "REQUIRED_ROLE_ID")
	return Options{
		Secret:         cfg.MustString("SESSION_SECRET"),
		TTL:            cfg.MayDuration("SESSION_TTL", 7*24*time.Hour),
		GuildID:        cfg.MustString("GUILD_ID"),
		RequiredRoleID: cfg.MustString("REQUIRED_ROLE_ID"),
		BotToken:       cfg.MayString("BOT_TOKEN", ""),
		Liveness:       cfg.MayBool("SESSION_LIVENESS", true),
		BaseURL:        cfg.MayString("DISCORD_BASE_URL", ""),
		UserAgent:      cfg.MayString("DISCORD_UA", "rolegate"),
		Timeout:        cfg.MayDuration("DISCORD_TIMEOUT", 10*time.Second),
	}
}
