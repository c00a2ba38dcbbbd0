// Package service orchestrates the authorization code flow
package service

import (
	"context"
	stderrs "errors"
	"net/url"

	"rolegate/internal/adapters/discord"
	"rolegate/internal/core/entitlement"
	perr "rolegate/internal/platform/errors"
	"rolegate/internal/platform/logger"
	"rolegate/internal/services/api/authflow/domain"
	sdom "rolegate/internal/services/api/session/domain"
)

// Provider is the surface we need from the OAuth2 provider
// *discord.Client satisfies it
type Provider interface {
	ExchangeCode(ctx context.Context, code string) (discord.Token, error)
	Me(ctx context.Context, userToken string) (discord.User, error)
	SelfGuildMember(ctx context.Context, userToken, guildID string) (discord.Member, error)
}

// Service runs the two flow operations
type Service interface {
	domain.ServicePort
}

// Options configures the auth flow service
type Options struct {
	ClientID       string
	RedirectURI    string
	AuthorizeURL   string
	Scope          string
	GuildID        string
	RequiredRoleID string

	Provider Provider
	Issuer   sdom.IssuerPort
}

type service struct {
	opts Options
	log  logger.Logger
}

// New constructs the auth flow service
func New(opts Options) Service {
	if opts.Provider == nil {
		panic("authflow: provider is required")
	}
	if opts.Issuer == nil {
		panic("authflow: session issuer is required")
	}
	return &service{opts: opts, log: *logger.Named("authflow")}
}

// BeginURL builds the provider authorization URL with fixed parameters
func (s *service) BeginURL() string {
	q := url.Values{}
	q.Set("client_id", s.opts.ClientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", s.opts.RedirectURI)
	q.Set("scope", s.opts.Scope)
	return s.opts.AuthorizeURL + "?" + q.Encode()
}

// Complete runs the callback stages in order
// each stage failure is caught here, logged, and tagged; nothing is retried
func (s *service) Complete(ctx context.Context, code string) (domain.Outcome, error) {
	if code == "" {
		return domain.Outcome{}, perr.Tagged(perr.ErrorCodeValidation, domain.ReasonMissingCode, "missing authorization code")
	}

	tok, err := s.opts.Provider.ExchangeCode(ctx, code)
	if err != nil {
		return domain.Outcome{}, s.fail(err, domain.ReasonTokenExchange, "token exchange failed")
	}

	user, err := s.opts.Provider.Me(ctx, tok.AccessToken)
	if err != nil {
		return domain.Outcome{}, s.fail(err, domain.ReasonIdentityLookup, "identity lookup failed")
	}

	member, err := s.opts.Provider.SelfGuildMember(ctx, tok.AccessToken, s.opts.GuildID)
	if err != nil {
		if stderrs.Is(err, discord.ErrNotMember) {
			return domain.Outcome{}, perr.Tagged(perr.ErrorCodeForbidden, string(entitlement.ReasonNotMember), "not a guild member")
		}
		return domain.Outcome{}, s.fail(err, domain.ReasonMembershipLookup, "membership lookup failed")
	}

	dec := entitlement.Decide(entitlement.Record{RoleIDs: member.Roles}, s.opts.RequiredRoleID)
	if !dec.Allowed {
		return domain.Outcome{}, perr.Tagged(perr.ErrorCodeForbidden, string(dec.Reason), "required role not held")
	}

	session, err := s.opts.Issuer.Issue(ctx, user.ID)
	if err != nil {
		return domain.Outcome{}, s.fail(err, domain.ReasonInternal, "session issuance failed")
	}

	name := user.GlobalName
	if name == "" {
		name = user.Username
	}
	return domain.Outcome{Subject: user.ID, Username: name, SessionToken: session}, nil
}

// fail logs the underlying cause server side and returns a tagged error
// raw provider details never reach the caller
func (s *service) fail(err error, reason, msg string) error {
	s.log.Warn().Err(err).Str("stage", reason).Msg(msg)
	return perr.WithReason(perr.Wrap(err, perr.ErrorCodeUnknown, msg), reason)
}
