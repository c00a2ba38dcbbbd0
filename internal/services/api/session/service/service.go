// Package service implements stateless session credentials for the gateway
package service

import (
	"context"
	stderrs "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rolegate/internal/core/entitlement"
	perr "rolegate/internal/platform/errors"
	"rolegate/internal/services/api/session/domain"
)

// Service mints and verifies signed session credentials
type Service interface {
	domain.ServicePort
}

// Options configures the session service
type Options struct {
	// Secret is the HMAC signing key; required
	Secret string

	// TTL is the credential validity window
	TTL time.Duration

	// RequiredRoleID is checked during the live recheck path
	RequiredRoleID string

	// Roles enables the live recheck when non nil
	Roles domain.RolesPort
}

type service struct {
	key      []byte
	ttl      time.Duration
	required string
	roles    domain.RolesPort
	now      func() time.Time
}

// New constructs the session service
func New(opts Options) Service {
	if opts.Secret == "" {
		panic("session: signing secret is required")
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &service{
		key:      []byte(opts.Secret),
		ttl:      ttl,
		required: opts.RequiredRoleID,
		roles:    opts.Roles,
		now:      time.Now,
	}
}

const issuer = "rolegate"

// Issue mints a signed credential bound to subject with the configured expiry
func (s *service) Issue(_ context.Context, subject string) (string, error) {
	if subject == "" {
		return "", perr.Internalf("session: empty subject")
	}
	now := s.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	})
	signed, err := tok.SignedString(s.key)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "session: sign credential")
	}
	return signed, nil
}

// Verify checks signature and expiry locally, then optionally rechecks the
// subject's entitlement live when a privileged roles port is wired
func (s *service) Verify(ctx context.Context, raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if stderrs.Is(err, jwt.ErrTokenMalformed) {
			return "", perr.Tagged(perr.ErrorCodeUnauthorized, domain.ReasonBadToken, "malformed credential")
		}
		return "", perr.Tagged(perr.ErrorCodeUnauthorized, domain.ReasonExpiredOrInvalid, "credential expired or invalid")
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", perr.Tagged(perr.ErrorCodeUnauthorized, domain.ReasonBadToken, "credential missing subject")
	}

	if s.roles == nil {
		return claims.Subject, nil
	}

	roleIDs, err := s.roles.MemberRoles(ctx, claims.Subject)
	if err != nil {
		return "", perr.Tagged(perr.ErrorCodeForbidden, domain.ReasonNoMember, "no longer a guild member")
	}
	dec := entitlement.Decide(entitlement.Record{RoleIDs: roleIDs}, s.required)
	if !dec.Allowed {
		return "", perr.Tagged(perr.ErrorCodeForbidden, domain.ReasonNoRole, "required role no longer held")
	}
	return claims.Subject, nil
}
