package service

import (
	"context"
	"strings"
	"testing"

	"rolegate/internal/adapters/discord"
	perr "rolegate/internal/platform/errors"
	"rolegate/internal/platform/testkit"
	"rolegate/internal/services/api/authflow/domain"
)

type fakeProvider struct {
	exchangeTok discord.Token
	exchangeErr error
	user        discord.User
	userErr     error
	member      discord.Member
	memberErr   error

	calls int
}

func (f *fakeProvider) ExchangeCode(_ context.Context, _ string) (discord.Token, error) {
	f.calls++
	return f.exchangeTok, f.exchangeErr
}

func (f *fakeProvider) Me(_ context.Context, _ string) (discord.User, error) {
	f.calls++
	return f.user, f.userErr
}

func (f *fakeProvider) SelfGuildMember(_ context.Context, _, _ string) (discord.Member, error) {
	f.calls++
	return f.member, f.memberErr
}

type fakeIssuer struct {
	token string
	err   error
}

func (f fakeIssuer) Issue(_ context.Context, _ string) (string, error) { return f.token, f.err }

func newFlow(p Provider, iss fakeIssuer) Service {
	return New(Options{
		ClientID:       "cid",
		RedirectURI:    "https://gate.example/auth/discord/callback",
		AuthorizeURL:   "https://discord.com/oauth2/authorize",
		Scope:          "identify guilds.members.read",
		GuildID:        "g1",
		RequiredRoleID: "role_y",
		Provider:       p,
		Issuer:         iss,
	})
}

func happyProvider() *fakeProvider {
	return &fakeProvider{
		exchangeTok: discord.Token{AccessToken: "tok"},
		user:        discord.User{ID: "42", Username: "kaja", GlobalName: "Kaja"},
		member:      discord.Member{Roles: []string{"role_y"}},
	}
}

func TestBeginURL(t *testing.T) {
	s := newFlow(happyProvider(), fakeIssuer{token: "sess"})
	u := s.BeginURL()

	if !strings.HasPrefix(u, "https://discord.com/oauth2/authorize?") {
		t.Fatalf("BeginURL = %q", u)
	}
	for _, frag := range []string{
		"client_id=cid",
		"response_type=code",
		"redirect_uri=https%3A%2F%2Fgate.example%2Fauth%2Fdiscord%2Fcallback",
		"scope=identify+guilds.members.read",
	} {
		if !strings.Contains(u, frag) {
			t.Fatalf("BeginURL %q missing %q", u, frag)
		}
	}
}

func TestCompleteSuccess(t *testing.T) {
	s := newFlow(happyProvider(), fakeIssuer{token: "sess-token"})

	out, err := s.Complete(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out.Subject != "42" || out.SessionToken != "sess-token" {
		t.Fatalf("outcome = %+v", out)
	}
	if out.Username != "Kaja" {
		t.Fatalf("username = %q", out.Username)
	}
}

func TestCompleteMissingCodeMakesNoCalls(t *testing.T) {
	p := happyProvider()
	s := newFlow(p, fakeIssuer{token: "sess"})

	_, err := s.Complete(context.Background(), "")
	if perr.ReasonOf(err) != domain.ReasonMissingCode {
		t.Fatalf("reason = %q", perr.ReasonOf(err))
	}
	if perr.HTTPStatus(err) != 400 {
		t.Fatalf("status = %d, want 400", perr.HTTPStatus(err))
	}
	if p.calls != 0 {
		t.Fatalf("provider touched %d times on missing code", p.calls)
	}
}

func TestCompleteTokenExchangeFailure(t *testing.T) {
	p := happyProvider()
	p.exchangeErr = perr.Unauthorizedf("token response missing access_token")
	s := newFlow(p, fakeIssuer{token: "sess"})

	_, err := s.Complete(context.Background(), "abc")
	if perr.ReasonOf(err) != domain.ReasonTokenExchange {
		t.Fatalf("reason = %q", perr.ReasonOf(err))
	}
	if perr.HTTPStatus(err) != 500 {
		t.Fatalf("status = %d, want 500", perr.HTTPStatus(err))
	}
}

func TestCompleteIdentityFailure(t *testing.T) {
	p := happyProvider()
	p.userErr = perr.Unavailablef("discord identity endpoint returned 502")
	s := newFlow(p, fakeIssuer{token: "sess"})

	_, err := s.Complete(context.Background(), "abc")
	if perr.ReasonOf(err) != domain.ReasonIdentityLookup {
		t.Fatalf("reason = %q", perr.ReasonOf(err))
	}
}

func TestCompleteNotAMember(t *testing.T) {
	p := happyProvider()
	p.memberErr = discord.ErrNotMember
	s := newFlow(p, fakeIssuer{token: "sess"})

	_, err := s.Complete(context.Background(), "abc123")
	if perr.ReasonOf(err) != "NOT_A_MEMBER" {
		t.Fatalf("reason = %q", perr.ReasonOf(err))
	}
	if perr.HTTPStatus(err) != 403 {
		t.Fatalf("status = %d, want 403", perr.HTTPStatus(err))
	}
}

func TestCompleteMembershipTransientFailure(t *testing.T) {
	p := happyProvider()
	p.memberErr = perr.Unavailablef("discord member endpoint returned 500")
	s := newFlow(p, fakeIssuer{token: "sess"})

	_, err := s.Complete(context.Background(), "abc")
	if perr.ReasonOf(err) != domain.ReasonMembershipLookup {
		t.Fatalf("reason = %q", perr.ReasonOf(err))
	}
	if perr.HTTPStatus(err) != 500 {
		t.Fatalf("status = %d, want 500", perr.HTTPStatus(err))
	}
}

func TestCompleteMissingEntitlement(t *testing.T) {
	p := happyProvider()
	p.member = discord.Member{Roles: []string{"role_x"}}
	s := newFlow(p, fakeIssuer{token: "sess"})

	_, err := s.Complete(context.Background(), "abc123")
	if perr.ReasonOf(err) != "MISSING_ENTITLEMENT" {
		t.Fatalf("reason = %q", perr.ReasonOf(err))
	}
	if perr.HTTPStatus(err) != 403 {
		t.Fatalf("status = %d, want 403", perr.HTTPStatus(err))
	}
}

func TestCompleteIssueFailure(t *testing.T) {
	s := newFlow(happyProvider(), fakeIssuer{err: perr.Internalf("hmac broke")})

	_, err := s.Complete(context.Background(), "abc")
	if perr.ReasonOf(err) != domain.ReasonInternal {
		t.Fatalf("reason = %q", perr.ReasonOf(err))
	}
}

func TestCompleteUsernameFallback(t *testing.T) {
	p := happyProvider()
	p.user = discord.User{ID: "42", Username: "kaja"}
	s := newFlow(p, fakeIssuer{token: "sess"})

	out, err := s.Complete(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out.Username != "kaja" {
		t.Fatalf("username = %q", out.Username)
	}
}

func TestNewRequiresPorts(t *testing.T) {
	testkit.MustPanic(t, func() { New(Options{Issuer: fakeIssuer{}}) })
	testkit.MustPanic(t, func() { New(Options{Provider: happyProvider()}) })
}
