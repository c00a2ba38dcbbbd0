package module_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	modkit "rolegate/internal/modkit"
	mkmodule "rolegate/internal/modkit/module"
	"rolegate/internal/platform/config"
	phttp "rolegate/internal/platform/net/http"
	sessionmod "rolegate/internal/services/api/session/module"

	"github.com/go-chi/chi/v5"
)

func setSessionEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ROLEGATE_SESSION_SECRET", "s3cret")
	t.Setenv("ROLEGATE_GUILD_ID", "g1")
	t.Setenv("ROLEGATE_REQUIRED_ROLE_ID", "role_y")
}

func mountSession(t *testing.T) (*httptest.Server, sessionmod.Ports) {
	t.Helper()
	mod := sessionmod.New(modkit.Deps{Cfg: config.New().Prefix("ROLEGATE_")})
	ports := mkmodule.MustPortsOf[sessionmod.Ports](mod)

	mux := chi.NewRouter()
	mod.MountRoutes(phttp.AdaptChi(mux))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, ports
}

func verifyWith(t *testing.T, srv *httptest.Server, token string) (int, bool) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/session/verify", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	var out struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, out.OK
}

func TestVerifyRechecksWhenBotTokenConfigured(t *testing.T) {
	var hits int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if got := r.Header.Get("Authorization"); got != "Bot bot-tok" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"roles":["role_y"],"user":{"id":"u1"}}`)
	}))
	t.Cleanup(api.Close)

	setSessionEnv(t)
	t.Setenv("ROLEGATE_BOT_TOKEN", "bot-tok")
	t.Setenv("ROLEGATE_DISCORD_BASE_URL", api.URL)

	srv, ports := mountSession(t)
	tok, err := ports.Issuer.Issue(context.Background(), "u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	status, ok := verifyWith(t, srv, tok)
	if status != http.StatusOK || !ok {
		t.Fatalf("verify = %d ok=%v", status, ok)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("member endpoint hits = %d, want 1", hits)
	}
}

func TestVerifySkipsRecheckWhenLivenessDisabled(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("unexpected provider call with liveness disabled")
	}))
	t.Cleanup(api.Close)

	setSessionEnv(t)
	t.Setenv("ROLEGATE_BOT_TOKEN", "bot-tok")
	t.Setenv("ROLEGATE_SESSION_LIVENESS", "false")
	t.Setenv("ROLEGATE_DISCORD_BASE_URL", api.URL)

	srv, ports := mountSession(t)
	tok, err := ports.Issuer.Issue(context.Background(), "u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	status, ok := verifyWith(t, srv, tok)
	if status != http.StatusOK || !ok {
		t.Fatalf("verify = %d ok=%v", status, ok)
	}
}

func TestVerifySkipsRecheckWithoutBotToken(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("unexpected provider call without a bot token")
	}))
	t.Cleanup(api.Close)

	setSessionEnv(t)
	t.Setenv("ROLEGATE_DISCORD_BASE_URL", api.URL)

	srv, ports := mountSession(t)
	tok, err := ports.Issuer.Issue(context.Background(), "u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	status, ok := verifyWith(t, srv, tok)
	if status != http.StatusOK || !ok {
		t.Fatalf("verify = %d ok=%v", status, ok)
	}
}
