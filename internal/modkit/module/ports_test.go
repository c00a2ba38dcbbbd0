package module

import (
	"strings"
	"testing"

	phttp "rolegate/internal/platform/net/http"
)

// IssuePort is a tiny test interface that Ports() payloads can implement
type IssuePort interface {
	Issue() string
}

type issueImpl struct{ v string }

func (i issueImpl) Issue() string { return i.v }

// fakeModule is a small module double for tests
type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string              { return m.name }
func (m fakeModule) Ports() any                { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf_NilPorts(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "nilPorts", ports: nil}
	if _, ok := PortsOf[IssuePort](m); ok {
		t.Fatalf("expected ok=false when Ports() is nil")
	}
}

func TestPortsOf_DirectInterfaceMatch(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "direct", ports: IssuePort(issueImpl{v: "tok"})}

	got, ok := PortsOf[IssuePort](m)
	if !ok {
		t.Fatalf("expected ok=true for direct interface match")
	}
	if got.Issue() != "tok" {
		t.Fatalf("unexpected value, got %q want %q", got.Issue(), "tok")
	}
}

func TestPortsOf_StructBundle_ExportedField(t *testing.T) {
	t.Parallel()

	type Ports struct {
		Issuer IssuePort
		Other  int
	}
	m := fakeModule{
		name:  "bundle",
		ports: Ports{Issuer: issueImpl{v: "sess"}, Other: 1},
	}

	got, ok := PortsOf[IssuePort](m)
	if !ok {
		t.Fatalf("expected ok=true when bundle has an exported matching field")
	}
	if got.Issue() != "sess" {
		t.Fatalf("unexpected value, got %q want %q", got.Issue(), "sess")
	}
}

func TestPortsOf_StructBundle_UnexportedField_Ignored(t *testing.T) {
	t.Parallel()

	type ports struct {
		issuer IssuePort // unexported
		other  int
	}
	m := fakeModule{
		name:  "unexported",
		ports: ports{issuer: issueImpl{v: "x"}, other: 2},
	}

	if _, ok := PortsOf[IssuePort](m); ok {
		t.Fatalf("expected ok=false when only an unexported field implements T")
	}
}

func TestMustPortsOf_PanicsWithModuleName(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "session", ports: nil}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic from MustPortsOf when port missing")
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, "session") || !strings.Contains(msg, "requested port not found") {
			t.Fatalf("panic message should include module name and hint, got %q", msg)
		}
	}()

	_ = MustPortsOf[IssuePort](m)
}

func TestMustPortsOf_ReturnsValue(t *testing.T) {
	t.Parallel()

	m := fakeModule{name: "ok", ports: IssuePort(issueImpl{v: "v"})}

	got := MustPortsOf[IssuePort](m)
	if got.Issue() != "v" {
		t.Fatalf("unexpected value from MustPortsOf, got %q", got.Issue())
	}
}
