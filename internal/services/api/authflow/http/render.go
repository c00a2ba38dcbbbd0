package http

import (
	"bytes"
	"html/template"

	"rolegate/internal/core/entitlement"
	"rolegate/internal/services/api/authflow/domain"
)

// The callback responds with tiny HTML pages rather than JSON: the desktop
// client opens the flow in a popup and listens for a postMessage from it.
// Rendering is a pure function of the outcome, so it stays testable.

var successTpl = template.Must(template.New("success").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Access granted</title></head>
<body>
<p>Access granted. You can close this window.</p>
<script>
  if (window.opener) {
    window.opener.postMessage({ type: "DISCORD_OK", token: {{.Token}} }, "*");
  }
  window.close();
</script>
</body>
</html>
`))

var failureTpl = template.Must(template.New("failure").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Access denied</title></head>
<body>
<p>{{.Message}}</p>
<p>Reason code: <code>{{.Reason}}</code></p>
<script>
  if (window.opener) {
    window.opener.postMessage({ type: "DISCORD_DENIED", reason: {{.Reason}} }, "*");
  }
</script>
</body>
</html>
`))

type successPage struct {
	Token string
}

type failurePage struct {
	Reason  string
	Message string
}

// renderSuccess produces the page that hands the session token to the opener
func renderSuccess(out domain.Outcome) ([]byte, error) {
	var buf bytes.Buffer
	if err := successTpl.Execute(&buf, successPage{Token: out.SessionToken}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderFailure produces a short human message plus the stable reason code
func renderFailure(reason string) ([]byte, error) {
	var buf bytes.Buffer
	if err := failureTpl.Execute(&buf, failurePage{Reason: reason, Message: failureMessage(reason)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func failureMessage(reason string) string {
	switch reason {
	case domain.ReasonMissingCode:
		return "The provider did not send an authorization code. Close this window and try again."
	case string(entitlement.ReasonNotMember):
		return "You are not a member of the required server."
	case string(entitlement.ReasonMissingRole):
		return "Your account does not have the required role."
	case domain.ReasonTokenExchange, domain.ReasonIdentityLookup, domain.ReasonMembershipLookup:
		return "Authorization failed while talking to the provider. Close this window and try again."
	default:
		return "Authorization failed. Close this window and try again."
	}
}
