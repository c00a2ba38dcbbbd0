package domain

import "context"

// IssuerPort is the cross module surface for minting session credentials
// the auth flow module consumes this after an allow decision
type IssuerPort interface {
	Issue(ctx context.Context, subject string) (string, error)
}

// ServicePort is the interface implemented by the session service
type ServicePort interface {
	IssuerPort

	// Verify checks signature and expiry and, when a privileged credential is
	// configured, rechecks the subject's entitlement live against the provider.
	// On success it returns the subject identifier; on failure the error
	// carries one of the Reason tags
	Verify(ctx context.Context, raw string) (string, error)
}

// RolesPort fetches the subject's current role set from the provider
// implementations use a privileged credential, not the original user token
type RolesPort interface {
	MemberRoles(ctx context.Context, subject string) ([]string, error)
}
