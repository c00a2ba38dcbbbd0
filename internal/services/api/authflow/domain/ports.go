package domain

import "context"

// ServicePort is the interface implemented by the auth flow service
type ServicePort interface {
	// BeginURL builds the provider authorization URL the begin redirect targets
	BeginURL() string

	// Complete runs the callback stages and returns the flow outcome
	// failures carry a stage or entitlement reason tag
	Complete(ctx context.Context, code string) (Outcome, error)
}
