// Package domain holds auth flow core types independent of transport
package domain

// Stage reason codes surfaced when the flow fails
// membership denials carry the entitlement package reasons instead
const (
	// ReasonMissingCode means the callback arrived without a code parameter
	ReasonMissingCode = "MISSING_CODE"

	// ReasonTokenExchange means the provider did not return a usable bearer token
	ReasonTokenExchange = "TOKEN_EXCHANGE"

	// ReasonIdentityLookup means the provider identity call failed
	ReasonIdentityLookup = "IDENTITY_LOOKUP"

	// ReasonMembershipLookup means the membership call failed transiently
	ReasonMembershipLookup = "MEMBERSHIP_LOOKUP"

	// ReasonInternal is any unanticipated failure
	ReasonInternal = "INTERNAL"
)

// Outcome is the successful result of completing the flow
type Outcome struct {
	Subject      string
	Username     string
	SessionToken string
}
