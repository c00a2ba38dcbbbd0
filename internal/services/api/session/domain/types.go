// Package domain holds session core types independent of transport
package domain

// Reason is a stable machine readable cause for a failed verification
type Reason = string

const (
	// ReasonNoToken means the Authorization header was absent or not a bearer token
	ReasonNoToken Reason = "NO_TOKEN"

	// ReasonBadToken means the credential was structurally invalid or lacked a subject
	ReasonBadToken Reason = "BAD_TOKEN"

	// ReasonExpiredOrInvalid means the signature did not check out or the expiry elapsed
	ReasonExpiredOrInvalid Reason = "EXPIRED_OR_INVALID"

	// ReasonNoMember means the live recheck found the subject is no longer a guild member
	ReasonNoMember Reason = "NO_MEMBER"

	// ReasonNoRole means the live recheck found the subject lost the required role
	ReasonNoRole Reason = "NO_ROLE"
)

// VerifyResult is the wire body for the verify endpoint
// the desktop client branches on Reason, so values are contract
type VerifyResult struct {
	OK     bool   `json:"ok"`
	Reason Reason `json:"reason,omitempty"`
}
