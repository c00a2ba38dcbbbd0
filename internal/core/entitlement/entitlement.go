// Package entitlement holds the pure access decision, independent of
// transport and of the identity provider
package entitlement

// Reason is the stable cause tag attached to a deny decision
type Reason string

const (
	// ReasonNone means the decision allowed access
	ReasonNone Reason = ""

	// ReasonNotMember means the subject is not in the designated guild
	ReasonNotMember Reason = "NOT_A_MEMBER"

	// ReasonMissingRole means the subject is a member but lacks the required role
	ReasonMissingRole Reason = "MISSING_ENTITLEMENT"
)

// Record is the subject's membership view within the designated guild
type Record struct {
	RoleIDs []string
}

// Decision is the outcome of an entitlement check
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Allow is the positive decision
func Allow() Decision { return Decision{Allowed: true} }

// Deny builds a negative decision with a cause
func Deny(r Reason) Decision { return Decision{Allowed: false, Reason: r} }

// Decide allows iff required is among the record's role ids.
// Role ids are opaque identifiers compared by exact string match.
// The not-a-member case is short-circuited upstream by the provider
// client and must be mapped to Deny(ReasonNotMember) by the caller.
func Decide(rec Record, required string) Decision {
	for _, id := range rec.RoleIDs {
		if id == required {
			return Allow()
		}
	}
	return Deny(ReasonMissingRole)
}
