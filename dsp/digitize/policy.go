package digitize

import (
	"fmt"
	"strings"
)

// Policy selects how the affine offset beta is derived.
type Policy int

const (
	// PreserveZero rounds beta/alpha to an integer so that 0 stays exactly
	// representable and repeated round trips are stable.
	PreserveZero Policy = iota
	// PreserveBounds places beta so that dmin and dmax reconstruct exactly.
	PreserveBounds

	policyCount // sentinel for validation
)

var policyNames = [policyCount]string{
	"PreserveZero", "PreserveBounds",
}

// String returns the name of the policy.
func (p Policy) String() string {
	if p.Valid() {
		return policyNames[p]
	}

	return fmt.Sprintf("Policy(%d)", p)
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p >= 0 && p < policyCount
}

// ParsePolicy maps a policy token such as "preserve-zero", "PRESERVE_ZERO"
// or "zero" to a [Policy].
func ParsePolicy(token string) (Policy, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(token))

	switch norm {
	case "preservezero", "zero":
		return PreserveZero, nil
	case "preservebounds", "bounds":
		return PreserveBounds, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, token)
	}
}
