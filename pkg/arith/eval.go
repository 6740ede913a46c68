package arith

import (
	"fmt"
	"math"
	"strings"
)

// Op names a binary operation.
type Op string

const (
	OpAdd  Op = "add"
	OpMult Op = "mult"
)

// Policy controls what Eval does when a result does not fit in 64 bits.
type Policy string

const (
	// PolicyWrap reduces the result modulo 2^64.
	PolicyWrap Policy = "wrap"
	// PolicySaturate clamps the result to math.MaxUint64.
	PolicySaturate Policy = "saturate"
	// PolicyFail returns ErrOverflow.
	PolicyFail Policy = "fail"
)

// Policies lists the accepted policy names.
var Policies = []Policy{PolicyWrap, PolicySaturate, PolicyFail}

// ParseOp converts a name such as "add" into an Op. Matching ignores case.
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(strings.TrimSpace(s))); op {
	case OpAdd, OpMult:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// ParsePolicy converts a name such as "wrap" into a Policy. An empty string
// yields PolicyWrap.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PolicyWrap, nil
	}
	for _, known := range Policies {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Eval applies op to a and b under the given overflow policy.
func Eval(op Op, policy Policy, a, b uint64) (uint64, error) {
	var (
		result   uint64
		overflow bool
	)
	switch op {
	case OpAdd:
		result, overflow = AddChecked(a, b)
	case OpMult:
		result, overflow = MultChecked(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}

	switch policy {
	case PolicyWrap, "":
		return result, nil
	case PolicySaturate:
		if overflow {
			return math.MaxUint64, nil
		}
		return result, nil
	case PolicyFail:
		if overflow {
			return 0, fmt.Errorf("%s %d %d: %w", op, a, b, ErrOverflow)
		}
		return result, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}
