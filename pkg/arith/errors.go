package arith

import "errors"

// Errors returned by Eval and the parse helpers. Check them with errors.Is.
var (
	// ErrOverflow is returned when a result does not fit in 64 bits under PolicyFail.
	ErrOverflow = errors.New("arith: overflow")

	// ErrUnknownOp is returned for an operation name other than add or mult.
	ErrUnknownOp = errors.New("arith: unknown operation")

	// ErrUnknownPolicy is returned for a policy name other than wrap, saturate or fail.
	ErrUnknownPolicy = errors.New("arith: unknown overflow policy")
)
