// Package arith implements the unsigned 64-bit arithmetic behind the
// mutations library.
//
// Add and Mult wrap modulo 2^64, which is what the exported C symbols
// add_numbers and mult_numbers return. Callers that need to notice overflow
// can use the checked or saturating variants, or Eval with a Policy:
//
//	sum, err := arith.Eval(arith.OpAdd, arith.PolicyFail, math.MaxUint64, 1)
//	if errors.Is(err, arith.ErrOverflow) {
//	    ...
//	}
//
// Every function is pure and safe for concurrent use.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package arith
