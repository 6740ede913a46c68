// Command libmutations builds the mutations arithmetic library for C callers.
//
// Build a shared library and header with:
//
//	go build -buildmode=c-shared -o libmutations.so ./cmd/libmutations
//
// or a static archive with -buildmode=c-archive. The generated header declares:
//
//	extern GoUint64 add_numbers(GoUint64 left, GoUint64 right);
//	extern GoUint64 mult_numbers(GoUint64 left, GoUint64 right);
//
// Both results wrap modulo 2^64.
package main

import "C"

import "github.com/bft-labs/mutations/pkg/arith"

//export add_numbers
func add_numbers(left, right uint64) uint64 {
	return arith.Add(left, right)
}

//export mult_numbers
func mult_numbers(left, right uint64) uint64 {
	return arith.Mult(left, right)
}

// main is required by -buildmode=c-shared and never runs.
func main() {}
