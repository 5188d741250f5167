// SPDX-License-Identifier: MIT
// Package: attrlod/lod
//
// errors.go: sentinel errors for the lod package.
//
// Error policy:
//   • Callers branch with errors.Is; messages are not part of the contract.
//   • Two classes: contract violations (fatal, never retried) and ordinary
//     failures (invalid parameters, search errors).
//   • A failed Generate leaves the Builder's previous structure untouched.

package lod

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks a fatal fault: a configuration a conformant
// bitstream never produces (e.g. minNodeSizeLog2 > 0 without scalable
// lifting), or a Searcher that returned a structure breaking the LoD
// invariants. Processing must abort; there is no partial result.
var ErrContractViolation = errors.New("lod: contract violation")

// ErrSearchFailed wraps an error returned by the Searcher.
var ErrSearchFailed = errors.New("lod: neighbour search failed")

// ErrInvalidStructure is returned by CheckStructure for a structure that
// breaks a LoD invariant.
var ErrInvalidStructure = errors.New("lod: invalid structure")

// ErrPointCountMismatch indicates the signalled point count differs from
// the cloud size.
var ErrPointCountMismatch = errors.New("lod: point count mismatch")

// IsFatal reports whether err belongs to the contract-violation class.
func IsFatal(err error) bool {
	return errors.Is(err, ErrContractViolation)
}

// contractf builds a fatal error "<method>: <detail>" wrapping
// ErrContractViolation and, when non-nil, cause.
func contractf(method string, cause error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("%s: %s: %w: %w", method, msg, ErrContractViolation, cause)
	}

	return fmt.Errorf("%s: %s: %w", method, msg, ErrContractViolation)
}

// structuref wraps ErrInvalidStructure with a "CheckStructure: <detail>" prefix.
func structuref(format string, args ...interface{}) error {
	return fmt.Errorf("CheckStructure: %s: %w", fmt.Sprintf(format, args...), ErrInvalidStructure)
}
