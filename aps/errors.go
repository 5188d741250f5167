// SPDX-License-Identifier: MIT
// Package: attrlod/aps
//
// errors.go: sentinel errors for the aps package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (method, field) is attached with %w at the return site.

package aps

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters indicates a parameter outside its documented range
// or a combination of parameters that cannot occur in a conformant set.
var ErrInvalidParameters = errors.New("aps: invalid parameter set")

// ErrUnknownTransform indicates an unrecognized transform name.
var ErrUnknownTransform = errors.New("aps: unknown transform")

// ErrSamplingConflict indicates that a parameter file gave both dist2 and
// sampling periods; exactly one subsampling method applies.
var ErrSamplingConflict = errors.New("aps: dist2 and sampling_periods are mutually exclusive")

// invalidf wraps ErrInvalidParameters with a "<method>: <field>: <detail>" prefix.
func invalidf(method, field, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %s: %w", method, field, fmt.Sprintf(format, args...), ErrInvalidParameters)
}
