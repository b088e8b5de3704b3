// SPDX-License-Identifier: MIT
package field

import "errors"

// Error policy:
//   - sentinel errors below wrap nothing and are matched with errors.Is;
//   - errors from the grid, spectral, and cache packages pass through
//     unchanged so callers can match their sentinels directly;
//   - option constructors panic on meaningless inputs, methods never do.
var (
	// ErrNilDomain is returned by New when the domain is nil.
	ErrNilDomain = errors.New("field: nil domain")

	// ErrNilSource is returned by sampling when the variate source is nil.
	ErrNilSource = errors.New("field: nil normal source")

	// ErrLengthMismatch is returned when a field-sized slice does not have
	// exactly TotalPoints elements.
	ErrLengthMismatch = errors.New("field: slice length does not match grid size")

	// ErrBadLocation is returned by Interpolate when the location does not
	// have exactly Dim coordinates.
	ErrBadLocation = errors.New("field: location length does not match dimension")
)
