// SPDX-License-Identifier: MIT
package cache

import "errors"

// Error policy:
//   - sentinel errors below wrap nothing and are matched with errors.Is;
//   - operating-system failures are wrapped with %w plus the file path,
//     so errors.Is(err, fs.ErrNotExist) still sees through.
var (
	// ErrBadDimension is returned by Load when dim is outside {1, 2, 3}.
	ErrBadDimension = errors.New("cache: dimension must be 1, 2, or 3")

	// ErrNilData is returned by Save when the domain or eigen data is nil.
	ErrNilData = errors.New("cache: nil domain or eigen data")

	// ErrMismatch is returned by Save when the eigen data disagrees with
	// the domain size or the truncation mode count.
	ErrMismatch = errors.New("cache: eigen data does not match domain and truncation")

	// ErrBadHeader is returned by Load when the header implies an empty
	// grid or a zero mode count.
	ErrBadHeader = errors.New("cache: header implies an empty grid or zero modes")

	// ErrShortRead is returned by Load when the file holds fewer bytes
	// than its header implies.
	ErrShortRead = errors.New("cache: file shorter than its header implies")
)
