// SPDX-License-Identifier: MIT
package field

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver locates cache files for the Generator. Keys are
// slash-separated paths relative to some storage root; the resolver owns
// the translation to real filesystem locations.
type PathResolver interface {
	// Exists reports whether the key currently resolves to a regular file.
	Exists(rel string) bool

	// Resolve translates the key into an absolute filesystem path. The
	// path need not exist yet; Resolve is also used to place new files.
	Resolve(rel string) (string, error)
}

// OutputRoot is the standard PathResolver: keys resolve against a fixed
// base directory. The zero value resolves against the working directory.
type OutputRoot string

// Exists reports whether rel names a regular file under the root.
// Complexity: one stat call.
func (r OutputRoot) Exists(rel string) bool {
	abs, err := r.Resolve(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)

	return err == nil && info.Mode().IsRegular()
}

// Resolve joins rel onto the root and makes the result absolute.
func (r OutputRoot) Resolve(rel string) (string, error) {
	base := string(r)
	if base == "" {
		base = "."
	}
	abs, err := filepath.Abs(filepath.Join(base, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("field: resolve %s: %w", rel, err)
	}

	return abs, nil
}
