// SPDX-License-Identifier: MIT
package field_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfield/field"
)

// TestOutputRoot_Resolve verifies key-to-path translation, including the
// zero value falling back to the working directory.
func TestOutputRoot_Resolve(t *testing.T) {
	root := t.TempDir()

	abs, err := field.OutputRoot(root).Resolve("CachedRandomFields/a.rfg")
	require.NoError(t, err, "resolve should succeed")
	assert.Equal(t, filepath.Join(root, "CachedRandomFields", "a.rfg"), abs,
		"key must resolve under the root")
	assert.True(t, filepath.IsAbs(abs), "resolved path must be absolute")

	cwdAbs, err := field.OutputRoot("").Resolve("x.rfg")
	require.NoError(t, err, "zero-value resolve should succeed")
	wd, err := os.Getwd()
	require.NoError(t, err, "getwd")
	assert.Equal(t, filepath.Join(wd, "x.rfg"), cwdAbs,
		"zero value must resolve against the working directory")
}

// TestOutputRoot_Exists distinguishes files from directories and absences.
func TestOutputRoot_Exists(t *testing.T) {
	root := t.TempDir()
	r := field.OutputRoot(root)

	assert.False(t, r.Exists("missing.rfg"), "absent key must not exist")

	require.NoError(t, os.Mkdir(filepath.Join(root, "somedir"), 0o755), "mkdir")
	assert.False(t, r.Exists("somedir"), "a directory is not a cache file")

	require.NoError(t, os.WriteFile(filepath.Join(root, "hit.rfg"), []byte{1}, 0o644), "write")
	assert.True(t, r.Exists("hit.rfg"), "a regular file must exist")
}
