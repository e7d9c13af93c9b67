//go:build unit
// +build unit

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests run in the package directory; the repository root is two levels up.
func TestDefaultPaths_ShareRepositoryRoot(t *testing.T) {
	root := filepath.Join("..", "..")

	for _, path := range []string{defaultConfigPath, openAPIFile} {
		assert.False(t, filepath.IsAbs(path), path)
		_, err := os.Stat(filepath.Join(root, path))
		assert.NoError(t, err, path)
	}
}
