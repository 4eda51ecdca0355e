package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a file relative to the calling test's package directory.
func LoadFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
