package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/pval/internal/codec"
)

// createTestStore creates a new file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// testRecord returns a rat-domain acceleration with the given magnitude.
func testRecord(magnitude string) codec.Record {
	return codec.Record{
		Domain:    "rat",
		Magnitude: magnitude,
		Dimension: [7]string{"1", "0", "-2", "0", "0", "0", "0"},
	}
}
