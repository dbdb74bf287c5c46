package utils

import (
	"os"
	"path"
	"testing"
)

// CreateTestFile creates a temporary test file with the given contents and
// returns it opened for reading from the start. The file is closed when the
// test finishes.
func CreateTestFile(t *testing.T, contents string) *os.File {
	t.Helper()

	filepath := path.Join(t.TempDir(), "test.txt")
	if err := os.WriteFile(filepath, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	f, err := os.Open(filepath)
	if err != nil {
		t.Fatalf("Failed to open temp file: %v", err)
	}

	t.Cleanup(func() {
		f.Close()
	})

	return f
}
