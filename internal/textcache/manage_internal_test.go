package textcache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveEntriesSkipsVanishedFiles(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "MIT.txt")
	if err := os.WriteFile(present, []byte("mit"), 0o644); err != nil {
		t.Fatal(err)
	}
	entries := []Entry{
		{ID: "MIT", Path: present},
		{ID: "MIT-0", Path: filepath.Join(dir, "MIT-0.txt")},
	}

	removed, err := removeEntries(entries)
	if err != nil {
		t.Fatalf("removeEntries returned error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, err := os.Stat(present); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be removed, stat err=%v", present, err)
	}
}
