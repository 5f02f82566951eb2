package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte("первая строка\nвторая строка"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	text, err := src.Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if text != "первая строка\nвторая строка" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestOpenUnknownExtension(t *testing.T) {
	if _, err := Open("movie.mp4"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
