package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-booklist/internal/catalog"
)

func TestWriteFileCreatesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.md")
	renderer := NewRenderer(nil)

	if err := renderer.WriteFile(path, sampleRecords()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want, err := renderer.Render(sampleRecords())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("written file differs from rendered content")
	}
}

func TestWriteFileOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.md")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := NewRenderer(nil).WriteFile(path, sampleRecords()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if bytes.Equal(got, []byte("stale")) {
		t.Fatal("expected existing file to be replaced")
	}
}

func TestWriteFileKeepsExistingOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.md")
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	bad := []catalog.Record{{Category: "Fiction", Authors: " ", Title: "Broken"}}
	if err := NewRenderer(nil).WriteFile(path, bad); err == nil {
		t.Fatal("expected render failure")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "previous" {
		t.Fatalf("expected previous content preserved, got %q", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no temp files left behind, found %d entries", len(entries))
	}
}
