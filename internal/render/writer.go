package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-booklist/internal/catalog"
)

// WriteFile renders records and writes the document to path, replacing any
// existing file. Content lands in a temporary sibling first and is renamed
// into place, so a failed run never leaves a truncated artifact behind.
func (r *Renderer) WriteFile(path string, records []catalog.Record) error {
	content, err := r.Render(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("render: create temp output in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("render: write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("render: close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("render: publish %s: %w", path, err)
	}
	return nil
}
