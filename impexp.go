package comptes

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// this file handles the file import/export format: the same snapshot JSON
// document the state file uses, written under a timestamped name.

// exportTimeLayout produces the historical "<DD-MM-YYYY>_<HHhMMmSSs>" stamp.
const exportTimeLayout = "02-01-2006_15h04m05s"

// ExportFilename returns the conventional name of an export performed at t,
// e.g. "data-07-03-2025_14h05m09s.json".
func ExportFilename(t time.Time) string {
	return "data-" + t.Format(exportTimeLayout) + ".json"
}

// Export writes the snapshot to a new file in dir, named by the
// ExportFilename convention for now, and returns the full path.
func Export(dir string, s Snapshot, now time.Time) (string, error) {
	path := filepath.Join(dir, ExportFilename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create export file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodeSnapshot(f, s); err != nil {
		return "", fmt.Errorf("cannot export to %q: %w", path, err)
	}
	return path, nil
}

// Import reads a snapshot from path. The document is structurally
// validated; on any failure the error is returned and no snapshot, so the
// caller keeps whatever state it had.
func Import(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot open import file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeSnapshot(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot import %q: %w", path, err)
	}
	return s, nil
}
