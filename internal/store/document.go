package store

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"os"
	"path/filepath"

	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
)

// readDocument loads and parses a JSON document. An absent file yields the
// caller-supplied default; a file that exists but will not parse is a
// CORRUPT_DATA error, surfaced as a 500 and never auto-repaired.
func readDocument[T any](path string, defaultValue func() T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultValue(), nil
		}
		var zero T
		return zero, domainerrors.Wrapf(err, domainerrors.CodeInternal, "read %s", filepath.Base(path))
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		var zero T
		return zero, domainerrors.Wrapf(err, domainerrors.CodeCorruptData, "parse %s", filepath.Base(path))
	}

	return doc, nil
}

// writeDocument serializes the document as indented JSON and atomically
// replaces the target via a temp file + rename in the same directory.
func writeDocument[T any](path string, doc T) error {
	data, err := json.Marshal(doc, jsontext.WithIndent("  "))
	if err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeInternal, "encode %s", filepath.Base(path))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}

	return nil
}
