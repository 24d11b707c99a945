package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// The backing image is the complete serialized map for one store,
// rewritten wholesale on every mutation. There is no append log and no
// per-account file.

// loadImage reads a full image from path. A missing or empty file is a
// fresh install and yields an empty map; unparsable bytes are ErrCorruptImage.
func loadImage[T any](path string) (map[string]T, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return map[string]T{}, nil
	}

	var img map[string]T
	if err := json.Unmarshal(b, &img); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptImage, path, err)
	}
	if img == nil {
		img = map[string]T{}
	}
	return img, nil
}

// storeImage writes the full image to a temp file in the same directory
// and renames it over path, so a concurrent reader sees either the old
// image or the new one, never a half-written file.
func storeImage[T any](path string, img map[string]T) error {
	b, err := json.MarshalIndent(img, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
