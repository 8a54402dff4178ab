package fsprobe

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyPath is returned when a probe is given an empty
// path.
var ErrEmptyPath = errors.New("empty path")

// Exists reports whether path resolves to any filesystem
// entry, file or directory. A missing entry yields false
// with no error; any other stat failure is returned.
func Exists(path string) (bool, error) {
	const errCtx = "probing path"

	if path == "" {
		return false, fmt.Errorf("%s: %w", errCtx, ErrEmptyPath)
	}

	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("%s: %w", errCtx, err)
}

// Digest computes the hex sha256 of the file at path.
func Digest(path string) (result string, retErr error) {
	const errCtx = "calculating digest"

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	ha := sha256.New()

	if _, err := io.Copy(ha, fi); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return hex.EncodeToString(ha.Sum(nil)), nil
}
