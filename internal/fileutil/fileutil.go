package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MaxTextBytes bounds how much text ReadText and ReadTextFrom accept.
const MaxTextBytes = 16 << 20

// ErrTooLarge is returned when input exceeds MaxTextBytes.
var ErrTooLarge = errors.New("input too large")

// ReadText loads the whole file at path as text.
func ReadText(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()
	return ReadTextFrom(in)
}

// ReadTextFrom drains r, refusing anything larger than MaxTextBytes.
func ReadTextFrom(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxTextBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxTextBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxTextBytes)
	}
	return string(data), nil
}

// WriteText writes text to dst through a temporary file in the same
// directory and renames it into place, so readers never observe a partial
// result. The written size is verified before the rename.
func WriteText(dst, text string, mode os.FileMode) error {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	written, err := io.WriteString(tmp, text)
	if err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if written != len(text) {
		return fmt.Errorf("write size mismatch: expected %d bytes, wrote %d bytes", len(text), written)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return err
	}
	return os.Rename(tmpPath, dst)
}
