// Package fileio writes transformed source files back to disk.
package fileio

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteFile atomically replaces the file at path with data. The content is
// written to a temporary file first and renamed into place, so a crash
// mid-write can never leave a half-written source file behind.
func WriteFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
