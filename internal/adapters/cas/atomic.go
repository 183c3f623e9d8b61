package cas

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/catsync/internal/core/domain"
)

// WriteFileAtomic writes data to path by writing a temp file in the same
// directory and renaming it over the destination.
func WriteFileAtomic(path string, data []byte) error {
	_, err := writeStreamAtomic(path, func(w io.Writer) (int64, error) {
		n, err := w.Write(data)
		return int64(n), err
	})
	return err
}

// writeStreamAtomic writes whatever fill produces to path through a temp file.
func writeStreamAtomic(path string, fill func(io.Writer) (int64, error)) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return 0, err
	}

	tmpFile, err := os.CreateTemp(dir, ".catsync-*.tmp")
	if err != nil {
		return 0, err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	n, err := fill(tmpFile)
	if err != nil {
		_ = tmpFile.Close()
		return n, err
	}

	if err := tmpFile.Close(); err != nil {
		return n, err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return n, err
	}

	return n, os.Rename(tmpName, path)
}
