package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Reader reads whole files or single lines from them.
type Reader interface {
	ReadAll(path string) (string, error)
	ReadLine(path string, index int) (string, error)
}

// FileReader reads from the local filesystem. Absolute paths are resolved
// under Root, so an empty Root reads the live system.
type FileReader struct {
	Root string
}

func (r FileReader) resolve(path string) string {
	if r.Root == "" {
		return path
	}
	return filepath.Join(r.Root, path)
}

// ReadAll returns the full contents of path.
func (r FileReader) ReadAll(path string) (string, error) {
	data, err := os.ReadFile(r.resolve(path))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return string(data), nil
}

// ReadLine returns the newline-delimited record at the zero-based index.
func (r FileReader) ReadLine(path string, index int) (string, error) {
	contents, err := r.ReadAll(path)
	if err != nil {
		return "", err
	}
	lines := strings.Split(contents, "\n")
	if index < 0 || index >= len(lines) {
		return "", fmt.Errorf("%w: line %d of %s", ErrNotFound, index, path)
	}
	return lines[index], nil
}

// field returns the trimmed value after label on the first line starting
// with label. The line at hint is checked first so well-formed files with a
// known layout are answered without a scan.
func field(reader Reader, path, label string, hint int) (string, error) {
	if hint >= 0 {
		line, err := reader.ReadLine(path, hint)
		if err == nil && strings.HasPrefix(line, label) {
			return strings.TrimSpace(strings.TrimPrefix(line, label)), nil
		}
		if IsUnavailable(err) {
			return "", err
		}
	}

	contents, err := reader.ReadAll(path)
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(contents, "\n") {
		if strings.HasPrefix(line, label) {
			return strings.TrimSpace(strings.TrimPrefix(line, label)), nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNotFound, strings.TrimSuffix(label, ":"), path)
}
