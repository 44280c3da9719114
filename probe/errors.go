package probe

import "errors"

var (
	// ErrSourceUnavailable means a required file could not be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrNotFound means a label was absent from an otherwise readable source.
	ErrNotFound = errors.New("not found")
	// ErrMalformedValue means a field was found but did not parse.
	ErrMalformedValue = errors.New("malformed value")
	// ErrProcessStatusUnavailable means a process status record vanished or
	// could not be read during the ancestry walk. It also matches
	// ErrSourceUnavailable.
	ErrProcessStatusUnavailable = errors.New("process status unavailable")
)

// IsUnavailable reports whether err came from a source that could not be read.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrProcessStatusUnavailable)
}
