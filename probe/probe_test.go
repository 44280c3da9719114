package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSyntheticFile creates a file at the given path within root,
// creating parent directories as needed.
func writeSyntheticFile(t *testing.T, root, path, content string) {
	t.Helper()
	fullPath := filepath.Join(root, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", fullPath, err)
	}
}

// statusRecord renders a /proc/<pid>/status body with PPid on line 6.
func statusRecord(name string, ppid int) string {
	return fmt.Sprintf("Name:\t%s\nUmask:\t0022\nState:\tS (sleeping)\nTgid:\t%d\nNgid:\t0\nPid:\t%d\nPPid:\t%d\nTracerPid:\t0\n",
		name, ppid+1, ppid+1, ppid)
}

// process is one entry of a synthetic process tree.
type process struct {
	pid  int
	name string
	ppid int
}

// writeProcessTree writes a status record for every process under root.
func writeProcessTree(t *testing.T, root string, procs ...process) {
	t.Helper()
	for _, p := range procs {
		writeSyntheticFile(t, root, statusPath(p.pid), statusRecord(p.name, p.ppid))
	}
}

// recordingReader remembers every path it was asked for.
type recordingReader struct {
	Reader
	paths []string
}

func (r *recordingReader) ReadAll(path string) (string, error) {
	r.paths = append(r.paths, path)
	return r.Reader.ReadAll(path)
}

func (r *recordingReader) ReadLine(path string, index int) (string, error) {
	r.paths = append(r.paths, path)
	return r.Reader.ReadLine(path, index)
}

func (r *recordingReader) touched(path string) bool {
	for _, p := range r.paths {
		if p == path {
			return true
		}
	}
	return false
}

// fakeRunner answers commands from a fixed table keyed by the command line.
type fakeRunner map[string]string

func (f fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	out, ok := f[key]
	if !ok {
		return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return []byte(out), nil
}

// newSyntheticProber returns a Prober rooted at a fresh temp dir with an
// empty environment and no external commands.
func newSyntheticProber(t *testing.T) (*Prober, string) {
	t.Helper()
	root := t.TempDir()
	p := NewWithRoot(root)
	p.Getenv = func(string) string { return "" }
	p.Run = fakeRunner{}.run
	return p, root
}
