package probe

import (
	"context"
	"os/exec"
	"strings"
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCmd executes a command and returns stdout only; stderr noise from
// package managers would skew line counts.
func runCmd(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// countLines counts newline-separated entries, minus the empty one after
// the trailing newline.
func countLines(output string) int {
	return len(strings.Split(output, "\n")) - 1
}

// stripNewlines trims surrounding whitespace and drops embedded newlines.
func stripNewlines(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", "")
}
