package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// TerminalUnknown is shown when the walk ends on systemd or an empty name.
const TerminalUnknown = "N/A (could not determine the terminal, this could be an issue of using tmux)"

// maxLookups bounds the ancestry walk: parent, grandparent, great-grandparent.
const maxLookups = 3

// Field positions in /proc/<pid>/status on current kernels. They are only
// hints; the labels are authoritative.
const (
	statusNameLine = 0
	statusPPidLine = 6
)

// IsShellOrMultiplexer reports whether name looks like a shell or a terminal
// multiplexer rather than a terminal emulator.
func IsShellOrMultiplexer(name string) bool {
	return strings.HasSuffix(name, "sh") ||
		name == "ion" ||
		name == "screen" ||
		name == "tmux" ||
		strings.HasPrefix(name, "tmux")
}

// TerminalResolver walks up the process tree from PID looking for the
// process that owns the terminal.
type TerminalResolver struct {
	Reader Reader
	PID    int
}

// Resolve returns the name of the first ancestor that is not a shell or
// multiplexer, or the last name seen once the lookup budget is spent.
// Each hop is logged at debug level to the logger carried by ctx.
func (r TerminalResolver) Resolve(ctx context.Context) (string, error) {
	logger := zerolog.Ctx(ctx)
	pid := r.PID
	name := ""

	for lookup := 0; lookup < maxLookups; lookup++ {
		ppid, err := r.parentPID(pid)
		if err != nil {
			return "", err
		}
		if ppid <= 0 {
			// walked past init
			break
		}
		name, err = r.processName(ppid)
		if err != nil {
			return "", err
		}
		logger.Debug().Int("pid", pid).Int("ppid", ppid).Str("name", name).Msg("terminal lookup")

		pid = ppid
		if !IsShellOrMultiplexer(name) {
			break
		}
	}

	return strings.TrimSpace(name), nil
}

func statusPath(pid int) string {
	return fmt.Sprintf("/proc/%d/status", pid)
}

func (r TerminalResolver) parentPID(pid int) (int, error) {
	raw, err := r.statusField(pid, "PPid:", statusPPidLine)
	if err != nil {
		return 0, err
	}
	ppid, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: PPid %q of pid %d", ErrMalformedValue, raw, pid)
	}
	return ppid, nil
}

func (r TerminalResolver) processName(pid int) (string, error) {
	return r.statusField(pid, "Name:", statusNameLine)
}

func (r TerminalResolver) statusField(pid int, label string, hint int) (string, error) {
	value, err := field(r.Reader, statusPath(pid), label, hint)
	if IsUnavailable(err) {
		return "", fmt.Errorf("%w: pid %d: %w", ErrProcessStatusUnavailable, pid, err)
	}
	return value, err
}
