package probe

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Prober exposes every host accessor. The zero value is not usable; build
// one with New or NewWithRoot.
type Prober struct {
	Reader Reader
	// Getenv looks up environment variables.
	Getenv func(string) string
	// Run executes external commands such as lspci and package managers.
	Run Runner
	// Glob expands filesystem patterns for directory-based package counts.
	Glob func(pattern string) ([]string, error)
	// UptimeSeconds returns seconds since boot.
	UptimeSeconds func() (uint64, error)
	// PID is the process the terminal walk starts from.
	PID int
	// Live enables gopsutil fallbacks that read the running host rather than
	// Reader.
	Live bool
}

// New returns a Prober for the running system.
func New() *Prober {
	return &Prober{
		Reader:        FileReader{},
		Getenv:        os.Getenv,
		Run:           runCmd,
		Glob:          filepath.Glob,
		UptimeSeconds: host.Uptime,
		PID:           os.Getpid(),
		Live:          true,
	}
}

// NewWithRoot returns a Prober that reads /proc, /sys and /etc beneath root.
// An empty root is the same as New.
func NewWithRoot(root string) *Prober {
	if root == "" || root == "/" {
		return New()
	}
	reader := FileReader{Root: root}
	p := New()
	p.Reader = reader
	p.Live = false
	p.Glob = func(pattern string) ([]string, error) {
		return filepath.Glob(filepath.Join(root, pattern))
	}
	p.UptimeSeconds = func() (uint64, error) {
		return readUptime(reader)
	}
	return p
}

func (p *Prober) memory() Memory {
	return Memory{Reader: p.Reader}
}

// MemoryTotal returns total memory, e.g. "15876 MB".
func (p *Prober) MemoryTotal() (string, error) { return p.memory().Total() }

// MemoryFree returns free memory.
func (p *Prober) MemoryFree() (string, error) { return p.memory().Free() }

// MemoryAvailable returns available memory.
func (p *Prober) MemoryAvailable() (string, error) { return p.memory().Available() }

// MemoryUsed returns total minus available memory.
func (p *Prober) MemoryUsed() (string, error) { return p.memory().Used() }

// SwapTotal returns total swap.
func (p *Prober) SwapTotal() (string, error) { return p.memory().SwapTotal() }

// SwapUsed returns total minus free swap.
func (p *Prober) SwapUsed() (string, error) { return p.memory().SwapUsed() }

// Terminal returns the terminal emulator hosting this process, or
// TerminalUnknown when the walk ends on systemd or nothing at all.
func (p *Prober) Terminal(ctx context.Context) (string, error) {
	name, err := TerminalResolver{Reader: p.Reader, PID: p.PID}.Resolve(ctx)
	if err != nil {
		return "", err
	}
	if name == "systemd" || name == "" {
		return TerminalUnknown, nil
	}
	return name, nil
}

// readUptime parses the first field of /proc/uptime as whole seconds.
func readUptime(reader Reader) (uint64, error) {
	raw, err := reader.ReadAll("/proc/uptime")
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, ErrMalformedValue
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || seconds < 0 {
		return 0, ErrMalformedValue
	}
	return uint64(seconds), nil
}
