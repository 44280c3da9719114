package probe

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMeminfoPath is the location of the memory statistics table.
const DefaultMeminfoPath = "/proc/meminfo"

// Unit is a display unit for memory quantities.
type Unit int

const (
	KB Unit = iota
	MB
	GB
)

func (u Unit) String() string {
	switch u {
	case KB:
		return "kB"
	case MB:
		return "MB"
	case GB:
		return "GB"
	default:
		return "?"
	}
}

// MemoryField is one parsed line of the statistics table.
type MemoryField struct {
	Name     string
	RawValue uint64
	RawUnit  string
}

// MemoryQuantity is a value ready for display.
type MemoryQuantity struct {
	Value uint64
	Unit  Unit
}

func (q MemoryQuantity) String() string {
	return fmt.Sprintf("%d %s", q.Value, q.Unit)
}

// Quantity converts a kilobyte count to its display quantity. Every memory
// figure goes through this one rule: kB / 1024, shown as MB.
func Quantity(valueKB uint64) MemoryQuantity {
	return MemoryQuantity{Value: valueKB / 1024, Unit: MB}
}

// Format renders a kilobyte count as "<int> MB".
func Format(valueKB uint64) string {
	return Quantity(valueKB).String()
}

// Memory answers questions about the memory statistics table. It keeps no
// state between calls; the table is re-read on every lookup.
type Memory struct {
	Reader Reader
	// Path overrides DefaultMeminfoPath.
	Path string
}

func (m Memory) path() string {
	if m.Path == "" {
		return DefaultMeminfoPath
	}
	return m.Path
}

// LookupField parses the first line of the table that starts with name.
func (m Memory) LookupField(name string) (MemoryField, error) {
	table, err := m.Reader.ReadAll(m.path())
	if err != nil {
		return MemoryField{}, err
	}

	for _, line := range strings.Split(table, "\n") {
		if !strings.HasPrefix(line, name) {
			continue
		}
		segments := strings.Split(line, ":")
		raw := strings.TrimSpace(segments[len(segments)-1])
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "kB"))
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return MemoryField{}, fmt.Errorf("%w: %s line %q", ErrMalformedValue, name, line)
		}
		return MemoryField{Name: name, RawValue: value, RawUnit: "kB"}, nil
	}
	return MemoryField{}, fmt.Errorf("%w: no %s line in %s", ErrNotFound, name, m.path())
}

// Lookup returns the raw kilobyte value of the named field.
func (m Memory) Lookup(name string) (uint64, error) {
	f, err := m.LookupField(name)
	if err != nil {
		return 0, err
	}
	return f.RawValue, nil
}

func (m Memory) formatted(name string) (string, error) {
	value, err := m.Lookup(name)
	if err != nil {
		return "", err
	}
	return Format(value), nil
}

// Total returns MemTotal for display.
func (m Memory) Total() (string, error) { return m.formatted("MemTotal") }

// Free returns MemFree for display.
func (m Memory) Free() (string, error) { return m.formatted("MemFree") }

// Available returns MemAvailable for display.
func (m Memory) Available() (string, error) { return m.formatted("MemAvailable") }

// UsedKB returns MemTotal - MemAvailable in kilobytes. The first failing
// lookup's error is returned as is. A table reporting more available than
// total memory yields 0.
func (m Memory) UsedKB() (uint64, error) {
	return m.difference("MemTotal", "MemAvailable")
}

// Used returns UsedKB for display.
func (m Memory) Used() (string, error) {
	used, err := m.UsedKB()
	if err != nil {
		return "", err
	}
	return Format(used), nil
}

// SwapTotal returns SwapTotal for display.
func (m Memory) SwapTotal() (string, error) { return m.formatted("SwapTotal") }

// SwapUsed returns SwapTotal - SwapFree for display.
func (m Memory) SwapUsed() (string, error) {
	used, err := m.difference("SwapTotal", "SwapFree")
	if err != nil {
		return "", err
	}
	return Format(used), nil
}

func (m Memory) difference(minuend, subtrahend string) (uint64, error) {
	total, err := m.Lookup(minuend)
	if err != nil {
		return 0, err
	}
	part, err := m.Lookup(subtrahend)
	if err != nil {
		return 0, err
	}
	if part > total {
		return 0, nil
	}
	return total - part, nil
}
