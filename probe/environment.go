package probe

import (
	"fmt"
	"path/filepath"
	"strings"
)

var desktopVariables = []string{
	"XDG_DESKTOP_SESSION",
	"XDG_CURRENT_DESKTOP",
	"DESKTOP_SESSION",
}

// Environment returns the desktop environment, or the window manager started
// by the last line of ~/.xinitrc when no desktop session is advertised.
func (p *Prober) Environment() string {
	for _, name := range desktopVariables {
		if value := p.Getenv(name); value != "" {
			return value
		}
	}
	return p.windowManager()
}

func (p *Prober) windowManager() string {
	const unreadable = "N/A (could not open $HOME/.xinitrc)"

	home := p.Getenv("HOME")
	if home == "" {
		return unreadable
	}
	contents, err := p.Reader.ReadAll(filepath.Join(home, ".xinitrc"))
	if err != nil {
		return unreadable
	}

	lines := strings.Split(strings.TrimRight(contents, "\n"), "\n")
	words := strings.Fields(lines[len(lines)-1])
	if len(words) == 0 {
		return unreadable
	}
	return words[len(words)-1]
}

// Env returns the value of an environment variable or an explanation of why
// there is none.
func (p *Prober) Env(name string) string {
	if value := p.Getenv(name); value != "" {
		return value
	}
	return fmt.Sprintf("N/A (could not read $%s, are you sure it's set?)", name)
}
