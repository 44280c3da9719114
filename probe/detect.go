package probe

import (
	"context"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

// managerBinaries maps each manager to the executable that proves it is
// installed.
var managerBinaries = map[string]string{
	"apk":     "apk",
	"apt":     "apt",
	"dnf":     "dnf",
	"dpkg":    "dpkg-query",
	"eopkg":   "eopkg",
	"pacman":  "pacman",
	"pip":     "pip",
	"portage": "emerge",
	"rpm":     "rpm",
	"xbps":    "xbps-query",
}

var (
	managers     []string
	managersOnce sync.Once
)

// DetectManagers returns the supported package managers found on $PATH.
// The search runs once per process.
func DetectManagers(ctx context.Context) []string {
	managersOnce.Do(func() {
		managers = detectManagers(ctx, exec.LookPath)
	})
	return managers
}

func detectManagers(ctx context.Context, lookPath func(string) (string, error)) []string {
	logger := zerolog.Ctx(ctx)
	var found []string
	for _, name := range SupportedManagers() {
		path, err := lookPath(managerBinaries[name])
		available := err == nil
		logger.Debug().
			Str("manager", name).
			Bool("available", available).
			Str("path", path).
			Msg("package manager")
		if available {
			found = append(found, name)
		}
	}
	return found
}
