package probe

import (
	"context"
	"fmt"
	"sort"
)

// packageQuery describes how to count one manager's installed packages.
type packageQuery struct {
	command string
	args    []string
	// header is the number of non-package lines the command prints.
	header int
}

var packageQueries = map[string]packageQuery{
	"apk":    {command: "apk", args: []string{"info"}},
	"apt":    {command: "apt", args: []string{"list", "--installed"}, header: 1},
	"dnf":    {command: "dnf", args: []string{"list", "installed"}},
	"dpkg":   {command: "dpkg-query", args: []string{"-f", "${binary:Package}\n", "-W"}},
	"eopkg":  {command: "eopkg", args: []string{"list-installed"}},
	"pacman": {command: "pacman", args: []string{"-Q", "-q"}},
	"pip":    {command: "pip", args: []string{"list"}, header: 2},
	"rpm":    {command: "rpm", args: []string{"-q", "-a"}},
	"xbps":   {command: "xbps-query", args: []string{"list-installed"}},
}

// portage has no query command; it is counted from its on-disk database.
const portage = "portage"

// SupportedManagers lists every manager Packages understands, sorted.
func SupportedManagers() []string {
	names := make([]string, 0, len(packageQueries)+1)
	for name := range packageQueries {
		names = append(names, name)
	}
	names = append(names, portage)
	sort.Strings(names)
	return names
}

// Packages returns the number of packages installed through manager.
func (p *Prober) Packages(ctx context.Context, manager string) (string, error) {
	if manager == portage {
		return p.portagePackages()
	}

	query, ok := packageQueries[manager]
	if !ok {
		return fmt.Sprintf("N/A (%s is not supported, please file a bug to get it added!)", manager), nil
	}

	output, err := p.Run(ctx, query.command, query.args...)
	if err != nil {
		return "", fmt.Errorf("run %s: %w", query.command, err)
	}
	count := countLines(string(output)) - query.header
	if count < 0 {
		count = 0
	}
	return fmt.Sprintf("%d", count), nil
}

func (p *Prober) portagePackages() (string, error) {
	world, err := p.Reader.ReadAll("/var/lib/portage/world")
	if err != nil {
		return "", err
	}
	installed, err := p.Glob("/var/db/pkg/*/*/")
	if err != nil {
		return "", fmt.Errorf("glob portage database: %w", err)
	}
	return fmt.Sprintf("%d (explicit), %d (total)", countLines(world), len(installed)), nil
}
