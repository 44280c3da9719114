package probe

import (
	"context"
	"strings"

	"hostprobe/models"

	"github.com/rs/zerolog"
)

// NotAvailable fills a summary field whose probe failed.
const NotAvailable = "N/A"

// Collect runs every probe in turn and gathers the results. Failed probes
// are logged and reported as NotAvailable; Collect itself never fails.
func Collect(ctx context.Context, p *Prober, managers []string) *models.Summary {
	logger := zerolog.Ctx(ctx)

	get := func(name string, probe func() (string, error)) string {
		value, err := probe()
		if err != nil {
			logger.Warn().Err(err).Str("probe", name).Msg("probe failed")
			return NotAvailable
		}
		return value
	}

	summary := &models.Summary{
		Hostname:    get("hostname", p.Hostname),
		Distro:      get("distro", p.Distro),
		Kernel:      get("kernel", p.Kernel),
		Device:      get("device", p.Device),
		CPU:         get("cpu", p.CPU),
		CPUCores:    get("cpu_cores", p.CPUCores),
		Temp:        get("temp", p.Temp),
		GPU:         get("gpu", func() (string, error) { return p.GPU(ctx) }),
		Environment: p.Environment(),
		Terminal:    get("terminal", func() (string, error) { return p.Terminal(ctx) }),
		Shell:       shellName(p.Env("SHELL")),
		Uptime:      get("uptime", p.Uptime),
		Memory: models.MemoryInfo{
			Total:     get("memory_total", p.MemoryTotal),
			Free:      get("memory_free", p.MemoryFree),
			Available: get("memory_available", p.MemoryAvailable),
			Used:      get("memory_used", p.MemoryUsed),
			SwapTotal: get("swap_total", p.SwapTotal),
			SwapUsed:  get("swap_used", p.SwapUsed),
		},
	}

	for _, manager := range managers {
		count := get("packages_"+manager, func() (string, error) { return p.Packages(ctx, manager) })
		summary.Packages = append(summary.Packages, models.PackageCount{Manager: manager, Count: count})
	}

	return summary
}

// shellName reduces a $SHELL path to the program name.
func shellName(shell string) string {
	if strings.HasPrefix(shell, "N/A") {
		return shell
	}
	return shell[strings.LastIndex(shell, "/")+1:]
}
