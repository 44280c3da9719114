package probe

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostprobe/models"
)

func TestCollect(t *testing.T) {
	p, root := newSyntheticProber(t)
	p.PID = 100
	p.Getenv = envFrom(map[string]string{"XDG_CURRENT_DESKTOP": "sway", "SHELL": "/usr/bin/zsh"})
	p.Run = fakeRunner{
		"lspci":        "01:00.0 VGA compatible controller: Intel Corporation UHD Graphics 620 (rev 07)\n",
		"pacman -Q -q": "base\nlinux\n",
	}.run

	writeSyntheticFile(t, root, "/etc/hostname", "workstation\n")
	writeSyntheticFile(t, root, "/etc/os-release", "NAME=\"Arch Linux\"\n")
	writeSyntheticFile(t, root, "/proc/sys/kernel/osrelease", "6.9.3-arch1-1\n")
	writeSyntheticFile(t, root, "/proc/cpuinfo", "processor\t: 0\nmodel name\t: AMD Ryzen 7 5800X 8-Core Processor\n\n"+
		"processor\t: 1\nmodel name\t: AMD Ryzen 7 5800X 8-Core Processor\n")
	writeSyntheticFile(t, root, "/proc/uptime", "3700.00 1000.00\n")
	writeSyntheticFile(t, root, DefaultMeminfoPath, meminfo)
	writeProcessTree(t, root,
		process{100, "hostprobe", 99},
		process{99, "zsh", 98},
		process{98, "foot", 1},
	)

	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	ctx := logger.WithContext(context.Background())

	summary := Collect(ctx, p, []string{"pacman", "apt"})

	assert.Equal(t, "workstation", summary.Hostname)
	assert.Equal(t, "Arch Linux", summary.Distro)
	assert.Equal(t, "6.9.3-arch1-1", summary.Kernel)
	assert.Equal(t, "AMD Ryzen 7 5800X 8-Core Processor", summary.CPU)
	assert.Equal(t, "2", summary.CPUCores)
	assert.Equal(t, "Intel Corporation UHD Graphics 620 (rev 07)", summary.GPU)
	assert.Equal(t, "sway", summary.Environment)
	assert.Equal(t, "foot", summary.Terminal)
	assert.Equal(t, "zsh", summary.Shell)
	assert.Equal(t, "1h 1m", summary.Uptime)
	assert.Equal(t, models.MemoryInfo{
		Total:     "16000 MB",
		Free:      "1000 MB",
		Available: "8000 MB",
		Used:      "8000 MB",
		SwapTotal: "2048 MB",
		SwapUsed:  "1024 MB",
	}, summary.Memory)

	// No device or thermal files were written.
	assert.Equal(t, NotAvailable, summary.Device)
	assert.Equal(t, NotAvailable, summary.Temp)

	require.Len(t, summary.Packages, 2)
	assert.Equal(t, models.PackageCount{Manager: "pacman", Count: "2"}, summary.Packages[0])
	assert.Equal(t, models.PackageCount{Manager: "apt", Count: NotAvailable}, summary.Packages[1])

	assert.Contains(t, logs.String(), `"probe":"device"`)
	assert.Contains(t, logs.String(), `"probe":"packages_apt"`)
}

func TestShellName(t *testing.T) {
	assert.Equal(t, "bash", shellName("/bin/bash"))
	assert.Equal(t, "fish", shellName("fish"))
	assert.Equal(t, "N/A (could not read $SHELL, are you sure it's set?)",
		shellName("N/A (could not read $SHELL, are you sure it's set?)"))
}
