package probe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// CPU returns the processor model with trademark noise removed.
func (p *Prober) CPU() (string, error) {
	var model string
	var err error
	for _, label := range []string{"model name", "Model", "Hardware"} {
		model, err = cpuinfoValue(p.Reader, label)
		if err == nil && model != "" {
			break
		}
		if IsUnavailable(err) {
			break
		}
	}

	if (err != nil || model == "") && p.Live {
		if info, infoErr := cpu.Info(); infoErr == nil && len(info) > 0 {
			model, err = info[0].ModelName, nil
		}
	}
	if err != nil {
		return "", err
	}
	return cleanCPUModel(model), nil
}

// cpuinfoValue returns the value of the first "label<tabs>: value" line.
func cpuinfoValue(reader Reader, label string) (string, error) {
	contents, err := reader.ReadAll("/proc/cpuinfo")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(contents, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if ok && strings.TrimSpace(key) == label {
			return strings.TrimSpace(value), nil
		}
	}
	return "", fmt.Errorf("%w: %s in /proc/cpuinfo", ErrNotFound, label)
}

func cleanCPUModel(model string) string {
	model = strings.ReplaceAll(model, "(TM)", "")
	model = strings.ReplaceAll(model, "(R)", "")
	return strings.Join(strings.Fields(model), " ")
}

// CPUCores returns the logical CPU count. Off the live host it counts the
// processor entries in /proc/cpuinfo.
func (p *Prober) CPUCores() (string, error) {
	if !p.Live {
		count, err := countProcessors(p.Reader)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(count), nil
	}

	count, err := cpu.Counts(true)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(count), nil
}

func countProcessors(reader Reader) (int, error) {
	contents, err := reader.ReadAll("/proc/cpuinfo")
	if err != nil {
		return 0, err
	}
	count := 0
	for _, line := range strings.Split(contents, "\n") {
		key, _, ok := strings.Cut(line, ":")
		if ok && strings.TrimSpace(key) == "processor" {
			count++
		}
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: processor in /proc/cpuinfo", ErrNotFound)
	}
	return count, nil
}

// Temp returns the first thermal zone's temperature in degrees Celsius.
func (p *Prober) Temp() (string, error) {
	raw, err := p.Reader.ReadAll("/sys/class/thermal/thermal_zone0/temp")
	if err == nil {
		milli, parseErr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if parseErr != nil {
			return "", fmt.Errorf("%w: thermal_zone0 %q", ErrMalformedValue, strings.TrimSpace(raw))
		}
		return strconv.FormatFloat(milli/1000, 'f', -1, 64), nil
	}

	if p.Live {
		temps, sensorErr := host.SensorsTemperatures()
		for _, t := range temps {
			if t.Temperature > 0 {
				return strconv.FormatFloat(t.Temperature, 'f', -1, 64), nil
			}
		}
		if sensorErr != nil {
			return "", errors.Join(err, sensorErr)
		}
	}
	return "", err
}

// Device returns the product or board model name.
func (p *Prober) Device() (string, error) {
	model, err := p.Reader.ReadAll("/sys/devices/virtual/dmi/id/product_name")
	if err != nil {
		model, err = p.Reader.ReadAll("/sys/firmware/devicetree/base/model")
	}
	if err != nil {
		return "", err
	}
	return stripNewlines(strings.ReplaceAll(model, "\x00", "")), nil
}

var osReleasePaths = []string{
	"/bedrock/etc/os-release",
	"/etc/os-release",
	"/usr/lib/os-release",
}

// Distro returns the NAME= value of the first readable os-release file.
func (p *Prober) Distro() (string, error) {
	var lastErr error
	for _, path := range osReleasePaths {
		name, err := field(p.Reader, path, "NAME=", 0)
		if err != nil {
			lastErr = err
			continue
		}
		return strings.Trim(name, `"'`), nil
	}
	return "", lastErr
}

// Hostname returns the contents of /etc/hostname, or the kernel's idea of
// the hostname when that file is missing.
func (p *Prober) Hostname() (string, error) {
	name, err := p.Reader.ReadAll("/etc/hostname")
	if err == nil {
		return strings.TrimSpace(name), nil
	}
	if p.Live {
		if info, infoErr := host.Info(); infoErr == nil && info.Hostname != "" {
			return info.Hostname, nil
		}
	}
	return "", err
}

// Kernel returns the running kernel release.
func (p *Prober) Kernel() (string, error) {
	release, err := p.Reader.ReadAll("/proc/sys/kernel/osrelease")
	if err == nil {
		return stripNewlines(release), nil
	}
	if p.Live {
		if version, versionErr := host.KernelVersion(); versionErr == nil {
			return version, nil
		}
	}
	return "", err
}

// Uptime returns time since boot as "1d 2h 3m".
func (p *Prober) Uptime() (string, error) {
	seconds, err := p.UptimeSeconds()
	if err != nil {
		return "", err
	}
	return FormatUptime(seconds), nil
}

// FormatUptime renders whole days, hours and minutes. A unit is left out
// while the uptime is shorter than one of it.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds / 3600 % 24
	minutes := seconds / 60 % 60

	var parts []string
	if seconds >= 86400 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if seconds >= 3600 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if seconds >= 60 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}
