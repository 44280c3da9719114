package probe

import (
	"bufio"
	"context"
	"fmt"
	"regexp"
	"strings"
)

var displayController = regexp.MustCompile(`VGA|Display|3D`)

// GPU returns the first display controller reported by lspci.
func (p *Prober) GPU(ctx context.Context) (string, error) {
	output, err := p.Run(ctx, "lspci")
	if err != nil {
		return "", fmt.Errorf("run lspci: %w", err)
	}
	return parseGPU(string(output))
}

func parseGPU(output string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !displayController.MatchString(line) {
			continue
		}

		// 01:00.0 VGA compatible controller: <vendor and model>
		segments := strings.Split(line, ":")
		if len(segments) < 3 {
			return "", fmt.Errorf("%w: lspci line %q", ErrMalformedValue, line)
		}
		model := strings.TrimSpace(strings.Join(segments[2:], ":"))

		if strings.HasPrefix(model, "Advanced Micro Devices, Inc.") {
			_, rest, _ := strings.Cut(model, ".")
			rest = strings.NewReplacer("[", "", "]", "").Replace(rest)
			return stripNewlines(rest), nil
		}
		return stripNewlines(model), nil
	}
	return "", fmt.Errorf("%w: display controller in lspci output", ErrNotFound)
}
