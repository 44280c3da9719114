package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryFields(t *testing.T) {
	s := &Summary{
		Hostname: "workstation",
		Terminal: "kitty",
		Memory:   MemoryInfo{Total: "16000 MB", Used: "8000 MB", SwapTotal: "0 MB", SwapUsed: "0 MB"},
		Packages: []PackageCount{{Manager: "pacman", Count: "812"}},
	}

	fields := s.Fields()
	require.NotEmpty(t, fields)
	assert.Equal(t, Field{"Host", "workstation"}, fields[0])
	assert.Contains(t, fields, Field{"Terminal", "kitty"})
	assert.Contains(t, fields, Field{"Memory", "8000 MB / 16000 MB"})
	assert.Equal(t, Field{"Packages (pacman)", "812"}, fields[len(fields)-1])
}

func TestSummaryJSONOmitsEmptyPackages(t *testing.T) {
	data, err := json.Marshal(&Summary{Hostname: "box"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hostname":"box"`)
	assert.NotContains(t, string(data), `"packages"`)
}
