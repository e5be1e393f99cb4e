//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpBalancesScopes(t *testing.T) {
	Init(16)
	end := Start("outer")
	Start("inner")() // closed immediately
	Start("dangling")
	end()

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Dump(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Profiles, 1)

	opens, closes := 0, 0
	for _, ev := range doc.Profiles[0].Events {
		switch ev.Type {
		case "O":
			opens++
		case "C":
			closes++
		}
	}
	assert.Equal(t, opens, closes)
	assert.Len(t, doc.Shared.Frames, 3)
}

func TestStartBeforeInitIsNoop(t *testing.T) {
	rec = recorder{index: map[string]int{}}
	Start("x")()
	_, names := rec.snapshot()
	assert.Empty(t, names)
}
