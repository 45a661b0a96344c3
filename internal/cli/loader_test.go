package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetrics(t *testing.T) {
	metrics, err := parseMetrics([]string{"ctr=0.8", "position=0.9", "clicks=0.7"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"ctr": 0.8, "position": 0.9, "clicks": 0.7}, metrics)
}

func TestParseMetrics_Errors(t *testing.T) {
	for _, bad := range []string{"ctr", "=0.5", "ctr=high"} {
		_, err := parseMetrics([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestLoadBarSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"tenant_id": "t1",
		"file_id": "song.mid",
		"bpm": 128,
		"total_bars": 2,
		"bars": [
			{"bar_index": 0, "bpm": 128, "start_sec": 0, "end_sec": 1.875,
			 "notes": [{"pitch": 60, "velocity": 100, "start": 0, "duration": 0.25}]},
			{"bar_index": 1, "bpm": 128, "start_sec": 1.875, "end_sec": 3.75, "notes": []}
		]
	}`), 0o644))

	set, err := loadBarSet(path)
	require.NoError(t, err)
	assert.Equal(t, "song.mid", set.FileID)
	assert.Equal(t, 128.0, set.BPM)
	require.Len(t, set.Bars, 2)
	assert.Equal(t, 60, set.Bars[0].Notes[0].Pitch)
}

func TestLoadBarSet_DefaultsFileIDToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bars": []}`), 0o644))

	set, err := loadBarSet(path)
	require.NoError(t, err)
	assert.Equal(t, path, set.FileID)
}

func TestLoadBarSet_Missing(t *testing.T) {
	_, err := loadBarSet(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
