package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_SortsObjectKeys(t *testing.T) {
	a, err := MarshalCanonical(map[string]any{"pitch": 60, "velocity": 100, "start": 0.5})
	require.NoError(t, err)
	b, err := MarshalCanonical(map[string]any{"velocity": 100, "start": 0.5, "pitch": 60})
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b), "key order must not affect output")
	assert.Equal(t, `{"pitch":60,"start":0.5,"velocity":100}`, string(a))
}

func TestMarshalCanonical_FloatFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.5, "0.5"},
		{1.0, "1"},
		{120.0, "120"},
		{0.1 + 0.2, "0.30000000000000004"},
	}
	for _, tc := range tests {
		got, err := MarshalCanonical(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(got))
	}
}

func TestMarshalCanonical_NoHTMLEscaping(t *testing.T) {
	got, err := MarshalCanonical("a<b & c>d")
	require.NoError(t, err)
	assert.Equal(t, `"a<b & c>d"`, string(got))
}

func TestMarshalCanonical_RejectsNull(t *testing.T) {
	_, err := MarshalCanonical(nil)
	assert.Error(t, err)

	_, err = MarshalCanonical([]any{1, nil})
	assert.Error(t, err)
}

func TestMarshalCanonical_NestedArray(t *testing.T) {
	got, err := MarshalCanonical([]any{
		map[string]any{"type": "NOTE_ON", "pitch": 60, "time": 0.0},
		map[string]any{"type": "NOTE_OFF", "pitch": 60, "time": 0.25},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`[{"pitch":60,"time":0,"type":"NOTE_ON"},{"pitch":60,"time":0.25,"type":"NOTE_OFF"}]`,
		string(got))
}
