package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_SuggestMostFrequent(t *testing.T) {
	tr := New(filepath.Join(t.TempDir(), "preferences.json"))

	for i := 0; i < 3; i++ {
		require.NoError(t, tr.Record("5:00 pm"))
	}
	require.NoError(t, tr.Record("3:00 pm"))

	s := tr.Suggest()
	assert.True(t, s.OK)
	assert.Equal(t, "5:00 pm", s.Time)
	assert.Equal(t, "Would you like it set for 5:00 pm, your usual time?", s.Prompt)
}

func TestTracker_SuggestEmpty(t *testing.T) {
	tr := New(filepath.Join(t.TempDir(), "preferences.json"))

	s := tr.Suggest()
	assert.False(t, s.OK)
	assert.Empty(t, s.Time)
	assert.Equal(t, "When would you like the reminder?", s.Prompt)

	_, ok := tr.MostCommon()
	assert.False(t, ok)
}

func TestTracker_TieBreakIsDeterministic(t *testing.T) {
	tr := New(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, tr.Record("9:00 am"))
	require.NoError(t, tr.Record("10:00 am"))
	require.NoError(t, tr.Record("8:00 am"))

	for i := 0; i < 10; i++ {
		label, ok := tr.MostCommon()
		require.True(t, ok)
		assert.Equal(t, "10:00 am", label)
	}
}

func TestTracker_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	tr := New(path)
	require.NoError(t, tr.Record("5:00 pm"))
	require.NoError(t, tr.Record("5:00 pm"))
	require.NoError(t, tr.Record("7:30 am"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tr.Counts(), reloaded.Counts())
	assert.Equal(t, map[string]int{"5:00 pm": 2, "7:30 am": 1}, reloaded.Counts())
}

func TestTracker_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	tr := New(path)
	require.NoError(t, tr.Record("3pm"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"reminder_times": {"3pm": 1}}`, string(data))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]int
		wantErr string
	}{
		{
			name:    "valid",
			content: `{"reminder_times": {"5:00 pm": 3, "3:00 pm": 1}}`,
			want:    map[string]int{"5:00 pm": 3, "3:00 pm": 1},
		},
		{
			name:    "empty mapping",
			content: `{"reminder_times": {}}`,
			want:    map[string]int{},
		},
		{
			name:    "not json",
			content: `reminder_times: 3`,
			wantErr: "preferences",
		},
		{
			name:    "missing field",
			content: `{"times": {}}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "negative count",
			content: `{"reminder_times": {"5:00 pm": -1}}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "string count",
			content: `{"reminder_times": {"5:00 pm": "three"}}`,
			wantErr: "schema validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "preferences.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			tr, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Counts())
		})
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	tr, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, tr.Counts())
}

func TestTracker_RecordFailsOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	tr := New(filepath.Join(blocker, "preferences.json"))
	assert.Error(t, tr.Record("5:00 pm"))
}
