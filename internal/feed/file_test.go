package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Fetch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "feed.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0644))

	htmlPath := filepath.Join(dir, "leaderboard.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(sampleHTML), 0644))

	sniffPath := filepath.Join(dir, "snapshot.txt")
	require.NoError(t, os.WriteFile(sniffPath, []byte(sampleJSON), 0644))

	for _, path := range []string{jsonPath, htmlPath, sniffPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			rows, err := NewFileSource(path, FormatAuto).Fetch(context.Background())
			require.NoError(t, err)
			assert.Len(t, rows, 3)
		})
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json"), FormatAuto).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFileSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("unused.json", FormatJSON).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
