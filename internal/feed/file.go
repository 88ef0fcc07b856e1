package feed

import (
	"context"
	"fmt"
	"os"

	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// FileSource reads a saved feed from disk
type FileSource struct {
	path   string
	format Format
}

// NewFileSource creates a source for path. FormatAuto picks the format from the extension,
// then from the content.
func NewFileSource(path string, format Format) *FileSource {
	if format == FormatAuto || format == "" {
		format = FormatFromPath(path)
	}
	return &FileSource{path: path, format: format}
}

// Fetch reads and decodes the file
func (s *FileSource) Fetch(ctx context.Context) ([]scoring.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening feed file: %w", err)
	}
	defer f.Close()

	rows, err := Decode(f, s.format)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return rows, nil
}
