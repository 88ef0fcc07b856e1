package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// Format is the encoding of a feed body
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ErrUnexpectedStatus is returned when the feed server answers with a non-200 status
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Source produces one snapshot of raw feed rows
type Source interface {
	Fetch(ctx context.Context) ([]scoring.Row, error)
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatHTML:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("invalid feed format: %s (must be 'auto', 'json' or 'html')", s)
	}
}

// Decode parses a feed body in the given format. FormatAuto sniffs the first
// non-space byte: '[' or '{' means JSON, anything else HTML.
func Decode(r io.Reader, format Format) ([]scoring.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading feed body: %w", err)
	}

	if format == FormatAuto || format == "" {
		format = sniff(data)
	}

	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatHTML:
		return ParseHTMLTable(strings.NewReader(string(data)))
	default:
		return nil, fmt.Errorf("unknown feed format: %s", format)
	}
}

// DecodeJSON parses a JSON array of row objects. Cell values that are numbers, booleans or
// null are converted to their text form so the normalizer sees a uniform Row.
func DecodeJSON(data []byte) ([]scoring.Row, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON feed: %w", err)
	}

	rows := make([]scoring.Row, 0, len(raw))
	for _, obj := range raw {
		row := make(scoring.Row, len(obj))
		for k, v := range obj {
			row[k] = stringify(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FormatFromPath guesses a format from a file extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatAuto
	}
}

func sniff(data []byte) Format {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[', '{':
			return FormatJSON
		default:
			return FormatHTML
		}
	}
	return FormatJSON
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
