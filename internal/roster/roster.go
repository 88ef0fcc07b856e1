package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/pool-standings/internal/logger"
	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

var (
	// ErrEmptyTeamName is returned when an entry has no team name.
	ErrEmptyTeamName = errors.New("empty team name")
	// ErrDuplicateTeam is returned when two entries share a team name.
	ErrDuplicateTeam = errors.New("duplicate team name")
	// ErrUnsupportedFormat is returned for roster files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported roster format")
	// ErrNoTeamColumn is returned when a spreadsheet has no Team/Name/Entry header.
	ErrNoTeamColumn = errors.New("no team column in header row")
)

// entry is the on-disk shape of one team.
type entry struct {
	Name  string   `json:"name" yaml:"name"`
	Picks []string `json:"picks" yaml:"picks"`
}

// Load reads and validates the roster at path. A leading "~/" is expanded to the
// user's home directory.
func Load(path string) ([]scoring.TeamEntry, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}

	var teams []scoring.TeamEntry
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		teams, err = DecodeJSON(data)
	case ".yaml", ".yml":
		teams, err = DecodeYAML(data)
	case ".xlsx":
		teams, err = DecodeXLSX(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	return teams, nil
}

// DecodeJSON parses a JSON array of {name, picks} objects.
func DecodeJSON(data []byte) ([]scoring.TeamEntry, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing roster JSON: %w", err)
	}
	return build(entries)
}

// DecodeYAML parses a YAML list of {name, picks} mappings.
func DecodeYAML(data []byte) ([]scoring.TeamEntry, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing roster YAML: %w", err)
	}
	return build(entries)
}

// DecodeXLSX reads the first sheet of a workbook. Pick columns are those whose header
// starts with "pick" or "golfer"; when there are none, every non-team column is a pick.
// Rows with an empty team cell are ignored.
func DecodeXLSX(r io.Reader) ([]scoring.TeamEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening roster workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("opening roster workbook: no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoTeamColumn
	}

	teamCol, pickCols := columns(rows[0])
	if teamCol < 0 {
		return nil, ErrNoTeamColumn
	}

	var entries []entry
	for _, row := range rows[1:] {
		name := cell(row, teamCol)
		if name == "" {
			continue
		}
		e := entry{Name: name}
		for _, col := range pickCols {
			if pick := cell(row, col); pick != "" {
				e.Picks = append(e.Picks, pick)
			}
		}
		entries = append(entries, e)
	}

	return build(entries)
}

// columns locates the team column and the pick columns in a header row.
func columns(header []string) (int, []int) {
	teamCol := -1
	var picks, rest []int
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case teamCol < 0 && (h == "team" || h == "name" || h == "entry"):
			teamCol = i
		case strings.HasPrefix(h, "pick") || strings.HasPrefix(h, "golfer"):
			picks = append(picks, i)
		default:
			rest = append(rest, i)
		}
	}
	if len(picks) == 0 {
		picks = rest
	}
	return teamCol, picks
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// build trims names and picks, then validates the roster.
func build(entries []entry) ([]scoring.TeamEntry, error) {
	teams := make([]scoring.TeamEntry, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyTeamName)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTeam, name)
		}
		seen[name] = true

		picks := make([]string, 0, len(e.Picks))
		for j, p := range e.Picks {
			if p = strings.TrimSpace(p); p == "" {
				logger.Warn("Ignoring blank pick in roster", logger.Fields{
					"team": name,
					"pick": j + 1,
				})
				continue
			}
			picks = append(picks, p)
		}
		teams = append(teams, scoring.TeamEntry{Name: name, Picks: picks})
	}

	return teams, nil
}
