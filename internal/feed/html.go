package feed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// ErrNoTable is returned when an HTML feed has no <table>
var ErrNoTable = errors.New("no leaderboard table found")

// ParseHTMLTable reads the first table of an HTML leaderboard. The header comes from the
// table's <thead> when present, otherwise from its first row.
func ParseHTMLTable(r io.Reader) ([]scoring.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	trs := table.Find("tr")
	headerRow := table.Find("thead tr").First()
	if headerRow.Length() == 0 {
		headerRow = trs.First()
	}
	headers := cellTexts(headerRow)

	rows := make([]scoring.Row, 0, trs.Length())
	trs.Each(func(i int, tr *goquery.Selection) {
		if tr.IsSelection(headerRow) || tr.Closest("thead").Length() > 0 {
			return
		}

		values := cellTexts(tr)
		if len(values) == 0 {
			return
		}

		row := make(scoring.Row, len(headers))
		for j, h := range headers {
			if h == "" || j >= len(values) {
				continue
			}
			row[h] = values[j]
		}
		rows = append(rows, row)
	})

	return rows, nil
}

// cellTexts returns the trimmed text of each th/td in a row
func cellTexts(tr *goquery.Selection) []string {
	var texts []string
	tr.ChildrenFiltered("th, td").Each(func(i int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
