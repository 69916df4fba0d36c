// Package parser provides functionality to parse statistic tables out of
// sportschau.de HTML pages
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTable is returned when a fetched page contains no table element.
var ErrNoTable = errors.New("no table found in page")

// Table is a parsed HTML table. Columns keeps the source-language headers
// in document order; every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// cleanCell normalizes the text content of a table cell: whitespace runs
// (including newlines between text nodes) collapse to one space and other
// non-printable characters are stripped.
func cleanCell(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch {
		case unicode.IsSpace(c):
			b.WriteRune(' ')
		case unicode.IsPrint(c):
			b.WriteRune(c)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	return innerWhitespace.ReplaceAllString(cleaned, " ")
}

// FirstTable extracts the first HTML table in the document.
//
// The source markup carries two presentational columns, a rank column
// labeled "#" and an unlabeled icon column; both are dropped when present.
func FirstTable(htmlContent string) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML content: %w", err)
	}

	sel := doc.Find("table").First()
	if sel.Length() == 0 {
		return nil, ErrNoTable
	}

	table := &Table{}

	headerRow := sel.Find("thead tr").First()
	if headerRow.Length() == 0 {
		headerRow = sel.Find("tr").First()
	}
	headerRow.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		table.Columns = append(table.Columns, cleanCell(cell.Text()))
	})

	bodyRows := sel.Find("tbody tr")
	if bodyRows.Length() == 0 {
		trs := sel.Find("tr")
		if trs.Length() == 0 {
			return nil, ErrNoTable
		}
		bodyRows = trs.Slice(1, goquery.ToEnd)
	}
	bodyRows.Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, cleanCell(cell.Text()))
		})
		if len(row) != len(table.Columns) {
			return
		}
		table.Rows = append(table.Rows, row)
	})

	table.DropColumn("#")
	table.DropColumn("")

	return table, nil
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// DropColumn removes the first column with the given name, if present,
// along with its cell in every row.
func (t *Table) DropColumn(name string) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return
	}
	t.Columns = append(t.Columns[:idx], t.Columns[idx+1:]...)
	for i, row := range t.Rows {
		t.Rows[i] = append(row[:idx], row[idx+1:]...)
	}
}

const joinKeySep = "\x1f"

// InnerJoin joins t with other on the given key columns. Rows of t without
// a match in other are dropped. Columns of other besides the keys are
// appended after the columns of t.
func (t *Table) InnerJoin(other *Table, keys ...string) (*Table, error) {
	var leftKeyIdx, rightKeyIdx []int
	for _, key := range keys {
		li := t.ColumnIndex(key)
		ri := other.ColumnIndex(key)
		if li < 0 || ri < 0 {
			return nil, fmt.Errorf("join column %q missing from table", key)
		}
		leftKeyIdx = append(leftKeyIdx, li)
		rightKeyIdx = append(rightKeyIdx, ri)
	}

	rightKeySet := make(map[int]bool, len(rightKeyIdx))
	for _, i := range rightKeyIdx {
		rightKeySet[i] = true
	}

	rightRows := make(map[string][]string, len(other.Rows))
	for _, row := range other.Rows {
		var parts []string
		for _, i := range rightKeyIdx {
			parts = append(parts, row[i])
		}
		rightRows[strings.Join(parts, joinKeySep)] = row
	}

	joined := &Table{Columns: append([]string{}, t.Columns...)}
	for i, col := range other.Columns {
		if !rightKeySet[i] {
			joined.Columns = append(joined.Columns, col)
		}
	}

	for _, row := range t.Rows {
		var parts []string
		for _, i := range leftKeyIdx {
			parts = append(parts, row[i])
		}
		match, ok := rightRows[strings.Join(parts, joinKeySep)]
		if !ok {
			continue
		}
		merged := append([]string{}, row...)
		for i, cell := range match {
			if !rightKeySet[i] {
				merged = append(merged, cell)
			}
		}
		joined.Rows = append(joined.Rows, merged)
	}

	return joined, nil
}
