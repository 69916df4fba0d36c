package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topspeedFixture = `<html><body>
<div class="intro">Topspeed der Saison</div>
<table>
<thead><tr><th>#</th><th></th><th>Name</th><th>Mannschaft</th><th>Spiele</th><th>Max. km/h</th></tr></thead>
<tbody>
<tr><td>1</td><td></td><td>Karim Adeyemi</td><td>Borussia Dortmund</td><td>24</td><td>36,2</td></tr>
<tr><td>2</td><td></td><td>Alphonso  Davies</td><td>FC Bayern München</td><td>30</td><td>35,9</td></tr>
</tbody>
</table>
</body></html>`

func TestFirstTable(t *testing.T) {
	table, err := FirstTable(topspeedFixture)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Mannschaft", "Spiele", "Max. km/h"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Karim Adeyemi", "Borussia Dortmund", "24", "36,2"}, table.Rows[0])
	// inner whitespace collapses to a single space
	assert.Equal(t, "Alphonso Davies", table.Rows[1][0])
}

func TestFirstTableNoTable(t *testing.T) {
	_, err := FirstTable(`<html><body><p>Keine Daten verfügbar</p></body></html>`)
	require.ErrorIs(t, err, ErrNoTable)
}

func TestFirstTableEmptyTable(t *testing.T) {
	// a table element without any rows must not blow up the fallback
	// row lookup
	_, err := FirstTable(`<html><body><table></table></body></html>`)
	require.ErrorIs(t, err, ErrNoTable)

	table, err := FirstTable(`<table><thead><tr><th>Name</th></tr></thead></table>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestFirstTableCellWithNewlines(t *testing.T) {
	table, err := FirstTable(`<table>
<tr><th>Name</th><th>Mannschaft</th></tr>
<tr><td>Joshua Kimmich</td><td>FC
Bayern München</td></tr>
</table>`)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	// newlines between text nodes become spaces, not nothing
	assert.Equal(t, "FC Bayern München", table.Rows[0][1])
}

func TestFirstTableWithoutThead(t *testing.T) {
	table, err := FirstTable(`<table>
<tr><th>Name</th><th>Mannschaft</th><th>km</th></tr>
<tr><td>Joshua Kimmich</td><td>FC Bayern München</td><td>350,4</td></tr>
</table>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Mannschaft", "km"}, table.Columns)
	require.Len(t, table.Rows, 1)
}

func TestDropColumn(t *testing.T) {
	table := &Table{
		Columns: []string{"Name", "Spiele", "km"},
		Rows:    [][]string{{"Joshua Kimmich", "34", "350,4"}},
	}
	table.DropColumn("Spiele")
	assert.Equal(t, []string{"Name", "km"}, table.Columns)
	assert.Equal(t, [][]string{{"Joshua Kimmich", "350,4"}}, table.Rows)

	// dropping an absent column is a no-op
	table.DropColumn("Sprints")
	assert.Equal(t, []string{"Name", "km"}, table.Columns)
}

func TestInnerJoin(t *testing.T) {
	left := &Table{
		Columns: []string{"Name", "Mannschaft", "Spiele"},
		Rows: [][]string{
			{"Joshua Kimmich", "FC Bayern München", "34"},
			{"Nico Schlotterbeck", "Borussia Dortmund", "30"},
		},
	}
	right := &Table{
		Columns: []string{"Name", "Mannschaft", "Sprints"},
		Rows: [][]string{
			{"Nico Schlotterbeck", "Borussia Dortmund", "867"},
			{"Karim Adeyemi", "Borussia Dortmund", "1.024"},
		},
	}

	joined, err := left.InnerJoin(right, "Name", "Mannschaft")
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Mannschaft", "Spiele", "Sprints"}, joined.Columns)
	// only rows present on both sides survive
	require.Len(t, joined.Rows, 1)
	assert.Equal(t, []string{"Nico Schlotterbeck", "Borussia Dortmund", "30", "867"}, joined.Rows[0])
}

func TestInnerJoinMissingKeyColumn(t *testing.T) {
	left := &Table{Columns: []string{"Name", "Spiele"}}
	right := &Table{Columns: []string{"Name", "Mannschaft"}}

	_, err := left.InnerJoin(right, "Name", "Mannschaft")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mannschaft")
}

func TestParseFloat(t *testing.T) {
	for input, want := range map[string]float64{
		"36,2":    36.2,
		"1.024,5": 1024.5,
		"60":      60,
		"33.5":    33.5, // canonical Go formatting passes through
		"-0,5":    -0.5,
		"1.024":   1024, // German thousands separator
		" 10,3 ":  10.3,
	} {
		got, err := ParseFloat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFloat("Müller, T.")
	require.Error(t, err)
}

func TestParseInt(t *testing.T) {
	for input, want := range map[string]int{
		"34":    34,
		"1.024": 1024,
		"0":     0,
	} {
		got, err := ParseInt(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseInt("36,2")
	require.Error(t, err)
}
