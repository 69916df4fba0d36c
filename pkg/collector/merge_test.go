package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportschau-bl-data/pkg/parser"
)

func seasonTables() []*parser.Table {
	return []*parser.Table{
		{
			Columns: []string{"Name", "Mannschaft", "Spiele", "Gew.", "Verl.", "Summe", "Quote %"},
			Rows: [][]string{
				{"Joshua Kimmich", "FC Bayern München", "34", "120", "80", "200", "60,0"},
			},
		},
		{
			Columns: []string{"Name", "Mannschaft", "Spiele", "Max. km/h"},
			Rows: [][]string{
				{"Joshua Kimmich", "FC Bayern München", "34", "33,5"},
			},
		},
		{
			Columns: []string{"Name", "Mannschaft", "Spiele", "km", "km/Spiel"},
			Rows: [][]string{
				{"Joshua Kimmich", "FC Bayern München", "34", "350,4", "10,3"},
			},
		},
		{
			Columns: []string{"Name", "Mannschaft", "Spiele", "Sprints"},
			Rows: [][]string{
				{"Joshua Kimmich", "FC Bayern München", "34", "1.024"},
			},
		},
	}
}

func TestMergeTables(t *testing.T) {
	// every source table repeats the Spiele column; the merge must not
	// fail on the collision and must keep a single games value
	players, err := mergeTables(seasonTables())
	require.NoError(t, err)
	require.Len(t, players, 1)

	p := players[0]
	assert.Equal(t, "Joshua Kimmich", p.PlayerName)
	assert.Equal(t, 34, p.Games)
	assert.Equal(t, 60.0, p.DuelsWonPct)
	assert.Equal(t, 33.5, p.TopspeedKmh)
	assert.Equal(t, 350.4, p.Km)
	assert.Equal(t, 10.3, p.KmPerGame)
	assert.Equal(t, 1024, p.Sprints)
}

func TestMergeTablesDropsGamesFromSubsequentTables(t *testing.T) {
	// Spiele is dropped from every table after the first, so when the
	// leading table lacks it no stray copy fills in
	tables := seasonTables()
	tables[0].DropColumn("Spiele")

	_, err := mergeTables(tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Spiele")
}

func TestMergeTablesMissingColumn(t *testing.T) {
	tables := seasonTables()
	tables[0].DropColumn("Quote %")

	_, err := mergeTables(tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quote %")
}

func TestMergeTablesMissingJoinColumn(t *testing.T) {
	tables := seasonTables()
	tables[2].DropColumn("Mannschaft")

	_, err := mergeTables(tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mannschaft")
}

func TestMergeTablesNoSharedRows(t *testing.T) {
	tables := seasonTables()
	tables[3].Rows = [][]string{
		{"Jamal Musiala", "FC Bayern München", "28", "754"},
	}

	_, err := mergeTables(tables)
	require.Error(t, err)
}
