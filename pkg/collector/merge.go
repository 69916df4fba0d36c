package collector

import (
	"errors"
	"fmt"

	"sportschau-bl-data/pkg/models"
	"sportschau-bl-data/pkg/parser"
)

// Raw column headers as rendered by sportschau.de.
const (
	colPlayer    = "Name"
	colTeam      = "Mannschaft"
	colGames     = "Spiele"
	colDuelsWon  = "Gew."
	colDuelsLost = "Verl."
	colDuels     = "Summe"
	colDuelsPct  = "Quote %"
	colTopspeed  = "Max. km/h"
	colKm        = "km"
	colKmPerGame = "km/Spiel"
	colSprints   = "Sprints"
)

// mergeTables inner-joins the per-statistic tables of one season on
// (player, team) and converts the result into typed player records. Every
// source table repeats the games-played column; only the leading table's
// copy is kept.
func mergeTables(tables []*parser.Table) ([]models.PlayerStats, error) {
	if len(tables) == 0 {
		return nil, errors.New("no tables to merge")
	}

	merged := tables[0]
	for _, t := range tables[1:] {
		if t.HasColumn(colGames) {
			t.DropColumn(colGames)
		}
		var err error
		merged, err = merged.InnerJoin(t, colPlayer, colTeam)
		if err != nil {
			return nil, err
		}
	}
	if len(merged.Rows) == 0 {
		return nil, errors.New("merged table has no matching player rows")
	}

	return playersFromTable(merged)
}

// playersFromTable is the rename boundary: raw source-language headers map
// onto the canonical typed record here and nowhere else.
func playersFromTable(t *parser.Table) ([]models.PlayerStats, error) {
	idx := make(map[string]int)
	for _, col := range []string{
		colPlayer, colTeam, colGames, colDuelsWon, colDuelsLost,
		colDuels, colDuelsPct, colTopspeed, colKm, colKmPerGame, colSprints,
	} {
		i := t.ColumnIndex(col)
		if i < 0 {
			return nil, fmt.Errorf("merged table is missing column %q", col)
		}
		idx[col] = i
	}

	players := make([]models.PlayerStats, 0, len(t.Rows))
	for _, row := range t.Rows {
		p := models.PlayerStats{
			PlayerName: row[idx[colPlayer]],
			TeamName:   row[idx[colTeam]],
		}

		var err error
		if p.Games, err = parser.ParseInt(row[idx[colGames]]); err != nil {
			return nil, err
		}
		if p.DuelsWon, err = parser.ParseInt(row[idx[colDuelsWon]]); err != nil {
			return nil, err
		}
		if p.DuelsLost, err = parser.ParseInt(row[idx[colDuelsLost]]); err != nil {
			return nil, err
		}
		if p.Duels, err = parser.ParseInt(row[idx[colDuels]]); err != nil {
			return nil, err
		}
		if p.DuelsWonPct, err = parser.ParseFloat(row[idx[colDuelsPct]]); err != nil {
			return nil, err
		}
		if p.TopspeedKmh, err = parser.ParseFloat(row[idx[colTopspeed]]); err != nil {
			return nil, err
		}
		if p.Km, err = parser.ParseFloat(row[idx[colKm]]); err != nil {
			return nil, err
		}
		if p.KmPerGame, err = parser.ParseFloat(row[idx[colKmPerGame]]); err != nil {
			return nil, err
		}
		if p.Sprints, err = parser.ParseInt(row[idx[colSprints]]); err != nil {
			return nil, err
		}

		players = append(players, p)
	}

	return players, nil
}
