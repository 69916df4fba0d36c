package collector

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"sportschau-bl-data/pkg/models"
)

// csvColumns is the header of persisted season files: a row-index column
// followed by the canonical column names.
var csvColumns = []string{
	"",
	"player_name",
	"team_name",
	"games",
	"duels_won",
	"duels_lost",
	"duels",
	"duels_won_pct",
	"topspeed_kmh",
	"km",
	"km/game",
	"sprints",
	"season",
	"competition_id",
}

// seasonFilename encodes competition and season into a filesystem-safe
// name, e.g. "GER1_2021-2022.csv".
func (c *Collector) seasonFilename(season string) string {
	return fmt.Sprintf("%s_%s.csv", c.competitionID, strings.ReplaceAll(season, "/", "-"))
}

func (c *Collector) saveSeason(season string, players []models.PlayerStats) error {
	path := filepath.Join(c.dataDir, c.seasonFilename(season))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, p := range players {
		record := []string{
			strconv.Itoa(i),
			p.PlayerName,
			p.TeamName,
			strconv.Itoa(p.Games),
			strconv.Itoa(p.DuelsWon),
			strconv.Itoa(p.DuelsLost),
			strconv.Itoa(p.Duels),
			formatFloat(p.DuelsWonPct),
			formatFloat(p.TopspeedKmh),
			formatFloat(p.Km),
			formatFloat(p.KmPerGame),
			strconv.Itoa(p.Sprints),
			p.Season,
			p.CompetitionID,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write player data: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LoadData reads previously persisted season files from the data
// directory. By default only files of the configured competition are
// loaded and the result is keyed by season label; with allComps set,
// every competition's files load and keys take the combined
// "GER1_2021/2022" form. Files that do not carry the expected header are
// skipped with a warning. The result is retained as the collector's
// current result set.
func (c *Collector) LoadData(allComps bool) (map[string][]models.PlayerStats, error) {
	files, err := filepath.Glob(filepath.Join(c.dataDir, "*.csv"))
	if err != nil {
		return nil, err
	}

	data := make(map[string][]models.PlayerStats)
	for _, path := range files {
		stem := strings.TrimSuffix(filepath.Base(path), ".csv")
		compID, season, ok := strings.Cut(stem, "_")
		if !ok {
			continue
		}
		if !allComps && compID != c.competitionID {
			continue
		}

		players, err := loadSeasonFile(path)
		if err != nil {
			slog.Warn("skipping unreadable season file", "file", path, "err", err)
			continue
		}

		key := strings.ReplaceAll(season, "-", "/")
		if allComps {
			key = strings.ReplaceAll(stem, "-", "/")
		}
		data[key] = players
	}

	c.data = data
	return data, nil
}

func loadSeasonFile(path string) ([]models.PlayerStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 || !slices.Equal(records[0], csvColumns) {
		return nil, fmt.Errorf("unexpected header")
	}

	var players []models.PlayerStats
	for _, rec := range records[1:] {
		p, err := playerFromRecord(rec)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// playerFromRecord rebuilds a player row from a persisted CSV record.
// Persisted values use plain Go number formatting, no locale handling.
func playerFromRecord(rec []string) (models.PlayerStats, error) {
	p := models.PlayerStats{
		PlayerName:    rec[1],
		TeamName:      rec[2],
		Season:        rec[12],
		CompetitionID: rec[13],
	}

	var err error
	for _, field := range []struct {
		dst *int
		idx int
	}{
		{&p.Games, 3},
		{&p.DuelsWon, 4},
		{&p.DuelsLost, 5},
		{&p.Duels, 6},
		{&p.Sprints, 11},
	} {
		if *field.dst, err = strconv.Atoi(rec[field.idx]); err != nil {
			return p, fmt.Errorf("cell %q is not an integer: %w", rec[field.idx], err)
		}
	}
	for _, field := range []struct {
		dst *float64
		idx int
	}{
		{&p.DuelsWonPct, 7},
		{&p.TopspeedKmh, 8},
		{&p.Km, 9},
		{&p.KmPerGame, 10},
	} {
		if *field.dst, err = strconv.ParseFloat(rec[field.idx], 64); err != nil {
			return p, fmt.Errorf("cell %q is not a number: %w", rec[field.idx], err)
		}
	}

	return p, nil
}
