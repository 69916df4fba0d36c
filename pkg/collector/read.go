package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"sportschau-bl-data/pkg/models"
	"sportschau-bl-data/pkg/parser"
	"sportschau-bl-data/pkg/scraper"
)

// ReadSeasons fetches and merges the statistic tables of the requested
// seasons. An empty seasons slice means every discovered season. Labels
// the listing page does not offer (or that are not allow-listed) are
// silently dropped. A season whose tables cannot be fetched or merged is
// logged as a warning and omitted; the remaining seasons are still read.
// With save set, each merged season is written to the data directory as
// one CSV file. The returned mapping is keyed by season label and also
// retained as the collector's current result set.
func (c *Collector) ReadSeasons(ctx context.Context, seasons []string, save bool) (map[string][]models.PlayerStats, error) {
	discovered, err := c.DiscoverSeasons(ctx)
	if err != nil {
		return nil, err
	}
	urls := c.BuildStatURLs(discovered)

	var wanted []string
	if len(seasons) == 0 {
		for label := range discovered {
			wanted = append(wanted, label)
		}
		sort.Strings(wanted)
	} else {
		for _, season := range seasons {
			if _, ok := discovered[season]; ok {
				wanted = append(wanted, season)
			}
		}
	}

	data := make(map[string][]models.PlayerStats)
	for _, season := range wanted {
		players, err := c.readSeason(ctx, season, urls[season])
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.WarnContext(ctx, "season could not be read",
				"competition", c.competitionID,
				"season", season,
				"err", err,
			)
			continue
		}

		data[season] = players
		if save {
			if err := c.saveSeason(season, players); err != nil {
				return nil, err
			}
		}
	}

	c.data = data
	return data, nil
}

// readSeason fetches the four statistic tables of one season, pausing the
// configured delay between requests, and merges them.
func (c *Collector) readSeason(ctx context.Context, season string, statURLs map[string]string) ([]models.PlayerStats, error) {
	var tables []*parser.Table
	for _, stat := range statOrder {
		page, err := scraper.FetchPage(ctx, c.client, statURLs[stat])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", stat, err)
		}
		table, err := parser.FirstTable(page)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", stat, err)
		}
		tables = append(tables, table)

		if err := sleep(ctx, c.delay); err != nil {
			return nil, err
		}
	}

	players, err := mergeTables(tables)
	if err != nil {
		return nil, err
	}
	for i := range players {
		players[i].Season = season
		players[i].CompetitionID = c.competitionID
	}
	return players, nil
}

// sleep pauses for d unless the context is canceled first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
