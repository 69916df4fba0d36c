// Package main is the entry point for the sportschau-bl-data scraper
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/urfave/cli/v2"

	"sportschau-bl-data/internal/utils"
	"sportschau-bl-data/pkg/collector"
	"sportschau-bl-data/pkg/models"
)

// version is set during build using ldflags
var version = "dev"

const (
	competitionFlag = "competition"
	dataDirFlag     = "data-dir"
	seasonFlag      = "season"
	delayFlag       = "delay"
	noSaveFlag      = "no-save"
	loadFlag        = "load"
	allCompsFlag    = "all-competitions"
	printFlag       = "print"
	verboseFlag     = "verbose"
)

func main() {
	app := &cli.App{
		Name:    "sportschau-scraper",
		Usage:   "Fetch Bundesliga physical statistics from sportschau.de into per-season CSV files",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    competitionFlag,
				Aliases: []string{"c"},
				Usage:   "Competition ID to read (GER1, GER2)",
				Value:   "GER1",
			},
			&cli.StringFlag{
				Name:    dataDirFlag,
				Aliases: []string{"d"},
				Usage:   "Directory for season CSV files",
				Value:   collector.DefaultDataDir(),
			},
			&cli.StringSliceFlag{
				Name:    seasonFlag,
				Aliases: []string{"s"},
				Usage:   "Season label to read, e.g. \"2021/2022\" (repeatable, default: all)",
			},
			&cli.DurationFlag{
				Name:  delayFlag,
				Usage: "Pause between consecutive requests",
				Value: collector.DefaultDelay,
			},
			&cli.BoolFlag{
				Name:  noSaveFlag,
				Usage: "Do not persist fetched seasons to the data directory",
			},
			&cli.BoolFlag{
				Name:    loadFlag,
				Aliases: []string{"l"},
				Usage:   "Load previously saved data instead of scraping",
			},
			&cli.BoolFlag{
				Name:  allCompsFlag,
				Usage: "With --load, load the files of every competition",
			},
			&cli.BoolFlag{
				Name:    printFlag,
				Aliases: []string{"p"},
				Usage:   "Print each season table to the terminal",
			},
			&cli.BoolFlag{
				Name:    verboseFlag,
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cCtx *cli.Context) error {
	level := slog.LevelInfo
	if cCtx.Bool(verboseFlag) {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	c, err := collector.New(collector.Options{
		CompetitionID: cCtx.String(competitionFlag),
		DataDir:       cCtx.String(dataDirFlag),
		Delay:         cCtx.Duration(delayFlag),
	})
	if err != nil {
		return err
	}

	start := time.Now()
	var data map[string][]models.PlayerStats
	if cCtx.Bool(loadFlag) {
		data, err = c.LoadData(cCtx.Bool(allCompsFlag))
	} else {
		data, err = c.ReadSeasons(cCtx.Context, cCtx.StringSlice(seasonFlag), !cCtx.Bool(noSaveFlag))
	}
	if err != nil {
		return err
	}

	var keys []string
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if cCtx.Bool(printFlag) {
			utils.DisplaySeasonStats(key, data[key])
		} else {
			fmt.Printf("%s: %d players\n", key, len(data[key]))
		}
	}

	slog.Info("done",
		"competition", c.CompetitionID(),
		"seasons", len(data),
		"data_dir", c.DataDir(),
		"took", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
