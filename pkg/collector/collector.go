// Package collector fetches, merges and caches per-season physical
// statistics (duels, top speed, distance, sprints) published on
// sportschau.de for the German football leagues.
package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"sportschau-bl-data/pkg/models"
	"sportschau-bl-data/pkg/scraper"
)

// BaseURL is the root of the sportschau.de results section.
const BaseURL = "https://www.sportschau.de/live-und-ergebnisse/fussball/"

// Competitions maps a competition ID to its URL path segment.
var Competitions = map[string]string{
	"GER1": "deutschland-bundesliga",
	"GER2": "deutschland-2-bundesliga",
}

// AvailableSeasons is the allow-list of seasons known to render usable
// tables. Season discovery keeps only labels found in this list, so a new
// season on the page is ignored until it is validated and added here.
var AvailableSeasons = []string{
	"2016/2017",
	"2017/2018",
	"2018/2019",
	"2019/2020",
	"2020/2021",
	"2021/2022",
	"2022/2023",
}

// Stats maps each statistic kind to its URL path fragment. All four are
// fetched per season and merged into one table.
var Stats = map[string]string{
	"zweikaempfe":  "statistik-zweikaempfe",
	"topspeed":     "statistik-laufleistung-topspeed",
	"laufleistung": "statistik-laufleistung",
	"sprints":      "statistik-laufleistung-sprints",
}

// statOrder fixes the fetch and merge order. The duel table leads because
// the join accumulator starts from it.
var statOrder = []string{"zweikaempfe", "topspeed", "laufleistung", "sprints"}

// DefaultDelay is the pause between consecutive requests.
const DefaultDelay = 2 * time.Second

// Collector reads the physical statistics of one competition.
type Collector struct {
	competitionID string
	comp          string
	dataDir       string
	baseURL       string
	delay         time.Duration
	client        *resty.Client

	data map[string][]models.PlayerStats
}

// Options configures a Collector. The zero value of every field has a
// usable default.
type Options struct {
	// CompetitionID must be one of the known competition IDs,
	// defaults to "GER1".
	CompetitionID string
	// DataDir is where season CSV files are written and loaded from,
	// defaults to DefaultDataDir(). Created if absent.
	DataDir string
	// BaseURL overrides the sportschau.de base URL, used in tests.
	BaseURL string
	// Delay is the pause between consecutive requests,
	// defaults to DefaultDelay.
	Delay time.Duration
	// Client is an optional pre-configured HTTP client.
	Client *resty.Client
}

// CompetitionIDs returns the known competition IDs in sorted order.
func CompetitionIDs() []string {
	ids := make([]string, 0, len(Competitions))
	for id := range Competitions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultDataDir returns the default cache location under the user's home
// directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("project_data", "sportschau_bl_data", "data")
	}
	return filepath.Join(home, "project_data", "sportschau_bl_data", "data")
}

// New builds a Collector. It fails when the competition ID is unknown and
// creates the data directory if it does not exist yet.
func New(opts Options) (*Collector, error) {
	competitionID := opts.CompetitionID
	if competitionID == "" {
		competitionID = "GER1"
	}
	comp, ok := Competitions[competitionID]
	if !ok {
		return nil, fmt.Errorf("unknown competition %q: choose one of %s",
			competitionID, strings.Join(CompetitionIDs(), ", "))
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}
	delay := opts.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	client := opts.Client
	if client == nil {
		client = scraper.NewClient(scraper.ClientOptions{})
	}

	return &Collector{
		competitionID: competitionID,
		comp:          comp,
		dataDir:       dataDir,
		baseURL:       baseURL,
		delay:         delay,
		client:        client,
	}, nil
}

// CompetitionID returns the configured competition ID.
func (c *Collector) CompetitionID() string {
	return c.competitionID
}

// DataDir returns the cache directory.
func (c *Collector) DataDir() string {
	return c.dataDir
}

// ListingURL is the page whose season navigation control is parsed during
// season discovery.
func (c *Collector) ListingURL() string {
	return c.baseURL + c.comp + "/" + Stats["topspeed"]
}

// Data returns the result set of the last ReadSeasons or LoadData call.
func (c *Collector) Data() map[string][]models.PlayerStats {
	return c.data
}
