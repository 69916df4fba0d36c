package collector

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sportschau-bl-data/pkg/scraper"
)

// DiscoverSeasons fetches the competition's listing page and returns the
// seasons offered by its season navigation control, as a mapping from
// season label ("YYYY/YYYY") to URL path fragment ("id/YYYY-YYYY").
// Labels not present in AvailableSeasons are dropped.
func (c *Collector) DiscoverSeasons(ctx context.Context) (map[string]string, error) {
	page, err := scraper.FetchPage(ctx, c.client, c.ListingURL())
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("error parsing listing page: %w", err)
	}

	seasons := make(map[string]string)
	doc.Find("select.navigation.season-navigation option").Each(func(_ int, opt *goquery.Selection) {
		value, ok := opt.Attr("value")
		if !ok {
			return
		}
		// The option value is a URL path; path elements 4 and 5 hold
		// the season id and the season years.
		parts := strings.Split(value, "/")
		if len(parts) < 6 {
			return
		}
		label := strings.TrimSpace(opt.Text())
		if !slices.Contains(AvailableSeasons, label) {
			return
		}
		seasons[label] = strings.Join(parts[4:6], "/")
	})

	return seasons, nil
}

// BuildStatURLs composes the absolute URL of every statistic page for the
// given seasons, as season label -> statistic kind -> URL.
func (c *Collector) BuildStatURLs(seasons map[string]string) map[string]map[string]string {
	urls := make(map[string]map[string]string, len(seasons))
	for label, fragment := range seasons {
		perStat := make(map[string]string, len(Stats))
		for stat, statLink := range Stats {
			perStat[stat] = c.baseURL + c.comp + "/" + fragment + "/" + statLink + "/"
		}
		urls[label] = perStat
	}
	return urls
}
