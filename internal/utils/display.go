// Package utils provides terminal output helpers for the scraper CLI
package utils

import (
	"fmt"
	"sort"
	"strings"

	"sportschau-bl-data/pkg/models"
)

// DisplaySeasonStats prints the merged statistics of one season, grouped
// by team and sorted by top speed within each team.
func DisplaySeasonStats(season string, players []models.PlayerStats) {
	fmt.Printf("\n=========== PLAYER STATISTICS FOR %s ===========\n", season)
	fmt.Printf("%-26s | %-5s | %-5s | %-5s | %-5s | %-6s | %-8s | %-7s | %-7s | %-7s\n",
		"Player", "Games", "Won", "Lost", "Duels", "Duel%", "Top km/h", "km", "km/Game", "Sprints")
	fmt.Printf("%-26s | %-5s | %-5s | %-5s | %-5s | %-6s | %-8s | %-7s | %-7s | %-7s\n",
		strings.Repeat("-", 26), strings.Repeat("-", 5), strings.Repeat("-", 5),
		strings.Repeat("-", 5), strings.Repeat("-", 5), strings.Repeat("-", 6),
		strings.Repeat("-", 8), strings.Repeat("-", 7), strings.Repeat("-", 7),
		strings.Repeat("-", 7))

	// Group players by team
	teamPlayers := make(map[string][]models.PlayerStats)
	for _, player := range players {
		teamPlayers[player.TeamName] = append(teamPlayers[player.TeamName], player)
	}

	var teamNames []string
	for team := range teamPlayers {
		teamNames = append(teamNames, team)
	}
	sort.Strings(teamNames)

	for _, team := range teamNames {
		squad := teamPlayers[team]

		// Sort players by top speed (descending)
		sort.Slice(squad, func(i, j int) bool {
			return squad[i].TopspeedKmh > squad[j].TopspeedKmh
		})

		if team != "" {
			fmt.Printf("\n%s\n", team)
		}

		for _, p := range squad {
			fmt.Printf("%-26s | %5d | %5d | %5d | %5d | %6.1f | %8.2f | %7.1f | %7.2f | %7d\n",
				p.PlayerName, p.Games, p.DuelsWon, p.DuelsLost, p.Duels,
				p.DuelsWonPct, p.TopspeedKmh, p.Km, p.KmPerGame, p.Sprints)
		}
	}

	fmt.Println(strings.Repeat("=", 110))
}
