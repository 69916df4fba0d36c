// Package models contains data structures for Bundesliga physical statistics
package models

// PlayerStats holds the merged physical statistics for one player in one
// season. Row identity across the source tables is (PlayerName, TeamName).
type PlayerStats struct {
	PlayerName    string
	TeamName      string
	Games         int
	DuelsWon      int
	DuelsLost     int
	Duels         int
	DuelsWonPct   float64
	TopspeedKmh   float64
	Km            float64
	KmPerGame     float64
	Sprints       int
	Season        string // "YYYY/YYYY"
	CompetitionID string
}
