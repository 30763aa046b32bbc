// Package stats folds raw boxscore rows into per-player season aggregates and
// derives presentation views: rosters, team game lists, game logs, and trend
// series. Aggregation is a pure fold over the full row sequence; derived rates
// are computed after accumulation, never incrementally.
package stats

import (
	"math"
	"sort"

	"github.com/pvscout/fullfield-scout/pkg/fullfield"
)

// placeholderIdentity is used when a row's player_uuid has no entry in the
// player lookup. The row still aggregates numerically.
const placeholderIdentity = "? ?"

// PlayerSeasonStats accumulates one player's raw totals across a competition.
type PlayerSeasonStats struct {
	PlayerUUID string `json:"player_uuid"`
	Name       string `json:"name"`
	Role       string `json:"role"`

	Games            int     `json:"games"`
	Pts              int     `json:"pts"`
	OffensiveRebound int     `json:"offensive_rebound"`
	DefensiveRebound int     `json:"defensive_rebound"`
	Assist           int     `json:"assist"`
	Steal            int     `json:"steal"`
	Block            int     `json:"block"`
	Turnover         int     `json:"turnover"`
	Minute           float64 `json:"minute"`
	PersonalFoul     int     `json:"personal_foul"`
	Pts2Made         int     `json:"pts2_made"`
	Pts2All          int     `json:"pts2_all"`
	Pts3Made         int     `json:"pts3_made"`
	Pts3All          int     `json:"pts3_all"`
	FtMade           int     `json:"ft_made"`
	FtAll            int     `json:"ft_all"`
	FgMade           int     `json:"fg_made"`
	FgAll            int     `json:"fg_all"`
}

// AggregateByPlayer folds boxscore rows into per-player season totals.
// Each row counts as one game for its player and contributes every numeric
// field exactly once. Rows whose player_uuid is missing from the lookup
// aggregate under a placeholder identity instead of being dropped.
func AggregateByPlayer(rows []fullfield.BoxscoreRow, players map[string]fullfield.Player) map[string]*PlayerSeasonStats {
	aggregates := make(map[string]*PlayerSeasonStats)

	for _, row := range rows {
		agg, ok := aggregates[row.PlayerUUID]
		if !ok {
			agg = &PlayerSeasonStats{PlayerUUID: row.PlayerUUID}
			if p, found := players[row.PlayerUUID]; found {
				agg.Name = p.FirstName + " " + p.LastName
				agg.Role = p.Role
			} else {
				agg.Name = placeholderIdentity
			}
			aggregates[row.PlayerUUID] = agg
		}

		agg.Games++
		agg.Pts += row.Pts
		agg.OffensiveRebound += row.OffensiveRebound
		agg.DefensiveRebound += row.DefensiveRebound
		agg.Assist += row.Assist
		agg.Steal += row.Steal
		agg.Block += row.Block
		agg.Turnover += row.Turnover
		agg.Minute += row.Minute
		agg.PersonalFoul += row.PersonalFoul
		agg.Pts2Made += row.Pts2Made
		agg.Pts2All += row.Pts2All
		agg.Pts3Made += row.Pts3Made
		agg.Pts3All += row.Pts3All
		agg.FtMade += row.FtMade
		agg.FtAll += row.FtAll
		agg.FgMade += row.FgMade
		agg.FgAll += row.FgAll
	}

	return aggregates
}

// SeasonAverages carries the derived per-game rates and shooting percentages
// for one player. Rates divide by max(games, 1); percentages divide makes by
// max(attempts, 1), expressed 0-100. Everything rounds to one decimal.
type SeasonAverages struct {
	PlayerUUID string `json:"player_uuid"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Games      int    `json:"games"`

	MinutesPerGame   float64 `json:"mpg"`
	PointsPerGame    float64 `json:"ppg"`
	ReboundsPerGame  float64 `json:"rpg"`
	AssistsPerGame   float64 `json:"apg"`
	StealsPerGame    float64 `json:"spg"`
	BlocksPerGame    float64 `json:"bpg"`
	TurnoversPerGame float64 `json:"tpg"`
	FoulsPerGame     float64 `json:"fpg"`

	FieldGoalPct  float64 `json:"fg_pct"`
	TwoPointPct   float64 `json:"pts2_pct"`
	ThreePointPct float64 `json:"pts3_pct"`
	FreeThrowPct  float64 `json:"ft_pct"`
}

// Averages derives the rate view from accumulated totals.
func (s *PlayerSeasonStats) Averages() SeasonAverages {
	games := s.Games
	if games < 1 {
		games = 1
	}
	rebounds := s.OffensiveRebound + s.DefensiveRebound

	return SeasonAverages{
		PlayerUUID: s.PlayerUUID,
		Name:       s.Name,
		Role:       s.Role,
		Games:      s.Games,

		MinutesPerGame:   round1(s.Minute / float64(games)),
		PointsPerGame:    round1(float64(s.Pts) / float64(games)),
		ReboundsPerGame:  round1(float64(rebounds) / float64(games)),
		AssistsPerGame:   round1(float64(s.Assist) / float64(games)),
		StealsPerGame:    round1(float64(s.Steal) / float64(games)),
		BlocksPerGame:    round1(float64(s.Block) / float64(games)),
		TurnoversPerGame: round1(float64(s.Turnover) / float64(games)),
		FoulsPerGame:     round1(float64(s.PersonalFoul) / float64(games)),

		FieldGoalPct:  shootingPct(s.FgMade, s.FgAll),
		TwoPointPct:   shootingPct(s.Pts2Made, s.Pts2All),
		ThreePointPct: shootingPct(s.Pts3Made, s.Pts3All),
		FreeThrowPct:  shootingPct(s.FtMade, s.FtAll),
	}
}

// SortedAverages derives averages for every aggregate and sorts by points
// per game descending, the usual presentation order.
func SortedAverages(aggregates map[string]*PlayerSeasonStats) []SeasonAverages {
	averages := make([]SeasonAverages, 0, len(aggregates))
	for _, agg := range aggregates {
		averages = append(averages, agg.Averages())
	}
	sort.Slice(averages, func(i, j int) bool {
		if averages[i].PointsPerGame != averages[j].PointsPerGame {
			return averages[i].PointsPerGame > averages[j].PointsPerGame
		}
		return averages[i].Name < averages[j].Name
	})
	return averages
}

// shootingPct is makes over max(attempts, 1) as a 0-100 percentage, one
// decimal. Zero attempts yields 0, never a division error.
func shootingPct(made, attempts int) float64 {
	if attempts < 1 {
		attempts = 1
	}
	return round1(float64(made) / float64(attempts) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
