package stats

import (
	"fmt"
	"sort"

	"github.com/pvscout/fullfield-scout/pkg/fullfield"
)

// Outcome is a game result from one team's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"

	// OutcomeTie marks equal final scores. The upstream feed should not
	// produce ties in basketball; surfacing them explicitly beats
	// mislabeling one side a winner.
	OutcomeTie Outcome = "tie"

	// OutcomeUndetermined marks unplayed or pending games (missing scores)
	// and games the team did not take part in.
	OutcomeUndetermined Outcome = "undetermined"
)

// GameOutcome determines the result of a game for the given team.
func GameOutcome(game fullfield.ScheduleEntry, teamUUID string) Outcome {
	var own, opp *int
	switch teamUUID {
	case game.HomeTeam.UUID:
		own, opp = game.HomeScore, game.AwayScore
	case game.AwayTeam.UUID:
		own, opp = game.AwayScore, game.HomeScore
	default:
		return OutcomeUndetermined
	}

	if own == nil || opp == nil {
		return OutcomeUndetermined
	}
	switch {
	case *own > *opp:
		return OutcomeWin
	case *own < *opp:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}

// TeamGame is one schedule entry from a team's perspective, ready for the
// games table.
type TeamGame struct {
	ScheduleUUID string  `json:"schedule_uuid"`
	Date         string  `json:"date"`
	Opponent     string  `json:"opponent"`
	HomeAway     string  `json:"home_away"`
	Outcome      Outcome `json:"outcome"`
	Score        string  `json:"score"`
	PeriodScore  string  `json:"period_score,omitempty"`
}

// TeamGames filters the schedule to the team's games and orients each entry,
// most recent first. Unplayed games carry a "TBD" score.
func TeamGames(schedule []fullfield.ScheduleEntry, teamUUID string) []TeamGame {
	games := make([]TeamGame, 0, len(schedule))
	for _, entry := range schedule {
		isHome := entry.HomeTeam.UUID == teamUUID
		if !isHome && entry.AwayTeam.UUID != teamUUID {
			continue
		}

		game := TeamGame{
			ScheduleUUID: entry.UUID,
			Date:         dateOf(entry.StartTime),
			Outcome:      GameOutcome(entry, teamUUID),
			PeriodScore:  entry.PeriodScore,
		}
		if isHome {
			game.Opponent = entry.AwayTeam.TeamName
			game.HomeAway = "Home"
		} else {
			game.Opponent = entry.HomeTeam.TeamName
			game.HomeAway = "Away"
		}

		if entry.HomeScore != nil && entry.AwayScore != nil {
			if isHome {
				game.Score = fmt.Sprintf("%d - %d", *entry.HomeScore, *entry.AwayScore)
			} else {
				game.Score = fmt.Sprintf("%d - %d", *entry.AwayScore, *entry.HomeScore)
			}
		} else {
			game.Score = "TBD"
		}

		games = append(games, game)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Date > games[j].Date
	})
	return games
}

// Record tallies wins and losses over oriented team games. Ties and
// undetermined games count for neither side. WinPct is 0 with no decided
// games.
type Record struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	WinPct float64 `json:"win_pct"`
}

// TeamRecord computes the win/loss record from a team's game list.
func TeamRecord(games []TeamGame) Record {
	var record Record
	for _, g := range games {
		switch g.Outcome {
		case OutcomeWin:
			record.Wins++
		case OutcomeLoss:
			record.Losses++
		}
	}
	if decided := record.Wins + record.Losses; decided > 0 {
		record.WinPct = round1(float64(record.Wins) / float64(decided) * 100)
	}
	return record
}

// Roster derives a team's roster for a competition: the set of distinct
// players appearing in that team's boxscore rows. There is no authoritative
// roster endpoint upstream; a team with no boxscore rows has an empty roster
// even if games are scheduled.
func Roster(rows []fullfield.BoxscoreRow, teamUUID string) map[string]struct{} {
	members := make(map[string]struct{})
	for _, row := range rows {
		if row.CompetitionTeamUUID == teamUUID {
			members[row.PlayerUUID] = struct{}{}
		}
	}
	return members
}

// RosterPlayers joins derived roster membership to player profiles, sorted
// by name. Players absent from the profile list are skipped here (they
// surface through aggregation with a placeholder identity instead).
func RosterPlayers(rows []fullfield.BoxscoreRow, teamUUID string, players []fullfield.Player) []fullfield.Player {
	members := Roster(rows, teamUUID)

	roster := make([]fullfield.Player, 0, len(members))
	for _, p := range players {
		if _, ok := members[p.UUID]; ok {
			roster = append(roster, p)
		}
	}

	sort.Slice(roster, func(i, j int) bool {
		if roster[i].LastName != roster[j].LastName {
			return roster[i].LastName < roster[j].LastName
		}
		return roster[i].FirstName < roster[j].FirstName
	})
	return roster
}

// FilterRowsByPlayer retains the rows belonging to one player.
func FilterRowsByPlayer(rows []fullfield.BoxscoreRow, playerUUID string) []fullfield.BoxscoreRow {
	filtered := make([]fullfield.BoxscoreRow, 0, len(rows))
	for _, row := range rows {
		if row.PlayerUUID == playerUUID {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// GameLogEntry joins one boxscore row with its schedule entry for display.
type GameLogEntry struct {
	ScheduleUUID string  `json:"schedule_uuid"`
	Date         string  `json:"date"`
	Matchup      string  `json:"matchup"`
	Score        string  `json:"score"`
	Minutes      float64 `json:"min"`
	Pts          int     `json:"pts"`
	Rebounds     int     `json:"reb"`
	Assists      int     `json:"ast"`
	Steals       int     `json:"stl"`
	Blocks       int     `json:"blk"`
	Turnovers    int     `json:"to"`
	FieldGoals   string  `json:"fg"`
	ThreePoints  string  `json:"pts3"`
	FreeThrows   string  `json:"ft"`
}

// GameLog joins boxscore rows with a schedule lookup keyed by game UUID,
// most recent first. A row whose schedule reference is missing still
// produces an entry with placeholder matchup and score fields.
func GameLog(rows []fullfield.BoxscoreRow, schedule map[string]fullfield.ScheduleEntry) []GameLogEntry {
	log := make([]GameLogEntry, 0, len(rows))
	for _, row := range rows {
		entry := GameLogEntry{
			ScheduleUUID: row.ScheduleUUID,
			Matchup:      "? vs ?",
			Score:        "—",
			Minutes:      row.Minute,
			Pts:          row.Pts,
			Rebounds:     row.OffensiveRebound + row.DefensiveRebound,
			Assists:      row.Assist,
			Steals:       row.Steal,
			Blocks:       row.Block,
			Turnovers:    row.Turnover,
			FieldGoals:   fmt.Sprintf("%d/%d", row.FgMade, row.FgAll),
			ThreePoints:  fmt.Sprintf("%d/%d", row.Pts3Made, row.Pts3All),
			FreeThrows:   fmt.Sprintf("%d/%d", row.FtMade, row.FtAll),
		}

		if game, ok := schedule[row.ScheduleUUID]; ok {
			entry.Date = dateOf(game.StartTime)
			entry.Matchup = fmt.Sprintf("%s vs %s", game.HomeTeam.TeamName, game.AwayTeam.TeamName)
			if game.HomeScore != nil && game.AwayScore != nil {
				entry.Score = fmt.Sprintf("%d-%d", *game.HomeScore, *game.AwayScore)
			}
		}

		log = append(log, entry)
	}

	sort.Slice(log, func(i, j int) bool {
		return log[i].Date > log[j].Date
	})
	return log
}

// TrendPoint is one dated sample of the core counting stats.
type TrendPoint struct {
	Date     string `json:"date"`
	Pts      int    `json:"pts"`
	Rebounds int    `json:"reb"`
	Assists  int    `json:"ast"`
}

// TrendSeries reorders a game log chronologically into a series suitable for
// a game-by-game trend chart.
func TrendSeries(log []GameLogEntry) []TrendPoint {
	points := make([]TrendPoint, 0, len(log))
	for _, entry := range log {
		points = append(points, TrendPoint{
			Date:     entry.Date,
			Pts:      entry.Pts,
			Rebounds: entry.Rebounds,
			Assists:  entry.Assists,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// dateOf truncates an ISO start_time to its date part.
func dateOf(startTime string) string {
	if len(startTime) > 10 {
		return startTime[:10]
	}
	return startTime
}
