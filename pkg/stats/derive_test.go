package stats

import (
	"reflect"
	"testing"

	"github.com/pvscout/fullfield-scout/pkg/fullfield"
)

func intPtr(v int) *int { return &v }

func playedGame(uuid, home, away string, homeScore, awayScore int, startTime string) fullfield.ScheduleEntry {
	return fullfield.ScheduleEntry{
		UUID:      uuid,
		StartTime: startTime,
		HomeTeam:  fullfield.ScheduleTeam{UUID: home, TeamName: "Home " + home},
		AwayTeam:  fullfield.ScheduleTeam{UUID: away, TeamName: "Away " + away},
		HomeScore: intPtr(homeScore),
		AwayScore: intPtr(awayScore),
	}
}

func TestGameOutcome(t *testing.T) {
	played := playedGame("g1", "home", "away", 78, 65, "2025-01-10 18:00:00")
	unplayed := fullfield.ScheduleEntry{
		UUID:     "g2",
		HomeTeam: fullfield.ScheduleTeam{UUID: "home"},
		AwayTeam: fullfield.ScheduleTeam{UUID: "away"},
	}
	tied := playedGame("g3", "home", "away", 70, 70, "2025-01-12 18:00:00")

	tests := []struct {
		name     string
		game     fullfield.ScheduleEntry
		teamUUID string
		want     Outcome
	}{
		{"home side wins", played, "home", OutcomeWin},
		{"away side loses", played, "away", OutcomeLoss},
		{"missing scores home", unplayed, "home", OutcomeUndetermined},
		{"missing scores away", unplayed, "away", OutcomeUndetermined},
		{"equal scores", tied, "home", OutcomeTie},
		{"uninvolved team", played, "other", OutcomeUndetermined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GameOutcome(tt.game, tt.teamUUID); got != tt.want {
				t.Errorf("GameOutcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTeamGames_OrientationAndOrder(t *testing.T) {
	schedule := []fullfield.ScheduleEntry{
		playedGame("g1", "varese", "opp1", 78, 65, "2025-01-10 18:00:00"),
		playedGame("g2", "opp2", "varese", 80, 72, "2025-01-17 20:30:00"),
		{
			UUID:      "g3",
			StartTime: "2025-01-24 18:00:00",
			HomeTeam:  fullfield.ScheduleTeam{UUID: "varese", TeamName: "Home varese"},
			AwayTeam:  fullfield.ScheduleTeam{UUID: "opp3", TeamName: "Away opp3"},
		},
		playedGame("g4", "opp4", "opp5", 60, 55, "2025-01-11 18:00:00"),
	}

	games := TeamGames(schedule, "varese")

	if len(games) != 3 {
		t.Fatalf("len = %d, want 3 (uninvolved game excluded)", len(games))
	}
	// most recent first
	if games[0].ScheduleUUID != "g3" || games[2].ScheduleUUID != "g1" {
		t.Errorf("Order = %s,%s,%s, want g3,g2,g1", games[0].ScheduleUUID, games[1].ScheduleUUID, games[2].ScheduleUUID)
	}
	if games[0].Score != "TBD" || games[0].Outcome != OutcomeUndetermined {
		t.Errorf("Unplayed game = %q/%q, want TBD/undetermined", games[0].Score, games[0].Outcome)
	}

	away := games[1]
	if away.HomeAway != "Away" {
		t.Errorf("HomeAway = %q, want Away", away.HomeAway)
	}
	if away.Score != "72 - 80" {
		t.Errorf("Away score not oriented: %q", away.Score)
	}
	if away.Opponent != "Home opp2" {
		t.Errorf("Opponent = %q, want the home side's name", away.Opponent)
	}
	if away.Outcome != OutcomeLoss {
		t.Errorf("Outcome = %q, want L", away.Outcome)
	}
}

func TestTeamRecord(t *testing.T) {
	games := []TeamGame{
		{Outcome: OutcomeWin},
		{Outcome: OutcomeWin},
		{Outcome: OutcomeLoss},
		{Outcome: OutcomeUndetermined},
		{Outcome: OutcomeTie},
	}

	record := TeamRecord(games)

	if record.Wins != 2 || record.Losses != 1 {
		t.Errorf("Record = %d-%d, want 2-1", record.Wins, record.Losses)
	}
	if record.WinPct != 66.7 {
		t.Errorf("WinPct = %v, want 66.7", record.WinPct)
	}
}

func TestTeamRecord_NoDecidedGames(t *testing.T) {
	record := TeamRecord([]TeamGame{{Outcome: OutcomeUndetermined}})
	if record.Wins != 0 || record.Losses != 0 || record.WinPct != 0 {
		t.Errorf("Record = %+v, want all zero", record)
	}
}

func TestRoster_DistinctParticipants(t *testing.T) {
	rows := []fullfield.BoxscoreRow{
		{PlayerUUID: "p1", CompetitionTeamUUID: "teamA"},
		{PlayerUUID: "p2", CompetitionTeamUUID: "teamA"},
		{PlayerUUID: "p1", CompetitionTeamUUID: "teamA"},
		{PlayerUUID: "p3", CompetitionTeamUUID: "teamB"},
	}

	rosterA := Roster(rows, "teamA")
	if !reflect.DeepEqual(rosterA, map[string]struct{}{"p1": {}, "p2": {}}) {
		t.Errorf("teamA roster = %v, want {p1, p2}", rosterA)
	}

	rosterB := Roster(rows, "teamB")
	if !reflect.DeepEqual(rosterB, map[string]struct{}{"p3": {}}) {
		t.Errorf("teamB roster = %v, want {p3}", rosterB)
	}

	if len(Roster(rows, "teamC")) != 0 {
		t.Error("Team without boxscore rows should have an empty roster")
	}
}

func TestRosterPlayers_SortedByName(t *testing.T) {
	rows := []fullfield.BoxscoreRow{
		{PlayerUUID: "p1", CompetitionTeamUUID: "teamA"},
		{PlayerUUID: "p2", CompetitionTeamUUID: "teamA"},
		{PlayerUUID: "p9", CompetitionTeamUUID: "teamA"},
	}
	players := []fullfield.Player{
		{UUID: "p1", FirstName: "Ivan", LastName: "Prato"},
		{UUID: "p2", FirstName: "Marco", LastName: "Bergamin"},
		{UUID: "p5", FirstName: "Bruno", LastName: "Farias"},
	}

	roster := RosterPlayers(rows, "teamA", players)

	// p9 has no profile, p5 never played
	if len(roster) != 2 {
		t.Fatalf("len = %d, want 2", len(roster))
	}
	if roster[0].LastName != "Bergamin" || roster[1].LastName != "Prato" {
		t.Errorf("Not sorted by last name: %s, %s", roster[0].LastName, roster[1].LastName)
	}
}

func TestFilterRowsByPlayer(t *testing.T) {
	rows := []fullfield.BoxscoreRow{
		{PlayerUUID: "p1", Pts: 10},
		{PlayerUUID: "p2", Pts: 5},
		{PlayerUUID: "p1", Pts: 8},
	}

	filtered := FilterRowsByPlayer(rows, "p1")
	if len(filtered) != 2 {
		t.Fatalf("len = %d, want 2", len(filtered))
	}
	if filtered[0].Pts+filtered[1].Pts != 18 {
		t.Errorf("Filtered rows belong to the wrong player: %+v", filtered)
	}
}

func TestGameLog_JoinAndPlaceholders(t *testing.T) {
	rows := []fullfield.BoxscoreRow{
		{PlayerUUID: "p1", ScheduleUUID: "g1", Pts: 18, DefensiveRebound: 5, OffensiveRebound: 2, Assist: 4, Minute: 31.5, FgMade: 7, FgAll: 15},
		{PlayerUUID: "p1", ScheduleUUID: "g-missing", Pts: 9},
	}
	schedule := map[string]fullfield.ScheduleEntry{
		"g1": playedGame("g1", "varese", "opp1", 78, 65, "2025-01-10 18:00:00"),
	}

	log := GameLog(rows, schedule)

	if len(log) != 2 {
		t.Fatalf("len = %d, want 2", len(log))
	}

	joined := log[0]
	if joined.ScheduleUUID != "g1" {
		t.Fatalf("Dated entry should sort first, got %s", joined.ScheduleUUID)
	}
	if joined.Date != "2025-01-10" {
		t.Errorf("Date = %q, want 2025-01-10", joined.Date)
	}
	if joined.Matchup != "Home varese vs Away opp1" {
		t.Errorf("Matchup = %q", joined.Matchup)
	}
	if joined.Score != "78-65" {
		t.Errorf("Score = %q, want 78-65", joined.Score)
	}
	if joined.Rebounds != 7 {
		t.Errorf("Rebounds = %d, want 7", joined.Rebounds)
	}
	if joined.FieldGoals != "7/15" {
		t.Errorf("FieldGoals = %q, want 7/15", joined.FieldGoals)
	}

	orphan := log[1]
	if orphan.Matchup != "? vs ?" || orphan.Score != "—" {
		t.Errorf("Orphan row = %q/%q, want placeholders", orphan.Matchup, orphan.Score)
	}
	if orphan.Pts != 9 {
		t.Errorf("Orphan stats dropped: %+v", orphan)
	}
}

func TestTrendSeries_Chronological(t *testing.T) {
	log := []GameLogEntry{
		{Date: "2025-01-17", Pts: 10, Rebounds: 4, Assists: 6},
		{Date: "2025-01-10", Pts: 18, Rebounds: 7, Assists: 4},
	}

	series := TrendSeries(log)

	if len(series) != 2 {
		t.Fatalf("len = %d, want 2", len(series))
	}
	if series[0].Date != "2025-01-10" || series[1].Date != "2025-01-17" {
		t.Errorf("Series not chronological: %s, %s", series[0].Date, series[1].Date)
	}
	if series[0].Pts != 18 || series[1].Assists != 6 {
		t.Errorf("Sample values mismatched: %+v", series)
	}
}
