package fullfield

// Season is a time-bounded grouping of competitions.
type Season struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// Country annotates a competition with its federation country.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Competition is a tournament or league instance within a season.
type Competition struct {
	UUID       string  `json:"uuid"`
	LeagueName string  `json:"league_name"`
	Country    Country `json:"country"`
}

// Club is the parent organization of a competition team.
type Club struct {
	Name string `json:"name"`
}

// Team participates in a competition.
type Team struct {
	UUID        string `json:"uuid"`
	TeamName    string `json:"team_name"`
	SponsorName string `json:"sponsor_name,omitempty"`
	Club        Club   `json:"club"`
}

// Player is associated with a competition through boxscore appearances;
// there is no authoritative roster endpoint upstream.
type Player struct {
	UUID        string `json:"uuid"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	Birthdate   string `json:"birthdate,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// ScheduleTeam is the abbreviated team reference embedded in schedule entries.
type ScheduleTeam struct {
	UUID     string `json:"uuid"`
	TeamName string `json:"team_name"`
}

// ScheduleEntry is one game. Scores are nil until the game has been played.
type ScheduleEntry struct {
	UUID        string       `json:"uuid"`
	StartTime   string       `json:"start_time"`
	HomeTeam    ScheduleTeam `json:"home_team"`
	AwayTeam    ScheduleTeam `json:"away_team"`
	HomeScore   *int         `json:"home_score"`
	AwayScore   *int         `json:"away_score"`
	PeriodScore string       `json:"period_score,omitempty"`
}

// BoxscoreRow is one player's statistical line for one specific game.
// Numeric fields absent or null in the upstream payload decode as zero.
type BoxscoreRow struct {
	PlayerUUID          string `json:"player_uuid"`
	CompetitionTeamUUID string `json:"competition_team_uuid"`
	ScheduleUUID        string `json:"schedule_uuid"`

	Pts               int     `json:"pts"`
	OffensiveRebound  int     `json:"offensive_rebound"`
	DefensiveRebound  int     `json:"defensive_rebound"`
	Assist            int     `json:"assist"`
	Steal             int     `json:"steal"`
	Block             int     `json:"block"`
	Turnover          int     `json:"turnover"`
	Minute            float64 `json:"minute"`
	PersonalFoul      int     `json:"personal_foul"`
	Pts2Made          int     `json:"pts2_made"`
	Pts2All           int     `json:"pts2_all"`
	Pts3Made          int     `json:"pts3_made"`
	Pts3All           int     `json:"pts3_all"`
	FtMade            int     `json:"ft_made"`
	FtAll             int     `json:"ft_all"`
	FgMade            int     `json:"fg_made"`
	FgAll             int     `json:"fg_all"`
}
