// Package fullfield exposes the Fullfield basketball resources as typed,
// pagination-aware, memoized fetch operations.
package fullfield

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pvscout/fullfield-scout/pkg/cache"
	"github.com/pvscout/fullfield-scout/pkg/client"
	"github.com/pvscout/fullfield-scout/pkg/logging"
	"github.com/pvscout/fullfield-scout/pkg/pagination"
)

// Memoization windows per resource. Reference data changes rarely; schedule,
// players, and boxscore move during game days.
const (
	seasonsTTL      = 10 * time.Minute
	competitionsTTL = 10 * time.Minute
	teamsTTL        = 10 * time.Minute
	scheduleTTL     = 5 * time.Minute
	playersTTL      = 5 * time.Minute
	boxscoreTTL     = 5 * time.Minute
)

// Page caps per resource. These bound worst-case iteration regardless of
// what the API reports and must be preserved.
const (
	seasonsMaxPages      = 100
	competitionsMaxPages = 100
	teamsMaxPages        = 30
	scheduleMaxPages     = 100
	playersMaxPages      = 50
	boxscoreMaxPages     = 100
	teamBoxscoreMaxPages = 50
	gameBoxscoreMaxPages = 5
)

// DefaultPageSize is the per_page value sent on every paginated request.
const DefaultPageSize = 100

// Result carries one logical fetch: the typed rows accumulated before
// termination, whether the fetch stopped early, and the failure reason if a
// page request failed. Rows alone never distinguish "no data exists" from
// "fetch aborted"; Truncated and Err do.
type Result[T any] struct {
	Rows      []T
	Truncated bool
	Err       error
}

// Service exposes the Fullfield resources as memoized fetch operations.
type Service struct {
	client *client.Client
	cache  cache.Store
	logger zerolog.Logger
}

// NewService creates a Service on top of an HTTP client and a cache store.
func NewService(c *client.Client, store cache.Store) *Service {
	return &Service{
		client: c,
		cache:  store,
		logger: logging.NewLogger("fullfield"),
	}
}

// FetchPage fetches and normalizes a single page.
// Implements pagination.PageFetcher.
func (s *Service) FetchPage(ctx context.Context, resource string, params url.Values, page int) (*pagination.Page, error) {
	body, err := s.client.Get(ctx, resource, params)
	if err != nil {
		return nil, err
	}
	return parseEnvelope(body, page)
}

// CompetitionFilter narrows the competition listing.
type CompetitionFilter struct {
	SeasonUUID string
	CountryID  int
}

// BoxscoreOptions shapes a competition boxscore fetch.
type BoxscoreOptions struct {
	// ScheduleUUID filters server-side to a single game when set.
	ScheduleUUID string

	// MaxPages overrides the default page cap when positive.
	MaxPages int
}

// Seasons lists all seasons.
func (s *Service) Seasons(ctx context.Context) Result[Season] {
	return fetchCached[Season](ctx, s, "/seasons", nil, seasonsMaxPages, seasonsTTL)
}

// Competitions lists competitions, optionally filtered by season and country.
func (s *Service) Competitions(ctx context.Context, filter CompetitionFilter) Result[Competition] {
	params := url.Values{}
	if filter.SeasonUUID != "" {
		params.Set("filter[season_uuid]", filter.SeasonUUID)
	}
	if filter.CountryID != 0 {
		params.Set("filter[country_id]", strconv.Itoa(filter.CountryID))
	}
	return fetchCached[Competition](ctx, s, "/competitions", params, competitionsMaxPages, competitionsTTL)
}

// CompetitionTeams lists the teams of a competition.
func (s *Service) CompetitionTeams(ctx context.Context, competitionUUID string) Result[Team] {
	resource := fmt.Sprintf("/competition-teams/%s", competitionUUID)
	return fetchCached[Team](ctx, s, resource, nil, teamsMaxPages, teamsTTL)
}

// Schedule lists the schedule entries (games) of a competition.
func (s *Service) Schedule(ctx context.Context, competitionUUID string) Result[ScheduleEntry] {
	resource := fmt.Sprintf("/schedule/%s", competitionUUID)
	return fetchCached[ScheduleEntry](ctx, s, resource, nil, scheduleMaxPages, scheduleTTL)
}

// CompetitionPlayers lists the players of a competition.
func (s *Service) CompetitionPlayers(ctx context.Context, competitionUUID string) Result[Player] {
	resource := fmt.Sprintf("/competition/%s/players", competitionUUID)
	return fetchCached[Player](ctx, s, resource, nil, playersMaxPages, playersTTL)
}

// Boxscore lists the boxscore rows of a competition, optionally filtered
// server-side to one game.
func (s *Service) Boxscore(ctx context.Context, competitionUUID string, opts BoxscoreOptions) Result[BoxscoreRow] {
	resource := fmt.Sprintf("/competition/%s/boxscore", competitionUUID)

	params := url.Values{}
	if opts.ScheduleUUID != "" {
		params.Set("filter[schedule_uuid]", opts.ScheduleUUID)
	}

	maxPages := boxscoreMaxPages
	if opts.MaxPages > 0 {
		maxPages = opts.MaxPages
	}

	return fetchCached[BoxscoreRow](ctx, s, resource, params, maxPages, boxscoreTTL)
}

// TeamBoxscore lists a team's boxscore rows. The upstream API cannot filter
// boxscore by team, so this pulls the competition boxscore and retains rows
// whose competition_team_uuid matches. Memoized per (competition, team).
func (s *Service) TeamBoxscore(ctx context.Context, competitionUUID, teamUUID string) Result[BoxscoreRow] {
	resource := fmt.Sprintf("/competition/%s/boxscore", competitionUUID)

	key := cache.Key{
		Resource: resource,
		Params:   url.Values{"team_uuid": []string{teamUUID}},
	}
	if cached, ok := resultFromCache[BoxscoreRow](ctx, s, key); ok {
		return cached
	}

	fetched := pagination.FetchAll(ctx, s, resource, nil, pagination.Config{
		PerPage:  DefaultPageSize,
		MaxPages: teamBoxscoreMaxPages,
	})

	all := decodeRows[BoxscoreRow](s, resource, fetched.Rows)
	rows := make([]BoxscoreRow, 0, len(all))
	for _, row := range all {
		if row.CompetitionTeamUUID == teamUUID {
			rows = append(rows, row)
		}
	}

	result := Result[BoxscoreRow]{Rows: rows, Truncated: fetched.Truncated, Err: fetched.Err}
	storeResult(ctx, s, key, result, boxscoreTTL)
	return result
}

// GameBoxscore lists the boxscore rows of a single game. The schedule filter
// narrows the result server-side, so a tight page cap suffices.
func (s *Service) GameBoxscore(ctx context.Context, competitionUUID, scheduleUUID string) Result[BoxscoreRow] {
	return s.Boxscore(ctx, competitionUUID, BoxscoreOptions{
		ScheduleUUID: scheduleUUID,
		MaxPages:     gameBoxscoreMaxPages,
	})
}

// fetchCached runs the memoize-or-fetch flow for one resource.
func fetchCached[T any](ctx context.Context, s *Service, resource string, params url.Values, maxPages int, ttl time.Duration) Result[T] {
	keyParams := url.Values{}
	for k, vs := range params {
		keyParams[k] = vs
	}
	keyParams.Set("max_pages", strconv.Itoa(maxPages))

	key := cache.Key{Resource: resource, Params: keyParams}
	if cached, ok := resultFromCache[T](ctx, s, key); ok {
		return cached
	}

	fetched := pagination.FetchAll(ctx, s, resource, params, pagination.Config{
		PerPage:  DefaultPageSize,
		MaxPages: maxPages,
	})

	result := Result[T]{
		Rows:      decodeRows[T](s, resource, fetched.Rows),
		Truncated: fetched.Truncated,
		Err:       fetched.Err,
	}
	storeResult(ctx, s, key, result, ttl)
	return result
}

// resultFromCache loads a memoized result. A decode failure is treated as a
// miss so a corrupt entry just refetches.
func resultFromCache[T any](ctx context.Context, s *Service, key cache.Key) (Result[T], bool) {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			s.logger.Warn().Err(err).Str("key", key.String()).Msg("Cache get error")
		}
		return Result[T]{}, false
	}

	var rows []T
	if err := json.Unmarshal(entry.Data, &rows); err != nil {
		s.logger.Warn().Err(err).Str("key", key.String()).Msg("Corrupt cache entry")
		_ = s.cache.Delete(ctx, key)
		return Result[T]{}, false
	}

	return Result[T]{Rows: rows, Truncated: entry.Truncated}, true
}

// storeResult memoizes a result. Error-truncated results are not stored:
// pinning a transient upstream failure for the whole TTL would hide recovery.
// Page-cap truncations are deterministic and cache normally.
func storeResult[T any](ctx context.Context, s *Service, key cache.Key, result Result[T], ttl time.Duration) {
	if result.Err != nil {
		return
	}

	data, err := json.Marshal(result.Rows)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key.String()).Msg("Marshal cache entry failed")
		return
	}
	if err := s.cache.Set(ctx, key, cache.NewEntry(data, result.Truncated, ttl)); err != nil {
		s.logger.Warn().Err(err).Str("key", key.String()).Msg("Cache set error")
	}
}

// decodeRows decodes raw rows into typed records. Rows that fail to decode
// are dropped rather than failing the whole fetch.
func decodeRows[T any](s *Service, resource string, raw []json.RawMessage) []T {
	rows := make([]T, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		var row T
		if err := json.Unmarshal(r, &row); err != nil {
			dropped++
			continue
		}
		rows = append(rows, row)
	}
	if dropped > 0 {
		s.logger.Warn().
			Str("resource", resource).
			Int("dropped", dropped).
			Msg("Dropped undecodable rows")
	}
	return rows
}
