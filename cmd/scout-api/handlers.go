package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	corslib "github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/pvscout/fullfield-scout/pkg/config"
	"github.com/pvscout/fullfield-scout/pkg/fullfield"
	"github.com/pvscout/fullfield-scout/pkg/lookup"
	"github.com/pvscout/fullfield-scout/pkg/stats"
)

// handler serves the scouting views over the fetch service.
type handler struct {
	service *fullfield.Service
	logger  zerolog.Logger
}

func newHandler(service *fullfield.Service, logger zerolog.Logger) *handler {
	return &handler{
		service: service,
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

func newRouter(h *handler, redisClient *redis.Client, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	r.Get("/health", healthHandler)
	r.Get("/ready", readyHandler(redisClient))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/seasons", h.seasons)
		r.Get("/seasons/{seasonUUID}/competitions", h.competitions)

		r.Route("/competitions/{competitionUUID}", func(r chi.Router) {
			r.Get("/teams", h.teams)
			r.Get("/schedule", h.schedule)
			r.Get("/players", h.players)
			r.Get("/games/{scheduleUUID}/boxscore", h.gameBoxscore)

			r.Route("/teams/{teamUUID}", func(r chi.Router) {
				r.Get("/games", h.teamGames)
				r.Get("/roster", h.teamRoster)
				r.Get("/stats", h.teamStats)
			})

			r.Route("/players/{playerUUID}", func(r chi.Router) {
				r.Get("/averages", h.playerAverages)
				r.Get("/gamelog", h.playerGameLog)
			})
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler reports readiness. With the redis backend, a dead redis means
// every request would fall through to the upstream API, so readiness fails.
func readyHandler(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// response is the envelope around every view payload. Truncated and Error
// surface fetch degradation so a consumer can tell "empty" from "aborted".
type response struct {
	Data      any    `json:"data"`
	Truncated bool   `json:"truncated"`
	Error     string `json:"error,omitempty"`
}

func (h *handler) respond(w http.ResponseWriter, data any, truncated bool, err error) {
	resp := response{Data: data, Truncated: truncated}
	if err != nil {
		resp.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		h.logger.Error().Err(encodeErr).Msg("Failed to encode response")
	}
}

func (h *handler) seasons(w http.ResponseWriter, r *http.Request) {
	result := h.service.Seasons(r.Context())

	rows := result.Rows
	if r.URL.Query().Get("recent") == "true" {
		rows = fullfield.RecentSeasons(rows)
	}
	h.respond(w, rows, result.Truncated, result.Err)
}

func (h *handler) competitions(w http.ResponseWriter, r *http.Request) {
	filter := fullfield.CompetitionFilter{
		SeasonUUID: chi.URLParam(r, "seasonUUID"),
	}
	if raw := r.URL.Query().Get("country_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "country_id must be an integer", http.StatusBadRequest)
			return
		}
		filter.CountryID = id
	}

	result := h.service.Competitions(r.Context(), filter)
	h.respond(w, result.Rows, result.Truncated, result.Err)
}

// teamView decorates a competition team with its tracked internal id.
type teamView struct {
	fullfield.Team
	InternalID int `json:"internal_id,omitempty"`
}

func (h *handler) teams(w http.ResponseWriter, r *http.Request) {
	result := h.service.CompetitionTeams(r.Context(), chi.URLParam(r, "competitionUUID"))

	views := make([]teamView, 0, len(result.Rows))
	for _, team := range result.Rows {
		view := teamView{Team: team}
		if id, ok := lookup.TeamID(team.TeamName); ok {
			view.InternalID = id
		}
		views = append(views, view)
	}
	h.respond(w, views, result.Truncated, result.Err)
}

func (h *handler) schedule(w http.ResponseWriter, r *http.Request) {
	result := h.service.Schedule(r.Context(), chi.URLParam(r, "competitionUUID"))
	h.respond(w, result.Rows, result.Truncated, result.Err)
}

func (h *handler) players(w http.ResponseWriter, r *http.Request) {
	result := h.service.CompetitionPlayers(r.Context(), chi.URLParam(r, "competitionUUID"))
	h.respond(w, result.Rows, result.Truncated, result.Err)
}

func (h *handler) gameBoxscore(w http.ResponseWriter, r *http.Request) {
	result := h.service.GameBoxscore(r.Context(),
		chi.URLParam(r, "competitionUUID"), chi.URLParam(r, "scheduleUUID"))
	h.respond(w, result.Rows, result.Truncated, result.Err)
}

// teamGamesView is the games tab: oriented game list plus the win/loss record.
type teamGamesView struct {
	Games  []stats.TeamGame `json:"games"`
	Record stats.Record     `json:"record"`
}

func (h *handler) teamGames(w http.ResponseWriter, r *http.Request) {
	result := h.service.Schedule(r.Context(), chi.URLParam(r, "competitionUUID"))

	games := stats.TeamGames(result.Rows, chi.URLParam(r, "teamUUID"))
	view := teamGamesView{Games: games, Record: stats.TeamRecord(games)}
	h.respond(w, view, result.Truncated, result.Err)
}

func (h *handler) teamRoster(w http.ResponseWriter, r *http.Request) {
	competitionUUID := chi.URLParam(r, "competitionUUID")
	teamUUID := chi.URLParam(r, "teamUUID")

	boxscore := h.service.TeamBoxscore(r.Context(), competitionUUID, teamUUID)
	players := h.service.CompetitionPlayers(r.Context(), competitionUUID)

	roster := stats.RosterPlayers(boxscore.Rows, teamUUID, players.Rows)
	h.respond(w, roster, boxscore.Truncated || players.Truncated, firstErr(boxscore.Err, players.Err))
}

func (h *handler) teamStats(w http.ResponseWriter, r *http.Request) {
	competitionUUID := chi.URLParam(r, "competitionUUID")
	teamUUID := chi.URLParam(r, "teamUUID")

	boxscore := h.service.TeamBoxscore(r.Context(), competitionUUID, teamUUID)
	players := h.service.CompetitionPlayers(r.Context(), competitionUUID)

	aggregates := stats.AggregateByPlayer(boxscore.Rows, playerIndex(players.Rows))
	h.respond(w, stats.SortedAverages(aggregates), boxscore.Truncated || players.Truncated, firstErr(boxscore.Err, players.Err))
}

// playerAveragesView is the player view header: profile, tracked internal id,
// and season averages.
type playerAveragesView struct {
	Player     fullfield.Player     `json:"player"`
	InternalID int                  `json:"internal_id,omitempty"`
	Averages   stats.SeasonAverages `json:"averages"`
}

func (h *handler) playerAverages(w http.ResponseWriter, r *http.Request) {
	competitionUUID := chi.URLParam(r, "competitionUUID")
	playerUUID := chi.URLParam(r, "playerUUID")

	players := h.service.CompetitionPlayers(r.Context(), competitionUUID)
	player, ok := findPlayer(players.Rows, playerUUID)
	if !ok && players.Err == nil {
		http.Error(w, "player not found in competition", http.StatusNotFound)
		return
	}

	boxscore := h.service.Boxscore(r.Context(), competitionUUID, fullfield.BoxscoreOptions{MaxPages: 30})
	rows := stats.FilterRowsByPlayer(boxscore.Rows, playerUUID)
	aggregates := stats.AggregateByPlayer(rows, playerIndex(players.Rows))

	view := playerAveragesView{Player: player}
	if agg, ok := aggregates[playerUUID]; ok {
		view.Averages = agg.Averages()
	}
	if id, ok := lookup.PlayerID(player.FirstName + " " + player.LastName); ok {
		view.InternalID = id
	}
	h.respond(w, view, boxscore.Truncated || players.Truncated, firstErr(boxscore.Err, players.Err))
}

// playerGameLogView carries the dated game log plus its chronological trend
// series for charting.
type playerGameLogView struct {
	GameLog []stats.GameLogEntry `json:"game_log"`
	Trend   []stats.TrendPoint   `json:"trend"`
}

func (h *handler) playerGameLog(w http.ResponseWriter, r *http.Request) {
	competitionUUID := chi.URLParam(r, "competitionUUID")
	playerUUID := chi.URLParam(r, "playerUUID")

	boxscore := h.service.Boxscore(r.Context(), competitionUUID, fullfield.BoxscoreOptions{MaxPages: 30})
	schedule := h.service.Schedule(r.Context(), competitionUUID)

	byGame := make(map[string]fullfield.ScheduleEntry, len(schedule.Rows))
	for _, entry := range schedule.Rows {
		byGame[entry.UUID] = entry
	}

	log := stats.GameLog(stats.FilterRowsByPlayer(boxscore.Rows, playerUUID), byGame)
	view := playerGameLogView{GameLog: log, Trend: stats.TrendSeries(log)}
	h.respond(w, view, boxscore.Truncated || schedule.Truncated, firstErr(boxscore.Err, schedule.Err))
}

func playerIndex(players []fullfield.Player) map[string]fullfield.Player {
	index := make(map[string]fullfield.Player, len(players))
	for _, p := range players {
		index[p.UUID] = p
	}
	return index
}

func findPlayer(players []fullfield.Player, uuid string) (fullfield.Player, bool) {
	for _, p := range players {
		if p.UUID == uuid {
			return p, true
		}
	}
	return fullfield.Player{}, false
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
