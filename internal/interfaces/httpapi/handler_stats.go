package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/novaleague/vrfs-bot/internal/domain/stat"
	"github.com/novaleague/vrfs-bot/internal/usecase"
)

func (h *Handler) RecordStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordStat")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req recordStatRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.RecordStatInput{
		PlayerID: playerID,
		Gameweek: req.Gameweek,
		Season:   req.Season,
		Kind:     req.StatType,
		Division: defaultDivision(req.Division),
		Count:    req.Count,
	}
	result, err := h.statService.Record(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "record stat failed",
			"moderator_id", moderatorFromContext(ctx),
			"player_id", playerID,
			"gameweek", input.Gameweek,
			"season", input.Season,
			"stat_kind", input.Kind,
			"division", input.Division,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	if err := h.dispatcher.Dispatch(result.Notice()); err != nil {
		h.logger.WarnContext(ctx, "stat notice not queued", "player_id", playerID, "error", err)
	}

	writeSuccess(ctx, w, http.StatusCreated, recordStatDTO{
		Event:          statEventToDTO(result.Event),
		PointsDelta:    result.PointsDelta,
		DivisionTotals: totalsToDTO(result.DivisionTotals),
	})
}

// RemoveStat takes its key from the query string:
// ?gameweek=&season=&stat_type=&division=
func (h *Handler) RemoveStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveStat")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	query := r.URL.Query()

	gameweek, err := parseQueryInt(query.Get("gameweek"), "gameweek")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := parseQueryInt(query.Get("season"), "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.RemoveStatInput{
		PlayerID: playerID,
		Gameweek: gameweek,
		Season:   season,
		Kind:     query.Get("stat_type"),
		Division: defaultDivision(query.Get("division")),
	}
	removed, err := h.statService.Remove(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "remove stat failed",
			"moderator_id", moderatorFromContext(ctx),
			"player_id", playerID,
			"gameweek", input.Gameweek,
			"season", input.Season,
			"stat_kind", input.Kind,
			"division", input.Division,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statEventToDTO(removed))
}

// defaultDivision mirrors the slash command, where the option defaults to Div 1.
func defaultDivision(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return string(stat.Div1)
	}
	return raw
}

func parseQueryInt(raw, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func statEventToDTO(event stat.Event) statEventDTO {
	dto := statEventDTO{
		ID:       event.ID,
		PlayerID: event.PlayerID,
		Gameweek: event.Gameweek,
		Season:   event.Season,
		StatType: string(event.Kind),
		Division: string(event.Division),
		Count:    event.Count,
	}
	if !event.CreatedAt.IsZero() {
		dto.CreatedAt = event.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func totalsToDTO(totals map[stat.Kind]int) map[string]int {
	out := make(map[string]int, len(totals))
	for kind, count := range totals {
		out[string(kind)] = count
	}
	return out
}
