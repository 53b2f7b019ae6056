package httpapi

import (
	"net/http"

	"github.com/novaleague/vrfs-bot/internal/domain/period"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetCurrentPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentPeriod")
	defer span.End()

	current, err := h.periodService.Current(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get current period failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, periodToDTO(current))
}

func (h *Handler) SetCurrentPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCurrentPeriod")
	defer span.End()

	var req setPeriodRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.periodService.Set(ctx, req.Gameweek, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "set current period failed",
			"moderator_id", moderatorFromContext(ctx),
			"gameweek", req.Gameweek,
			"season", req.Season,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, periodToDTO(updated))
}

func periodToDTO(p period.Period) periodDTO {
	return periodDTO{Gameweek: p.Gameweek, Season: p.Season}
}
