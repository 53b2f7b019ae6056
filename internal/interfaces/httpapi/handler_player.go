package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	profile, err := h.profileService.Get(ctx, playerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get player profile failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileDTO{
		PlayerID:    profile.PlayerID,
		Position:    profile.Position,
		Totals:      totalsToDTO(profile.Totals),
		TotalPoints: profile.TotalPoints,
		Rank:        string(profile.Tier),
	})
}

func (h *Handler) SetPlayerPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerPosition")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req setPositionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.SetPosition(ctx, playerID, req.Position)
	if err != nil {
		h.logger.WarnContext(ctx, "set player position failed",
			"moderator_id", moderatorFromContext(ctx),
			"player_id", playerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDTO{PlayerID: updated.ID, Position: updated.Position})
}
