package httpapi

import (
	"context"
	"fmt"
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
	"github.com/novaleague/vrfs-bot/internal/usecase"
)

type Handler struct {
	statService    *usecase.StatService
	profileService *usecase.ProfileService
	periodService  *usecase.PeriodService
	playerService  *usecase.PlayerService
	dispatcher     *usecase.NotificationDispatcher
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	statService *usecase.StatService,
	profileService *usecase.ProfileService,
	periodService *usecase.PeriodService,
	playerService *usecase.PlayerService,
	dispatcher *usecase.NotificationDispatcher,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statService:    statService,
		profileService: profileService,
		periodService:  periodService,
		playerService:  playerService,
		dispatcher:     dispatcher,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) decodeRequest(ctx context.Context, body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

// Range and membership rules are checked by the usecase, which owns the
// messages; tags here only bound free-text sizes.
type setPeriodRequest struct {
	Gameweek int `json:"gameweek"`
	Season   int `json:"season"`
}

type recordStatRequest struct {
	Gameweek int    `json:"gameweek"`
	Season   int    `json:"season"`
	StatType string `json:"stat_type" validate:"max=64"`
	Count    int    `json:"count"`
	Division string `json:"division" validate:"omitempty,max=16"`
}

type setPositionRequest struct {
	Position string `json:"position" validate:"max=64"`
}

type periodDTO struct {
	Gameweek int `json:"gameweek"`
	Season   int `json:"season"`
}

type statEventDTO struct {
	ID        int64  `json:"id"`
	PlayerID  string `json:"player_id"`
	Gameweek  int    `json:"gameweek"`
	Season    int    `json:"season"`
	StatType  string `json:"stat_type"`
	Division  string `json:"division"`
	Count     int    `json:"count"`
	CreatedAt string `json:"created_at,omitempty"`
}

type recordStatDTO struct {
	Event          statEventDTO   `json:"event"`
	PointsDelta    int            `json:"points_delta"`
	DivisionTotals map[string]int `json:"division_totals"`
}

type profileDTO struct {
	PlayerID    string         `json:"player_id"`
	Position    string         `json:"position"`
	Totals      map[string]int `json:"totals"`
	TotalPoints int            `json:"total_points"`
	Rank        string         `json:"rank"`
}

type playerDTO struct {
	PlayerID string `json:"player_id"`
	Position string `json:"position"`
}
