package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("select player: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(errors.New("connection refused")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestWrapDBError(t *testing.T) {
	t.Run("adds sqlstate for driver errors", func(t *testing.T) {
		driverErr := &pq.Error{Code: "23514", Message: "violates check constraint"}
		err := wrapDBError(driverErr, "insert stat event")
		if !strings.Contains(err.Error(), "sqlstate 23514 check_violation") {
			t.Fatalf("expected sqlstate in message, got %q", err.Error())
		}
		var target *pq.Error
		if !errors.As(err, &target) {
			t.Fatalf("expected pq error to stay reachable")
		}
	})

	t.Run("plain errors keep message", func(t *testing.T) {
		err := wrapDBError(errors.New("boom"), "commit tx")
		if err.Error() != "commit tx: boom" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if wrapDBError(nil, "noop") != nil {
			t.Fatalf("expected nil")
		}
	})
}

func TestStatEventFromRow(t *testing.T) {
	got := statEventFromRow(statEventTableModel{
		ID:       11,
		PlayerID: "p1",
		Gameweek: 4,
		Season:   2,
		StatKind: "goalkeeper cleansheet",
		Division: "Div 3",
		Count:    1,
	})
	if got.ID != 11 || got.Kind != "goalkeeper cleansheet" || got.Division != "Div 3" {
		t.Fatalf("unexpected event: %+v", got)
	}
	if got.Points() != 8 {
		t.Fatalf("expected 8 points for div3 gk cleansheet, got %d", got.Points())
	}
}

func TestNullableString(t *testing.T) {
	if nullableString("") != nil {
		t.Fatalf("expected nil for empty position")
	}
	if got := nullableString("RW"); got == nil || *got != "RW" {
		t.Fatalf("unexpected nullable value: %v", got)
	}
	if nullStringToString(sql.NullString{}) != "" {
		t.Fatalf("expected empty string for null")
	}
}
