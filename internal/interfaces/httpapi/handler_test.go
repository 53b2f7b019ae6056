package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/novaleague/vrfs-bot/internal/infrastructure/repository/memory"
	"github.com/novaleague/vrfs-bot/internal/usecase"
)

const testModeratorToken = "mod-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	st := memory.NewStore()
	handler := NewHandler(
		usecase.NewStatService(st, nil),
		usecase.NewProfileService(st),
		usecase.NewPeriodService(st, nil),
		usecase.NewPlayerService(st),
		nil,
		nil,
	)
	return NewRouter(handler, nil, RouterConfig{ModeratorToken: testModeratorToken})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, moderator bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if moderator {
		req.Header.Set(moderatorTokenHeader, testModeratorToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal %s %s response: %v (body=%s)", method, target, err, rec.Body.String())
	}
	return rec, payload
}

func errorMessage(payload map[string]any) string {
	errObj, _ := payload["error"].(map[string]any)
	msg, _ := errObj["message"].(string)
	return msg
}

func TestRouter_ModeratorRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec, payload := doRequest(t, router, http.MethodPut, "/v1/period", `{"gameweek":3,"season":1}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(errorMessage(payload), "permission") {
		t.Fatalf("expected permission message, got %q", errorMessage(payload))
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/period", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected public period read, got %d", rec.Code)
	}
}

func TestRouter_RecordStatFlow(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPut, "/v1/period", `{"gameweek":3,"season":1}`, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("set period: expected 200, got %d", rec.Code)
	}

	rec, payload := doRequest(t, router, http.MethodPost, "/v1/players/42/stats",
		`{"gameweek":3,"season":1,"stat_type":"goalkeeper cleansheet","count":7}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record: expected 201, got %d (%v)", rec.Code, payload)
	}
	data, _ := payload["data"].(map[string]any)
	if got, _ := data["points_delta"].(float64); got != 84 {
		t.Fatalf("expected +84 pts for 7 div1 gk cleansheets, got %v", data["points_delta"])
	}

	rec, payload = doRequest(t, router, http.MethodGet, "/v1/players/42/profile", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", rec.Code)
	}
	profile, _ := payload["data"].(map[string]any)
	if profile["rank"] != "Silver" || profile["position"] != "" {
		t.Fatalf("unexpected profile: %v", profile)
	}
}

func TestRouter_RecordStatValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"gameweek", `{"gameweek":0,"season":1,"stat_type":"goal","count":1}`, "GW must be between 1 and 22"},
		{"season", `{"gameweek":1,"season":4,"stat_type":"goal","count":1}`, "Season must be 1, 2, or 3"},
		{"stat type", `{"gameweek":1,"season":1,"stat_type":"own goal","count":1}`, "Stat type must be one of"},
		{"count", `{"gameweek":1,"season":1,"stat_type":"goal","count":0}`, "Count must be greater than 0"},
		{"period", `{"gameweek":2,"season":1,"stat_type":"goal","count":1}`, "Current: GW1 Season 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, payload := doRequest(t, router, http.MethodPost, "/v1/players/42/stats", tc.body, true)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(errorMessage(payload), tc.want) {
				t.Fatalf("expected message containing %q, got %q", tc.want, errorMessage(payload))
			}
		})
	}
}

func TestRouter_RemoveStat(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodDelete, "/v1/players/42/stats?gameweek=1&season=1&stat_type=goal", "", true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty ledger, got %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/players/42/stats",
		`{"gameweek":1,"season":1,"stat_type":"goal","count":2,"division":"Div 3"}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record: expected 201, got %d", rec.Code)
	}

	rec, payload := doRequest(t, router, http.MethodDelete, "/v1/players/42/stats?gameweek=1&season=1&stat_type=goal&division=Div%203", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d (%v)", rec.Code, payload)
	}
	data, _ := payload["data"].(map[string]any)
	if got, _ := data["count"].(float64); got != 2 {
		t.Fatalf("expected removed count 2, got %v", data["count"])
	}

	rec, _ = doRequest(t, router, http.MethodDelete, "/v1/players/42/stats?gameweek=x&season=1&stat_type=goal", "", true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed gameweek, got %d", rec.Code)
	}
}

func TestRouter_SetPositionTooLong(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPut, "/v1/players/42/position",
		`{"position":"`+strings.Repeat("x", 33)+`"}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	// A nil service panics inside the handler.
	handler := NewHandler(nil, nil, nil, nil, nil, nil)
	router := NewRouter(handler, nil, RouterConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players/42/profile", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
}
