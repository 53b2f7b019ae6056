package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/novaleague/vrfs-bot/internal/config"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
	"github.com/novaleague/vrfs-bot/internal/usecase"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:        config.EnvDev,
		HTTPAddr:      ":0",
		StorageDriver: config.StorageDriverMemory,
		NotifyEnabled: true,
		NotifyWorkers: 1,
	}
}

func TestNewRuntime_MemoryStoreWithoutDiscord(t *testing.T) {
	ctx := context.Background()
	rt, err := NewRuntime(ctx, memoryConfig(), nil, logging.NewNop())
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			t.Fatalf("close runtime: %v", err)
		}
	}()

	result, err := rt.Stats.Record(ctx, usecase.RecordStatInput{
		PlayerID: "p-1",
		Gameweek: 1,
		Season:   1,
		Kind:     "goal",
		Division: "Div 1",
		Count:    1,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := rt.Dispatcher.Dispatch(result.Notice()); err != nil {
		t.Fatalf("dispatch without notifier: %v", err)
	}

	profile, err := rt.Profiles.Get(ctx, "p-1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.TotalPoints != stat.PointsFor(stat.Div1, stat.KindGoal) {
		t.Fatalf("unexpected points: %d", profile.TotalPoints)
	}
}

func TestNewRuntime_RejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"
	if _, err := NewRuntime(context.Background(), cfg, nil, logging.NewNop()); err == nil {
		t.Fatalf("expected unknown storage driver to fail")
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	cfg := memoryConfig()
	rt, err := NewRuntime(context.Background(), cfg, nil, logging.NewNop())
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	defer rt.Close()

	srv, err := NewHTTPServer(cfg, rt, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from healthz, got %d", rec.Code)
	}

	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, rt, logging.NewNop()); err == nil {
		t.Fatalf("expected empty addr to fail")
	}
}

func TestNewDiscordSession_NoToken(t *testing.T) {
	session, err := NewDiscordSession(memoryConfig())
	if err != nil || session != nil {
		t.Fatalf("expected nil session without token, got %v err=%v", session, err)
	}
}
