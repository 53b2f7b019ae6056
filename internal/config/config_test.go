package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("NOTIFY_WORKERS", "")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env by default, got %q", cfg.AppEnv)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Fatalf("expected postgres storage by default, got %q", cfg.StorageDriver)
	}
	if cfg.NotifyWorkers != 4 {
		t.Fatalf("expected 4 notify workers, got %d", cfg.NotifyWorkers)
	}
	if cfg.NotifyTimeout != 10*time.Second {
		t.Fatalf("unexpected NotifyTimeout: %s", cfg.NotifyTimeout)
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported STORAGE_DRIVER")
	}
}

func TestLoad_MemoryDriverIsCaseInsensitive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", " Memory ")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.StorageDriver)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_NotifyValidation(t *testing.T) {
	t.Run("workers must be positive", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("NOTIFY_WORKERS", "0")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for NOTIFY_WORKERS=0")
		}
	})

	t.Run("timeout must parse", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("NOTIFY_WORKERS", "")
		t.Setenv("NOTIFY_TIMEOUT", "soon")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unparsable NOTIFY_TIMEOUT")
		}
	})

	t.Run("circuit overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("NOTIFY_WORKERS", "")
		t.Setenv("NOTIFY_TIMEOUT", "")
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("NOTIFY_CIRCUIT_FAILURE_COUNT", "3")
		t.Setenv("NOTIFY_CIRCUIT_OPEN_TIMEOUT", "1m")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.NotifyCircuitFailureCount != 3 {
			t.Fatalf("unexpected NotifyCircuitFailureCount: %d", cfg.NotifyCircuitFailureCount)
		}
		if cfg.NotifyCircuitOpenTimeout != time.Minute {
			t.Fatalf("unexpected NotifyCircuitOpenTimeout: %s", cfg.NotifyCircuitOpenTimeout)
		}
	})
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestParseLogLevel(t *testing.T) {
	if got := parseLogLevel("WARNING"); got != parseLogLevel("warn") {
		t.Fatalf("expected WARNING and warn to match, got %s", got)
	}
	if got := parseLogLevel("verbose"); got.String() != "info" {
		t.Fatalf("expected unknown level to fall back to info, got %s", got)
	}
}
