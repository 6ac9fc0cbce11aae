package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evantbyrne/beerfest/pqdialect"
	"github.com/evantbyrne/beerfest/sqlitedialect"
	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDatabaseType, EnvDatabaseURL, EnvPort, EnvSlugSalt} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(Config{}, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	expected := Config{DatabaseType: DatabaseSqlite, DatabaseURL: DefaultSqliteURL, Port: DefaultPort}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Expected ':8080', got '%s'", cfg.Addr())
	}
	if _, ok := cfg.Dialect().(sqlitedialect.SqliteDialect); !ok {
		t.Errorf("Expected sqlite dialect, got %T", cfg.Dialect())
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDatabaseType, DatabasePostgres)
	t.Setenv(EnvDatabaseURL, "postgres://localhost/beerfest")
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvSlugSalt, "hops")

	cfg, err := Load(Config{}, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	expected := Config{DatabaseType: DatabasePostgres, DatabaseURL: "postgres://localhost/beerfest", Port: 9000, SlugSalt: "hops"}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cfg.Dialect().(pqdialect.PqDialect); !ok {
		t.Errorf("Expected postgres dialect, got %T", cfg.Dialect())
	}
	if cfg.DriverName() != "postgres" {
		t.Errorf("Expected 'postgres', got '%s'", cfg.DriverName())
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvSlugSalt, "hops")

	cfg, err := Load(Config{Port: 7000, SlugSalt: "malt"}, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if cfg.Port != 7000 || cfg.SlugSalt != "malt" {
		t.Errorf("Expected flags to win, got %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvSlugSalt)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvSlugSalt+"=yeast\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvSlugSalt) })

	cfg, err := Load(Config{}, path)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if cfg.SlugSalt != "yeast" {
		t.Errorf("Expected 'yeast', got '%s'", cfg.SlugSalt)
	}
}

func TestLoadErrors(t *testing.T) {
	values := map[string]func(t *testing.T) Config{
		"bad port env": func(t *testing.T) Config {
			t.Setenv(EnvPort, "abc")
			return Config{}
		},
		"port out of range": func(t *testing.T) Config {
			return Config{Port: 70000}
		},
		"unknown database": func(t *testing.T) Config {
			return Config{DatabaseType: "mysql"}
		},
		"postgres without url": func(t *testing.T) Config {
			return Config{DatabaseType: DatabasePostgres}
		},
	}
	for name, setup := range values {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			if _, err := Load(setup(t), filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
