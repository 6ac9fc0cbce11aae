// Package config resolves server settings from flags, the environment and an optional
// .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/evantbyrne/beerfest"
	"github.com/evantbyrne/beerfest/pqdialect"
	"github.com/evantbyrne/beerfest/sqlitedialect"
	"github.com/joho/godotenv"
)

const (
	EnvDatabaseType = "BEERFEST_DATABASE_TYPE"
	EnvDatabaseURL  = "BEERFEST_DATABASE_URL"
	EnvPort         = "BEERFEST_PORT"
	EnvSlugSalt     = "BEERFEST_SLUG_SALT"

	DatabasePostgres = "postgres"
	DatabaseSqlite   = "sqlite"

	DefaultPort      = 8080
	DefaultSqliteURL = "beerfest.db"
)

type Config struct {
	DatabaseType string
	DatabaseURL  string
	Port         int
	SlugSalt     string
}

// Load fills the zero fields of flags from the environment, then applies defaults. Missing
// env files are ignored.
func Load(flags Config, envFiles ...string) (Config, error) {
	godotenv.Load(envFiles...)

	cfg := flags
	if cfg.Port == 0 {
		if port := os.Getenv(EnvPort); port != "" {
			n, err := strconv.Atoi(port)
			if err != nil {
				return Config{}, fmt.Errorf("config: invalid %s %q", EnvPort, port)
			}
			cfg.Port = n
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("config: port %d out of range", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv(EnvDatabaseType)
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DatabaseSqlite
	}
	if cfg.DatabaseType != DatabaseSqlite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("config: unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("config: database URL required for postgres (use --database or " + EnvDatabaseURL + ")")
		}
		cfg.DatabaseURL = DefaultSqliteURL
	}

	if cfg.SlugSalt == "" {
		cfg.SlugSalt = os.Getenv(EnvSlugSalt)
	}
	return cfg, nil
}

// Addr is the listen address for the configured port.
func (cfg Config) Addr() string {
	return ":" + strconv.Itoa(cfg.Port)
}

func (cfg Config) Dialect() beerfest.Dialect {
	if cfg.DatabaseType == DatabasePostgres {
		return pqdialect.PqDialect{}
	}
	return sqlitedialect.SqliteDialect{}
}

// DriverName is the database/sql driver registered for the database type.
func (cfg Config) DriverName() string {
	return cfg.DatabaseType
}
