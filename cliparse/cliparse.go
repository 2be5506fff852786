package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/avurudu-games/db"
)

const (
	defaultPort       = 3001
	defaultSQLitePath = "avurudu_games_2025.db"
	defaultOrigin     = "http://localhost:3000"
	defaultAdminUser  = "admin"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   db.Dialect
	AdminUser      string
	AdminPassword  string
	AllowedOrigins []string
	SeedGames      bool
	UpgradeGames   bool
	MigrateFrom    string
}

// ParseFlags reads flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var dbType, origins string

	fs := flag.NewFlagSet("avurudu-games", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&dbType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&origins, "origins", "", "Comma-separated CORS origins")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminUser, "admin-user", "", "Admin username")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password (prefer env)")

	// Maintenance
	fs.BoolVar(&cfg.SeedGames, "seed", true, "Insert the starter games catalog if missing")
	fs.BoolVar(&cfg.UpgradeGames, "upgrade-games", false, "Add missing optional columns to the games table")
	fs.StringVar(&cfg.MigrateFrom, "migrate-from", "", "Copy games and participants from this SQLite file, then exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if dbType == "" {
		dbType = os.Getenv("DATABASE_TYPE")
	}
	if dbType == "" {
		dbType = string(db.SQLite)
	}
	dialect, err := db.ParseDialect(dbType)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseType = dialect

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if dialect == db.Postgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLitePath
	}

	if cfg.AdminUser == "" {
		cfg.AdminUser = os.Getenv("ADMIN_USERNAME")
	}
	if cfg.AdminUser == "" {
		cfg.AdminUser = defaultAdminUser
	}

	// Secrets - MUST be provided
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	if origins == "" {
		origins = defaultOrigin
	}
	cfg.AllowedOrigins = splitList(origins)

	if !set["seed"] {
		if v := os.Getenv("SEED_GAMES"); v != "" {
			seed, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid SEED_GAMES env variable: %w", err)
			}
			cfg.SeedGames = seed
		}
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
