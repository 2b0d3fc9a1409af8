// Package config loads the game settings from the environment, an
// optional .env file and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"citadels-console/internal/engine"
)

var stores = []string{"file", "sqlite", "redis", "memory"}

// Config holds everything main needs to wire a game.
type Config struct {
	// Players is the table size; 0 asks on the console.
	Players     int    `env:"CITADELS_PLAYERS" envDefault:"0"`
	Seed        uint64 `env:"CITADELS_SEED"`
	HumanName   string `env:"CITADELS_HUMAN_NAME" envDefault:"Player 1"`
	CardsFile   string `env:"CITADELS_CARDS_FILE"`
	EndCitySize int    `env:"CITADELS_END_CITY_SIZE" envDefault:"8"`

	Store      string `env:"CITADELS_STORE" envDefault:"file"`
	SaveDir    string `env:"CITADELS_SAVE_DIR" envDefault:"saves"`
	SQLitePath string `env:"CITADELS_SQLITE_PATH" envDefault:"citadels.db"`
	RedisURL   string `env:"CITADELS_REDIS_URL" envDefault:"redis://localhost:6379/0"`

	LogLevel     string `env:"CITADELS_LOG_LEVEL" envDefault:"warn"`
	Pace         bool   `env:"CITADELS_PACE" envDefault:"true"`
	Debug        bool   `env:"CITADELS_DEBUG"`
	SpectateAddr string `env:"CITADELS_SPECTATE_ADDR"`
	Load         string `env:"CITADELS_LOAD"`
}

// LoadDotEnv reads KEY=VALUE pairs from path into the environment. A
// missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Parse fills a Config from the environment, then lets flags in args
// override it.
func Parse(flags *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	flags.IntVar(&cfg.Players, "players", 0, "number of players, 4-7 (0 asks)")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 picks one)")
	flags.StringVar(&cfg.HumanName, "name", "", "your player name")
	flags.StringVar(&cfg.CardsFile, "cards", "", "district TSV file (name, quantity, color, cost, text)")
	flags.IntVar(&cfg.EndCitySize, "end", 0, "districts that complete a city")
	flags.StringVar(&cfg.Store, "store", "", "snapshot store: file, sqlite, redis or memory")
	flags.StringVar(&cfg.SaveDir, "savedir", "", "directory for the file store")
	flags.StringVar(&cfg.SQLitePath, "sqlite", "", "database path for the sqlite store")
	flags.StringVar(&cfg.RedisURL, "redis", "", "redis url for the redis store")
	flags.StringVar(&cfg.LogLevel, "loglevel", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&cfg.Pace, "pace", false, "wait for 't' before each computer turn")
	flags.BoolVar(&cfg.Debug, "debug", false, "show computer hands")
	flags.StringVar(&cfg.SpectateAddr, "spectate", "", "address for the read-only spectator server, e.g. :8080")
	flags.StringVar(&cfg.Load, "load", "", "snapshot to restore before the first round")

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Players != 0 && (c.Players < engine.MinPlayers || c.Players > engine.MaxPlayers) {
		return fmt.Errorf("players must be %d-%d, got %d", engine.MinPlayers, engine.MaxPlayers, c.Players)
	}
	if c.EndCitySize < 1 {
		return fmt.Errorf("end city size must be at least 1, got %d", c.EndCitySize)
	}
	if !slices.Contains(stores, c.Store) {
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
