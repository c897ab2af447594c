package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the data directory, e.g. $HOME/.bigsum.
	Home           string        `env:"BIGSUM_HOME"`
	// RelayURL is the bigsumd base URL, e.g. http://127.0.0.1:8080.
	RelayURL       string        `env:"BIGSUM_RELAY"`
	ListenAddr     string        `env:"BIGSUM_LISTEN"          envDefault:":8080"`
	LogLevel       string        `env:"BIGSUM_LOG_LEVEL"       envDefault:"info"`
	StrictGrouping bool          `env:"BIGSUM_STRICT_GROUPING"`
	History        bool          `env:"BIGSUM_HISTORY"         envDefault:"true"`
	RequestTimeout time.Duration `env:"BIGSUM_TIMEOUT"         envDefault:"10s"`

	// HTTP is optional; NewWire defaults to a client with RequestTimeout.
	HTTP *http.Client
}

// LoadConfig reads Config from the environment. Home defaults to ~/.bigsum
// and stays empty when the user's home directory cannot be resolved.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		if dir, err := os.UserHomeDir(); err == nil {
			cfg.Home = filepath.Join(dir, ".bigsum")
		}
	}
	return cfg, nil
}
