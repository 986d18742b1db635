package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const configPathEnv = "CONFIG_PATH"

type (
	Config struct {
		App  App  `json:"app"`
		Seed Seed `json:"seed"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogLevel        string        `json:"log_level"`
	}

	Seed struct {
		// Path of the JSON seed document served by the resource API.
		Path string `json:"path"`

		// DataHolderID selects the holder when the seed document carries more
		// than one. Empty means single-tenant: the first holder wins.
		DataHolderID string `json:"data_holder_id"`
	}
)

// Load reads configuration from the JSON file named by CONFIG_PATH, falling
// back to the given path when the variable is unset.
func Load(defaultPath string) (Config, error) {
	path := os.Getenv(configPathEnv)
	if path == "" {
		path = defaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	var conf Config
	if err := json.Unmarshal(raw, &conf); err != nil {
		return Config{}, fmt.Errorf("unable to parse config %s: %w", path, err)
	}

	if conf.App.GracefulTimeout == 0 {
		conf.App.GracefulTimeout = 5 * time.Second
	}
	if conf.App.HTTPPort == 0 {
		conf.App.HTTPPort = 8080
	}

	return conf, nil
}
