// Package config loads the optional conversions configuration for htmlkit.
package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

const (
	// ConfigFileName is the default conversions config file, looked up
	// in the working directory.
	ConfigFileName = "htmlkit.json"

	// EnvConfigPath is the environment variable overriding the config path.
	EnvConfigPath = "HTMLKIT_CONVERSIONS"
)

// Conversions represents the conversions configuration document.
type Conversions struct {
	// Conversions lists registered converter names, applied in order.
	Conversions []string `json:"conversions"`
}

// LoadConversions reads the conversions config from the path named by
// the HTMLKIT_CONVERSIONS environment variable, falling back to
// htmlkit.json in the working directory.
//
// A missing default file is tolerated and yields an empty list; a
// missing explicitly-requested file is an error. Malformed JSON is an
// error in either case.
func LoadConversions() ([]string, error) {
	path := os.Getenv(EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = ConfigFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			slog.Debug("starting without a conversions config file", "path", path)
			return nil, nil
		}
		return nil, errors.Wrap("H001", err).WithDetail("no conversions config at %s", path)
	}

	var cfg Conversions
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap("H002", err).WithDetail("invalid conversions config at %s", path)
	}

	slog.Debug("loaded conversions config", "path", path, "conversions", cfg.Conversions)
	return cfg.Conversions, nil
}
