// Where: internal/config/config.go
// What: Environment-driven settings.
// Why: Keep engine choice and base image pins overridable without flags.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// HubTokenEnv is the variable forwarded to the build as the hub secret.
const HubTokenEnv = "MODELBAKE_HF_TOKEN"

// Settings holds environment-provided configuration. A .env file in the
// working directory is loaded first when present.
type Settings struct {
	// Engine is the container engine binary. Podman works as a drop-in.
	Engine string `env:"MODELBAKE_ENGINE" envDefault:"docker"`

	// DownloaderImage and RuntimeImage override the digest-pinned base
	// images of the generated descriptor.
	DownloaderImage string `env:"MODELBAKE_DOWNLOADER_IMAGE"`
	RuntimeImage    string `env:"MODELBAKE_RUNTIME_IMAGE"`

	// HubToken authenticates hub downloads for gated models. It is passed
	// to the build as a secret, never written into the descriptor.
	HubToken string `env:"MODELBAKE_HF_TOKEN"`
}

// Load parses Settings from the process environment, loading ./.env first
// if it exists.
func Load() (Settings, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// ParseEnviron parses Settings from an explicit environment, for tests and
// callers that must not touch the process environment.
func ParseEnviron(environ []string) (Settings, error) {
	var settings Settings
	err := env.ParseWithOptions(&settings, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}
