// Where: cmd/modelbake/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/modelbake/modelbake/internal/app"
	"github.com/modelbake/modelbake/internal/config"
	"github.com/modelbake/modelbake/internal/engine"
)

var (
	getwd           = os.Getwd
	newDockerClient = engine.NewDockerClient
)

// buildDependencies constructs all runtime dependencies required by the
// CLI: working directory, settings, the engine runner, and a Docker client
// for local image queries. An unreachable daemon is not fatal; the SDK
// client is only used for informational queries.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	settings, err := config.Load()
	if err != nil {
		return app.Dependencies{}, err
	}

	deps := app.Dependencies{
		WorkDir:  workDir,
		Out:      os.Stdout,
		Runner:   engine.ExecRunner{},
		Settings: settings,
	}
	if client, err := newDockerClient(); err == nil {
		deps.Docker = client
	}

	return deps, nil
}
