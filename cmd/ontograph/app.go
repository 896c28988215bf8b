package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/c360studio/ontograph/config"
	"github.com/c360studio/ontograph/obographs"
	"github.com/c360studio/ontograph/ontology"
)

// appContext carries the flags and lazily loaded state shared by all
// subcommands.
type appContext struct {
	inputPath string
	logLevel  string

	cfg    *config.Config
	logger *slog.Logger
}

// setup loads configuration and wires the logger. Called once per command
// invocation before any work happens.
func (a *appContext) setup() error {
	if a.cfg != nil {
		return nil
	}

	// Bootstrap logger so config loading itself can log.
	bootstrap := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.NewLoader(bootstrap).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	level := cfg.Log.SlogLevel()
	if a.logLevel != "" {
		level = config.LogConfig{Level: a.logLevel}.SlogLevel()
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	return nil
}

// resolveInput returns the ontology file to load: the --input flag when
// given, otherwise the first configured input path.
func (a *appContext) resolveInput() (string, error) {
	if a.inputPath != "" {
		return a.inputPath, nil
	}

	inputs, err := a.cfg.ResolveInputs()
	if err != nil {
		return "", err
	}
	if len(inputs) == 0 {
		return "", fmt.Errorf("no input: pass --input or configure input.paths in %s", config.ProjectConfigFile)
	}
	if len(inputs) > 1 {
		a.logger.Debug("Multiple inputs configured, using first", slog.String("path", inputs[0]))
	}
	return inputs[0], nil
}

// loadOntology performs setup and loads the ontology from the resolved
// input file.
func (a *appContext) loadOntology() (*ontology.Ontology, error) {
	if err := a.setup(); err != nil {
		return nil, err
	}

	path, err := a.resolveInput()
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Loading ontology", slog.String("path", path))
	ont, err := obographs.NewLoader(a.logger).LoadFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ont, nil
}
