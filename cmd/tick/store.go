package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ameitner/tick/internal/config"
	"github.com/ameitner/tick/internal/paths"
	"github.com/ameitner/tick/internal/storage"
	"github.com/ameitner/tick/todo"
)

// loadConfig reads tick.toml from the working directory and the global
// config file.
func loadConfig() (*config.Config, error) {
	workDir, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(workDir)
}

// openStore opens the persisted todo list, seeding the starter todos on
// first run.
func openStore(cfg *config.Config) (*todo.Store, *storage.Store, error) {
	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, nil, err
	}

	files := storage.NewStore(dataDir)
	store, err := todo.Open(files, todo.OpenOptions{Seed: todo.StarterTodos()})
	if err != nil {
		return nil, nil, fmt.Errorf("open todo store: %w", err)
	}
	return store, files, nil
}

// resolveDescriptionFromStdin supports `-d -` for piped descriptions.
func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}
