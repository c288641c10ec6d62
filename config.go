package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds engine settings loadable from a JSON file. Zero values mean
// "not set"; flags win over file values.
type Config struct {
	Simulations     int    `json:"simulations"`
	MaxPlayoutDepth int    `json:"max_playout_depth"`
	Seed            uint64 `json:"seed"`
	Pretty          bool   `json:"pretty"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
