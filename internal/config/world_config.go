// Package config loads and validates world-generation settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig describes one level's grid and terrain mix.
//
// Terrain probabilities are relative weights; they do not need to sum
// to 1. Entry order matters: the generator samples against cumulative
// thresholds built in list order, and the first entry is the fallback.
type WorldConfig struct {
	// Width and Height are the grid dimensions in tiles.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// TileSize is the tile edge length in pixels.
	TileSize float64 `yaml:"tileSize"`

	// Terrains is the ordered generation table.
	Terrains []TerrainEntry `yaml:"terrains"`
}

// TerrainEntry is one terrain candidate in the generation table.
type TerrainEntry struct {
	// Terrain is the catalog name ("floor", "rock", "mineral", ...).
	Terrain string `yaml:"terrain"`

	// BaseProbability is the relative spawn weight.
	BaseProbability float64 `yaml:"baseProbability"`

	// InheritProbability is the chance a generated neighbour of this
	// terrain propagates its type, clustering the field.
	InheritProbability float64 `yaml:"inheritProbability"`

	// MaxDurability overrides the catalog durability for destructible
	// terrain. 0 keeps the catalog default.
	MaxDurability int `yaml:"maxDurability,omitempty"`
}

// Default returns the built-in cavern configuration.
func Default() *WorldConfig {
	return &WorldConfig{
		Width:    48,
		Height:   32,
		TileSize: 24,
		Terrains: []TerrainEntry{
			{Terrain: "floor", BaseProbability: 0.52, InheritProbability: 0.25},
			{Terrain: "gravel", BaseProbability: 0.08, InheritProbability: 0.4},
			{Terrain: "sand", BaseProbability: 0.05, InheritProbability: 0.4},
			{Terrain: "water", BaseProbability: 0.03, InheritProbability: 0.6},
			{Terrain: "rock", BaseProbability: 0.2, InheritProbability: 0.65},
			{Terrain: "mineral", BaseProbability: 0.08, InheritProbability: 0.55},
			{Terrain: "crystal", BaseProbability: 0.04, InheritProbability: 0.5},
		},
	}
}

// Load reads a world config from a YAML file.
func Load(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config: %w", err)
	}

	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}
	return &cfg, nil
}

// Validate checks dimensions, tile size, and the generation table.
func (c *WorldConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize %.1f must be positive", c.TileSize)
	}
	if len(c.Terrains) == 0 {
		return fmt.Errorf("terrains table is empty")
	}

	var total float64
	for i, t := range c.Terrains {
		if t.Terrain == "" {
			return fmt.Errorf("terrains[%d]: missing terrain name", i)
		}
		if t.BaseProbability < 0 {
			return fmt.Errorf("terrains[%d] (%s): baseProbability %.3f must be >= 0",
				i, t.Terrain, t.BaseProbability)
		}
		if t.InheritProbability < 0 || t.InheritProbability > 1 {
			return fmt.Errorf("terrains[%d] (%s): inheritProbability %.3f must be in [0,1]",
				i, t.Terrain, t.InheritProbability)
		}
		if t.MaxDurability < 0 {
			return fmt.Errorf("terrains[%d] (%s): maxDurability %d must be >= 0",
				i, t.Terrain, t.MaxDurability)
		}
		total += t.BaseProbability
	}
	if total <= 0 {
		return fmt.Errorf("terrain probabilities sum to %.3f; at least one must be positive", total)
	}
	return nil
}
