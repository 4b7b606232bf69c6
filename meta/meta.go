// meta/meta.go
package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable thresholds of the planner.
type Config struct {
	// OpeningMaxDistance is the max number of hops from a base to a forced opening egg.
	OpeningMaxDistance int `yaml:"opening_max_distance"`
	// OpeningAntsPerHop is the number of ants per hop needed to afford an opening egg.
	OpeningAntsPerHop int `yaml:"opening_ants_per_hop"`
	// OpeningMaxTurns is the number of turns during which the opening book may be built.
	OpeningMaxTurns int `yaml:"opening_max_turns"`
	// OpeningPairEggs forces every egg tied at the nearest distance when exactly this many tie.
	OpeningPairEggs int `yaml:"opening_pair_eggs"`
	// ScarcityRatio abandons the opening when crystals < ratio * eggs while leading in ants.
	ScarcityRatio float64 `yaml:"scarcity_ratio"`
	// BaseSeedStrength is the marker placed on every base before lines are grown.
	BaseSeedStrength int `yaml:"base_seed_strength"`
}

// Default returns the thresholds used when no file is given.
func Default() Config {
	return Config{
		OpeningMaxDistance: 4,
		OpeningAntsPerHop:  3,
		OpeningMaxTurns:    1,
		OpeningPairEggs:    2,
		ScarcityRatio:      1.2,
		BaseSeedStrength:   1,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate rejects thresholds that would disable the planner's invariants.
func (c Config) Validate() error {
	switch {
	case c.OpeningMaxDistance < 1:
		return fmt.Errorf("opening_max_distance must be positive, got %d", c.OpeningMaxDistance)
	case c.OpeningAntsPerHop < 1:
		return fmt.Errorf("opening_ants_per_hop must be positive, got %d", c.OpeningAntsPerHop)
	case c.OpeningMaxTurns < 0:
		return fmt.Errorf("opening_max_turns must not be negative, got %d", c.OpeningMaxTurns)
	case c.OpeningPairEggs < 1:
		return fmt.Errorf("opening_pair_eggs must be positive, got %d", c.OpeningPairEggs)
	case c.ScarcityRatio <= 0:
		return fmt.Errorf("scarcity_ratio must be positive, got %v", c.ScarcityRatio)
	case c.BaseSeedStrength < 0:
		return fmt.Errorf("base_seed_strength must not be negative, got %d", c.BaseSeedStrength)
	}
	return nil
}
