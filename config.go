package partition

import (
	"github.com/FrenchMajesty/partition/pkg/persistence"
	"go.uber.org/zap"
)

const (
	// DefaultStatePath is the default location for forest state persistence
	DefaultStatePath = "./forest_state.bin"
)

// Config holds configuration for the Partitioner
type Config struct {
	// Persistence loads and saves the forest. If nil, uses file-based persistence at StatePath.
	Persistence persistence.ForestPersistence

	// StatePath is the state file used when Persistence is nil. If empty, uses DefaultStatePath.
	StatePath string

	// Logger receives structured logs. If nil, logging is disabled.
	Logger *zap.Logger

	// AutoRegister makes Find, Union, Connected and ClassSize register unknown
	// elements as singletons instead of failing with disjoint_set.ErrNotFound.
	AutoRegister bool
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.StatePath == "" {
		c.StatePath = DefaultStatePath
	}

	if c.Persistence == nil {
		c.Persistence = persistence.NewFileForestPersistence(c.StatePath)
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
