package spawn

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig   = errors.New("spawn: invalid config")
	ErrNoProvider      = errors.New("spawn: position provider is nil")
	ErrNoBackend       = errors.New("spawn: backend is nil")
	ErrBackendNotReady = errors.New("spawn: backend not ready")
)

// Backend names accepted in Config.Backend.
const (
	BackendObject = "object"
	BackendEntity = "entity"
	BackendArk    = "ark"
)

const (
	MinSpawnsPerInterval = 1
	MaxSpawnsPerInterval = 100
	MinInterval          = 0.1
	MaxInterval          = 2.0
)

// Config is fixed for the lifetime of a Controller.
type Config struct {
	Enabled           bool
	Radius            float64
	Prefab            string
	SpawnsPerInterval int
	Interval          float64 // seconds
	Backend           string
}

func DefaultConfig() Config {
	return Config{
		Enabled:           true,
		Radius:            10,
		Prefab:            "enemy.yaml",
		SpawnsPerInterval: 1,
		Interval:          1,
		Backend:           BackendObject,
	}
}

func (c Config) Validate() error {
	if !(c.Radius > 0) {
		return fmt.Errorf("%w: radius %v must be > 0", ErrInvalidConfig, c.Radius)
	}
	if c.SpawnsPerInterval < MinSpawnsPerInterval || c.SpawnsPerInterval > MaxSpawnsPerInterval {
		return fmt.Errorf("%w: spawns per interval %d outside [%d, %d]", ErrInvalidConfig, c.SpawnsPerInterval, MinSpawnsPerInterval, MaxSpawnsPerInterval)
	}
	if !(c.Interval >= MinInterval && c.Interval <= MaxInterval) {
		return fmt.Errorf("%w: interval %v outside [%v, %v]", ErrInvalidConfig, c.Interval, MinInterval, MaxInterval)
	}
	if c.Prefab == "" {
		return fmt.Errorf("%w: prefab is empty", ErrInvalidConfig)
	}
	switch c.Backend {
	case BackendObject, BackendEntity, BackendArk:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	return nil
}
