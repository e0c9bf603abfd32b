package spawn

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/spawner/logger"
)

type Position struct {
	X float64
	Y float64
}

// PositionProvider answers questions about the player.
type PositionProvider interface {
	IsPlayerDead() bool
	// PositionAroundPlayer returns a random point within radius of the player.
	PositionAroundPlayer(radius float64) Position
}

// Backend turns spawn positions into enemies. Prepare runs once before the
// first tick; Spawn never reports back.
type Backend interface {
	Prepare() error
	Spawn(pos Position)
}

// Controller runs the spawn cooldown. It is driven from the host frame loop
// and is not safe for concurrent use.
type Controller struct {
	cfg       Config
	positions PositionProvider
	backend   Backend
	log       *zap.Logger

	cooldown float64
	batches  int
	spawned  int
}

// NewController validates cfg and prepares backend. The first batch fires
// one full interval after the first enabled tick.
func NewController(cfg Config, positions PositionProvider, backend Backend, log *zap.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if positions == nil {
		return nil, ErrNoProvider
	}
	if backend == nil {
		return nil, ErrNoBackend
	}
	if err := backend.Prepare(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBackendNotReady, cfg.Backend, err)
	}

	return &Controller{
		cfg:       cfg,
		positions: positions,
		backend:   backend,
		log:       logger.OrNop(log).With(zap.String("backend", cfg.Backend)),
		cooldown:  cfg.Interval,
	}, nil
}

// Tick advances the cooldown by dt seconds and runs at most one batch.
func (c *Controller) Tick(dt float64) {
	if c == nil || !c.cfg.Enabled || c.positions.IsPlayerDead() {
		return
	}

	c.cooldown -= dt
	if c.cooldown > 0 {
		return
	}

	// Add rather than reset so overshoot carries into the next interval.
	c.cooldown += c.cfg.Interval
	c.spawnBatch()
}

func (c *Controller) spawnBatch() {
	for i := 0; i < c.cfg.SpawnsPerInterval; i++ {
		c.backend.Spawn(c.positions.PositionAroundPlayer(c.cfg.Radius))
	}
	c.batches++
	c.spawned += c.cfg.SpawnsPerInterval

	c.log.Debug("spawn batch",
		zap.Int("batch", c.batches),
		zap.Int("count", c.cfg.SpawnsPerInterval),
		zap.Float64("cooldown", c.cooldown),
	)
}

func (c *Controller) Config() Config {
	return c.cfg
}

// Cooldown returns the seconds left before the next batch.
func (c *Controller) Cooldown() float64 {
	return c.cooldown
}

func (c *Controller) Batches() int {
	return c.batches
}

func (c *Controller) Spawned() int {
	return c.spawned
}
