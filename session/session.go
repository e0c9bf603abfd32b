package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/spawner/arena"
	"github.com/milk9111/spawner/arkworld"
	"github.com/milk9111/spawner/ecs"
	"github.com/milk9111/spawner/ecs/entity"
	"github.com/milk9111/spawner/logger"
	"github.com/milk9111/spawner/obj"
	"github.com/milk9111/spawner/prefabs"
	"github.com/milk9111/spawner/spawn"
)

const playerSpeed = 180.0

// scene is a spawn backend that also owns the enemies it created. Drawing
// lives in draw.go so headless builds never link the renderer.
type scene interface {
	spawn.Backend
	Update(targetX, targetY float64)
	Count() int
}

type Options struct {
	ConfigPath string
	Backend    string // overrides the spec when set
	Seed       uint64
	DT         float64
}

// Session is one run: a player, a position provider, a backend and the
// controller tying them together. Config never changes within a session.
type Session struct {
	cfg        spawn.Config
	player     *arena.Player
	arena      *arena.Arena
	scene      scene
	controller *spawn.Controller
	log        *zap.Logger
}

func New(opts Options, log *zap.Logger) (*Session, error) {
	log = logger.OrNop(log)
	spec, err := prefabs.LoadSpawnerSpec(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg := configFromSpec(spec)
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	placement, err := arena.NewPlacement(spec.Placement, spec.PlacementScript)
	if err != nil {
		return nil, err
	}

	player := arena.NewPlayer(0, 0, playerSpeed)
	provider := arena.New(player, opts.Seed, placement)

	sc, err := newScene(cfg, opts.DT, log)
	if err != nil {
		return nil, err
	}

	controller, err := spawn.NewController(cfg, provider, sc, log)
	if err != nil {
		return nil, err
	}

	log.Info("session started",
		zap.String("backend", cfg.Backend),
		zap.String("prefab", cfg.Prefab),
		zap.Int("spawns_per_interval", cfg.SpawnsPerInterval),
		zap.Float64("interval", cfg.Interval),
		zap.Float64("radius", cfg.Radius),
		zap.Bool("enabled", cfg.Enabled),
	)

	return &Session{
		cfg:        cfg,
		player:     player,
		arena:      provider,
		scene:      sc,
		controller: controller,
		log:        log,
	}, nil
}

func configFromSpec(spec prefabs.SpawnerSpec) spawn.Config {
	return spawn.Config{
		Enabled:           spec.SpawnEnemies,
		Radius:            spec.EnemySpawnRadius,
		Prefab:            spec.EnemyPrefab,
		SpawnsPerInterval: spec.SpawnsPerInterval,
		Interval:          spec.SpawnInterval,
		Backend:           spec.Backend,
	}
}

func newScene(cfg spawn.Config, dt float64, log *zap.Logger) (scene, error) {
	switch cfg.Backend {
	case spawn.BackendObject:
		return obj.NewBackend(cfg.Prefab, dt, log), nil
	case spawn.BackendEntity:
		return entity.NewBackend(ecs.NewWorld(), cfg.Prefab, dt, log), nil
	case spawn.BackendArk:
		return arkworld.NewBackend(cfg.Prefab, dt, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", spawn.ErrInvalidConfig, cfg.Backend)
	}
}

// Update runs the spawner first, then lets existing enemies react.
func (s *Session) Update(dt float64) {
	s.controller.Tick(dt)
	s.scene.Update(s.player.X, s.player.Y)
}

func (s *Session) Player() *arena.Player {
	return s.player
}

func (s *Session) Controller() *spawn.Controller {
	return s.controller
}

func (s *Session) Enemies() int {
	return s.scene.Count()
}

func (s *Session) Config() spawn.Config {
	return s.cfg
}

