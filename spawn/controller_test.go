package spawn

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap/zaptest"
)

type fakeProvider struct {
	dead   bool
	player Position
	calls  int
	radii  []float64
}

func (p *fakeProvider) IsPlayerDead() bool { return p.dead }

func (p *fakeProvider) PositionAroundPlayer(radius float64) Position {
	p.calls++
	p.radii = append(p.radii, radius)
	// walk around the circle so every call returns a distinct point
	a := float64(p.calls)
	return Position{X: p.player.X + math.Cos(a)*radius/2, Y: p.player.Y + math.Sin(a)*radius/2}
}

type fakeBackend struct {
	prepared   int
	prepareErr error
	spawned    []Position
}

func (b *fakeBackend) Prepare() error {
	b.prepared++
	return b.prepareErr
}

func (b *fakeBackend) Spawn(pos Position) {
	b.spawned = append(b.spawned, pos)
}

func testConfig() Config {
	return Config{
		Enabled:           true,
		Radius:            10,
		Prefab:            "enemy.yaml",
		SpawnsPerInterval: 3,
		Interval:          1,
		Backend:           BackendEntity,
	}
}

func newTestController(t *testing.T, cfg Config, p *fakeProvider, b *fakeBackend) *Controller {
	t.Helper()
	c, err := NewController(cfg, p, b, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func run(c *Controller, dt float64, ticks int) {
	for i := 0; i < ticks; i++ {
		c.Tick(dt)
	}
}

func TestControllerTwoAndAHalfSeconds(t *testing.T) {
	p := &fakeProvider{}
	b := &fakeBackend{}
	c := newTestController(t, testConfig(), p, b)

	run(c, 0.25, 10)

	if c.Batches() != 2 {
		t.Fatalf("expected 2 batches, got %d", c.Batches())
	}
	if len(b.spawned) != 6 || c.Spawned() != 6 {
		t.Fatalf("expected 6 spawns, backend=%d controller=%d", len(b.spawned), c.Spawned())
	}
	if math.Abs(c.Cooldown()-0.5) > 1e-9 {
		t.Fatalf("expected 0.5s cooldown, got %v", c.Cooldown())
	}
	if b.prepared != 1 {
		t.Fatalf("expected Prepare once, got %d", b.prepared)
	}
}

func TestControllerGating(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		dead    bool
	}{
		{"disabled", false, false},
		{"player_dead", true, true},
		{"disabled_and_dead", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Enabled = tc.enabled
			p := &fakeProvider{dead: tc.dead}
			b := &fakeBackend{}
			c := newTestController(t, cfg, p, b)

			run(c, 0.1, 1000)

			if len(b.spawned) != 0 || c.Batches() != 0 {
				t.Fatalf("expected no spawns, got %d", len(b.spawned))
			}
			if p.calls != 0 {
				t.Fatalf("expected no position requests, got %d", p.calls)
			}
			if c.Cooldown() != cfg.Interval {
				t.Fatalf("cooldown should not move while gated, got %v", c.Cooldown())
			}
		})
	}
}

func TestControllerResumesAfterRevive(t *testing.T) {
	p := &fakeProvider{}
	b := &fakeBackend{}
	c := newTestController(t, testConfig(), p, b)

	run(c, 0.5, 1)
	p.dead = true
	run(c, 0.5, 100)
	p.dead = false
	run(c, 0.5, 1)

	if c.Batches() != 1 {
		t.Fatalf("expected the paused cooldown to expire on revive, got %d batches", c.Batches())
	}
}

func TestControllerCadenceUnderJitter(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		perBatch int
		dts      []float64
	}{
		{"steady_60hz", 1, 1, []float64{1.0 / 60}},
		{"jitter", 0.3, 4, []float64{0.016, 0.033, 0.007, 0.05, 0.021}},
		{"slow_frames", 0.1, 2, []float64{0.09, 0.04}},
		{"max_interval", 2, 100, []float64{0.017, 0.015}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Interval = tc.interval
			cfg.SpawnsPerInterval = tc.perBatch
			p := &fakeProvider{}
			b := &fakeBackend{}
			c := newTestController(t, cfg, p, b)

			elapsed := 0.0
			for i := 0; i < 3000; i++ {
				dt := tc.dts[i%len(tc.dts)]
				c.Tick(dt)
				elapsed += dt
			}

			want := math.Floor(elapsed / tc.interval)
			got := float64(c.Batches())
			if math.Abs(got-want) > 1 {
				t.Fatalf("expected ~%v batches after %.3fs, got %v", want, elapsed, got)
			}
			if len(b.spawned) != c.Batches()*tc.perBatch {
				t.Fatalf("spawn count %d != batches*per %d", len(b.spawned), c.Batches()*tc.perBatch)
			}
			if c.Cooldown() > tc.interval || c.Cooldown() <= -tc.dts[0]*10 {
				t.Fatalf("cooldown out of range: %v", c.Cooldown())
			}
		})
	}
}

func TestControllerOneBatchPerTick(t *testing.T) {
	p := &fakeProvider{}
	b := &fakeBackend{}
	c := newTestController(t, testConfig(), p, b)

	c.Tick(3.5)
	if c.Batches() != 1 {
		t.Fatalf("expected a single batch for a long frame, got %d", c.Batches())
	}
	if math.Abs(c.Cooldown()-(-1.5)) > 1e-9 {
		t.Fatalf("expected overshoot carried as -1.5, got %v", c.Cooldown())
	}

	// The debt is paid back one batch per tick.
	c.Tick(0)
	c.Tick(0)
	if c.Batches() != 3 {
		t.Fatalf("expected catch-up batches, got %d", c.Batches())
	}
	c.Tick(0)
	if c.Batches() != 3 {
		t.Fatalf("cooldown should be positive again, got %d batches", c.Batches())
	}
}

func TestControllerPassesRadius(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 7.5
	p := &fakeProvider{player: Position{X: 100, Y: -20}}
	b := &fakeBackend{}
	c := newTestController(t, cfg, p, b)

	run(c, 0.5, 4)

	for _, r := range p.radii {
		if r != 7.5 {
			t.Fatalf("expected radius 7.5, got %v", r)
		}
	}
	for _, pos := range b.spawned {
		if d := math.Hypot(pos.X-p.player.X, pos.Y-p.player.Y); d > cfg.Radius {
			t.Fatalf("spawn %v outside radius (%v)", pos, d)
		}
	}
}

func TestNewControllerErrors(t *testing.T) {
	prepErr := errors.New("prefab missing")
	tests := []struct {
		name     string
		mutate   func(*Config)
		provider PositionProvider
		backend  Backend
		want     error
	}{
		{"zero_radius", func(c *Config) { c.Radius = 0 }, &fakeProvider{}, &fakeBackend{}, ErrInvalidConfig},
		{"nan_radius", func(c *Config) { c.Radius = math.NaN() }, &fakeProvider{}, &fakeBackend{}, ErrInvalidConfig},
		{"too_many", func(c *Config) { c.SpawnsPerInterval = 101 }, &fakeProvider{}, &fakeBackend{}, ErrInvalidConfig},
		{"too_few", func(c *Config) { c.SpawnsPerInterval = 0 }, &fakeProvider{}, &fakeBackend{}, ErrInvalidConfig},
		{"interval_low", func(c *Config) { c.Interval = 0.05 }, &fakeProvider{}, &fakeBackend{}, ErrInvalidConfig},
		{"interval_high", func(c *Config) { c.Interval = 2.5 }, &fakeProvider{}, &fakeBackend{}, ErrInvalidConfig},
		{"no_prefab", func(c *Config) { c.Prefab = "" }, &fakeProvider{}, &fakeBackend{}, ErrInvalidConfig},
		{"bad_backend", func(c *Config) { c.Backend = "gpu" }, &fakeProvider{}, &fakeBackend{}, ErrInvalidConfig},
		{"nil_provider", func(*Config) {}, nil, &fakeBackend{}, ErrNoProvider},
		{"nil_backend", func(*Config) {}, &fakeProvider{}, nil, ErrNoBackend},
		{"prepare_fails", func(*Config) {}, &fakeProvider{}, &fakeBackend{prepareErr: prepErr}, ErrBackendNotReady},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			_, err := NewController(cfg, tc.provider, tc.backend, nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("prepare_error_wrapped", func(t *testing.T) {
		_, err := NewController(testConfig(), &fakeProvider{}, &fakeBackend{prepareErr: prepErr}, nil)
		if !errors.Is(err, prepErr) {
			t.Fatalf("expected prepare error in chain, got %v", err)
		}
	})
}

func TestConfigBounds(t *testing.T) {
	cfg := testConfig()
	cfg.SpawnsPerInterval = MaxSpawnsPerInterval
	cfg.Interval = MinInterval
	if err := cfg.Validate(); err != nil {
		t.Fatalf("lower interval bound should be valid: %v", err)
	}
	cfg.Interval = MaxInterval
	cfg.SpawnsPerInterval = MinSpawnsPerInterval
	if err := cfg.Validate(); err != nil {
		t.Fatalf("upper interval bound should be valid: %v", err)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
