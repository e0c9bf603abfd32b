//go:build !headless

package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/milk9111/spawner/common"
	"github.com/milk9111/spawner/logger"
	"github.com/milk9111/spawner/prefabs"
	"github.com/milk9111/spawner/session"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	cameraSmoothness = 0.15
	playerRadius     = 8
)

var (
	playerColor     = color.RGBA{R: 240, G: 220, B: 80, A: 255}
	deadPlayerColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	radiusColor     = color.RGBA{R: 255, G: 255, B: 255, A: 40}
)

type Game struct {
	frames int
	debug  bool
	paused bool

	ui     *ebitenui.UI
	status *widget.Text

	opts    session.Options
	session *session.Session
	watcher *prefabs.Watcher
	log     *zap.Logger

	camX, camY float32
}

func NewGame(opts session.Options, watcher *prefabs.Watcher, debug bool, log *zap.Logger) (*Game, error) {
	g, err := newGame(opts, watcher, debug, log)
	if err != nil {
		return nil, err
	}
	g.ui = NewPauseUI(g)
	g.refreshStatus()
	return g, nil
}

func newGame(opts session.Options, watcher *prefabs.Watcher, debug bool, log *zap.Logger) (*Game, error) {
	s, err := session.New(opts, log)
	if err != nil {
		return nil, err
	}
	return &Game{
		debug:   debug,
		opts:    opts,
		session: s,
		watcher: watcher,
		log:     logger.OrNop(log),
	}, nil
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePause()
	}
	if g.paused {
		if g.ui != nil {
			g.ui.Update()
		}
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.handleInput(dt)
	g.step(dt)
	return nil
}

// step advances the session and the camera. Nothing ticks while paused.
func (g *Game) step(dt float64) {
	if g.paused {
		return
	}
	g.session.Update(dt)

	p := g.session.Player()
	g.camX = common.Lerp(g.camX, float32(p.X)-baseWidth/2, cameraSmoothness)
	g.camY = common.Lerp(g.camY, float32(p.Y)-baseHeight/2, cameraSmoothness)
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.refreshStatus()
}

func (g *Game) resume() {
	g.paused = false
}

func (g *Game) revive() {
	g.session.Player().Revive()
	g.refreshStatus()
}

func (g *Game) kill() {
	g.session.Player().Kill()
	g.refreshStatus()
}

// switchBackend rebuilds the session on another backend. The override sticks
// for later hot restarts. A failed switch keeps the current backend.
func (g *Game) switchBackend(name string) {
	prev := g.opts.Backend
	g.opts.Backend = name
	if !g.restart("backend " + name) {
		g.opts.Backend = prev
	}
}

func (g *Game) refreshStatus() {
	if g.status == nil {
		return
	}
	p := g.session.Player()
	c := g.session.Controller()
	g.status.Label = fmt.Sprintf("backend: %s  enemies: %d  batches: %d  dead: %v",
		g.session.Config().Backend, g.session.Enemies(), c.Batches(), p.Dead)
}

func (g *Game) handleInput(dt float64) {
	p := g.session.Player()

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	p.Move(dx, dy, dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.kill()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.revive()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.restart("manual")
	}
}

// pollWatcher restarts the session when a prefab or script changes. A
// session that fails to build leaves the current one running.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.restart(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("prefab watcher error", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) restart(reason string) bool {
	next, err := session.New(g.opts, g.log)
	if err != nil {
		g.log.Error("session restart failed, keeping current run", zap.String("reason", reason), zap.Error(err))
		return false
	}
	g.log.Info("session restarted", zap.String("reason", reason))
	g.session = next
	g.refreshStatus()
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := float64(g.camX), float64(g.camY)
	p := g.session.Player()
	cfg := g.session.Config()

	if g.debug {
		vector.StrokeCircle(screen, float32(p.X-camX), float32(p.Y-camY), float32(cfg.Radius), 1, radiusColor, true)
	}

	g.session.Draw(screen, camX, camY)

	clr := playerColor
	if p.Dead {
		clr = deadPlayerColor
	}
	vector.DrawFilledCircle(screen, float32(p.X-camX), float32(p.Y-camY), playerRadius, clr, true)

	c := g.session.Controller()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  backend: %s  enemies: %d  batches: %d  next: %.2fs  dead: %v\n[WASD] move  [K] kill  [R] revive  [F5] restart  [Esc] pause",
		ebiten.ActualFPS(), cfg.Backend, g.session.Enemies(), c.Batches(), c.Cooldown(), p.Dead,
	))

	if g.paused && g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
