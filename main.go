//go:build !headless

package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/spawner/logger"
	"github.com/milk9111/spawner/prefabs"
	"github.com/milk9111/spawner/session"
)

func main() {
	configPath := flag.String("config", "spawner.yaml", "spawner spec in prefabs/ (embedded copy used when absent on disk)")
	backend := flag.String("backend", "", "override backend: object, entity or ark")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for spawn positions")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	debug := flag.Bool("debug", false, "enable debug mode (development logger, radius overlay)")
	watch := flag.Bool("watch", false, "restart the run when files under prefabs/ change")
	flag.Parse()

	logCfg := logger.DefaultConfig()
	if *debug {
		logCfg = logger.DevelopmentConfig()
	}
	logCfg.Level = *logLevel
	zl, err := logger.New(logCfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			zl.Fatal("prefab watcher", zap.Error(err))
		}
		defer watcher.Close()
	}

	opts := session.Options{
		ConfigPath: *configPath,
		Backend:    *backend,
		Seed:       *seed,
		DT:         1.0 / float64(ebiten.TPS()),
	}
	game, err := NewGame(opts, watcher, *debug, zl)
	if err != nil {
		zl.Fatal("start", zap.Error(err))
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("spawner")

	if err := ebiten.RunGame(game); err != nil {
		zl.Fatal("run", zap.Error(err))
	}
}
