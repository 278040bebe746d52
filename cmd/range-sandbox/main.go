package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/lixenwraith/hitscan/audio"
	"github.com/lixenwraith/hitscan/config"
	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/engine"
	"github.com/lixenwraith/hitscan/event"
	"github.com/lixenwraith/hitscan/input"
	"github.com/lixenwraith/hitscan/journal"
	"github.com/lixenwraith/hitscan/logging"
	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/render"
	"github.com/lixenwraith/hitscan/status"
	"github.com/lixenwraith/hitscan/system"
	"github.com/lixenwraith/hitscan/telemetry"
	"github.com/lixenwraith/hitscan/vmath"
	"github.com/lixenwraith/hitscan/weapon"
)

var (
	configFlag = flag.String("config", "", "Config file (toml, json or yaml); empty uses defaults and HITSCAN_ env")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	seedFlag   = flag.Int64("seed", 0, "RNG seed for cone sampling and target placement; 0 seeds from time")
)

func main() {
	flag.Parse()

	cfg, missing, err := config.LoadOptional(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := logging.Setup(cfg.LogConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	if missing {
		logger.Warn().Str("path", *configFlag).Msg("Config file not found, using defaults")
	}

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("Sandbox failed")
		fmt.Fprintf(os.Stderr, "range-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	reg := status.NewRegistry()

	// Metrics
	provider, reader := telemetry.NewManualProvider()
	otel.SetMeterProvider(provider)
	defer provider.Shutdown(context.Background())
	meter, err := telemetry.New(provider)
	if err != nil {
		return err
	}

	// Shot journal
	sinks := event.Fanout{logging.NewEventLogger(logger), meter}
	var store *journal.Store
	if cfg.Journal.Enabled {
		store, err = journal.Open(cfg.Journal.Path, logger)
		if err != nil {
			return err
		}
		sinks = append(sinks, store)
		// Idempotent; the normal exit path closes explicitly
		defer store.Close()
	}

	// Audio
	player := audio.NewCuePlayer(cfg.AudioConfig(), nil, reg)
	if err := player.Start(); err != nil {
		logger.Warn().Err(err).Msg("Audio unavailable, continuing muted")
	} else {
		defer player.Stop()
	}
	if *muteFlag && !player.IsMuted() {
		player.ToggleMute()
	}
	player.SetListener(audio.Listener{Right: vmath.AxisX})

	// Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	screen.HideCursor()

	// Simulation
	clock := engine.NewSimClock(parameter.MaxTickDelta)
	sched := engine.NewScheduler(reg)
	sys := system.NewWeaponSystem(clock, sched, reg, logger)

	scene := newRangeScene(cfg.Sandbox.Depth, cfg.Sandbox.Targets, rng, logger)
	gun := turret{yaw: reg.Floats.Get("sandbox.yaw")}
	gauge := render.NewConeGauge()
	overlay := render.NewOverlay(clock.Now)
	fx := &flash{clock: clock.Now}
	info := &hud{outcome: "press a to aim"}
	sinks = append(sinks, info)

	wc, err := cfg.WeaponConfig()
	if err != nil {
		screen.Fini()
		return err
	}
	gunLog := logger.With().Str("component", "weapon").Logger()
	rifle, err := weapon.New(wc, weapon.Deps{
		Self:      gunEntity,
		Owner:     player{},
		Muzzle:    gun,
		Query:     scene.world,
		Damage:    scene.health,
		Scheduler: sched,
		Indicator: gauge,
		Audio:     player,
		Particles: fx,
		Debug:     overlay,
		Sink:      sinks,
		Logger:    &gunLog,
		Rand:      rng,
		Registry:  reg,
	})
	if err != nil {
		screen.Fini()
		return err
	}
	if err := sys.Add(rifle); err != nil {
		screen.Fini()
		return err
	}

	tps := cfg.Sandbox.TPS
	if tps <= 0 {
		tps = parameter.SandboxTPS
	}
	loop := engine.NewLoop(nil, time.Second/time.Duration(tps), reg, func(dt float64) {
		sys.Update(dt)
		scene.draw(screen, gun, rifle, gauge, overlay, fx, info)
	})

	stopFlush := make(chan struct{})
	flushDone := make(chan struct{})
	if store != nil {
		core.Go(func() {
			defer close(flushDone)
			ticker := time.NewTicker(parameter.SandboxJournalFlush)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if err := store.Flush(); err != nil {
						logger.Error().Err(err).Msg("Journal flush failed")
					}
				case <-stopFlush:
					return
				}
			}
		})
	} else {
		close(flushDone)
	}

	logger.Info().Str("weapon", rifle.Name()).Int64("seed", seed).Int("tps", tps).Msg("Range open")
	loop.Start()

	keys := input.NewMachine(nil)
	for running := true; running; {
		intent := keys.Process(screen.PollEvent())
		if intent == nil {
			continue
		}
		switch intent.Type {
		case input.IntentQuit:
			running = false
		case input.IntentResize:
			screen.Sync()
		case input.IntentToggleMute:
			player.ToggleMute()
		case input.IntentTurnLeft:
			gun.turn(-yawStep * float64(max(intent.Count, 1)))
		case input.IntentTurnRight:
			gun.turn(yawStep * float64(max(intent.Count, 1)))
		case input.IntentAimStart:
			sys.Submit(system.Command{Type: system.CommandAimStart})
		case input.IntentAimStop:
			sys.Submit(system.Command{Type: system.CommandAimStop})
		case input.IntentFire:
			sys.Submit(system.Command{Type: system.CommandFire})
		case input.IntentReload:
			rounds := intent.Count
			if rounds == 0 {
				rounds = wc.Ammo
			}
			sys.Submit(system.Command{Type: system.CommandReload, Amount: rounds})
		}
	}

	loop.Stop()
	sys.Destroy()
	close(stopFlush)
	<-flushDone
	screen.Fini()
	core.SetCrashCleanup(nil)

	report(os.Stdout, reg, reader, store, rifle.Name(), logger)
	if store != nil {
		return store.Close()
	}
	return nil
}
