package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/ChessArena/internal/config"
	"github.com/mitchelldurbincs/ChessArena/internal/game"
	"github.com/mitchelldurbincs/ChessArena/internal/game/core"
	"github.com/mitchelldurbincs/ChessArena/internal/game/events"
	"github.com/mitchelldurbincs/ChessArena/internal/game/events/subscribers"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	watch := flag.Bool("watch", false, "Keep running and reload the log level when the config file changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	bus := events.NewEventBus()
	if cfg.Logging.Events.Enabled {
		logSub := subscribers.NewLoggerSubscriber("event-logger", log.Logger, zerolog.DebugLevel)
		logSub.SetDevMode(cfg.Logging.Events.DevMode)
		bus.Subscribe(logSub)
	}

	selfTest(bus)

	arena, err := game.NewArena(game.ArenaConfig{
		Width:         cfg.Game.Arena.Width,
		Height:        cfg.Game.Arena.Height,
		StrictCapture: cfg.Game.Arena.StrictCapture,
		Logger:        log.Logger,
		EventBus:      bus,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create arena")
	}

	history := subscribers.NewHistoryRecorder("history", arena.GameID())
	bus.Subscribe(history)

	if cfg.Game.Setup.Standard {
		if err := game.SetupStandard(arena); err != nil {
			log.Fatal().Err(err).Msg("Failed to set up the standard position")
		}
	}
	fmt.Printf("Initial board:\n%s\n", arena.Board())

	for _, m := range cfg.Demo.Moves {
		from, to, err := game.ParseMove(m)
		if err != nil {
			log.Error().Err(err).Msg("Skipping malformed move")
			continue
		}
		if _, err := game.Play(arena, from, to); err != nil {
			// Illegal moves are ignored, as a front-end would
			log.Warn().Err(err).Str("move", m).Msg("Move rejected")
		}
	}

	if len(cfg.Demo.Moves) > 0 {
		fmt.Printf("Board after %d scripted moves:\n%s\n", len(history.Moves()), arena.Board())
		for _, rec := range history.Moves() {
			fmt.Println(rec)
		}
		if casualties := arena.Casualties(); len(casualties) > 0 {
			fmt.Printf("Captured units: %v\n", casualties)
		}
	}

	if *watch {
		watchConfig()
	}
}

// selfTest runs the reference scenario on its own empty arena: a white pawn
// advances, then a rook is recruited in the corner and its moves are listed.
func selfTest(bus events.Publisher) {
	arena, err := game.NewArena(game.ArenaConfig{
		Width:    game.StandardSize,
		Height:   game.StandardSize,
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create self-test arena")
	}

	pawnSq := core.NewSquare(0, 1)
	pawn, err := arena.Recruit(game.White, &pawnSq, core.WhitePawnType)
	if err != nil {
		log.Fatal().Err(err).Msg("Self-test recruit failed")
	}

	moves, err := arena.LegalMoves(pawn)
	if err != nil {
		log.Fatal().Err(err).Msg("Self-test legal moves failed")
	}
	fmt.Printf("Self-test: pawn at %s can reach %v\n", pawnSq, moves)

	if len(moves) > 1 {
		if _, err := arena.MoveTo(pawn, moves[1]); err != nil {
			log.Fatal().Err(err).Msg("Self-test move failed")
		}
	}

	rookSq := core.NewSquare(0, 0)
	rook, err := arena.Recruit(game.White, &rookSq, core.RookType)
	if err != nil {
		log.Fatal().Err(err).Msg("Self-test recruit failed")
	}
	rookMoves, err := arena.LegalMoves(rook)
	if err != nil {
		log.Fatal().Err(err).Msg("Self-test legal moves failed")
	}
	fmt.Printf("Self-test: rook at %s can reach %v\n\n%s\n", rookSq, rookMoves, arena.PlainBoard())
}

func watchConfig() {
	if config.ConfigFilePath() == "" {
		log.Warn().Msg("No config file in use, nothing to watch")
		return
	}

	config.WatchConfig(func(c *config.Config) {
		level, _ := config.ParseLevel(c.Logging.Level)
		zerolog.SetGlobalLevel(level)
		log.Info().Str("level", level.String()).Msg("Config reloaded")
	})
	log.Info().Str("file", config.ConfigFilePath()).Msg("Watching config, press Ctrl+C to exit")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
}

func setupLogging(level, format string) {
	logLevel, err := config.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
