package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/modes"
	"github.com/lixenwraith/invaders/render"
	"golang.org/x/term"
)

var (
	configFlag     = flag.String("config", "", "Path to a YAML config file")
	difficultyFlag = flag.String("difficulty", "", "Starting difficulty: easy, normal, hard, hardcore or a configured profile")
	debugFlag      = flag.Bool("debug", false, "Write a debug log to logs/invaders.log")
	muteFlag       = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)
	screen.SetStyle(render.StyleScreen)
	screen.HideCursor()

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio))
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing without sound: %v", err)
	}
	defer sound.Cleanup()
	sound.Play(core.SoundStartup)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, constants.InputQueueSize)
	core.Go(func() { pollEvents(screen, events) })

	return play(ctx, cfg, screen, events, sound)
}

// loadConfig reads the config file and applies the command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if *difficultyFlag != "" {
		if _, err := cfg.Lookup(*difficultyFlag); err != nil {
			return nil, err
		}
		cfg.DefaultDifficulty = strings.ToLower(*difficultyFlag)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// pollEvents feeds terminal events to the game until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// play alternates between the menu and game sessions until the player exits
// Replaying with the same difficulty restarts the existing game; a new difficulty builds a new one
func play(ctx context.Context, cfg *config.Config, screen tcell.Screen, events <-chan tcell.Event, sound core.SoundPlayer) error {
	bindings := modes.DefaultBindings()
	menu := modes.NewMenu(cfg.DifficultyNames(), cfg.DefaultDifficulty, bindings)
	input := modes.NewInputHandler(events, bindings)

	var game *engine.Game
	for {
		if menu.Run(ctx, events, screen) != modes.ChoiceNewGame {
			return nil
		}

		difficulty, err := cfg.Lookup(menu.Difficulty())
		if err != nil {
			return err
		}
		if game != nil && game.Difficulty().Name == difficulty.Name {
			game.Restart()
		} else {
			game = engine.NewGame(cfg, difficulty, sound)
		}

		session := &engine.Session{
			Game:    game,
			Input:   input,
			Surface: screen,
		}
		outcome, err := session.Run(ctx)
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		menu.SetStatus(summary(outcome, game))

		if ctx.Err() != nil {
			return nil
		}
	}
}

// summary describes a finished run for the menu status line
func summary(outcome engine.Outcome, game *engine.Game) string {
	switch outcome {
	case engine.OutcomeWon:
		return fmt.Sprintf("You won! Final score: %d", game.Score())
	case engine.OutcomeLost:
		return fmt.Sprintf("Game over on level %d. Score: %d", game.Level(), game.Score())
	default:
		return fmt.Sprintf("Left on level %d. Score: %d", game.Level(), game.Score())
	}
}
