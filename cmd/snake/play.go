package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/snake"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: neon).

Controls:
  Arrows/WASD   - Steer (arrows also move the mode cursor)
  Enter         - Start / confirm mode
  1/2/3         - Pick Classic, Walls or Obstacles
  P             - Pause / resume
  R             - Restart (after game over)
  Esc           - Back to menu
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower start and floor
  normal - The variant's own speed curve
  hard   - Faster start, bigger speed steps
  fixed  - No speed progression

Examples:
  snake play
  snake play classic
  snake play --mode walls
  snake play --difficulty fixed
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Skip the menu and start this mode: classic, walls, obstacles")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := variantArg(args)

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(variant, flagConfig)
	if err != nil {
		if errors.Is(err, config.ErrUnknownVariant) {
			return fmt.Errorf("%w\nRun 'snake list' to see available variants", err)
		}
		return err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	rt := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}
	// Get terminal size; Normalized falls back to 80x24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt = rt.Normalized()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - high scores stay in memory
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := snake.New(cfg, storage.NewKeeper(store, variant, logger), rt.Seed)
	logger.Info("starting", "variant", variant, "difficulty", preset, "seed", rt.Seed, "high_score", game.HighScore())

	if flagMode != "" {
		mode, err := snake.ParseMode(flagMode)
		if err != nil {
			return err
		}
		if err := game.Start(mode, 0); err != nil {
			return fmt.Errorf("cannot start %s: %w", mode, err)
		}
	}

	if err := tui.Run(game, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
