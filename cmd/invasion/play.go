package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alphabet-invasion/internal/core"
	"github.com/vovakirdan/alphabet-invasion/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  a-z        - Type the newest (top) letter
  Enter      - Play again (after game over)
  Esc/Ctrl+C - Quit

Difficulty options change only the starting spawn interval:
  easy   - 800ms
  normal - 600ms
  hard   - 450ms

Examples:
  invasion play
  invasion play --difficulty easy
  invasion play --config ./my-invasion.yaml
  invasion play --log-file invasion.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) error {
	rules, err := loadRules(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	// stderr shares the terminal with the game, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		out = f
	}
	logger, err := tui.NewLogger(out, "invasion", flagLogLevel)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if frameW, frameH := tui.FrameSize(rules); cfg.ScreenW < frameW || cfg.ScreenH < frameH+2 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the playfield needs %dx%d\n",
			cfg.ScreenW, cfg.ScreenH, frameW, frameH+2)
	}

	logger.Info("starting game", "interval", rules.InitialInterval, "seed", flagSeed)
	if err := tui.Run(rules, cfg, logger); err != nil {
		logger.Error("game exited", "error", err)
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
