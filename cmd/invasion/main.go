// invasion is a terminal typing game: letters fall down the playfield and
// the player types them before too many pile up.
//
// Usage:
//
//	invasion play        - Play in this terminal
//	invasion serve       - Start SSH server for remote play
//	invasion rules       - Print the effective rules as YAML
//	invasion simulate    - Run a headless game with a scripted typist
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible letters
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alphabet-invasion/internal/config"
)

var (
	// Global flags
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alphabet Invasion - type the falling letters",
	Long: `Alphabet Invasion is a terminal typing game. Letters appear at the
top of the playfield, one per tick. Type the newest letter to clear it.
Every few hits the level goes up and letters arrive faster. The game is
over when too many letters pile up.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  rules     - Print the effective rules
  simulate  - Run a headless game

Examples:
  invasion play
  invasion play --difficulty hard
  invasion serve --ssh :2222
  invasion simulate --seed 7 --accuracy 0.8`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadRules resolves the rules file and applies a difficulty preset.
func loadRules(path, difficulty string) (config.Rules, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Rules{}, err
	}
	rules, err := config.LoadRules(path)
	if err != nil {
		return config.Rules{}, fmt.Errorf("load rules: %w", err)
	}
	config.ApplyPreset(&rules, preset)
	return rules, nil
}
