package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alphabet-invasion/internal/invasion"
)

var (
	flagSimTicks      int
	flagSimAccuracy   float64
	flagSimConfig     string
	flagSimDifficulty string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with a scripted typist",
	Long: `Play a game on a virtual clock without a terminal.

After every spawn tick the typist types the newest letter with the given
accuracy and otherwise lets the tick pass. The run stops when the letters
reach the end threshold or after --ticks spawn ticks.

Examples:
  invasion simulate
  invasion simulate --seed 7 --accuracy 0.9 --ticks 500
  invasion simulate --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Maximum spawn ticks")
	simulateCmd.Flags().Float64Var(&flagSimAccuracy, "accuracy", 0.7, "Chance in [0, 1] that the typist hits a letter")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom rules YAML")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagSimAccuracy < 0 || flagSimAccuracy > 1 {
		return fmt.Errorf("accuracy %v outside [0, 1]", flagSimAccuracy)
	}
	if flagSimTicks < 1 {
		return fmt.Errorf("ticks must be positive, got %d", flagSimTicks)
	}

	rules, err := loadRules(flagSimConfig, flagSimDifficulty)
	if err != nil {
		return err
	}

	res := invasion.Simulate(invasion.SimulationConfig{
		Rules:    rules,
		Seed:     flagSeed,
		MaxTicks: flagSimTicks,
		Accuracy: flagSimAccuracy,
	})

	out := cmd.OutOrStdout()
	outcome := "cut off"
	if res.Completed {
		outcome = "game over"
	}
	fmt.Fprintf(out, "Result:   %s after %d ticks (%s virtual)\n", outcome, res.Ticks, res.Elapsed)
	fmt.Fprintf(out, "Score:    %d\n", res.Final.Score)
	fmt.Fprintf(out, "Level:    %d\n", res.Final.Level)
	fmt.Fprintf(out, "Letters:  %d/%d\n", len(res.Final.Letters), rules.EndThreshold)
	fmt.Fprintf(out, "Interval: %dms\n", res.Interval)
	fmt.Fprintf(out, "States:   %d\n", res.States)
	return nil
}
