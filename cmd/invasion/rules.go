package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alphabet-invasion/internal/config"
)

var (
	flagRulesConfig     string
	flagRulesDifficulty string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rules",
	Long: `Print the rules a game would use, as YAML.

Rules are looked up in this order:
  --config path
  ~/.invasion/configs/invasion.yaml
  ./configs/invasion.yaml
  built-in defaults

The output is a valid rules file and can be edited and passed back
with --config.

Examples:
  invasion rules
  invasion rules --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&flagRulesConfig, "config", "", "Path to custom rules YAML")
	rulesCmd.Flags().StringVar(&flagRulesDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runRules(cmd *cobra.Command, _ []string) error {
	rules, err := loadRules(flagRulesConfig, flagRulesDifficulty)
	if err != nil {
		return err
	}
	data, err := config.MarshalRules(rules)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
