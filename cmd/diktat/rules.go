// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tichy-diktat/internal/marking"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active replacement rules as YAML",
	Long: `Rules prints the replacement table built from the current flags and
configuration, in matching order. Combine with -Y, -S or -W to see the
effect of disabling a category.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

// ruleEntry is the YAML form of one rule.
type ruleEntry struct {
	Key      string `yaml:"key"`
	Category string `yaml:"category"`
	Markup   string `yaml:"markup"`
}

func runRules(cmd *cobra.Command, args []string) error {
	table := marking.NewTable(loadConfig().Marking)

	entries := make([]ruleEntry, 0, table.Len())
	for _, r := range table.Rules() {
		entries = append(entries, ruleEntry{
			Key:      r.Key,
			Category: string(r.Category),
			Markup:   r.Markup.Render(),
		})
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]ruleEntry{"rules": entries}); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return enc.Close()
}
