// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tichy-diktat/internal/latex"
	"github.com/pdiddy/tichy-diktat/internal/render"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the typesetting engine and template are usable",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().String("template", "", "LaTeX template file to check (default: built-in)")
	doctorCmd.Flags().String("engine", latex.DefaultEngine, "typesetting engine binary")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cmd.Flags().Changed("template") {
		cfg.Render.TemplatePath, _ = cmd.Flags().GetString("template")
	}
	if cmd.Flags().Changed("engine") {
		cfg.Compile.Engine, _ = cmd.Flags().GetString("engine")
	}

	out := cmd.OutOrStdout()
	problems := 0

	engine := latex.NewEngine(cfg.Compile)
	if err := engine.Available(); err != nil {
		fmt.Fprintf(out, "engine:   missing (%v)\n", err)
		problems++
	} else {
		fmt.Fprintf(out, "engine:   %s ok\n", engine.Name())
	}

	r, err := render.New(cfg.Render.TemplatePath)
	if err != nil {
		fmt.Fprintf(out, "template: error (%v)\n", err)
		problems++
	} else {
		fmt.Fprintf(out, "template: %s ok\n", r.Source())
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}
