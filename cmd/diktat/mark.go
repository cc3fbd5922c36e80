// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tichy-diktat/internal/sheet"
)

var markCmd = &cobra.Command{
	Use:   "mark [file]",
	Short: "Print the marked text without rendering documents",
	Long: `Mark runs the text pipeline on a file (or standard input) and prints
the result. Use --stage to stop after capitalization normalization or to
print the input as read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMark,
}

func init() {
	markCmd.Flags().String("stage", "marked", "pipeline stage to print: raw, normalized, or marked")
	rootCmd.AddCommand(markCmd)
}

func runMark(cmd *cobra.Command, args []string) error {
	stage, _ := cmd.Flags().GetString("stage")

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := sheet.ReadInput(in)
	if err != nil {
		return err
	}
	s := sheet.Prepare(raw, loadConfig().Marking)

	out := cmd.OutOrStdout()
	switch stage {
	case "raw":
		fmt.Fprint(out, s.Raw)
	case "normalized":
		fmt.Fprint(out, s.Normalized)
	case "marked":
		fmt.Fprint(out, s.Marked)
	default:
		return fmt.Errorf("unknown stage %q: use raw, normalized, or marked", stage)
	}
	return nil
}
