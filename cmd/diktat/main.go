// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the diktat CLI. It reads dictation
// text and produces an exercise sheet with letter choices marked for the
// student, plus a solution sheet with the original text.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tichy-diktat/internal/latex"
	"github.com/pdiddy/tichy-diktat/internal/logging"
	"github.com/pdiddy/tichy-diktat/internal/render"
	"github.com/pdiddy/tichy-diktat/internal/sheet"
	"github.com/pdiddy/tichy-diktat/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE from the loaded config.
var logger = logging.Discard()

// rootCmd generates a sheet from stdin, or one sheet per file argument.
var rootCmd = &cobra.Command{
	Use:   "diktat [files...]",
	Short: "Turn dictation text into a printable exercise sheet",
	Long: `diktat converts dictation text into two LaTeX documents and typesets
them with xelatex:

  <output>.pdf         exercise sheet for the student
  <output>.solved.pdf  solution sheet with the original text

On the exercise sheet voiced/voiceless consonants (b/p, d/t, h/ch, ...) and
i/y vowels are printed as stacked pairs, capitals inside sentences are
lowercased, and spaces are widened so the student can join the letters by
hand and circle the ones that should be capitals.

Without arguments the text is read from standard input until end of input
(Ctrl+D). With file arguments every file produces its own pair of sheets.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger = logging.New(os.Stderr, cfg.Debug, logging.ParseFormat(cfg.LogFormat))
		logger.Debug("configuration", "config", fmt.Sprintf("%+v", cfg))
		return nil
	},
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./diktat.yaml or ~/.config/diktat/diktat.yaml)")
	pf.BoolP("debug", "d", false, "debug messages")
	pf.String("log-format", "text", "log format: text or json")
	pf.BoolP("no-yi", "Y", false, "do not mark i/y")
	pf.BoolP("no-voicing", "S", false, "do not mark voiced/voiceless consonants")
	pf.BoolP("narrow-spaces", "W", false, "narrower spaces between words")
	pf.String("space-width", "5mm", "width of the gap that replaces a space")

	f := rootCmd.Flags()
	f.StringP("output", "o", "diktat", "output file name without extension")
	f.String("output-dir", ".", "directory for generated files")
	f.String("template", "", "LaTeX template file (default: built-in)")
	f.String("title", "", "title printed on both sheets")
	f.String("engine", latex.DefaultEngine, "typesetting engine binary")
	f.Bool("no-compile", false, "write .tex files only, do not run the engine")
	f.Bool("force", false, "regenerate files that already exist (batch mode)")

	bindFlags(rootCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	renderer, err := render.New(cfg.Render.TemplatePath)
	if err != nil {
		return err
	}

	opts := sheet.Options{
		Marking:  cfg.Marking,
		Output:   cfg.Output,
		Title:    cfg.Render.Title,
		Renderer: renderer,
		Logger:   logger,
	}
	if !cfg.Compile.Skip {
		engine := latex.NewEngine(cfg.Compile)
		if cfg.Debug {
			engine.Output = os.Stderr
		}
		opts.Compiler = engine
	}

	if len(args) > 0 {
		result := sheet.GenerateBatch(cmd.Context(), args, opts, cmd.OutOrStdout())
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed", result.Failed)
		}
		return nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "Finish input with Ctrl+D")
	}
	raw, err := sheet.ReadInput(cmd.InOrStdin())
	if err != nil {
		return err
	}

	res, err := sheet.Generate(cmd.Context(), raw, opts)
	if err != nil {
		return err
	}
	logResults(logger, res)
	return nil
}

func logResults(log *slog.Logger, res sheet.Result) {
	for _, c := range res.Compiled {
		if c.OK() {
			log.Info("sheet ready", "pdf", c.PDFPath)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("diktat")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "diktat"))
		}
	}

	viper.SetEnvPrefix("DIKTAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig assembles the run configuration from flags, environment and
// config file.
func loadConfig() types.Config {
	cfg := types.Config{
		Marking: types.MarkingConfig{
			NoVoicing:    viper.GetBool(keyNoVoicing),
			NoYI:         viper.GetBool(keyNoYI),
			NarrowSpaces: viper.GetBool(keyNarrowSpaces),
			SpaceWidth:   viper.GetString(keySpaceWidth),
		},
		Output: types.OutputConfig{
			Dir:   viper.GetString(keyOutputDir),
			Base:  viper.GetString(keyOutput),
			Force: viper.GetBool(keyForce),
		},
		Render: types.RenderConfig{
			TemplatePath: viper.GetString(keyTemplate),
			Title:        viper.GetString(keyTitle),
		},
		Compile: types.CompileConfig{
			Engine: viper.GetString(keyEngine),
			Skip:   viper.GetBool(keyNoCompile),
		},
		Debug:     viper.GetBool(keyDebug),
		LogFormat: viper.GetString(keyLogFormat),
	}
	if viper.IsSet(keyEngineArgs) {
		cfg.Compile.Args = viper.GetStringSlice(keyEngineArgs)
	}
	return cfg
}
