// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Viper keys. Environment variables use the DIKTAT_ prefix and upper case,
// e.g. DIKTAT_NO_YI=true.
const (
	keyDebug        = "debug"
	keyLogFormat    = "log_format"
	keyNoYI         = "no_yi"
	keyNoVoicing    = "no_voicing"
	keyNarrowSpaces = "narrow_spaces"
	keySpaceWidth   = "space_width"
	keyOutput       = "output"
	keyOutputDir    = "output_dir"
	keyTemplate     = "template"
	keyTitle        = "title"
	keyEngine       = "engine"
	keyEngineArgs   = "engine_args"
	keyNoCompile    = "no_compile"
	keyForce        = "force"
)

// flagKeys maps flag names to viper keys.
var flagKeys = map[string]string{
	"debug":         keyDebug,
	"log-format":    keyLogFormat,
	"no-yi":         keyNoYI,
	"no-voicing":    keyNoVoicing,
	"narrow-spaces": keyNarrowSpaces,
	"space-width":   keySpaceWidth,
	"output":        keyOutput,
	"output-dir":    keyOutputDir,
	"template":      keyTemplate,
	"title":         keyTitle,
	"engine":        keyEngine,
	"no-compile":    keyNoCompile,
	"force":         keyForce,
}

// bindFlags binds every known flag of cmd to its viper key.
func bindFlags(cmd *cobra.Command) {
	bind := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok {
				_ = viper.BindPFlag(key, f)
			}
		})
	}
	bind(cmd.PersistentFlags())
	bind(cmd.Flags())
}
