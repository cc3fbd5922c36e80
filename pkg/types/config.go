// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MarkingConfig selects which rule categories the ambiguity marker applies.
// Each category is enabled unless explicitly disabled.
type MarkingConfig struct {
	// NoVoicing disables voiced/voiceless consonant pair marking (-S).
	NoVoicing bool `json:"no_voicing" yaml:"no_voicing"`

	// NoYI disables i/y and í/ý marking (-Y).
	NoYI bool `json:"no_yi" yaml:"no_yi"`

	// NarrowSpaces leaves spaces literal instead of widening them (-W).
	NarrowSpaces bool `json:"narrow_spaces" yaml:"narrow_spaces"`

	// SpaceWidth is the LaTeX length used for wide spacing (default "5mm").
	SpaceWidth string `json:"space_width" yaml:"space_width"`
}

// OutputConfig controls where generated files are written.
type OutputConfig struct {
	// Dir is the directory for all outputs (default ".").
	Dir string `json:"dir" yaml:"dir"`

	// Base is the output file name without extension (default "diktat").
	Base string `json:"base" yaml:"base"`

	// Force overwrites existing outputs in batch mode.
	Force bool `json:"force" yaml:"force"`
}

// RenderConfig holds settings for document rendering.
type RenderConfig struct {
	// TemplatePath overrides the embedded LaTeX template when set.
	TemplatePath string `json:"template_path,omitempty" yaml:"template_path,omitempty"`

	// Title is printed at the top of both documents when set.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// CompileConfig holds settings for the external typesetting engine.
type CompileConfig struct {
	// Engine is the engine binary (default "xelatex").
	Engine string `json:"engine" yaml:"engine"`

	// Args are passed to the engine before the source file name.
	Args []string `json:"args" yaml:"args"`

	// Skip disables engine invocation; only .tex files are written.
	Skip bool `json:"skip" yaml:"skip"`
}

// Config groups all settings for one diktat run.
type Config struct {
	Marking MarkingConfig `json:"marking" yaml:"marking"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Render  RenderConfig  `json:"render" yaml:"render"`
	Compile CompileConfig `json:"compile" yaml:"compile"`

	// Debug enables debug-level logging (-d).
	Debug bool `json:"debug" yaml:"debug"`

	// LogFormat selects the log handler: "text" or "json".
	LogFormat string `json:"log_format" yaml:"log_format"`
}
