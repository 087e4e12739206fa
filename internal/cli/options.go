package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/AndreyAkinshin/solidcheck/internal/config"
	"github.com/AndreyAkinshin/solidcheck/internal/discover"
	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// flagAliases maps legacy flag names to their current names.
var flagAliases = map[string]string{
	"freecad":   "tool",
	"fcstd-dir": "input-dir",
}

// Options holds the command-line flags.
type Options struct {
	ConfigPath     string
	Tool           string
	Script         string
	InputDir       string
	BaselineDir    string
	Pattern        string
	Recursive      bool
	MatchPercent   float64
	AbsTolerance   float64
	TimeoutSeconds float64
	Verbose        bool
	Quiet          bool
	Format         string
}

func newRootCommand(a *app) *cobra.Command {
	opts := &a.opts

	cmd := &cobra.Command{
		Use:   "solidcheck",
		Short: "Check per-solid volumes of model files against stored baselines",
		Long: `Run a geometry tool on every model file, extract per-solid volumes from its
JSON report, and compare them with <baseline-dir>/<stem>.json.

Exit codes: 0 all files passed, 2 mismatch or missing baseline, 3 error.`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runCheck(cmd.Context(), a, cmd.Flags())
			a.exitCode = code
			return err
		},
	}
	cmd.SetVersionTemplate("solidcheck {{.Version}}\n")

	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizeFlagName)
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "configuration file (JSON or YAML)")
	flags.StringVar(&opts.Tool, "tool", "", "geometry tool executable (alias --freecad)")
	flags.StringVar(&opts.Script, "script", "", "metrics script passed to the tool")
	flags.StringVar(&opts.InputDir, "input-dir", "", "directory with model files (alias --fcstd-dir)")
	flags.StringVar(&opts.BaselineDir, "baseline-dir", "", "directory with <stem>.json baselines")
	flags.StringVar(&opts.Pattern, "pattern", discover.DefaultPattern, "glob pattern for model files")
	flags.BoolVar(&opts.Recursive, "recursive", false, "search input-dir recursively")
	flags.Float64Var(&opts.MatchPercent, "match-pct", tolerance.DefaultMatchPercent, "required match percentage in (0, 100]")
	flags.Float64Var(&opts.AbsTolerance, "abs-tol-mm3", tolerance.DefaultAbsoluteTolerance, "absolute tolerance floor in mm^3")
	flags.Float64Var(&opts.TimeoutSeconds, "timeout", config.DefaultTimeoutSeconds, "per-file tool timeout in seconds (0 disables)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print passing files and diagnostics")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "print only failures and the summary")
	flags.StringVar(&opts.Format, "format", FormatText, "output format (text|json)")

	return cmd
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// resolveConfig loads the config file if one was given and lets explicitly
// set flags override it.
func resolveConfig(opts *Options, flags *pflag.FlagSet) (*config.Config, []string, error) {
	cfg := config.Default()
	var warnings []string
	if opts.ConfigPath != "" {
		loaded, w, err := config.LoadAndValidate(opts.ConfigPath)
		if err != nil {
			return nil, w, err
		}
		cfg, warnings = loaded, w
	}

	if flags.Changed("tool") {
		cfg.Tool = opts.Tool
	}
	if flags.Changed("script") {
		cfg.Script = opts.Script
	}
	if flags.Changed("input-dir") {
		cfg.InputDir = opts.InputDir
	}
	if flags.Changed("baseline-dir") {
		cfg.BaselineDir = opts.BaselineDir
	}
	if flags.Changed("pattern") {
		cfg.Pattern = opts.Pattern
	}
	if flags.Changed("recursive") {
		cfg.Recursive = opts.Recursive
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = &opts.TimeoutSeconds
	}
	if flags.Changed("match-pct") {
		cfg.Comparison.MatchPercent = &opts.MatchPercent
	}
	if flags.Changed("abs-tol-mm3") {
		cfg.Comparison.AbsoluteTolerance = &opts.AbsTolerance
	}

	if err := config.Validate(cfg); err != nil {
		return nil, warnings, err
	}
	if err := config.RequirePaths(cfg); err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}
