package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultArtifactPath = "index.html"
	defaultReportFormat = "text"
	defaultOutputDir    = "."
	defaultFixtureRows  = 100
	defaultFixtureSeed  = 1
)

// defaultOverrides are the operator-level defaults read from the config
// file. They apply only where the corresponding flag was not set explicitly.
type defaultOverrides struct {
	Format    string
	NoColor   *bool
	OutputDir string
}

func loadDefaultOverrides() defaultOverrides {
	overrides := defaultOverrides{}

	if viper.IsSet("defaults.format") {
		overrides.Format = viper.GetString("defaults.format")
	}

	if viper.IsSet("defaults.no_color") {
		val := viper.GetBool("defaults.no_color")
		overrides.NoColor = &val
	}

	if viper.IsSet("defaults.output_dir") {
		overrides.OutputDir = viper.GetString("defaults.output_dir")
	}

	return overrides
}

// applyConfigDefaults merges config file defaults into the runtime config
// when the user did not explicitly override the corresponding flag.
func applyConfigDefaults() {
	overrides := loadDefaultOverrides()

	if overrides.Format != "" {
		setStringFlagIfUnset(auditCmd.Flags(), "format", overrides.Format)
	}

	if overrides.NoColor != nil {
		applyBoolDefault(rootCmd.PersistentFlags(), "no-color", *overrides.NoColor, func(v bool) {
			noColor = v
		})
	}

	if overrides.OutputDir != "" {
		setStringFlagIfUnset(auditCmd.Flags(), "output-dir", overrides.OutputDir)
		setStringFlagIfUnset(fixturesCmd.Flags(), "output-dir", overrides.OutputDir)
	}
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func setStringFlagIfUnset(flags *pflag.FlagSet, name, value string) {
	if flags == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	_ = flag.Value.Set(value)
}
