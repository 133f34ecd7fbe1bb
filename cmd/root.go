package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var noColor bool

// logger starts as a nop so helpers stay usable before PersistentPreRunE
// swaps in the production logger.
var logger = zap.NewNop().Sugar()

var rootCmd = &cobra.Command{
	Use:   "pagesec",
	Short: "Offline adversarial audit of single-file web applications",
	Long: `pagesec inspects an HTML artifact for injection and robustness defects
without executing it. Checks are shallow lexical heuristics over the embedded
script text; verdicts are advisory signal, not proof.`,
	Run: func(cmd *cobra.Command, args []string) {
		printBanner()
		_ = cmd.Help()
	},
}

func printBanner() {
	banner := figure.NewFigure("pagesec", "doom", true)
	banner.Print()
	fmt.Println(colorInfo("offline web artifact auditor — advisory signal only"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the rootCmd literal to avoid an
	// initialization cycle through applyConfigDefaults.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".pagesec")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		applyConfigDefaults()

		if noColor {
			color.NoColor = true
		}

		// init logger
		l, _ := zap.NewProduction()
		logger = l.Sugar()

		return nil
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pagesec.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(structureCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(versionCmd)
}
