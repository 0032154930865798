package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "1.0.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rulctl",
		Short: "Engine RUL companion CLI",
		Long: `rulctl talks to the RUL inference service and renders offline sensor reports.

Examples:
  rulctl predict --features sensor_2=0.41,sensor_3=0.22,cycle=31 --current-cycle 31
  rulctl report --sensor 3 --engine 5 --data ./data/CMaps/train_FD001.txt`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("server", "http://127.0.0.1:5000", "Inference service base URL")
	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))

	// RUL_SERVER etc.
	viper.SetEnvPrefix("RUL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(newPredictCommand())
	rootCmd.AddCommand(newReportCommand())
	return rootCmd
}
