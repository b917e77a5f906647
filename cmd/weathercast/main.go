package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weathercast",
	Short: "Weathercast - cached weather conditions and forecasts",
	Long: `Weathercast fetches current weather conditions for one or more
locations, serving recent results from a local cache, and aggregates
multi-day forecasts into a per-date report.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
