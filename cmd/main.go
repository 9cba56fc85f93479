package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trade-journal",
	Short: "A CLI for managing the trading journal services",
	Long:  `Trade Journal is the backend for a trading journal: trade CRUD, performance analytics, Monte Carlo simulation, AI insights and price alerting.`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
