// Package main implements the entry point for the FTFL careers API server,
// which serves job postings and applications, contact-form leads and the
// newsletter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careers-api",
	Short: "FTFL careers site API server",
	Long: "careers-api serves job postings and applications, contact-form leads " +
		"and newsletter subscriptions over HTTP, backed by PostgreSQL.",
	SilenceUsage: true,
	// Running the binary without a subcommand starts the server.
	RunE: runServe,
}

func init() {
	registerServeFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
