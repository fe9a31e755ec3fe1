package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "booking-service",
	Short: "Badminton club booking service: semesters, schedules, sessions, bookings",
	Long:  `HTTP API for club membership and session booking. Commands: api, migrate, seed.`,
	RunE:  runAPI, // default: run API (same as "booking-service api")
}

func init() {
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the root command and returns the error (for main to log.Fatal).
func Execute() error {
	return rootCmd.Execute()
}
