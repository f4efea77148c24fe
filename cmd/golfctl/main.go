package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golfctl",
	Short: "Operational commands for the golf tracker",
	Long: `golfctl runs maintenance jobs directly against the configured storage,
using the same environment variables as the API server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "golfctl: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	_ = godotenv.Load()
	Execute()
}
