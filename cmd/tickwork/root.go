package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tickwork",
	Short: "Tickwork drives blocking operations from a cooperative tick loop",
	Long:  `Tickwork runs long, blocking operations on worker goroutines and hands their results back to a single-threaded, poll-driven host loop.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the client configuration YAML")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
