package main

import (
	"fmt"
	"strings"

	"github.com/AlexGronaCW/tickwork"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tickwork",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tickwork version %s\n", strings.TrimSpace(tickwork.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
