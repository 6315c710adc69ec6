// Package main implements the tick CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tick",
	Short:         "Tick - a todo list for the terminal",
	SilenceUsage:  true,
	SilenceErrors: false,
}
