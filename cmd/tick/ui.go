package main

import (
	"github.com/spf13/cobra"

	"github.com/ameitner/tick/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive todo UI",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, files, err := openStore(cfg)
	if err != nil {
		return err
	}
	return tui.Run(store, files, cfg)
}
