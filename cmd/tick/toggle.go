package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle <id>...",
	Short:   "Toggle completion for one or more todos",
	Aliases: []string{"done"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, _, err := openStore(cfg)
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := parseTodoID(arg)
		if err != nil {
			return err
		}
		toggled, err := store.ToggleCompleted(id)
		if err != nil {
			return err
		}
		state := "not done"
		if toggled.Completed {
			state = "done"
		}
		fmt.Printf("Todo %d is now %s: %s\n", toggled.ID, state, toggled.Title)
	}
	return nil
}
