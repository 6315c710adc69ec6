package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ameitner/tick/todo"
)

var updateCmd = &cobra.Command{
	Use:     "update <id>",
	Short:   "Update a todo",
	Aliases: []string{"edit"},
	Args:    cobra.ExactArgs(1),
	RunE:    runUpdate,
}

var (
	updateTitle       string
	updateDescription string
	updateCategory    string
	updateDue         string
	updateClearDue    bool
	updateDone        bool
	updateNotDone     bool
)

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category (work, personal, school, health, none)")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date (YYYY-MM-DD)")
	updateCmd.Flags().BoolVar(&updateClearDue, "clear-due", false, "Remove the due date")
	updateCmd.Flags().BoolVar(&updateDone, "done", false, "Mark completed")
	updateCmd.Flags().BoolVar(&updateNotDone, "not-done", false, "Mark not completed")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseTodoID(args[0])
	if err != nil {
		return err
	}

	opts, err := buildUpdateOptions(cmd.Flags())
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, _, err := openStore(cfg)
	if err != nil {
		return err
	}

	updated, err := store.Update(id, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Updated todo %d: %s\n", updated.ID, updated.Title)
	return nil
}

// buildUpdateOptions maps only the flags that were set; unset fields are
// left untouched on the stored todo.
func buildUpdateOptions(flags *pflag.FlagSet) (todo.UpdateOptions, error) {
	var opts todo.UpdateOptions

	if flags.Changed("title") {
		opts.Title = &updateTitle
	}
	if flags.Changed("description") {
		description, err := resolveDescriptionFromStdin(updateDescription, os.Stdin)
		if err != nil {
			return todo.UpdateOptions{}, err
		}
		opts.Description = &description
	}
	if flags.Changed("category") {
		category, err := todo.ParseCategory(updateCategory)
		if err != nil {
			return todo.UpdateOptions{}, err
		}
		opts.Category = &category
	}
	if flags.Changed("due") {
		due, err := parseDueFlag(updateDue)
		if err != nil {
			return todo.UpdateOptions{}, err
		}
		opts.DueDate = due
	}
	if updateClearDue {
		if opts.DueDate != nil {
			return todo.UpdateOptions{}, fmt.Errorf("--due and --clear-due are mutually exclusive")
		}
		opts.ClearDueDate = true
	}
	if updateDone && updateNotDone {
		return todo.UpdateOptions{}, fmt.Errorf("--done and --not-done are mutually exclusive")
	}
	if updateDone || updateNotDone {
		completed := updateDone
		opts.Completed = &completed
	}
	return opts, nil
}
