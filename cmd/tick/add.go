package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ameitner/tick/todo"
)

var addCmd = &cobra.Command{
	Use:     "add [title...]",
	Short:   "Add a new todo",
	Aliases: []string{"create"},
	RunE:    runAdd,
}

var (
	addTitle       string
	addDescription string
	addCategory    string
	addDue         string
	addDone        bool
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addTitle, "title", "", "Todo title (alternative to positional words)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (work, personal, school, health)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().BoolVar(&addDone, "done", false, "Create the todo already completed")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := addTitle
	if title == "" {
		title = strings.Join(args, " ")
	}

	description, err := resolveDescriptionFromStdin(addDescription, os.Stdin)
	if err != nil {
		return err
	}

	category, err := todo.ParseCategory(addCategory)
	if err != nil {
		return err
	}

	due, err := parseDueFlag(addDue)
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

	created, err := store.Create(title, todo.CreateOptions{
		Description: description,
		Category:    category,
		DueDate:     due,
		Completed:   addDone,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added todo %d: %s\n", created.ID, created.Title)
	return nil
}
