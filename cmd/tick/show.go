package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ameitner/tick/internal/markdown"
	"github.com/ameitner/tick/internal/ui"
	"github.com/ameitner/tick/todo"
)

var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

const showDescriptionWidth = 80

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, _, err := openStore(cfg)
	if err != nil {
		return err
	}

	items := make([]todo.Todo, 0, len(args))
	for _, arg := range args {
		id, err := parseTodoID(arg)
		if err != nil {
			return err
		}
		item, err := store.Get(id)
		if err != nil {
			return err
		}
		items = append(items, *item)
	}

	if showJSON {
		encoded, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	for i, item := range items {
		if i > 0 {
			fmt.Println()
		}
		printTodoDetail(item)
	}
	return nil
}

func printTodoDetail(t todo.Todo) {
	status := "upcoming"
	if t.Completed {
		status = "archived"
	}
	fmt.Printf("ID:       %d\n", t.ID)
	fmt.Printf("Title:    %s\n", t.Title)
	fmt.Printf("Status:   %s\n", status)
	fmt.Printf("Category: %s\n", orDash(t.Category.DisplayName()))
	fmt.Printf("Due:      %s\n", ui.FormatDate(t.DueDate))
	fmt.Printf("Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", orDash(markdown.Render(showDescriptionWidth, t.Description)))
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
