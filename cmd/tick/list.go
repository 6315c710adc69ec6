package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ameitner/tick/internal/config"
	"github.com/ameitner/tick/internal/ui"
	"github.com/ameitner/tick/todo"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List todos",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listSearch     string
	listCategories []string
	listStatus     string
	listSort       string
	listDescending bool
	listGrid       bool
	listJSON       bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by title/description substring")
	listCmd.Flags().StringArrayVarP(&listCategories, "category", "c", nil, "Filter by category (repeatable)")
	listCmd.Flags().StringVar(&listStatus, "status", string(todo.StatusUpcoming), "Status filter (all, upcoming, archived)")
	listCmd.Flags().StringVar(&listSort, "sort", string(todo.SortDueDate), "Sort key (due, created, title)")
	listCmd.Flags().BoolVar(&listDescending, "desc-order", false, "Sort descending")
	listCmd.Flags().BoolVar(&listGrid, "grid", false, "Render as cards instead of a table")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	criteria, err := buildListCriteria(cfg)
	if err != nil {
		return err
	}

	store, _, err := openStore(cfg)
	if err != nil {
		return err
	}

	visible := todo.Apply(store.All(), criteria)

	if listJSON {
		encoded, err := json.MarshalIndent(visible, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	if len(visible) == 0 {
		fmt.Println("No todos found.")
	} else if listGrid {
		fmt.Println(ui.FormatCards(todosAsCards(visible), terminalWidth()))
	} else {
		fmt.Print(formatTodoTable(visible, time.Now()))
	}

	counts := todo.CountByStatus(store.All())
	fmt.Printf("%d upcoming, %d archived, %d total\n", counts.Upcoming, counts.Archived, counts.Total)
	return nil
}

func buildListCriteria(cfg *config.Config) (todo.Criteria, error) {
	criteria := todo.DefaultCriteria()
	criteria.Search = listSearch

	categories, err := parseCategoryFlags(listCategories)
	if err != nil {
		return todo.Criteria{}, err
	}
	if categories != nil {
		criteria.Categories = categories
	}

	status, err := todo.ParseStatusFilter(listStatus)
	if err != nil {
		return todo.Criteria{}, err
	}
	criteria.Status = status

	sortKey, err := todo.ParseSortKey(listSort)
	if err != nil {
		return todo.Criteria{}, err
	}
	if cfg.SortProfile() == config.SortProfileDueDate && sortKey != todo.SortDueDate {
		return todo.Criteria{}, fmt.Errorf("sort key %q not available under the %q sort profile", sortKey, cfg.SortProfile())
	}
	criteria.Sort = sortKey

	if listDescending {
		criteria.Direction = todo.SortDescending
	}
	return criteria, nil
}

func formatTodoTable(todos []todo.Todo, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "DONE", "CATEGORY", "DUE", "AGE", "TITLE"}, len(todos))
	for _, t := range todos {
		done := ""
		if t.Completed {
			done = "x"
		}
		builder.AddRow([]string{
			fmt.Sprintf("%d", t.ID),
			done,
			t.Category.DisplayName(),
			ui.FormatDate(t.DueDate),
			ui.FormatTimeAgo(t.CreatedAt, now),
			ui.TruncateTableCell(t.Title),
		})
	}
	return builder.String()
}

func todosAsCards(todos []todo.Todo) []ui.Card {
	cards := make([]ui.Card, 0, len(todos))
	for _, t := range todos {
		cards = append(cards, ui.Card{
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category.DisplayName(),
			Due:         ui.FormatDate(t.DueDate),
			Completed:   t.Completed,
		})
	}
	return cards
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
