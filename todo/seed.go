package todo

import "time"

// StarterTodos returns the sample list written on first run so a new
// install has something to look at.
func StarterTodos() []Todo {
	return []Todo{
		{
			ID:          1,
			Title:       "Complete project proposal",
			Description: "Finish the Q2 project proposal with detailed timeline",
			Category:    CategoryWork,
			CreatedAt:   date(2024, time.January, 15),
			DueDate:     datePtr(2024, time.February, 1),
		},
		{
			ID:          2,
			Title:       "Buy groceries",
			Description: "Get ingredients for weekend dinner party",
			Completed:   true,
			Category:    CategoryPersonal,
			CreatedAt:   date(2024, time.January, 16),
			DueDate:     datePtr(2024, time.January, 20),
		},
		{
			ID:          3,
			Title:       "Study for exam",
			Description: "Review chapters 5-8 for the upcoming test",
			Category:    CategorySchool,
			CreatedAt:   date(2024, time.January, 17),
			DueDate:     datePtr(2024, time.January, 25),
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	value := date(year, month, day)
	return &value
}
