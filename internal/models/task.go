package models

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
	CategoryOther    Category = "other"
)

// Task mirrors the server's task representation. Timestamps stay as the
// raw strings the server emits (zone-less ISO 8601); use ParseTime when an
// actual time.Time is needed.
type Task struct {
	ID          int      `json:"id"`
	UserID      int      `json:"user_id"`
	Title       string   `json:"title"`
	IsCompleted bool     `json:"is_completed"`
	CreatedAt   string   `json:"created_at"`
	Priority    Priority `json:"priority,omitempty"`
	Category    Category `json:"category,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
}

type TaskStats struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	PendingTasks   int     `json:"pending_tasks"`
	CompletionRate float64 `json:"completion_rate"`
	Message        string  `json:"message,omitempty"`
}

type CreateTaskRequest struct {
	Title string `json:"title"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

type TaskListResponse struct {
	Tasks     []Task `json:"tasks"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusCompleted StatusFilter = "completed"
	StatusPending   StatusFilter = "pending"
)

type SortField string

const (
	SortCreated      SortField = "created"
	SortPriority     SortField = "priority"
	SortDueDate      SortField = "dueDate"
	SortAlphabetical SortField = "alphabetical"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// FilterOptions describes the task list view. Priority and Category are
// pointers so "not filtering" and "filtering on the zero value" stay
// distinct.
type FilterOptions struct {
	Search    string
	Status    StatusFilter
	Priority  *Priority
	Category  *Category
	SortBy    SortField
	SortOrder SortOrder
}

// DefaultFilters matches the initial state of the task list view.
func DefaultFilters() FilterOptions {
	return FilterOptions{
		Status:    StatusAll,
		SortBy:    SortCreated,
		SortOrder: OrderDesc,
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses the timestamp formats the server is known to emit.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
