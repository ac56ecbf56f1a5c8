// Package filter derives the displayed task list from the raw collection.
// Apply is pure: it never mutates its input and identical inputs always
// produce identical output, including order.
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"task-manager-cli/internal/models"
)

var collator = collate.New(language.English, collate.IgnoreCase)

var priorityRank = map[models.Priority]int{
	models.PriorityLow:    1,
	models.PriorityMedium: 2,
	models.PriorityHigh:   3,
}

// Apply filters tasks down to those matching opts, then sorts the result.
// Filters compose with AND; the empty search string and StatusAll are
// no-ops. The sort is stable, so tasks the comparator cannot distinguish
// keep their relative insertion order.
func Apply(tasks []models.Task, opts models.FilterOptions) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, opts) {
			out = append(out, t)
		}
	}

	cmp := comparator(opts.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if opts.SortOrder == models.OrderDesc {
			c = -c
		}
		return c < 0
	})
	return out
}

func matches(t models.Task, opts models.FilterOptions) bool {
	// Search is matched literally, lower-cased on both sides. Whitespace is
	// not trimmed.
	if opts.Search != "" &&
		!strings.Contains(strings.ToLower(t.Title), strings.ToLower(opts.Search)) {
		return false
	}
	switch opts.Status {
	case models.StatusCompleted:
		if !t.IsCompleted {
			return false
		}
	case models.StatusPending:
		if t.IsCompleted {
			return false
		}
	}
	if opts.Priority != nil && t.Priority != *opts.Priority {
		return false
	}
	if opts.Category != nil && t.Category != *opts.Category {
		return false
	}
	return true
}

func comparator(field models.SortField) func(a, b models.Task) int {
	switch field {
	case models.SortAlphabetical:
		return func(a, b models.Task) int {
			return collator.CompareString(a.Title, b.Title)
		}
	case models.SortPriority:
		return func(a, b models.Task) int {
			// Unknown or missing priorities rank below low.
			return priorityRank[a.Priority] - priorityRank[b.Priority]
		}
	case models.SortDueDate:
		return compareDueDates
	default: // models.SortCreated
		return func(a, b models.Task) int {
			ta, _ := models.ParseTime(a.CreatedAt)
			tb, _ := models.ParseTime(b.CreatedAt)
			return ta.Compare(tb)
		}
	}
}

// compareDueDates orders earlier due dates first under asc. Tasks with no
// parseable due date sort after dated ones.
func compareDueDates(a, b models.Task) int {
	ta, okA := models.ParseTime(a.DueDate)
	tb, okB := models.ParseTime(b.DueDate)
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
