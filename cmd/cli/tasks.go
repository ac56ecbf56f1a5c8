package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"task-manager-cli/internal/filter"
	"task-manager-cli/internal/models"
	"task-manager-cli/internal/utils"
)

func listCmd() *cobra.Command {
	var (
		search   string
		status   string
		priority string
		category string
		sortBy   string
		order    string
		offline  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if offline {
				cached, ok, err := a.db.CachedTasks()
				if err != nil || !ok {
					return fmt.Errorf("no cached task list available")
				}
				a.tasks.SetTasks(cached)
			} else {
				a.tasks.FetchTasks(context.Background(), "")
				if msg := a.tasks.Err(); msg != "" {
					// Fall back to the cached snapshot when the server is
					// unreachable; stale beats nothing.
					cached, ok, cacheErr := a.db.CachedTasks()
					if cacheErr != nil || !ok {
						return fmt.Errorf("%s", msg)
					}
					fmt.Printf("Warning: %s; showing cached tasks\n", msg)
					a.tasks.SetTasks(cached)
				} else {
					a.snapshot()
				}
			}

			opts := models.DefaultFilters()
			opts.Search = search
			if status != "" {
				opts.Status = models.StatusFilter(status)
			}
			if priority != "" {
				p := models.Priority(priority)
				opts.Priority = &p
			}
			if category != "" {
				c := models.Category(category)
				opts.Category = &c
			}
			if sortBy != "" {
				opts.SortBy = models.SortField(sortBy)
			}
			if order != "" {
				opts.SortOrder = models.SortOrder(order)
			}

			view := filter.Apply(a.tasks.Tasks(), opts)
			if len(view) == 0 {
				fmt.Println("No tasks")
				return nil
			}
			for _, t := range view {
				printTask(t)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter titles by substring")
	cmd.Flags().StringVar(&status, "status", "all", "all, completed or pending")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "filter by priority (high, medium, low)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category (work, personal, health, learning, other)")
	cmd.Flags().StringVar(&sortBy, "sort", "created", "sort field (created, priority, dueDate, alphabetical)")
	cmd.Flags().StringVar(&order, "order", "desc", "sort order (asc, desc)")
	cmd.Flags().BoolVar(&offline, "offline", false, "show the cached snapshot without contacting the server")

	return cmd
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			if err := utils.ValidateTaskTitle(title); err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if !a.tasks.CreateTask(context.Background(), title) {
				return fmt.Errorf("%s", a.tasks.Err())
			}
			a.snapshot()
			created := a.tasks.Tasks()[0]
			fmt.Printf("Created task %d: %s\n", created.ID, created.Title)
			return nil
		},
	}
}

func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			completed := true
			if !a.tasks.UpdateTask(context.Background(), id, nil, &completed) {
				return fmt.Errorf("%s", a.tasks.Err())
			}
			a.snapshot()
			fmt.Printf("Task %d completed\n", id)
			return nil
		},
	}
}

func editCmd() *cobra.Command {
	var (
		title   string
		pending bool
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a task's title or reopen it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			var titlePtr *string
			if cmd.Flags().Changed("title") {
				if err := utils.ValidateTaskTitle(title); err != nil {
					return err
				}
				titlePtr = &title
			}
			var completedPtr *bool
			if pending {
				f := false
				completedPtr = &f
			}
			if titlePtr == nil && completedPtr == nil {
				return fmt.Errorf("nothing to change; pass --title or --pending")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if !a.tasks.UpdateTask(context.Background(), id, titlePtr, completedPtr) {
				return fmt.Errorf("%s", a.tasks.Err())
			}
			a.snapshot()
			fmt.Printf("Task %d updated\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().BoolVar(&pending, "pending", false, "reopen a completed task")

	return cmd
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if !a.tasks.DeleteTask(context.Background(), id) {
				return fmt.Errorf("%s", a.tasks.Err())
			}
			a.snapshot()
			fmt.Printf("Task %d deleted\n", id)
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.tasks.FetchStats(context.Background())
			stats, ok := a.tasks.Stats()
			if ok {
				if err := a.db.SaveStats(stats); err != nil {
					a.log.Warn("failed to cache stats")
				}
			} else {
				cached, found, err := a.db.CachedStats()
				if err != nil || !found {
					return fmt.Errorf("stats unavailable")
				}
				fmt.Println("Warning: server unreachable; showing cached stats")
				stats = cached
			}

			fmt.Printf("Total:      %d\n", stats.TotalTasks)
			fmt.Printf("Completed:  %d\n", stats.CompletedTasks)
			fmt.Printf("Pending:    %d\n", stats.PendingTasks)
			fmt.Printf("Completion: %.1f%%\n", stats.CompletionRate)
			if stats.Message != "" {
				fmt.Println(stats.Message)
			}
			return nil
		},
	}
}

func printTask(t models.Task) {
	mark := " "
	if t.IsCompleted {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %4d  %s", mark, t.ID, t.Title)
	if t.Priority != "" {
		line += fmt.Sprintf("  (%s)", t.Priority)
	}
	if t.DueDate != "" {
		line += fmt.Sprintf("  due %s", t.DueDate)
	}
	fmt.Println(line)
}
