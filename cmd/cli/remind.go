package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-manager-cli/internal/models"
	"task-manager-cli/internal/reminders"
)

// terminalNotifier prints reminders to stdout with a terminal bell.
type terminalNotifier struct{}

func (terminalNotifier) Notify(title, body string) {
	fmt.Printf("\a[%s] %s\n", title, body)
}

func remindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run in the foreground and fire due-date reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := context.Background()
			a.tasks.FetchTasks(ctx, string(models.StatusPending))
			if msg := a.tasks.Err(); msg != "" {
				return fmt.Errorf("%s", msg)
			}
			a.tasks.FetchStats(ctx)

			sched := reminders.NewScheduler(terminalNotifier{}, a.cfg.Reminder.Lead, a.log)
			defer sched.Stop()

			n := sched.ScheduleAll(a.tasks.Tasks())
			if err := sched.StartDailySummary(a.cfg.Reminder.DailySpec, a.tasks.Stats); err != nil {
				return err
			}
			fmt.Printf("Watching %d reminders (daily summary at %q). Ctrl-C to stop.\n",
				n, a.cfg.Reminder.DailySpec)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			fmt.Println("Stopping reminders")
			return nil
		},
	}
}
