package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/rce/internal/agenda"
)

var watchSchedule string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the next-dates report now and on a cron schedule",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "", "Cron expression (default watch.schedule from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	schedule := cfg.Watch.Schedule
	if watchSchedule != "" {
		schedule = watchSchedule
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := func() {
		today := agenda.Today(clock)
		occs, err := loadOccurrences(ctx, today)
		if err != nil {
			slog.Error("report failed", "component", "watch", "error", err)
			return
		}
		fmt.Println(today)
		printNext(os.Stdout, occs, today, styler())
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, report); err != nil {
		fail(fmt.Errorf("invalid schedule %q: %w", schedule, err))
	}

	report()
	c.Start()
	slog.Info("watching", "component", "watch", "schedule", schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	slog.Info("stopped", "component", "watch")
	return nil
}

