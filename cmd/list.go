package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/rce/internal/agenda"
	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/style"
)

var (
	listDays int
	listAll  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming dates",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listDays, "days", 0, "Days to look ahead (default horizon_days from config)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "List every event, including past dated ones")
}

func runList(cmd *cobra.Command, args []string) error {
	today := agenda.Today(clock)
	occs, err := loadOccurrences(cmd.Context(), today)
	if err != nil {
		fail(err)
	}
	if !listAll {
		occs = agenda.Upcoming(occs, today, horizon(listDays))
	}
	printList(os.Stdout, occs, today, styler())
	return nil
}

// horizon returns days when set, else the configured horizon.
func horizon(days int) int {
	if days > 0 {
		return days
	}
	return cfg.HorizonDays
}

// printList groups occurrences by day and prints them.
func printList(w io.Writer, occs []agenda.Occurrence, today date.Date, s style.Styler) {
	if len(occs) == 0 {
		fmt.Fprintln(w, "No upcoming dates found.")
		return
	}

	var currentDay date.Date
	for i, o := range occs {
		if i == 0 || o.On.Compare(currentDay) != 0 {
			fmt.Fprintf(w, "%s  %s\n", o.On, s.Dim(agenda.FormatCountdown(agenda.DaysUntil(today, o.On))))
			currentDay = o.On
		}
		fmt.Fprintf(w, "  %-20s %s\n", s.Kind(o.Event.Kind), o.Description())
	}
}
