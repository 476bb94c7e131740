package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/rce/internal/agenda"
	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/model"
	"github.com/Tiliavir/rce/internal/style"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next upcoming date of every kind",
	Args:  cobra.NoArgs,
	RunE:  runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	today := agenda.Today(clock)
	occs, err := loadOccurrences(cmd.Context(), today)
	if err != nil {
		fail(err)
	}
	printNext(os.Stdout, occs, today, styler())
	return nil
}

// printNext writes one line per kind, e.g.
//
//	next birthday: 25/12/2025 (in 10 days): Santa (age 40), Rick
func printNext(w io.Writer, occs []agenda.Occurrence, today date.Date, s style.Styler) {
	next := agenda.NextByKind(occs, today)
	for _, k := range model.Kinds {
		fmt.Fprintf(w, "next %s: %s\n", s.Kind(k), nextMessage(next[k], today, s))
	}
}

func nextMessage(occs []agenda.Occurrence, today date.Date, s style.Styler) string {
	if len(occs) == 0 {
		return s.Dim("none found")
	}
	on := occs[0].On
	when := "Today!"
	if days := agenda.DaysUntil(today, on); days != 0 {
		when = fmt.Sprintf("%s (%s)", on, s.Dim(agenda.FormatCountdown(days)))
	}
	descs := make([]string, len(occs))
	for i, o := range occs {
		descs[i] = o.Description()
	}
	return when + ": " + strings.Join(descs, ", ")
}
