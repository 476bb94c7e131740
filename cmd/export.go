package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/rce/internal/agenda"
	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/icsexport"
)

var (
	exportFormat string
	exportDays   int
	exportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export upcoming dates to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md, ics")
	exportCmd.Flags().IntVar(&exportDays, "days", 0, "Days to look ahead (default horizon_days from config)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every event, including past dated ones")
}

func runExport(cmd *cobra.Command, args []string) error {
	now := clock.Now()
	today := date.FromTime(now)

	occs, err := loadOccurrences(cmd.Context(), today)
	if err != nil {
		fail(err)
	}
	if !exportAll {
		occs = agenda.Upcoming(occs, today, horizon(exportDays))
	}

	if err := writeExport(os.Stdout, exportFormat, occs, today, now); err != nil {
		fail(err)
	}
	return nil
}

func writeExport(w io.Writer, format string, occs []agenda.Occurrence, today date.Date, now time.Time) error {
	switch format {
	case "csv":
		printCSV(w, occs, today)
	case "json":
		data, err := json.MarshalIndent(toRecords(occs, today), "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "md":
		printMarkdown(w, occs, today)
	case "ics":
		return icsexport.Write(w, occs, icsexport.Options{
			CalendarName: cfg.ICS.CalendarName,
			Reminder:     cfg.ICS.Reminder,
			Now:          now,
		})
	default:
		return fmt.Errorf("unknown export format %q (want csv, json, md or ics)", format)
	}
	return nil
}

// record is the JSON shape of one occurrence.
type record struct {
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	InDays      int    `json:"in_days"`
	Years       *int   `json:"years,omitempty"`
}

func toRecords(occs []agenda.Occurrence, today date.Date) []record {
	records := make([]record, 0, len(occs))
	for _, o := range occs {
		r := record{
			Date:        isoDate(o.On),
			Kind:        o.Event.Kind.String(),
			Name:        o.Event.Name,
			Description: o.Description(),
			InDays:      agenda.DaysUntil(today, o.On),
		}
		if o.HasYears {
			years := o.Years
			r.Years = &years
		}
		records = append(records, r)
	}
	return records
}

func isoDate(d date.Date) string {
	return d.Time(time.UTC).Format("2006-01-02")
}

func printCSV(w io.Writer, occs []agenda.Occurrence, today date.Date) {
	fmt.Fprintln(w, "date,kind,name,description,in_days")
	for _, o := range occs {
		fmt.Fprintf(w, "%s,%s,%s,%s,%d\n",
			isoDate(o.On),
			o.Event.Kind,
			csvEscape(o.Event.Name),
			csvEscape(o.Description()),
			agenda.DaysUntil(today, o.On),
		)
	}
}

func printMarkdown(w io.Writer, occs []agenda.Occurrence, today date.Date) {
	fmt.Fprintln(w, "| Date | Kind | Description | When |")
	fmt.Fprintln(w, "|------|------|-------------|------|")
	for _, o := range occs {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			o.On,
			o.Event.Kind.Title(),
			strings.ReplaceAll(o.Description(), "|", `\|`),
			agenda.FormatCountdown(agenda.DaysUntil(today, o.On)),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
