package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/rce/internal/storage"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every entry file and report problems",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	src := storage.Source{Dir: cfg.DataDir, Extension: cfg.Extension, Workers: cfg.Workers}
	res, err := storage.Load(cmd.Context(), src, entryOptions())
	if err != nil {
		fail(err)
	}
	if !printCheck(os.Stdout, os.Stderr, res) {
		os.Exit(1)
	}
	return nil
}

// printCheck reports problems to errOut and a per-file summary to out. It
// returns false when any problem was found.
func printCheck(out, errOut io.Writer, res storage.Result) bool {
	problems := res.Problems()
	printProblems(errOut, problems)

	for _, f := range res.Files {
		status := "ok"
		switch {
		case f.Err != nil:
			status = "unreadable"
		case len(f.Problems) > 0:
			status = fmt.Sprintf("%d problem(s)", len(f.Problems))
		}
		fmt.Fprintf(out, "%-40s %4d events  %s\n", f.Path, len(f.Events), status)
	}
	fmt.Fprintf(out, "%d file(s), %d event(s), %d problem(s)\n",
		len(res.Files), len(res.Events()), len(problems))
	return len(problems) == 0
}
