package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/rce/internal/entry"
	"github.com/Tiliavir/rce/internal/model"
	"github.com/Tiliavir/rce/internal/storage"
	"github.com/Tiliavir/rce/internal/vcardimport"
)

var importOut string

var importVCardCmd = &cobra.Command{
	Use:   "import-vcard <file.vcf>",
	Short: "Convert vCard contacts into person entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportVCard,
}

func init() {
	importVCardCmd.Flags().StringVar(&importOut, "out", "", "Write entries to this file instead of stdout")
}

func runImportVCard(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		fail(err)
	}
	defer f.Close()

	people, skipped, err := vcardimport.Convert(f)
	if err != nil {
		fail(err)
	}
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipped contact %d %q: %s\n", s.Index, s.Name, s.Reason)
	}

	var buf strings.Builder
	writeEntries(&buf, args[0], people)

	if importOut == "" {
		fmt.Print(buf.String())
		return nil
	}
	if err := storage.WriteFile(importOut, []byte(buf.String())); err != nil {
		fail(err)
	}
	fmt.Printf("Imported %d contact(s) into %s\n", len(people), importOut)
	return nil
}

// writeEntries renders people as an entry file.
func writeEntries(w io.Writer, source string, people []*model.Person) {
	fmt.Fprintf(w, "# imported from %s\n", source)
	for _, p := range people {
		fmt.Fprintln(w, entry.Format(p))
	}
}
