package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/rce/internal/agenda"
	"github.com/Tiliavir/rce/internal/config"
	"github.com/Tiliavir/rce/internal/date"
	"github.com/Tiliavir/rce/internal/entry"
	"github.com/Tiliavir/rce/internal/model"
	"github.com/Tiliavir/rce/internal/storage"
	"github.com/Tiliavir/rce/internal/style"
)

var (
	configPath    string
	flagDir       string
	flagExt       string
	flagLogLevel  string
	flagNoColor   bool
	flagNameStyle string
)

var (
	cfg   config.Config
	clock agenda.Clock = agenda.RealClock{}
)

var rootCmd = &cobra.Command{
	Use:   "rce",
	Short: "Recurring calendar entries: birthdays, holidays and special days",
	Long: `rce reads plain-text entry files describing people, holidays and
special days and reports what comes up next.
Entry files live in ~/.rce/data/ and end in .rce unless configured otherwise.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runNext,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default ~/.rce/config.yaml)")
	pf.StringVar(&flagDir, "dir", "", "Directory holding entry files")
	pf.StringVar(&flagExt, "ext", "", "Entry file extension")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
	pf.StringVar(&flagNameStyle, "name-style", "", "Person names: nickname or full")

	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(importVCardCmd)
}

// loadSettings reads the config file and lets command-line flags win over it.
func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.DataDir = config.ExpandHome(flagDir)
	}
	if flags.Changed("ext") {
		cfg.Extension = flagExt
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = flagNoColor
	}
	if flags.Changed("name-style") {
		cfg.NameStyle = flagNameStyle
	}
	cfg.Normalize()

	setupLogging(os.Stderr, cfg.LogLevel)
	return nil
}

func setupLogging(w io.Writer, level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}

func entryOptions() entry.Options {
	return entry.Options{NameStyle: model.NameStyle(cfg.NameStyle)}
}

func styler() style.Styler {
	return style.New(!cfg.NoColor)
}

// loadOccurrences reads every entry file, reports line problems to stderr
// and projects the surviving events relative to today.
func loadOccurrences(ctx context.Context, today date.Date) ([]agenda.Occurrence, error) {
	src := storage.Source{Dir: cfg.DataDir, Extension: cfg.Extension, Workers: cfg.Workers}
	res, err := storage.Load(ctx, src, entryOptions())
	if err != nil {
		return nil, err
	}
	printProblems(os.Stderr, res.Problems())
	events := res.Events()
	slog.Info("entries loaded", "component", "cmd", "files", len(res.Files), "count", len(events))
	return agenda.Project(events, today), nil
}

func printProblems(w io.Writer, problems []error) {
	for _, p := range problems {
		fmt.Fprintln(w, p)
	}
}

// fail prints err and exits with status 2.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}
