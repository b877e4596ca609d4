package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/sadopc/pomo/internal/export"
	"github.com/sadopc/pomo/internal/stats"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/timer"
	"github.com/sadopc/pomo/internal/tui"
)

func main() {
	defaultDataDir, _ := store.DefaultDataDir()

	var (
		dataDir  string
		logLevel string
	)

	app := &cli.Command{
		Name:  "pomo",
		Usage: "Pomodoro timer with daily statistics and streaks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("POMO_DATA_DIR"),
				Value:       defaultDataDir,
				Destination: &dataDir,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("POMO_LOG_LEVEL"),
				Value:       "info",
				Destination: &logLevel,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runTUI(dataDir, logLevel)
		},
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "print today's and this week's statistics",
				Action: func(ctx context.Context, c *cli.Command) error {
					return runStats(dataDir)
				},
			},
			{
				Name:  "export",
				Usage: "export the daily history to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "export format (csv or json)",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "output path (defaults to the home directory)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return runExport(dataDir, c.String("format"), c.String("out"))
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(dataDir, logLevel string) error {
	logger, closeLog, err := fileLogger(filepath.Join(dataDir, "pomo.log"), logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := store.New(filepath.Join(dataDir, "pomo.db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	st := stats.Open(statsPath(dataDir), stats.WithLogger(logger))

	app := tui.NewApp(s, st, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func runStats(dataDir string) error {
	st := stats.Open(statsPath(dataDir), stats.WithLogger(consoleLogger()))

	now := time.Now()
	today := st.Daily(now.Format(timer.DateLayout))

	fmt.Printf("Today (%s)\n", today.Date)
	fmt.Printf("  pomodoros: %d\n", today.PomodoroCount)
	fmt.Printf("  focus:     %s\n", time.Duration(today.TotalFocusSeconds)*time.Second)
	fmt.Printf("  breaks:    %d\n", today.BreaksTaken)
	fmt.Println()

	fmt.Println("Last 7 days")
	for _, d := range st.Weekly(now) {
		fmt.Printf("  %s  %3d pomodoros  %s focus\n",
			d.Date, d.PomodoroCount, time.Duration(d.TotalFocusSeconds)*time.Second)
	}
	fmt.Println()

	fmt.Printf("Current streak: %d days\n", st.CurrentStreak())
	fmt.Printf("Longest streak: %d days\n", st.LongestStreak())
	return nil
}

func runExport(dataDir, format, out string) error {
	st := stats.Open(statsPath(dataDir), stats.WithLogger(consoleLogger()))
	days := st.History()

	if out == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		out = filepath.Join(home, fmt.Sprintf("pomo-export-%s.%s", time.Now().Format(timer.DateLayout), format))
	}

	switch format {
	case "csv":
		if err := export.ToCSV(days, out); err != nil {
			return err
		}
	case "json":
		if err := export.ToJSON(days, st.CurrentStreak(), st.LongestStreak(), out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format %q (want csv or json)", format)
	}

	fmt.Printf("exported %d days to %s\n", len(days), out)
	return nil
}

func statsPath(dataDir string) string {
	return filepath.Join(dataDir, "stats.json")
}

// fileLogger writes structured logs to a file; the TUI owns the terminal.
func fileLogger(path, level string) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}

func consoleLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
