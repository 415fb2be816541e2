package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flashdeck/backend/internal/client"
	studysession "github.com/flashdeck/backend/internal/domain/study_session"
	"github.com/flashdeck/backend/internal/infrastructure/config"
	"github.com/flashdeck/backend/internal/service"
	"github.com/flashdeck/backend/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	apiURL  string
	logFile string
	workers int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	apiDefault, workersDefault := "http://localhost:8080", 2
	if cfg, err := config.Load(); err == nil {
		apiDefault, workersDefault = cfg.APIURL, cfg.RecorderWorkers
	}

	root := &cobra.Command{
		Use:           "study",
		Short:         "Study flashdeck decks in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api", apiDefault, "flashdeck API base URL")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "flashdeck-study.log", "file to write logs to")
	root.PersistentFlags().IntVar(&opts.workers, "workers", workersDefault, "background workers recording answers")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newDecksCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	var maxCards int

	cmd := &cobra.Command{
		Use:   "run <deckID>",
		Short: "Start a study session for a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger, closeLog, err := openLogger(opts.logFile)
			if err != nil {
				return err
			}
			defer closeLog.Close()

			cfg := studysession.DefaultConfig()
			if maxCards > 0 {
				cfg.MaxCards = &maxCards
			}

			api := client.New(opts.apiURL)
			recorder := service.NewAnswerRecorder(api, api, opts.workers, logger)
			defer recorder.Close()

			logger.Info("starting study session", "deck_id", args[0], "api", opts.apiURL)
			model := tui.New(args[0], cfg, api, api, recorder, logger)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().IntVar(&maxCards, "max-cards", 0, "study at most this many cards (0 = all)")
	return cmd
}

func newDecksCmd(opts *options) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "decks",
		Short: "List decks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			decks, err := client.New(opts.apiURL).ListDecks(ctx, userID)
			if err != nil {
				return err
			}
			if len(decks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no decks")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tCARDS")
			for _, d := range decks {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n", d.ID, d.Name, d.CardCount)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "only list this user's decks")
	return cmd
}

func newHistoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "history <deckID>",
		Short: "Show past study sessions for a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			sessions, err := client.New(opts.apiURL).ListHistory(ctx, args[0])
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no study sessions yet")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "STUDIED AT\tCORRECT\tINCORRECT\tACCURACY\tTIME")
			for _, s := range sessions {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%d%%\t%s\n",
					s.StudiedAt.Local().Format("2006-01-02 15:04"),
					s.CorrectAnswers, s.IncorrectAnswers, s.Accuracy,
					(time.Duration(s.TotalTimeSpent) * time.Second).String(),
				)
			}
			return tw.Flush()
		},
	}
}

// openLogger writes logs to a file so they do not corrupt the terminal UI.
func openLogger(path string) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}
