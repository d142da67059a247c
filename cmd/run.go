package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/przant/jeopardy-trainer/internal/app"
	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/logging"
	"github.com/przant/jeopardy-trainer/internal/markup"
	"github.com/przant/jeopardy-trainer/internal/quiz"
	"github.com/przant/jeopardy-trainer/internal/remote"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
// A valid initial domain skips straight into a game.
func runApp(cmd *cobra.Command, initial domain.Domain) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	api := remote.WithLogging(client, logger)

	playerOpts := []quiz.PlayerOption{
		quiz.WithQuestionCount(cfg.Session.Count),
		quiz.WithLogger(logger),
	}
	opts := app.Options{
		Stats:         api,
		Renderer:      markup.New(cfg.Render.Style, cfg.Render.Plain),
		Logger:        logger,
		InitialDomain: initial,
		Status:        client.BaseURL(),
	}

	st, err := openStore(cfg)
	if err != nil {
		logger.Warn("history disabled", "error", err)
		fmt.Fprintln(os.Stderr, "History not available:", err)
		fmt.Fprintln(os.Stderr, "Scores will not be recorded.")
	} else {
		defer st.Close()
		hist := st.HistoryRepo()
		playerOpts = append(playerOpts, quiz.WithRecorder(hist))
		opts.History = hist
		opts.Records = hist
	}
	opts.Player = quiz.NewPlayer(api, playerOpts...)

	logger.Info("starting", "version", version, "server", client.BaseURL(), "count", cfg.Session.Count)
	return app.Run(opts)
}
