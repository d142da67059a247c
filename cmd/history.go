package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect locally recorded game results",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		name, _ := cmd.Flags().GetString("domain")

		opts := store.QueryOpts{Limit: limit}
		if name != "" {
			d, err := domain.Parse(name)
			if err != nil {
				return err
			}
			opts.Domain = d
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.HistoryRepo().List(context.Background(), opts)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-6s  %-7s  %s\n", "ID", "Played", "Domain", "Score", "Percent")
		fmt.Println(strings.Repeat("─", 86))
		for _, r := range records {
			fmt.Printf("%-36s  %-19s  %-6s  %-7s  %s\n",
				r.ID,
				r.SubmittedAt.Local().Format("2006-01-02 15:04:05"),
				r.Domain,
				fmt.Sprintf("%d/%d", r.Score, r.Total),
				formatPercent(r.Percentage),
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show every answer of a recorded game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.HistoryRepo().Get(context.Background(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("game %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("get game: %w", err)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:      %s\n", r.ID)
		fmt.Printf("Played:  %s\n", r.SubmittedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Board:   %s\n", r.Domain.Title())
		fmt.Printf("Score:   %d/%d (%s)\n", r.Score, r.Total, formatPercent(r.Percentage))

		for i, it := range r.Items {
			fmt.Println(sep)
			mark := "✓"
			if !it.IsCorrect {
				mark = "✗"
			}
			fmt.Printf("%d. %s %s\n", i+1, mark, it.QuestionText)
			if !it.IsCorrect {
				answer := it.UserAnswer
				if answer == "" {
					answer = "(no answer)"
				}
				fmt.Printf("   Your answer:    %s\n", answer)
			}
			fmt.Printf("   Correct answer: %s\n", it.CorrectAnswer)
			if it.Explanation != "" {
				fmt.Printf("   %s\n", it.Explanation)
			}
		}
		return nil
	},
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Maximum number of games to show")
	historyListCmd.Flags().String("domain", "", "Only show games of this domain")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
