package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/przant/jeopardy-trainer/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats [domain]",
	Short: "Show question bank statistics from the session service",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domains := domain.All()
		if len(args) == 1 {
			d, err := domain.Parse(args[0])
			if err != nil {
				return err
			}
			domains = []domain.Domain{d}
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("%-8s  %-7s  %-7s  %-9s  %-10s  %s\n",
			"Domain", "Total", "Unseen", "Seen once", "Seen twice", "Exhausted")
		fmt.Println(strings.Repeat("─", 64))

		var failed int
		for _, d := range domains {
			st, err := client.Stats(context.Background(), d)
			if err != nil {
				failed++
				fmt.Printf("%-8s  %s\n", d, "stats unavailable: "+err.Error())
				continue
			}
			fmt.Printf("%-8s  %-7d  %-7d  %-9d  %-10d  %d\n",
				d, st.TotalQuestions, st.Unseen, st.SeenOnce, st.SeenTwice, st.Exhausted)
		}
		if failed == len(domains) {
			return fmt.Errorf("no statistics available from %s", client.BaseURL())
		}
		return nil
	},
}
