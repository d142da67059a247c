package cmd

import (
	"github.com/spf13/cobra"

	"github.com/przant/jeopardy-trainer/internal/domain"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game for one domain right away",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("domain")
		d, err := domain.Parse(name)
		if err != nil {
			return err
		}
		return runApp(cmd, d)
	},
}

func init() {
	playCmd.Flags().StringP("domain", "d", string(domain.Go), "Domain to play (go, k8s, linux)")
}
