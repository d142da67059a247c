package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/przant/jeopardy-trainer/internal/remote"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the session service is reachable and compatible",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		info, err := remote.Ping(context.Background(), client)
		if info != nil {
			fmt.Printf("Server:   %s\n", client.BaseURL())
			fmt.Printf("Message:  %s\n", info.Message)
			fmt.Printf("Version:  %s\n", info.Version)
		}
		if err != nil {
			return fmt.Errorf("ping %s: %w", client.BaseURL(), err)
		}
		fmt.Println("OK")
		return nil
	},
}
