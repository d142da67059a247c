package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/przant/jeopardy-trainer/internal/config"
	"github.com/przant/jeopardy-trainer/internal/remote"
	"github.com/przant/jeopardy-trainer/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "jeopardy",
	Short: "Terminal quiz trainer for Go, Kubernetes and Linux",
	Long: "Jeopardy Trainer plays rounds of questions served by a remote session service " +
		"and keeps a local history of your scores.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().String("server", "", "Session service URL (overrides JEOPARDY_SERVER env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history file (overrides JEOPARDY_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	server, _ := cmd.Flags().GetString("server")
	db, _ := cmd.Flags().GetString("db")
	if err := cfg.Apply(config.Overrides{ServerURL: server, DBPath: db}); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the history database, creating its directory if needed.
func openStore(cfg *config.Config) (*store.Store, error) {
	if err := store.EnsureDir(cfg.Store.Path); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func newClient(cfg *config.Config) (*remote.Client, error) {
	c, err := remote.New(cfg.Server.URL, cfg.Server.Timeout)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}
