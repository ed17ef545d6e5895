package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/registry-backend/config"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
)

var (
	cfg   *config.Config
	clock service.Clock
)

var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Maintenance tasks for the registry database",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		clock = service.SystemClock(cfg.App.Location())
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, overdueCmd, scheduleCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
