package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/codegauntlet/gauntlet/internal/history"
	"github.com/codegauntlet/gauntlet/internal/report"
)

var (
	historyLimit     int
	historyOlderThan time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent check runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}

		report.New(os.Stdout).RenderRuns(runs)
		return nil
	},
	SilenceUsage: true,
}

var historyPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete runs older than a cutoff",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := store.PurgeOlderThan(historyOlderThan)
		if err != nil {
			return err
		}

		fmt.Printf("purged %d run(s)\n", count)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of runs to show")
	historyPurgeCmd.Flags().DurationVar(&historyOlderThan, "older-than", 30*24*time.Hour, "Delete runs older than this duration")
	historyCmd.AddCommand(historyPurgeCmd)
}
