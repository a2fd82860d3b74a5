package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codegauntlet/gauntlet/internal/checks"
	"github.com/codegauntlet/gauntlet/internal/config"
	"github.com/codegauntlet/gauntlet/internal/history"
	"github.com/codegauntlet/gauntlet/internal/report"
	"github.com/codegauntlet/gauntlet/internal/repo"
	"github.com/codegauntlet/gauntlet/internal/rules"
)

var (
	checkReference string
	checkToken     string
	checkConfig    string
	checkNoHistory bool
)

var checkCmd = &cobra.Command{
	Use:   "check <repository>",
	Short: "Run all checks against a repository",
	Long: `Check runs the full battery against the given git repository.

The run stops at the first blocking failure and reports it alone; if
every gate passes, accumulated warnings are listed instead. With
--reference, checks that compare the submission against a template
repository (commit count, README changes) are active. The exit code is
1 when a blocking failure was found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reg := checks.DefaultRegistry()
		overrides, err := config.LoadOverrides(config.GetProjectConfigPath())
		if err != nil {
			return err
		}
		if err := overrides.Apply(reg); err != nil {
			return err
		}

		token := cfg.Token
		if checkToken != "" {
			token = checkToken
		}

		submission, err := repo.Open(args[0])
		if err != nil {
			return err
		}

		var reference *repo.LocalRepository
		if checkReference != "" {
			reference, err = repo.Open(checkReference)
			if err != nil {
				return fmt.Errorf("reference: %w", err)
			}
		}

		engine := rules.NewEngine(reg, cfg.Settings())
		var res *rules.Result
		if reference != nil {
			res, err = engine.Run(submission, reference, token)
		} else {
			res, err = engine.Run(submission, nil, token)
		}
		if err != nil {
			return err
		}

		report.New(os.Stdout).Render(res)

		if cfg.History.Enabled && !checkNoHistory {
			if err := recordRun(cfg, args[0], checkReference, token, res); err != nil {
				fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
			}
		}

		if res.Halted {
			os.Exit(1)
		}
		return nil
	},
	SilenceUsage: true,
}

// loadConfig loads either the explicit --config file or the layered
// default configuration.
func loadConfig() (*config.Config, error) {
	if checkConfig != "" {
		return config.LoadFromPath(checkConfig)
	}
	return config.Load()
}

// recordRun appends the result to the history store.
func recordRun(cfg *config.Config, repoPath, refPath, token string, res *rules.Result) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(repoPath, refPath, token, res)
	return err
}

func init() {
	checkCmd.Flags().StringVar(&checkReference, "reference", "", "Path to a reference repository to compare against")
	checkCmd.Flags().StringVar(&checkToken, "token", "", "Activation token for gated checks")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "Path to a config file (overrides layered config)")
	checkCmd.Flags().BoolVar(&checkNoHistory, "no-history", false, "Skip recording this run")
}
