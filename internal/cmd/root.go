// Package cmd wires the CLI. The bare command starts the interactive
// client; subcommands cover the headless session operations scripts need.
package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/config"
	"github.com/ChouguleParas07/RentAThing/internal/log"
	"github.com/ChouguleParas07/RentAThing/internal/router"
	"github.com/ChouguleParas07/RentAThing/internal/session"
	"github.com/ChouguleParas07/RentAThing/internal/tui"
	"github.com/ChouguleParas07/RentAThing/internal/view"
)

var rootCmd = &cobra.Command{
	Use:   "rentathing",
	Short: "Terminal client for the Rent-a-Thing marketplace",
	Long: `rentathing is a terminal client for the Rent-a-Thing peer-to-peer rental
marketplace. Run it without arguments for the interactive browser; use the
subcommands for headless session management.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		program := tea.NewProgram(
			tui.New(cmd.Context(), env, router.PathHome),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		_, err = program.Run()
		return err
	},
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// buildEnv loads configuration, installs the logger, and assembles the
// collaborators every command shares.
func buildEnv() (view.Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return view.Env{}, err
	}

	log.SetDefaultLogger(log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	}))

	store := session.NewFileStore(cfg.SessionDir)
	client := api.New(cfg.APIBase, store, cfg.RequestTimeout)

	return view.Env{Service: client, Sessions: store}, nil
}
