package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChouguleParas07/RentAThing/internal/errors"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	Long: `Show the account behind the persisted session, verified against the
service rather than the local cache.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		if env.Sessions.Token() == "" {
			return errors.New(errors.ErrCodeAuthNoUser, "not logged in")
		}

		user, err := env.Service.MeWithToken(cmd.Context(), env.Sessions.Token())
		if err != nil {
			return errors.Wrap(errors.ErrCodeAuthNoUser, "verify session", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", user.DisplayName(), user.Email, user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
