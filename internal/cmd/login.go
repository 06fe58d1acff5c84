package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ChouguleParas07/RentAThing/internal/errors"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	Long: `Log in to the service and persist the session token and profile under the
session directory. The password is prompted for when not passed as a flag.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		if loginEmail == "" {
			return errors.New(errors.ErrCodeAuthLogin, "an email is required (--email)")
		}

		if loginPassword == "" {
			prompt := huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&loginPassword)
			if err := huh.NewForm(huh.NewGroup(prompt)).RunWithContext(cmd.Context()); err != nil {
				return errors.Wrap(errors.ErrCodeAuthLogin, "read password", err)
			}
		}

		pair, err := env.Service.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return errors.Wrap(errors.ErrCodeAuthLogin, "log in", err)
		}

		// The profile is fetched with the fresh token before anything is
		// persisted, so a half-failed login never leaves a token behind.
		user, err := env.Service.MeWithToken(cmd.Context(), pair.AccessToken)
		if err != nil {
			return errors.Wrap(errors.ErrCodeAuthLogin, "fetch profile", err)
		}

		if err := env.Sessions.SetSession(pair.AccessToken, &user); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.DisplayName(), user.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}
