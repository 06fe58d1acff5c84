package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/errors"
)

var (
	registerEmail    string
	registerFullName string
	registerPassword string
	registerRole     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account with role RENTER or OWNER. Registration does not log
in; run "rentathing login" afterwards.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv()
		if err != nil {
			return err
		}

		if registerEmail == "" {
			return errors.New(errors.ErrCodeAuthRegister, "an email is required (--email)")
		}

		role := domain.Role(registerRole)
		if role != domain.RoleRenter && role != domain.RoleOwner {
			return errors.Newf(errors.ErrCodeAuthRegister, "invalid role %q: use RENTER or OWNER", registerRole)
		}

		if registerPassword == "" {
			prompt := huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&registerPassword)
			if err := huh.NewForm(huh.NewGroup(prompt)).RunWithContext(cmd.Context()); err != nil {
				return errors.Wrap(errors.ErrCodeAuthRegister, "read password", err)
			}
		}
		if len(registerPassword) < 8 {
			return errors.New(errors.ErrCodeAuthRegister, "the password must be at least 8 characters")
		}

		var fullName *string
		if registerFullName != "" {
			fullName = &registerFullName
		}

		err = env.Service.Register(cmd.Context(), api.RegisterRequest{
			Email:    registerEmail,
			FullName: fullName,
			Password: registerPassword,
			Role:     role,
		})
		if err != nil {
			return errors.Wrap(errors.ErrCodeAuthRegister, "register", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Account created. Log in with: rentathing login --email", registerEmail)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "display name (optional)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerRole, "role", string(domain.RoleRenter), "account role: RENTER or OWNER")
	rootCmd.AddCommand(registerCmd)
}
