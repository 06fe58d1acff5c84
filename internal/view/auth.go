package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/errors"
	"github.com/ChouguleParas07/RentAThing/internal/router"
)

// Login resolves the login view. On submission the fresh token is used to
// fetch the profile before either is persisted, so a half-failed login
// never leaves a token without a user.
func Login(_ context.Context, env Env, _ router.Route) (Result, error) {
	var email, password string

	form := &Form{
		Build: func() *huh.Form {
			return huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&email).
					Validate(requiredField("email")),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password).
					Validate(requiredField("password")),
			).Title("Log in"))
		},
		Submit: func(ctx context.Context) (Submitted, error) {
			pair, err := env.Service.Login(ctx, email, password)
			if err != nil {
				return Submitted{}, err
			}

			user, err := env.Service.MeWithToken(ctx, pair.AccessToken)
			if err != nil {
				return Submitted{}, err
			}

			if err := env.Sessions.SetSession(pair.AccessToken, &user); err != nil {
				return Submitted{}, errors.Wrap(errors.ErrCodeAuthLogin, "persist session", err)
			}

			return Submitted{Navigate: router.PathHome}, nil
		},
	}

	return Result{Title: "Log in", Form: form}, nil
}

// Register resolves the registration view. Accounts are created with role
// RENTER or OWNER; the new account logs in separately afterwards.
func Register(_ context.Context, env Env, _ router.Route) (Result, error) {
	var email, fullName, password string
	role := string(domain.RoleRenter)

	form := &Form{
		Build: func() *huh.Form {
			return huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&email).
					Validate(requiredField("email")),
				huh.NewInput().
					Title("Full name").
					Value(&fullName),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password).
					Validate(minLength(8)),
				huh.NewSelect[string]().
					Title("Role").
					Options(
						huh.NewOption("Renter", string(domain.RoleRenter)),
						huh.NewOption("Owner", string(domain.RoleOwner)),
					).
					Value(&role),
			).Title("Register"))
		},
		Submit: func(ctx context.Context) (Submitted, error) {
			err := env.Service.Register(ctx, api.RegisterRequest{
				Email:    email,
				FullName: optionalText(fullName),
				Password: password,
				Role:     domain.Role(role),
			})
			if err != nil {
				return Submitted{}, err
			}

			return Submitted{
				Notice:   "Account created. Log in to continue.",
				Navigate: router.PathLogin,
			}, nil
		},
	}

	return Result{Title: "Register", Form: form}, nil
}

// requiredField rejects blank input.
func requiredField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// minLength rejects input shorter than n characters.
func minLength(n int) func(string) error {
	return func(s string) error {
		if len(s) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	}
}

// optionalText maps a blank string to the explicit absent marker. Empty
// strings are never sent as meaningful data.
func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
