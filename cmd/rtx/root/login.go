package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/clients/api"
	"github.com/tecskill/rtx-cli/tea/component/program"
	"github.com/tecskill/rtx-cli/tea/style"
)

// getLoginCmd authenticates against the RTX backend and persists the session
// Usage: `rtx login`
func getLoginCmd() *cobra.Command {
	var username string
	var password string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with your RTX account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)

			client, _, err := deps.Setup()
			if err != nil {
				return err
			}

			if username == "" || password == "" {
				if err := promptCredentials(&username, &password); err != nil {
					return eris.Wrap(err, "login aborted")
				}
			}
			username = strings.TrimSpace(username)

			return runLogin(cmd.Context(), client, username, password)
		},
	}

	loginCmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")

	return loginCmd
}

func promptCredentials(username, password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("your RTX username").
				Value(username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return eris.New("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(func(s string) error {
					if s == "" {
						return eris.New("password is required")
					}
					return nil
				}),
		).Title("Sign in to RTX Invest"),
	)
	return form.Run()
}

func runLogin(ctx context.Context, client api.ClientInterface, username, password string) error {
	var result api.LoginResult

	err := program.RunProgram(ctx, func(p program.Program, ctx context.Context) error {
		p.Send(program.StatusMsg("Authenticating with RTX service..."))

		var loginErr error
		result, loginErr = client.Login(ctx, username, password)
		return loginErr
	})
	if err != nil {
		logger.Error("Login request failed", err)
		return eris.Wrap(err, "failed to login")
	}

	if !result.Success {
		printer.Errorf("Login failed: %s\n", result.Error)
		return eris.New(result.Error)
	}

	fmt.Println(style.TickIcon.Render(" Logged in as " + style.BoldText.Render(username)))
	printer.Infoln("Your session was saved. Run " + style.BoldText.Render("rtx dashboard") + " to get started.")
	return nil
}
