package root

import (
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
)

// getLogoutCmd ends the current session
// Usage: `rtx logout`
func getLogoutCmd() *cobra.Command {
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)

			client, sess, err := deps.Setup()
			if err != nil {
				return err
			}

			if sess.Token() == "" {
				printer.Infoln("No active session.")
				return nil
			}

			// The local session is cleared even when the server call fails.
			if err := client.Logout(cmd.Context()); err != nil {
				logger.Debugf("server-side logout failed: %v", err)
			}

			printer.Successln("Logged out.")
			return nil
		},
	}

	return logoutCmd
}
