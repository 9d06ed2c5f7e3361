package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/common/appdir"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/services/config"
	"github.com/tecskill/rtx-cli/internal/services/session"
	"github.com/tecskill/rtx-cli/tea/style"
)

// doctorCmd checks that the CLI environment is usable
// Usage: `rtx doctor`
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the CLI environment is set up correctly",
	Long: `Check that the CLI environment is set up correctly.

The doctor verifies the service token, the config directory,
and the state of the persisted session.`,
	Run: func(cmd *cobra.Command, _ []string) {
		logger.SetDebugMode(cmd)
		printer.Headerln(" RTX CLI Doctor ")

		// Service token
		if os.Getenv(config.EnvServiceToken) == "" {
			printer.Errorf("%s is not set\n", config.EnvServiceToken)
		} else {
			printer.Successf("%s is set\n", config.EnvServiceToken)
		}

		// Config directory
		dir, err := appdir.Dir()
		if err != nil {
			printer.Errorf("config directory unavailable: %v\n", err)
		} else if err := appdir.Setup(); err != nil {
			printer.Errorf("config directory %s is not writable: %v\n", dir, err)
		} else {
			printer.Successf("config directory %s is writable\n", dir)
		}

		// Session
		sess, err := session.NewService()
		if err != nil {
			printer.Errorf("session store unavailable: %v\n", err)
			return
		}
		if _, ok := sess.Load(); ok {
			printer.Successln("session: " + style.BoldText.Render(sess.State().String()))
		} else {
			printer.Infoln("session: " + sess.State().String() + " (run `rtx login`)")
		}
	},
}
