package account

import (
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/tea/style"
)

// ProfileCmd shows the account profile
// Usage: `rtx profile`
var ProfileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Show your account profile",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, _, err := deps.Setup()
		if err != nil {
			return err
		}

		profile := client.GetUserProfile(cmd.Context())

		printer.Headerln(" Profile ")
		printer.Infoln("Name:         " + style.BoldText.Render(profile.Name))
		printer.Infoln("Email:        " + profile.Email)
		printer.Infoln("Phone:        " + profile.Phone)
		printer.Infoln("Document:     " + profile.Document)
		printer.Infoln("Member since: " + profile.MemberSince)
		return nil
	},
}
