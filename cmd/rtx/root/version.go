package root

import (
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/common/printer"
)

// versionCmd prints the CLI version
// Usage: `rtx version`
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(_ *cobra.Command, _ []string) {
		printer.Infoln("RTX CLI " + AppVersion)
	},
}
