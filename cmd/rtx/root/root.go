package root

import (
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/account"
	"github.com/tecskill/rtx-cli/cmd/rtx/market"
	"github.com/tecskill/rtx-cli/cmd/rtx/portfolio"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/tea/style"
)

// AppVersion is set from main via ldflags.
var AppVersion string

func init() {
	// Enable case-insensitive commands
	cobra.EnableCaseInsensitive = true

	// Register groups
	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Investment Commands:"})

	// Register base commands
	rootCmd.AddCommand(getLoginCmd(), getLogoutCmd(), versionCmd, doctorCmd)

	// Register investment commands
	rootCmd.AddCommand(portfolio.DashboardCmd, portfolio.BaseCmd)
	rootCmd.AddCommand(market.AssetsCmd, market.GetQuotesCmd(), market.GetInvestCmd(), market.AlertsCmd)
	rootCmd.AddCommand(account.GetTransactionsCmd(), account.GetReportsCmd(), account.ProfileCmd)

	// Add --debug flag
	logger.AddLogFlag(rootCmd.Commands()...)
}

// rootCmd represents the base command
// Usage: `rtx`
var rootCmd = &cobra.Command{
	Use:   "rtx",
	Short: "Track and manage your RTX investments from the terminal",
	Long:  style.CLIHeader("RTX Invest", "Track and manage your RTX investments from the terminal"),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Errors(err)
	}
	// print log stack
	logger.PrintLogs()
}
