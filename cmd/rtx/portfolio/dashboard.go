package portfolio

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/tea/style"
)

const recentTransactionCount = 5

// DashboardCmd shows the account overview
// Usage: `rtx dashboard`
var DashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "Show an overview of your account",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, _, err := deps.Setup()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		profile := client.GetUserProfile(ctx)
		portfolio := client.GetPortfolio(ctx)
		page := client.GetTransactions(ctx, 1, recentTransactionCount, models.TransactionFilterAll)

		printer.Headerln(" Dashboard ")
		printer.Infoln("Hello, " + style.BoldText.Render(profile.Name))
		printer.Infof("Total invested: %s\n", style.BoldText.Render(models.FormatBRL(portfolio.TotalValue)))
		printer.NewLine(1)

		printer.Notificationln("Allocation")
		for _, c := range portfolio.Categories {
			fmt.Printf("  %-12s %5.1f%%  %s\n", c.Name, c.Allocation, style.ChangeText(models.FormatPercent(c.Percentage)))
		}
		printer.NewLine(1)

		printer.Notificationln("Recent activity")
		if len(page.Transactions) == 0 {
			printer.Infoln("  no transactions yet")
			return nil
		}
		for _, t := range page.Transactions {
			fmt.Printf("  %s  %-28s %16s  %s\n", t.Date, t.Title, models.FormatBRL(t.Amount), t.Status)
		}
		return nil
	},
}
