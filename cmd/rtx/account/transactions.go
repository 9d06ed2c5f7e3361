package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/tea/style"
)

// GetTransactionsCmd shows the transaction history
// Usage: `rtx transactions [--page 1] [--limit 20] [--filter all] [--search rendimento]`
func GetTransactionsCmd() *cobra.Command {
	var page int
	var limit int
	var filter string
	var search string

	transactionsCmd := &cobra.Command{
		Use:     "transactions",
		Short:   "Show your transaction history",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)

			client, _, err := deps.Setup()
			if err != nil {
				return err
			}

			result := client.GetTransactions(cmd.Context(), page, limit, filter)
			transactions := models.SearchTransactions(result.Transactions, search)

			printer.Headerln(" Transactions ")
			if len(transactions) == 0 {
				printer.Infoln("No transactions match.")
				return nil
			}
			for _, t := range transactions {
				fmt.Printf("%s %s  %-10s %-28s %16s  %s\n",
					t.Date, t.Time, t.Type,
					t.Title+" · "+t.Subtitle,
					style.BoldText.Render(models.FormatBRL(t.Amount)),
					t.Status,
				)
			}
			printer.NewLine(1)
			printer.Infof("Page %d of %d\n", result.CurrentPage, result.TotalPages)
			return nil
		},
	}

	transactionsCmd.Flags().IntVar(&page, "page", 1, "page number")
	transactionsCmd.Flags().IntVar(&limit, "limit", 20, "transactions per page")
	transactionsCmd.Flags().StringVar(&filter, "filter", models.TransactionFilterAll,
		"filter by transaction type")
	transactionsCmd.Flags().StringVar(&search, "search", "", "match against title and description")

	return transactionsCmd
}
