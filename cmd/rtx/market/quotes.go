package market

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/tea/component/quotewatch"
	"github.com/tecskill/rtx-cli/tea/style"
)

// defaultQuoteSymbols is shown when no symbols are passed on the command line.
var defaultQuoteSymbols = []string{"PETR4", "VALE3", "ITUB4", "BTC", "ETH"}

// GetQuotesCmd shows quotes for the given symbols, once or continuously
// Usage: `rtx quotes [symbols...] [--watch] [--interval 5s]`
func GetQuotesCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	quotesCmd := &cobra.Command{
		Use:     "quotes [symbols...]",
		Short:   "Show quotes for one or more symbols",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetDebugMode(cmd)

			client, _, err := deps.Setup()
			if err != nil {
				return err
			}

			symbols := args
			if len(symbols) == 0 {
				symbols = defaultQuoteSymbols
			}

			if watch {
				p := tea.NewProgram(quotewatch.New(client, symbols, interval))
				if _, err := p.Run(); err != nil {
					return eris.Wrap(err, "quote watch failed")
				}
				return nil
			}

			board := client.GetRealTimeQuotes(cmd.Context(), symbols)
			renderBoard(board)
			return nil
		},
	}

	quotesCmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling and render a live board")
	quotesCmd.Flags().DurationVarP(&interval, "interval", "i", 5*time.Second, "polling interval in watch mode")

	return quotesCmd
}

func renderBoard(board models.QuoteBoard) {
	printer.Headerln(" Quotes ")
	fmt.Printf("%-8s %16s %8s  %s\n", "SYMBOL", "PRICE", "CHANGE", "UPDATED")
	for _, q := range board.Quotes {
		fmt.Printf("%-8s %16s %8s  %s\n",
			style.BoldText.Render(q.Symbol), models.FormatBRL(q.Price), style.ChangeText(q.Change), q.LastUpdate)
	}
}
