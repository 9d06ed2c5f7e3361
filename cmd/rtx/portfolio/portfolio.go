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

// BaseCmd shows the portfolio breakdown
// Usage: `rtx portfolio`
var BaseCmd = &cobra.Command{
	Use:     "portfolio",
	Short:   "Show your portfolio breakdown by category",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, _, err := deps.Setup()
		if err != nil {
			return err
		}

		portfolio := client.GetPortfolio(cmd.Context())
		renderPortfolio(portfolio)
		return nil
	},
}

func renderPortfolio(p models.Portfolio) {
	printer.Headerln(" Portfolio ")
	printer.Infof("Total invested: %s\n", style.BoldText.Render(models.FormatBRL(p.TotalValue)))
	printer.NewLine(1)

	fmt.Printf("%-12s %18s %10s %12s\n", "CATEGORY", "VALUE", "CHANGE", "ALLOCATION")
	for _, c := range p.Categories {
		fmt.Printf("%-12s %18s %10s %11.1f%%\n",
			c.Name,
			models.FormatBRL(c.Value),
			style.ChangeText(models.FormatPercent(c.Percentage)),
			c.Allocation,
		)
	}

	if sum := p.CategorySum(); sum != p.TotalValue {
		printer.NewLine(1)
		printer.Infof("Uncategorized positions: %s\n", models.FormatBRL(p.TotalValue-sum))
	}
}
