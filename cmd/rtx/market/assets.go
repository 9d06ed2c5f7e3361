package market

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/tea/style"
)

// categoryLabels maps the backend category keys to display names.
var categoryLabels = map[string]string{
	"acoes":      "Ações",
	"renda_fixa": "Renda Fixa",
	"fundos":     "Fundos",
	"cripto":     "Cripto",
}

// AssetsCmd lists the assets available for investment
// Usage: `rtx assets [--category acoes|renda_fixa|fundos|cripto]`
var AssetsCmd = &cobra.Command{
	Use:     "assets",
	Short:   "Browse assets available for investment",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, _, err := deps.Setup()
		if err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		book := client.GetAvailableAssets(cmd.Context(), category)
		renderBook(book)
		return nil
	},
}

func init() {
	AssetsCmd.Flags().String("category", "", "filter by category (acoes, renda_fixa, fundos, cripto)")
}

func renderBook(book models.AssetBook) {
	printer.Headerln(" Assets ")

	categories := make([]string, 0, len(book))
	for c := range book {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, category := range categories {
		label := categoryLabels[category]
		if label == "" {
			label = category
		}
		printer.Notificationln(label)

		assets := book[category]
		if len(assets) == 0 {
			printer.Infoln("  no assets in this category")
			continue
		}
		for _, a := range assets {
			fmt.Printf("  %-8s %-32s %16s %8s\n",
				style.BoldText.Render(a.Symbol), a.Name, models.FormatBRL(a.Price), a.Change)
		}
	}
}
