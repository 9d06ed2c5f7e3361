package market

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/clients/api"
	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/tea/component/program"
	"github.com/tecskill/rtx-cli/tea/style"
)

// GetInvestCmd places a buy or sell order
// Usage: `rtx invest [--symbol PETR4] [--amount 1000] [--type buy|sell]`
func GetInvestCmd() *cobra.Command {
	var symbol string
	var amount float64
	var orderType string

	investCmd := &cobra.Command{
		Use:     "invest",
		Short:   "Place a buy or sell order",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)

			client, _, err := deps.Setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			book := client.GetAvailableAssets(ctx, "")
			if symbol == "" || amount <= 0 {
				if err := promptOrder(book, &symbol, &amount, &orderType); err != nil {
					return eris.Wrap(err, "order aborted")
				}
			}

			order, err := models.NewInvestmentOrder(symbol, amount, orderType)
			if err != nil {
				return err
			}

			if asset, ok := book.Find(order.AssetSymbol); ok {
				printer.Infof("~%s units of %s at %s\n",
					models.Quantity(order.Amount, asset.Price, asset.Symbol),
					asset.Symbol, models.FormatBRL(asset.Price))
			}

			confirmed, err := confirmOrder(order)
			if err != nil {
				return err
			}
			if !confirmed {
				printer.Infoln("Order cancelled.")
				return nil
			}

			return placeOrder(ctx, client, order)
		},
	}

	investCmd.Flags().StringVarP(&symbol, "symbol", "s", "", "asset symbol, e.g. PETR4")
	investCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount in BRL")
	investCmd.Flags().StringVarP(&orderType, "type", "t", models.OrderTypeBuy, "order side (buy or sell)")

	return investCmd
}

func promptOrder(book models.AssetBook, symbol *string, amount *float64, orderType *string) error {
	var assetOptions []huh.Option[string]
	for _, category := range []string{"acoes", "renda_fixa", "fundos", "cripto"} {
		for _, a := range book[category] {
			label := fmt.Sprintf("%s — %s (%s)", a.Symbol, a.Name, models.FormatBRL(a.Price))
			assetOptions = append(assetOptions, huh.NewOption(label, a.Symbol))
		}
	}

	var amountInput string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Asset").
				Options(assetOptions...).
				Value(symbol),
			huh.NewSelect[string]().
				Title("Side").
				Options(
					huh.NewOption("Buy", models.OrderTypeBuy),
					huh.NewOption("Sell", models.OrderTypeSell),
				).
				Value(orderType),
			huh.NewInput().
				Title("Amount (BRL)").
				Placeholder("e.g. 1000.00").
				Value(&amountInput).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return eris.New("enter a positive amount")
					}
					return nil
				}),
		).Title("New order"),
	)
	if err := form.Run(); err != nil {
		return err
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(amountInput), 64)
	if err != nil {
		return eris.Wrap(err, "invalid amount")
	}
	*amount = v
	return nil
}

func confirmOrder(order models.InvestmentOrder) (bool, error) {
	confirmed := false
	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("%s %s of %s?",
			strings.ToUpper(order.Type), models.FormatBRL(order.Amount), order.AssetSymbol)).
		Affirmative("Place order").
		Negative("Cancel").
		Value(&confirmed)
	if err := confirm.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

func placeOrder(ctx context.Context, client api.ClientInterface, order models.InvestmentOrder) error {
	var ack models.InvestmentAck

	err := program.RunProgram(ctx, func(p program.Program, ctx context.Context) error {
		p.Send(program.StatusMsg("Sending order..."))

		var investErr error
		ack, investErr = client.MakeInvestment(ctx, order)
		return investErr
	})
	if err != nil {
		logger.Error("Investment failed", err)
		return eris.Wrap(err, "failed to place order")
	}

	fmt.Println(style.TickIcon.Render(" Order accepted"))
	printer.Infof("Transaction %s: %s\n", style.BoldText.Render(ack.TransactionID), ack.Message)
	return nil
}
