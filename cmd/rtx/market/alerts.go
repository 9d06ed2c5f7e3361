package market

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/tea/style"
)

// AlertsCmd manages price alerts
// Usage: `rtx alerts [list|set]`
var AlertsCmd = &cobra.Command{
	Use:     "alerts",
	Short:   "Manage your price alerts",
	GroupID: "core",
	RunE:    listAlertsCmd.RunE,
}

// listAlertsCmd lists the configured price alerts
// Usage: `rtx alerts list`
var listAlertsCmd = &cobra.Command{
	Use:   "list",
	Short: "List your price alerts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		client, _, err := deps.Setup()
		if err != nil {
			return err
		}

		alerts := client.GetUserAlerts(cmd.Context())
		printer.Headerln(" Price Alerts ")
		if len(alerts.Alerts) == 0 {
			printer.Infoln("No alerts configured. Create one with `rtx alerts set`.")
			return nil
		}
		for _, a := range alerts.Alerts {
			state := "inactive"
			if a.Active {
				state = "active"
			}
			fmt.Printf("%-8s %-6s %16s  %s\n",
				style.BoldText.Render(a.AssetSymbol), a.Direction, models.FormatBRL(a.TargetPrice), state)
		}
		return nil
	},
}

// getSetAlertCmd creates a price alert
// Usage: `rtx alerts set --symbol BTC --price 400000 --direction above`
func getSetAlertCmd() *cobra.Command {
	var symbol string
	var price float64
	var direction string

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Create a price alert",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)

			if symbol == "" {
				return eris.New("--symbol is required")
			}
			if price <= 0 {
				return eris.New("--price must be greater than zero")
			}
			if direction != models.AlertDirectionAbove && direction != models.AlertDirectionBelow {
				return eris.Errorf("--direction must be %q or %q",
					models.AlertDirectionAbove, models.AlertDirectionBelow)
			}

			client, _, err := deps.Setup()
			if err != nil {
				return err
			}

			alert := models.PriceAlert{
				AssetSymbol: symbol,
				TargetPrice: price,
				Direction:   direction,
			}
			if err := client.SetPriceAlert(cmd.Context(), alert); err != nil {
				return eris.Wrap(err, "failed to create alert")
			}

			printer.Successf("Alert created: %s %s %s\n",
				symbol, direction, models.FormatBRL(price))
			return nil
		},
	}

	setCmd.Flags().StringVarP(&symbol, "symbol", "s", "", "asset symbol, e.g. BTC")
	setCmd.Flags().Float64VarP(&price, "price", "p", 0, "target price in BRL")
	setCmd.Flags().StringVarP(&direction, "direction", "d", models.AlertDirectionAbove,
		"trigger direction (above or below)")

	return setCmd
}

func init() {
	// Register subcommands - `rtx alerts [subcommand]`
	AlertsCmd.AddCommand(listAlertsCmd, getSetAlertCmd())
}
