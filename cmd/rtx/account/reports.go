package account

import (
	"github.com/spf13/cobra"

	"github.com/tecskill/rtx-cli/cmd/rtx/internal/deps"
	"github.com/tecskill/rtx-cli/common/logger"
	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/tea/style"
)

// GetReportsCmd shows performance and allocation reports
// Usage: `rtx reports [--type monthly] [--period 2026-08]`
func GetReportsCmd() *cobra.Command {
	var reportType string
	var period string

	reportsCmd := &cobra.Command{
		Use:     "reports",
		Short:   "Show performance and allocation reports",
		GroupID: "core",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)

			client, _, err := deps.Setup()
			if err != nil {
				return err
			}

			reports := client.GetReports(cmd.Context(), reportType, period)

			printer.Headerln(" Reports ")
			printer.Notificationln("Performance")
			printer.Infof("  total return:   %s\n",
				style.ChangeText(models.FormatPercent(reports.Performance.TotalReturn)))
			printer.Infof("  monthly return: %s\n",
				style.ChangeText(models.FormatPercent(reports.Performance.MonthlyReturn)))
			printer.Infof("  best asset:     %s\n", style.BoldText.Render(reports.Performance.BestAsset))
			printer.Infof("  worst asset:    %s\n", reports.Performance.WorstAsset)

			printer.NewLine(1)
			printer.Notificationln("Allocation")
			if !reports.Allocation.Recommended {
				printer.Infoln("  your allocation looks balanced")
				return nil
			}
			for _, s := range reports.Allocation.Suggestions {
				printer.Infoln("  " + style.DoubleRightIcon.Render(" ") + s)
			}
			return nil
		},
	}

	reportsCmd.Flags().StringVar(&reportType, "type", "monthly", "report type (monthly, yearly)")
	reportsCmd.Flags().StringVar(&period, "period", "", "report period, e.g. 2026-08")

	return reportsCmd
}
