package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewOverviewCommand creates the overview command, which prints the project's
// headline metrics.
func NewOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show project overview metrics",
		Long:  "Show headline metrics such as active subscriptions, active trials, MRR, and revenue",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			projectID, err := ResolveProjectID()
			if err != nil {
				return err
			}

			metrics, err := client.Metrics().GetOverview(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to get overview metrics: %w", err)
			}

			return outputOverview(metrics)
		},
	}
}

func outputOverview(metrics *revenuecat.OverviewMetrics) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(metrics)
	case OutputFormatYAML:
		return renderYAML(metrics)
	default:
		if len(metrics.Metrics) == 0 {
			_, _ = os.Stdout.WriteString("No metrics available\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Metric", "Value", "Unit", "Period")

		for _, metric := range metrics.Metrics {
			_ = table.Append(metric.Name, fmt.Sprintf("%.2f", metric.Value), metric.Unit, metric.Period)
		}

		_ = table.Render()

		return nil
	}
}
