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

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage subscriptions",
		Long:    "Inspect, cancel, and refund subscriptions of the targeted project",
	}

	cmd.AddCommand(createSubscriptionsGetCommand())
	cmd.AddCommand(createSubscriptionsCancelCommand())
	cmd.AddCommand(createSubscriptionsRefundCommand())

	return cmd
}

func createSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Show a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			projectID, err := ResolveProjectID()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Get(context.Background(), projectID, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			return outputSubscription(subscription)
		},
	}
}

func createSubscriptionsCancelCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Stop auto-renewal; access continues until the current period ends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really cancel subscription '%s'? (y/N): ", subscriptionID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			projectID, err := ResolveProjectID()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Cancel(context.Background(), projectID, subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to cancel subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Subscription '%s' will not renew (status: %s)\n",
				subscription.ID, subscription.Status)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func createSubscriptionsRefundCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refund SUBSCRIPTION_ID",
		Short: "Refund a subscription",
		Long:  "Refund the last payment of a Web Billing subscription and revoke access",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscriptionID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really refund subscription '%s'? (y/N): ", subscriptionID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			projectID, err := ResolveProjectID()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Refund(context.Background(), projectID, subscriptionID)
			if err != nil {
				return fmt.Errorf("failed to refund subscription: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Subscription '%s' refunded (status: %s)\n",
				subscription.ID, subscription.Status)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func outputSubscription(subscription *revenuecat.Subscription) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(subscription)
	case OutputFormatYAML:
		return renderYAML(subscription)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", subscription.ID)
		_ = table.Append("Customer", subscription.CustomerID)
		_ = table.Append("Product", subscription.ProductID)
		_ = table.Append("Status", string(subscription.Status))
		_ = table.Append("Auto Renewal", string(subscription.AutoRenewalStatus))
		_ = table.Append("Store", string(subscription.Store))
		_ = table.Append("Environment", string(subscription.Environment))
		_ = table.Append("Starts", formatTimestamp(subscription.StartsAt))
		_ = table.Append("Period Ends", formatOptionalTimestamp(subscription.CurrentPeriodEndsAt))
		_ = table.Append("Revenue (USD)", fmt.Sprintf("%.2f", subscription.TotalRevenueInUSD.Gross))

		_ = table.Render()

		return nil
	}
}
