package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/frknlkn/revenuecat-go/internal/constants"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List and inspect customers of the targeted project",
	}

	cmd.AddCommand(createCustomersListCommand())
	cmd.AddCommand(createCustomersGetCommand())
	cmd.AddCommand(createCustomersDeleteCommand())
	cmd.AddCommand(createCustomersEntitlementsCommand())

	return cmd
}

func createCustomersListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			projectID, err := ResolveProjectID()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := revenuecat.NewListQuery().WithLimit(limit)

			var customers []revenuecat.Customer
			if allPages {
				customers, err = revenuecat.FetchAll(ctx,
					revenuecat.ListFetcher(params, func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Customer], error) {
						return client.Customers().List(ctx, projectID, params)
					}), nil)
			} else {
				var page *revenuecat.Page[revenuecat.Customer]

				page, err = client.Customers().List(ctx, projectID, params)
				if page != nil {
					customers = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return outputCustomers(customers)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func createCustomersGetCommand() *cobra.Command {
	var expand []string

	cmd := &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Show a customer",
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

			params := &revenuecat.GetQuery{Expand: expand}

			customer, err := client.Customers().Get(context.Background(), projectID, args[0], params)
			if err != nil {
				if revenuecat.IsNotFound(err) {
					return fmt.Errorf("customer '%s': %w", args[0], ErrCustomerNotFound)
				}

				return fmt.Errorf("failed to get customer: %w", err)
			}

			return outputCustomer(customer)
		},
	}

	cmd.Flags().StringSliceVar(&expand, "expand", nil, "related objects to expand (e.g. attributes)")

	return cmd
}

func createCustomersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Long:  "Delete a customer and all associated purchase data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete customer '%s'? (y/N): ", customerID)

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

			deleted, err := client.Customers().Delete(context.Background(), projectID, customerID)
			if err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted customer '%s'\n", deleted.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func createCustomersEntitlementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entitlements CUSTOMER_ID",
		Short: "List a customer's active entitlements",
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

			ctx := context.Background()

			entitlements, err := revenuecat.FetchAll(ctx,
				revenuecat.ListFetcher(nil, func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.CustomerEntitlement], error) {
					return client.Customers().ListActiveEntitlements(ctx, projectID, args[0], params)
				}), nil)
			if err != nil {
				return fmt.Errorf("failed to list active entitlements: %w", err)
			}

			return outputCustomerEntitlements(entitlements)
		},
	}
}

func outputCustomers(customers []revenuecat.Customer) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(customers)
	case OutputFormatYAML:
		return renderYAML(customers)
	default:
		if len(customers) == 0 {
			_, _ = os.Stdout.WriteString("No customers found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "First Seen", "Last Seen")

		for _, customer := range customers {
			_ = table.Append(customer.ID, formatTimestamp(customer.FirstSeenAt),
				formatTimestamp(customer.LastSeenAt))
		}

		_ = table.Render()

		return nil
	}
}

func outputCustomer(customer *revenuecat.Customer) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(customer)
	case OutputFormatYAML:
		return renderYAML(customer)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", customer.ID)
		_ = table.Append("Project", customer.ProjectID)
		_ = table.Append("First Seen", formatTimestamp(customer.FirstSeenAt))
		_ = table.Append("Last Seen", formatTimestamp(customer.LastSeenAt))

		if customer.ActiveEntitlements != nil {
			_ = table.Append("Active Entitlements", fmt.Sprintf("%d", len(customer.ActiveEntitlements.Items)))
		}

		_ = table.Render()

		return nil
	}
}

func outputCustomerEntitlements(entitlements []revenuecat.CustomerEntitlement) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(entitlements)
	case OutputFormatYAML:
		return renderYAML(entitlements)
	default:
		if len(entitlements) == 0 {
			_, _ = os.Stdout.WriteString("No active entitlements\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Entitlement", "Expires")

		for _, entitlement := range entitlements {
			_ = table.Append(entitlement.EntitlementID, formatOptionalTimestamp(entitlement.ExpiresAt))
		}

		_ = table.Render()

		return nil
	}
}
