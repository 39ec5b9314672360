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

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products",
		Long:    "List and inspect products of the targeted project",
	}

	cmd.AddCommand(createProductsListCommand())
	cmd.AddCommand(createProductsGetCommand())

	return cmd
}

func createProductsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		appID    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
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
			if appID != "" {
				params = params.WithFilter("app_id", appID)
			}

			var products []revenuecat.Product
			if allPages {
				products, err = revenuecat.FetchAll(ctx,
					revenuecat.ListFetcher(params, func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Product], error) {
						return client.Products().List(ctx, projectID, params)
					}), nil)
			} else {
				var page *revenuecat.Page[revenuecat.Product]

				page, err = client.Products().List(ctx, projectID, params)
				if page != nil {
					products = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			return outputProducts(products)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&appID, "app", "", "filter by app ID")

	return cmd
}

func createProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Show a product",
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

			product, err := client.Products().Get(context.Background(), projectID, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}

			return outputProduct(product)
		},
	}
}

func outputProducts(products []revenuecat.Product) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(products)
	case OutputFormatYAML:
		return renderYAML(products)
	default:
		if len(products) == 0 {
			_, _ = os.Stdout.WriteString("No products found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Store Identifier", "Type", "App", "Created")

		for _, product := range products {
			_ = table.Append(product.ID, product.StoreIdentifier, string(product.Type),
				product.AppID, formatTimestamp(product.CreatedAt))
		}

		_ = table.Render()

		return nil
	}
}

func outputProduct(product *revenuecat.Product) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(product)
	case OutputFormatYAML:
		return renderYAML(product)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", product.ID)
		_ = table.Append("Store Identifier", product.StoreIdentifier)
		_ = table.Append("Type", string(product.Type))
		_ = table.Append("App", product.AppID)
		_ = table.Append("Created", formatTimestamp(product.CreatedAt))

		if product.DisplayName != "" {
			_ = table.Append("Display Name", product.DisplayName)
		}

		if product.Subscription != nil {
			_ = table.Append("Duration", product.Subscription.Duration)

			if product.Subscription.TrialDuration != "" {
				_ = table.Append("Trial Duration", product.Subscription.TrialDuration)
			}
		}

		_ = table.Render()

		return nil
	}
}
