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

// NewOfferingsCommand creates the offerings command group.
func NewOfferingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "offerings",
		Aliases: []string{"offering"},
		Short:   "Manage offerings",
		Long:    "List offerings and their packages for the targeted project",
	}

	cmd.AddCommand(createOfferingsListCommand())
	cmd.AddCommand(createOfferingsPackagesCommand())

	return cmd
}

func createOfferingsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List offerings",
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

			var offerings []revenuecat.Offering
			if allPages {
				offerings, err = revenuecat.FetchAll(ctx,
					revenuecat.ListFetcher(params, func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Offering], error) {
						return client.Offerings().List(ctx, projectID, params)
					}), nil)
			} else {
				var page *revenuecat.Page[revenuecat.Offering]

				page, err = client.Offerings().List(ctx, projectID, params)
				if page != nil {
					offerings = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list offerings: %w", err)
			}

			return outputOfferings(offerings)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func createOfferingsPackagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "packages OFFERING_ID",
		Short: "List the packages of an offering",
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

			packages, err := revenuecat.FetchAll(ctx,
				revenuecat.ListFetcher(nil, func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Package], error) {
					return client.Packages().List(ctx, projectID, args[0], params)
				}), nil)
			if err != nil {
				return fmt.Errorf("failed to list packages: %w", err)
			}

			return outputPackages(packages)
		},
	}
}

func outputOfferings(offerings []revenuecat.Offering) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(offerings)
	case OutputFormatYAML:
		return renderYAML(offerings)
	default:
		if len(offerings) == 0 {
			_, _ = os.Stdout.WriteString("No offerings found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Lookup Key", "Display Name", "Current", "Created")

		for _, offering := range offerings {
			current := ""
			if offering.IsCurrent {
				current = "yes"
			}

			_ = table.Append(offering.ID, offering.LookupKey, offering.DisplayName,
				current, formatTimestamp(offering.CreatedAt))
		}

		_ = table.Render()

		return nil
	}
}

func outputPackages(packages []revenuecat.Package) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(packages)
	case OutputFormatYAML:
		return renderYAML(packages)
	default:
		if len(packages) == 0 {
			_, _ = os.Stdout.WriteString("No packages found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Lookup Key", "Display Name", "Position")

		for _, pkg := range packages {
			_ = table.Append(pkg.ID, pkg.LookupKey, pkg.DisplayName, fmt.Sprintf("%d", pkg.Position))
		}

		_ = table.Render()

		return nil
	}
}
