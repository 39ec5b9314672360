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

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List RevenueCat projects accessible with the configured API key",
	}

	cmd.AddCommand(createProjectsListCommand())

	return cmd
}

func createProjectsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := revenuecat.NewListQuery().WithLimit(limit)

			var projects []revenuecat.Project
			if allPages {
				projects, err = revenuecat.FetchAll(ctx,
					revenuecat.ListFetcher(params, client.Projects().List), nil)
			} else {
				var page *revenuecat.Page[revenuecat.Project]

				page, err = client.Projects().List(ctx, params)
				if page != nil {
					projects = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			return outputProjects(projects)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func outputProjects(projects []revenuecat.Project) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(projects)
	case OutputFormatYAML:
		return renderYAML(projects)
	default:
		if len(projects) == 0 {
			_, _ = os.Stdout.WriteString("No projects found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Created")

		for _, project := range projects {
			_ = table.Append(project.ID, project.Name, formatTimestamp(project.CreatedAt))
		}

		_ = table.Render()

		return nil
	}
}
