package client_test

import (
	"context"
	"testing"

	"github.com/frknlkn/revenuecat-go/internal/client"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
)

func TestProjectsList(t *testing.T) {
	t.Parallel()

	client.RunListTest(t, "list projects", "/projects", "limit=10",
		[]revenuecat.Project{
			{Object: "project", ID: "proj_1", Name: "First Project"},
			{Object: "project", ID: "proj_2", Name: "Second Project"},
		},
		func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Project], error) {
			return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.Project], error) {
				return c.Projects().List(ctx, params)
			}
		},
		revenuecat.NewListQuery().WithLimit(10),
		func(items []revenuecat.Project) {
			assert.Equal(t, "First Project", items[0].Name)
			assert.Equal(t, "proj_2", items[1].ID)
		})
}
