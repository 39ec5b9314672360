package client_test

import (
	"context"
	"testing"

	"github.com/frknlkn/revenuecat-go/internal/client"
	"github.com/frknlkn/revenuecat-go/pkg/revenuecat"
	"github.com/stretchr/testify/assert"
)

func TestVirtualCurrenciesList(t *testing.T) {
	t.Parallel()

	client.RunListTest(t, "list virtual currencies", "/projects/proj_test/virtual_currencies", "",
		[]revenuecat.VirtualCurrency{
			{Object: "virtual_currency", Code: "GEM", Name: "Gems"},
			{Object: "virtual_currency", Code: "GLD", Name: "Gold"},
		},
		func(c *client.Client) func(context.Context, *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.VirtualCurrency], error) {
			return func(ctx context.Context, params *revenuecat.ListQuery) (*revenuecat.Page[revenuecat.VirtualCurrency], error) {
				return c.VirtualCurrencies().List(ctx, client.TestProjectID, params)
			}
		},
		nil,
		func(items []revenuecat.VirtualCurrency) {
			assert.Equal(t, "GEM", items[0].Code)
			assert.Equal(t, "Gold", items[1].Name)
		})
}

func TestVirtualCurrenciesGet(t *testing.T) {
	t.Parallel()

	client.RunGetTest(t, "get virtual currency", "/projects/proj_test/virtual_currencies/GEM",
		map[string]interface{}{
			"object":      "virtual_currency",
			"code":        "GEM",
			"name":        "Gems",
			"description": "Premium in-game currency",
		},
		func(c *client.Client) func(context.Context) (*revenuecat.VirtualCurrency, error) {
			return func(ctx context.Context) (*revenuecat.VirtualCurrency, error) {
				return c.VirtualCurrencies().Get(ctx, client.TestProjectID, "GEM")
			}
		},
		func(currency *revenuecat.VirtualCurrency) {
			assert.Equal(t, "GEM", currency.Code)
			assert.Equal(t, "Premium in-game currency", currency.Description)
		})
}

func TestVirtualCurrenciesGetNotFound(t *testing.T) {
	t.Parallel()

	client.RunNotFoundTest(t, "virtual currency not found",
		func(c *client.Client) func(context.Context) (*revenuecat.VirtualCurrency, error) {
			return func(ctx context.Context) (*revenuecat.VirtualCurrency, error) {
				return c.VirtualCurrencies().Get(ctx, client.TestProjectID, "NONE")
			}
		})
}
