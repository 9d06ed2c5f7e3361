package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecskill/rtx-cli/internal/models"
)

func TestNewInvestmentOrder(t *testing.T) {
	t.Parallel()

	t.Run("valid order", func(t *testing.T) {
		t.Parallel()
		order, err := models.NewInvestmentOrder("PETR4", 1000, models.OrderTypeSell)
		require.NoError(t, err)
		assert.Equal(t, "PETR4", order.AssetSymbol)
		assert.Equal(t, models.OrderTypeSell, order.Type)

		_, err = time.Parse(time.RFC3339, order.Timestamp)
		assert.NoError(t, err, "timestamp must be RFC3339")
		assert.NotEmpty(t, order.Reference)
	})

	t.Run("references are unique", func(t *testing.T) {
		t.Parallel()
		first, err := models.NewInvestmentOrder("PETR4", 1000, models.OrderTypeBuy)
		require.NoError(t, err)
		second, err := models.NewInvestmentOrder("PETR4", 1000, models.OrderTypeBuy)
		require.NoError(t, err)
		assert.NotEqual(t, first.Reference, second.Reference)
	})

	t.Run("defaults to buy", func(t *testing.T) {
		t.Parallel()
		order, err := models.NewInvestmentOrder("PETR4", 1000, "")
		require.NoError(t, err)
		assert.Equal(t, models.OrderTypeBuy, order.Type)
	})

	t.Run("no asset", func(t *testing.T) {
		t.Parallel()
		_, err := models.NewInvestmentOrder("", 1000, models.OrderTypeBuy)
		assert.ErrorIs(t, err, models.ErrNoAsset)
	})

	t.Run("invalid amount", func(t *testing.T) {
		t.Parallel()
		_, err := models.NewInvestmentOrder("PETR4", 0, models.OrderTypeBuy)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)

		_, err = models.NewInvestmentOrder("PETR4", -50, models.OrderTypeBuy)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
	})
}

func TestQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		price  float64
		symbol string
		want   string
	}{
		{name: "stock keeps two decimals", amount: 1000, price: 28.50, symbol: "PETR4", want: "35.09"},
		{name: "bitcoin keeps six decimals", amount: 1000, price: 380000, symbol: "BTC", want: "0.002632"},
		{name: "ether keeps six decimals", amount: 1000, price: 16500, symbol: "ETH", want: "0.060606"},
		{name: "zero price", amount: 1000, price: 0, symbol: "PETR4", want: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, models.Quantity(tc.amount, tc.price, tc.symbol))
		})
	}
}

func TestAssetBookFind(t *testing.T) {
	t.Parallel()
	book := models.AssetBook{
		"acoes":  {{Symbol: "PETR4", Name: "Petrobras PN", Price: 28.50}},
		"cripto": {{Symbol: "BTC", Name: "Bitcoin", Price: 380000}},
	}

	asset, ok := book.Find("BTC")
	require.True(t, ok)
	assert.Equal(t, "Bitcoin", asset.Name)

	_, ok = book.Find("VALE3")
	assert.False(t, ok)
}

func TestPriceAlertTriggered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		alert models.PriceAlert
		price float64
		want  bool
	}{
		{
			name:  "above triggers at threshold",
			alert: models.PriceAlert{Direction: models.AlertDirectionAbove, TargetPrice: 100, Active: true},
			price: 100, want: true,
		},
		{
			name:  "above stays quiet below threshold",
			alert: models.PriceAlert{Direction: models.AlertDirectionAbove, TargetPrice: 100, Active: true},
			price: 99.99, want: false,
		},
		{
			name:  "below triggers under threshold",
			alert: models.PriceAlert{Direction: models.AlertDirectionBelow, TargetPrice: 100, Active: true},
			price: 80, want: true,
		},
		{
			name:  "inactive never triggers",
			alert: models.PriceAlert{Direction: models.AlertDirectionAbove, TargetPrice: 100, Active: false},
			price: 500, want: false,
		},
		{
			name:  "unknown direction never triggers",
			alert: models.PriceAlert{Direction: "sideways", TargetPrice: 100, Active: true},
			price: 500, want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.alert.Triggered(tc.price))
		})
	}
}
