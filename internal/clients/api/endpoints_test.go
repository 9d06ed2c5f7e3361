package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecskill/rtx-cli/internal/models"
)

// unreachableClient points at a port nothing listens on, so every request
// fails at the transport layer.
func unreachableClient(t *testing.T) *Client {
	t.Helper()
	return newTestClient(authedSession(t), "http://127.0.0.1:1", http.DefaultClient)
}

func TestReadEndpointsFallBackWhenBackendUnreachable(t *testing.T) {
	t.Parallel()
	client := unreachableClient(t)
	ctx := context.Background()

	t.Run("portfolio", func(t *testing.T) {
		portfolio := client.GetPortfolio(ctx)
		assert.InDelta(t, 275550.00, portfolio.TotalValue, 0.001)
		require.Len(t, portfolio.Categories, 4)
		assert.Equal(t, "Ações", portfolio.Categories[0].Name)
		assert.InDelta(t, 125430.00, portfolio.Categories[0].Value, 0.001)
	})

	t.Run("profile", func(t *testing.T) {
		profile := client.GetUserProfile(ctx)
		assert.Equal(t, "Administrador", profile.Name)
		assert.Equal(t, "admin@admin.net", profile.Email)
	})

	t.Run("reports", func(t *testing.T) {
		reports := client.GetReports(ctx, "monthly", "")
		assert.InDelta(t, 15.2, reports.Performance.TotalReturn, 0.001)
		assert.Equal(t, "PETR4", reports.Performance.BestAsset)
		assert.True(t, reports.Allocation.Recommended)
		assert.Len(t, reports.Allocation.Suggestions, 2)
	})

	t.Run("alerts", func(t *testing.T) {
		alerts := client.GetUserAlerts(ctx)
		require.NotNil(t, alerts.Alerts, "fallback must be renderable, not nil")
		assert.Empty(t, alerts.Alerts)
	})
}

func TestReadEndpointsFallBackWithoutSession(t *testing.T) {
	t.Parallel()
	mockHTTP := &MockHTTPClient{}
	client := newTestClient(anonSession(t), "http://example.test", mockHTTP)

	portfolio := client.GetPortfolio(context.Background())
	assert.InDelta(t, 275550.00, portfolio.TotalValue, 0.001)
	assert.Empty(t, mockHTTP.Calls, "unauthenticated reads must not reach the network")
}

func TestGetTransactionsFallback(t *testing.T) {
	t.Parallel()
	client := unreachableClient(t)

	page := client.GetTransactions(context.Background(), 3, 20, models.TransactionFilterAll)
	assert.Equal(t, 3, page.CurrentPage, "fallback echoes the requested page")
	assert.Equal(t, 5, page.TotalPages)
	require.Len(t, page.Transactions, 2)
	assert.Equal(t, "Compra PETR4", page.Transactions[0].Title)
	assert.Equal(t, "Dividendos ITUB4", page.Transactions[1].Title)

	// Out-of-range input is normalized before it reaches the backend.
	page = client.GetTransactions(context.Background(), 0, 0, "")
	assert.Equal(t, 1, page.CurrentPage)
}

func TestGetAvailableAssetsFallback(t *testing.T) {
	t.Parallel()
	client := unreachableClient(t)
	ctx := context.Background()

	t.Run("full book", func(t *testing.T) {
		book := client.GetAvailableAssets(ctx, "")
		assert.Len(t, book, 4)
		assert.Len(t, book["acoes"], 3)

		btc, ok := book.Find("BTC")
		require.True(t, ok)
		assert.InDelta(t, 380000.00, btc.Price, 0.001)
	})

	t.Run("single category", func(t *testing.T) {
		book := client.GetAvailableAssets(ctx, "cripto")
		require.Len(t, book, 1)
		assert.Len(t, book["cripto"], 2)
	})

	t.Run("unknown category", func(t *testing.T) {
		book := client.GetAvailableAssets(ctx, "imoveis")
		require.Len(t, book, 1)
		assert.Empty(t, book["imoveis"])
	})
}

func TestGetRealTimeQuotesFallback(t *testing.T) {
	t.Parallel()
	client := unreachableClient(t)
	ctx := context.Background()

	t.Run("known symbol uses table price", func(t *testing.T) {
		board := client.GetRealTimeQuotes(ctx, []string{"PETR4"})
		require.Len(t, board.Quotes, 1)
		assert.InDelta(t, 28.50, board.Quotes[0].Price, 0.001)
		assert.Equal(t, "+2.1%", board.Quotes[0].Change)
	})

	t.Run("unknown symbol is deterministic", func(t *testing.T) {
		first := client.GetRealTimeQuotes(ctx, []string{"ZZZZ9"})
		second := client.GetRealTimeQuotes(ctx, []string{"ZZZZ9"})
		require.Len(t, first.Quotes, 1)
		require.Len(t, second.Quotes, 1)
		assert.Equal(t, first.Quotes[0].Price, second.Quotes[0].Price)
		assert.Equal(t, first.Quotes[0].Change, second.Quotes[0].Change)
	})
}

func TestReadEndpointPrefersServerPayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/portfolio", r.URL.Path)
		assert.Equal(t, "Bearer "+testSessionToken, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"totalValue":42.50,"categories":[{"name":"Ações","value":42.50,"percentage":1.0,"color":"#FFFFFF","allocation":100.0}]}`))
	}))
	defer srv.Close()

	client := newTestClient(authedSession(t), srv.URL, srv.Client())
	portfolio := client.GetPortfolio(context.Background())
	assert.InDelta(t, 42.50, portfolio.TotalValue, 0.001)
	require.Len(t, portfolio.Categories, 1)
}

func TestMakeInvestmentSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/investment", r.URL.Path)

		var order models.InvestmentOrder
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		assert.Equal(t, "PETR4", order.AssetSymbol)

		_, _ = w.Write([]byte(`{"transactionId":"tx_1","status":"confirmed","message":"ordem aceita"}`))
	}))
	defer srv.Close()

	client := newTestClient(authedSession(t), srv.URL, srv.Client())
	order, err := models.NewInvestmentOrder("PETR4", 1000, models.OrderTypeBuy)
	require.NoError(t, err)

	ack, err := client.MakeInvestment(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "tx_1", ack.TransactionID)
	assert.Equal(t, "confirmed", ack.Status)
}

func TestMakeInvestmentPropagatesFailures(t *testing.T) {
	t.Parallel()

	t.Run("no session", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(anonSession(t), "http://example.test", &MockHTTPClient{})

		order, err := models.NewInvestmentOrder("PETR4", 1000, models.OrderTypeBuy)
		require.NoError(t, err)

		ack, err := client.MakeInvestment(context.Background(), order)
		require.Error(t, err)
		assert.Empty(t, ack.TransactionID, "a failed order is never reported as accepted")
	})

	t.Run("backend unreachable", func(t *testing.T) {
		t.Parallel()
		client := unreachableClient(t)

		order, err := models.NewInvestmentOrder("PETR4", 1000, models.OrderTypeBuy)
		require.NoError(t, err)

		_, err = client.MakeInvestment(context.Background(), order)
		require.Error(t, err)
	})
}

func TestSetPriceAlertMarksActive(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/alerts", r.URL.Path)

		var alert models.PriceAlert
		require.NoError(t, json.NewDecoder(r.Body).Decode(&alert))
		assert.True(t, alert.Active, "alerts are created active")
		assert.Equal(t, "BTC", alert.AssetSymbol)

		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(authedSession(t), srv.URL, srv.Client())
	err := client.SetPriceAlert(context.Background(), models.PriceAlert{
		AssetSymbol: "BTC",
		TargetPrice: 400000,
		Direction:   models.AlertDirectionAbove,
	})
	require.NoError(t, err)
}

func TestSetPriceAlertPropagatesFailures(t *testing.T) {
	t.Parallel()
	client := unreachableClient(t)

	err := client.SetPriceAlert(context.Background(), models.PriceAlert{
		AssetSymbol: "BTC",
		TargetPrice: 400000,
		Direction:   models.AlertDirectionBelow,
	})
	require.Error(t, err)
}
