package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/tecskill/rtx-cli/internal/models"
)

// GetUserProfile retrieves the account profile.
func (c *Client) GetUserProfile(ctx context.Context) models.Profile {
	return withFallback(ctx, c, http.MethodGet, "/user/profile", fallbackProfile())
}

// GetPortfolio retrieves the portfolio breakdown.
func (c *Client) GetPortfolio(ctx context.Context) models.Portfolio {
	return withFallback(ctx, c, http.MethodGet, "/portfolio", fallbackPortfolio())
}

// GetTransactions retrieves one page of the transaction history.
func (c *Client) GetTransactions(ctx context.Context, page, limit int, filter string) models.TransactionPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if filter == "" {
		filter = models.TransactionFilterAll
	}

	endpoint := fmt.Sprintf("/transactions?page=%d&limit=%d&filter=%s", page, limit, url.QueryEscape(filter))
	return withFallback(ctx, c, http.MethodGet, endpoint, fallbackTransactions(page))
}

// GetAvailableAssets retrieves the assets open for investment, keyed by
// category. Pass "all" (or empty) for the whole book.
func (c *Client) GetAvailableAssets(ctx context.Context, category string) models.AssetBook {
	if category == "" {
		category = "all"
	}
	endpoint := "/assets?category=" + url.QueryEscape(category)
	return withFallback(ctx, c, http.MethodGet, endpoint, fallbackAssets(category))
}

// GetRealTimeQuotes retrieves current prices for the given symbols.
func (c *Client) GetRealTimeQuotes(ctx context.Context, symbols []string) models.QuoteBoard {
	endpoint := "/quotes?symbols=" + url.QueryEscape(strings.Join(symbols, ","))
	return withFallback(ctx, c, http.MethodGet, endpoint, fallbackQuotes(symbols))
}

// GetReports retrieves the performance and allocation report for a period.
func (c *Client) GetReports(ctx context.Context, reportType, period string) models.Reports {
	if reportType == "" {
		reportType = "monthly"
	}
	endpoint := fmt.Sprintf("/reports?type=%s&period=%s", url.QueryEscape(reportType), url.QueryEscape(period))
	return withFallback(ctx, c, http.MethodGet, endpoint, fallbackReports())
}

// GetUserAlerts retrieves the configured price alerts.
func (c *Client) GetUserAlerts(ctx context.Context) models.AlertList {
	return withFallback(ctx, c, http.MethodGet, "/alerts", fallbackAlerts())
}

// MakeInvestment submits a buy/sell order. Failures are returned to the
// caller; an order that did not reach the backend is never reported as
// accepted.
func (c *Client) MakeInvestment(ctx context.Context, order models.InvestmentOrder) (models.InvestmentAck, error) {
	body, err := c.sendRequest(ctx, http.MethodPost, "/investment", order)
	if err != nil {
		return models.InvestmentAck{}, eris.Wrap(err, "Failed to submit investment order")
	}

	var ack models.InvestmentAck
	if err := json.Unmarshal(body, &ack); err != nil {
		return models.InvestmentAck{}, eris.Wrap(err, "Failed to parse investment confirmation")
	}
	return ack, nil
}

// SetPriceAlert registers a price alert with the backend.
func (c *Client) SetPriceAlert(ctx context.Context, alert models.PriceAlert) error {
	alert.Active = true
	if _, err := c.sendRequest(ctx, http.MethodPost, "/alerts", alert); err != nil {
		return eris.Wrap(err, "Failed to set price alert")
	}
	return nil
}
