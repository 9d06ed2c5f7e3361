package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/internal/services/session"
)

// Interface implementation check.
var _ ClientInterface = (*Client)(nil)

// Client implements the HTTP API client with retry logic and authentication.
// Every request carries the service token identifying this application; calls
// other than login additionally carry the session token as a bearer credential.
type Client struct {
	BaseURL      string
	ServiceToken string
	Session      session.ServiceInterface
	HTTPClient   HTTPClientInterface
}

// ClientInterface defines the contract for making API calls.
// Read endpoints never fail: any transport, status, or decode problem is
// absorbed into that endpoint's static fallback payload so the caller always
// has renderable data. Login, logout, and the write endpoints keep strict
// error contracts.
type ClientInterface interface {
	// Authentication
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Logout(ctx context.Context) error
	ValidateToken(ctx context.Context) bool

	// Read endpoints with fallback
	GetUserProfile(ctx context.Context) models.Profile
	GetPortfolio(ctx context.Context) models.Portfolio
	GetTransactions(ctx context.Context, page, limit int, filter string) models.TransactionPage
	GetAvailableAssets(ctx context.Context, category string) models.AssetBook
	GetRealTimeQuotes(ctx context.Context, symbols []string) models.QuoteBoard
	GetReports(ctx context.Context, reportType, period string) models.Reports
	GetUserAlerts(ctx context.Context) models.AlertList

	// Write endpoints
	MakeInvestment(ctx context.Context, order models.InvestmentOrder) (models.InvestmentAck, error)
	SetPriceAlert(ctx context.Context, alert models.PriceAlert) error
}

// HTTPClientInterface allows for mocking the underlying HTTP client.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

// LoginResult is the outcome of a login attempt. Error carries the
// user-facing reason when Success is false.
type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RequestConfig holds configuration for individual requests.
type RequestConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	Timeout    time.Duration
}
