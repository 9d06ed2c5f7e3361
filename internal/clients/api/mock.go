package api

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/tecskill/rtx-cli/internal/models"
)

// Ensure MockClient implements the interface.
var _ ClientInterface = (*MockClient)(nil)

// MockClient is a mock implementation of ClientInterface.
type MockClient struct {
	mock.Mock
}

// Login mocks a login attempt.
func (m *MockClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(LoginResult), args.Error(1)
}

// Logout mocks a logout.
func (m *MockClient) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ValidateToken mocks a token check.
func (m *MockClient) ValidateToken(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// GetUserProfile mocks fetching the account profile.
func (m *MockClient) GetUserProfile(ctx context.Context) models.Profile {
	args := m.Called(ctx)
	return args.Get(0).(models.Profile)
}

// GetPortfolio mocks fetching the portfolio breakdown.
func (m *MockClient) GetPortfolio(ctx context.Context) models.Portfolio {
	args := m.Called(ctx)
	return args.Get(0).(models.Portfolio)
}

// GetTransactions mocks fetching a transaction page.
func (m *MockClient) GetTransactions(ctx context.Context, page, limit int, filter string) models.TransactionPage {
	args := m.Called(ctx, page, limit, filter)
	return args.Get(0).(models.TransactionPage)
}

// GetAvailableAssets mocks fetching the asset book.
func (m *MockClient) GetAvailableAssets(ctx context.Context, category string) models.AssetBook {
	args := m.Called(ctx, category)
	return args.Get(0).(models.AssetBook)
}

// GetRealTimeQuotes mocks fetching quotes.
func (m *MockClient) GetRealTimeQuotes(ctx context.Context, symbols []string) models.QuoteBoard {
	args := m.Called(ctx, symbols)
	return args.Get(0).(models.QuoteBoard)
}

// GetReports mocks fetching a report.
func (m *MockClient) GetReports(ctx context.Context, reportType, period string) models.Reports {
	args := m.Called(ctx, reportType, period)
	return args.Get(0).(models.Reports)
}

// GetUserAlerts mocks fetching configured alerts.
func (m *MockClient) GetUserAlerts(ctx context.Context) models.AlertList {
	args := m.Called(ctx)
	return args.Get(0).(models.AlertList)
}

// MakeInvestment mocks submitting an order.
func (m *MockClient) MakeInvestment(ctx context.Context, order models.InvestmentOrder) (models.InvestmentAck, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(models.InvestmentAck), args.Error(1)
}

// SetPriceAlert mocks registering a price alert.
func (m *MockClient) SetPriceAlert(ctx context.Context, alert models.PriceAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

// MockHTTPClient is a mock implementation of HTTPClientInterface for testing.
type MockHTTPClient struct {
	mock.Mock
}

// Do mocks executing an HTTP request.
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}
