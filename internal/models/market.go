package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// Order sides accepted by the investment endpoint.
const (
	OrderTypeBuy  = "buy"
	OrderTypeSell = "sell"
)

// Alert directions accepted by the alerts endpoint.
const (
	AlertDirectionAbove = "above"
	AlertDirectionBelow = "below"
)

var (
	ErrNoAsset       = eris.New("no asset selected")
	ErrInvalidAmount = eris.New("investment amount must be greater than zero")
)

// Asset is a tradable instrument in one of the browsing categories.
type Asset struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Change string  `json:"change"`
}

// AssetBook maps a category key to the assets available in it.
type AssetBook map[string][]Asset

// Find looks a symbol up across all categories.
func (b AssetBook) Find(symbol string) (Asset, bool) {
	for _, assets := range b {
		for _, a := range assets {
			if a.Symbol == symbol {
				return a, true
			}
		}
	}
	return Asset{}, false
}

// Quote is a single price observation.
type Quote struct {
	Symbol     string  `json:"symbol"`
	Price      float64 `json:"price"`
	Change     string  `json:"change"`
	LastUpdate string  `json:"lastUpdate"`
}

// QuoteBoard is the quotes endpoint payload.
type QuoteBoard struct {
	Quotes []Quote `json:"quotes"`
}

// InvestmentOrder is the body sent to the investment endpoint. Reference is a
// client-generated id so a retried submission can be deduplicated server-side.
type InvestmentOrder struct {
	Reference   string  `json:"reference"`
	AssetSymbol string  `json:"assetSymbol"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Timestamp   string  `json:"timestamp"`
}

// NewInvestmentOrder validates and stamps a buy/sell order.
func NewInvestmentOrder(symbol string, amount float64, orderType string) (InvestmentOrder, error) {
	if symbol == "" {
		return InvestmentOrder{}, ErrNoAsset
	}
	if amount <= 0 {
		return InvestmentOrder{}, ErrInvalidAmount
	}
	if orderType == "" {
		orderType = OrderTypeBuy
	}
	return InvestmentOrder{
		Reference:   uuid.NewString(),
		AssetSymbol: symbol,
		Amount:      amount,
		Type:        orderType,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// InvestmentAck is the confirmation returned for an accepted order.
type InvestmentAck struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// Quantity converts an order amount into asset units at the given price.
// Crypto symbols keep six decimal places, everything else two.
func Quantity(amount, price float64, symbol string) string {
	if price == 0 {
		return "0"
	}
	decimals := 2
	if symbol == "BTC" || symbol == "ETH" {
		decimals = 6
	}
	return strconv.FormatFloat(amount/price, 'f', decimals, 64)
}

// PriceAlert is a price threshold watched on behalf of the user.
type PriceAlert struct {
	AssetSymbol string  `json:"assetSymbol"`
	TargetPrice float64 `json:"targetPrice"`
	Direction   string  `json:"direction"`
	Active      bool    `json:"active"`
}

// Triggered reports whether a quote crosses the alert threshold.
func (a PriceAlert) Triggered(price float64) bool {
	if !a.Active {
		return false
	}
	switch a.Direction {
	case AlertDirectionAbove:
		return price >= a.TargetPrice
	case AlertDirectionBelow:
		return price <= a.TargetPrice
	default:
		return false
	}
}

// AlertList is the alerts endpoint payload.
type AlertList struct {
	Alerts []PriceAlert `json:"alerts"`
}
