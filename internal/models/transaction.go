package models

import "strings"

// TransactionFilterAll matches every transaction type.
const TransactionFilterAll = "all"

// Transaction is a single account movement.
type Transaction struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Status   string  `json:"status"`
}

// TransactionPage is one page of the transaction history.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	TotalPages   int           `json:"totalPages"`
	CurrentPage  int           `json:"currentPage"`
}

// FilterByType keeps transactions matching the given type. The "all" filter
// returns the input unchanged.
func FilterByType(transactions []Transaction, transactionType string) []Transaction {
	if transactionType == TransactionFilterAll || transactionType == "" {
		return transactions
	}
	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == transactionType {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SearchTransactions matches the query case-insensitively against title and
// subtitle. An empty query matches everything.
func SearchTransactions(transactions []Transaction, query string) []Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return transactions
	}
	matched := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Subtitle), query) {
			matched = append(matched, t)
		}
	}
	return matched
}
