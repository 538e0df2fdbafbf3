package models

import "time"

// TransactionType distinguishes inbound from outbound stock movements.
type TransactionType string

const (
	TransactionIn  TransactionType = "IN"
	TransactionOut TransactionType = "OUT"
)

// StockTransaction is an append-only movement record. The client only ever
// reads history and appends new movements, never edits or deletes them.
type StockTransaction struct {
	ID              int             `json:"id"`
	Type            TransactionType `json:"type"`
	ProductID       int             `json:"productId"`
	Quantity        int             `json:"quantity"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	Product         *Product        `json:"product,omitempty"`
}

// StockRequest is the payload for the stock-in and stock-out endpoints.
type StockRequest struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// StockMovement summarizes transaction volume for the reports screen.
type StockMovement struct {
	TotalTransactions int `json:"totalTransactions"`
	TotalStockIn      int `json:"totalStockIn"`
	TotalStockOut     int `json:"totalStockOut"`
}
