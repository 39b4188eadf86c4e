package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the canonical operation side of a transaction.
type TransactionType string

const (
	Buy  TransactionType = "BUY"
	Sell TransactionType = "SELL"
)

// RawTransaction represents a single transaction as exported by the broker.
// All fields are untyped text exactly as received from the source feed.
type RawTransaction struct {
	ExecutionDate string `json:"execution_date"` // Date the order was executed
	Type          string `json:"type"`           // Broker vocabulary, e.g. "Kauf", "Verkauf"
	Shares        string `json:"shares"`         // Number of shares, possibly signed
	Price         string `json:"price"`          // Price per share in the feed's locale
	TotalFees     string `json:"total_fees"`     // Total fees, possibly signed
}

// Transaction is the canonical, strongly typed representation of a
// broker transaction. Shares and Fees always hold magnitudes; the
// operation side is carried by Type alone. Exchange is nil when the
// source feed does not report one, which is distinct from a known but
// empty identifier.
type Transaction struct {
	ExecutionDate time.Time       `json:"execution_date"`
	Type          TransactionType `json:"type"`
	Shares        decimal.Decimal `json:"shares"`
	Price         decimal.Decimal `json:"price"`
	Exchange      *string         `json:"exchange"`
	Fees          decimal.Decimal `json:"fees"`
}

// RawQuoteItem is a single price point from a historical quote export.
// The quote feed delivers item dates already decoded upstream, so Date
// is typed here; only the price still needs parsing.
type RawQuoteItem struct {
	Date  time.Time `json:"date"`
	Price string    `json:"price"`
}

// RawQuoteData represents a historical quote series for one security as
// exported by the broker.
type RawQuoteData struct {
	Name     string         `json:"name"`
	NSIN     string         `json:"nsin"`     // National securities identifying number
	Exchange string         `json:"exchange"` // Exchange the series was quoted on
	Items    []RawQuoteItem `json:"items"`
}

// QuoteItem is a single canonical price point.
type QuoteItem struct {
	Date  time.Time       `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// QuoteData is the canonical quote series. Items keep the exact order
// and count of the raw series; the sequence is a time series and must
// not be reordered or deduplicated.
type QuoteData struct {
	Name     string      `json:"name"`
	NSIN     string      `json:"nsin"`
	Exchange string      `json:"exchange"`
	Items    []QuoteItem `json:"items"`
}
