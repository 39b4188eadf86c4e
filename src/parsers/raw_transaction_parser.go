package parsers

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/marvey11/csfin-toolkit/src/models"
)

// transactionTypes is the recognized broker vocabulary. Matching is
// exact and case-sensitive.
var transactionTypes = map[string]models.TransactionType{
	"Kauf":    models.Buy,
	"Verkauf": models.Sell,
}

// MapTransactionType maps a broker vocabulary token onto the canonical
// transaction type. Unrecognized tokens fail with
// *UnknownTransactionTypeError.
func MapTransactionType(token string) (models.TransactionType, error) {
	txType, ok := transactionTypes[token]
	if !ok {
		return "", &UnknownTransactionTypeError{Token: token}
	}
	return txType, nil
}

// TransactionConverter converts raw broker transactions into canonical
// ones.
type TransactionConverter struct {
	numbers NumberParser
}

func NewTransactionConverter(numbers NumberParser) *TransactionConverter {
	return &TransactionConverter{numbers: numbers}
}

// Convert builds a canonical Transaction from a raw one. The first
// failing field aborts the conversion; no partial Transaction is ever
// returned.
//
// Shares and fees are stored as magnitudes: the feed reports sell-side
// share counts and all fees as negative numbers, but the operation sign
// is already carried by the transaction type. The price is never
// sign-flipped. The exchange is left nil because the feed does not
// carry one.
func (c *TransactionConverter) Convert(raw models.RawTransaction) (models.Transaction, error) {
	date, err := ParseDate(raw.ExecutionDate)
	if err != nil {
		return models.Transaction{}, err
	}

	txType, err := MapTransactionType(raw.Type)
	if err != nil {
		return models.Transaction{}, err
	}

	shares, err := c.numbers.Parse(raw.Shares)
	if err != nil {
		return models.Transaction{}, errors.Wrapf(err, "parsing shares %q", raw.Shares)
	}

	fees, err := c.numbers.Parse(raw.TotalFees)
	if err != nil {
		return models.Transaction{}, errors.Wrapf(err, "parsing total fees %q", raw.TotalFees)
	}

	price, err := c.numbers.Parse(raw.Price)
	if err != nil {
		return models.Transaction{}, errors.Wrapf(err, "parsing price %q", raw.Price)
	}

	slog.Debug("converted raw transaction",
		slog.String("date", date.Format("2006-01-02")),
		slog.String("type", string(txType)))

	return models.Transaction{
		ExecutionDate: date,
		Type:          txType,
		Shares:        shares.Abs(),
		Price:         price,
		Exchange:      nil,
		Fees:          fees.Abs(),
	}, nil
}
