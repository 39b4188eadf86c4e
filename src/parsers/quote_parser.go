package parsers

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/marvey11/csfin-toolkit/src/models"
)

// QuoteConverter converts raw historical quote series into canonical
// ones.
type QuoteConverter struct {
	numbers NumberParser
}

func NewQuoteConverter(numbers NumberParser) *QuoteConverter {
	return &QuoteConverter{numbers: numbers}
}

// Convert builds a canonical QuoteData from a raw series. Name, NSIN
// and exchange pass through untouched. Items are converted element-wise
// with order and count preserved exactly; the sequence is a time
// series. Item dates are copied as delivered, without the dialect
// validation applied to transaction dates. A price parse failure aborts
// the whole conversion.
func (c *QuoteConverter) Convert(raw models.RawQuoteData) (models.QuoteData, error) {
	items := make([]models.QuoteItem, 0, len(raw.Items))
	for i, item := range raw.Items {
		price, err := c.numbers.Parse(item.Price)
		if err != nil {
			return models.QuoteData{}, errors.Wrapf(err, "parsing price of quote item %d", i)
		}
		items = append(items, models.QuoteItem{
			Date:  item.Date,
			Price: price,
		})
	}

	slog.Debug("converted raw quote series",
		slog.String("nsin", raw.NSIN),
		slog.Int("items", len(items)))

	return models.QuoteData{
		Name:     raw.Name,
		NSIN:     raw.NSIN,
		Exchange: raw.Exchange,
		Items:    items,
	}, nil
}
