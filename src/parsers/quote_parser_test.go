package parsers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvey11/csfin-toolkit/src/models"
)

func TestQuoteConverterConvert(t *testing.T) {
	converter := NewQuoteConverter(NewLocaleNumberParser())

	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("series fields pass through and items convert in order", func(t *testing.T) {
		raw := models.RawQuoteData{
			Name:     "Siemens AG",
			NSIN:     "723610",
			Exchange: "XETRA",
			Items: []models.RawQuoteItem{
				{Date: day(1), Price: "178,50"},
				{Date: day(4), Price: "180.25"},
				{Date: day(5), Price: "179,00"},
				// Duplicate date stays in place; the series is never deduplicated.
				{Date: day(5), Price: "179,10"},
			},
		}

		quote, err := converter.Convert(raw)
		require.NoError(t, err)

		assert.Equal(t, "Siemens AG", quote.Name)
		assert.Equal(t, "723610", quote.NSIN)
		assert.Equal(t, "XETRA", quote.Exchange)

		require.Len(t, quote.Items, len(raw.Items))
		expectedPrices := []string{"178.5", "180.25", "179", "179.1"}
		for i, item := range quote.Items {
			assert.True(t, raw.Items[i].Date.Equal(item.Date), "item %d date", i)
			assert.Equal(t, expectedPrices[i], item.Price.String(), "item %d price", i)
		}
	})

	t.Run("empty series", func(t *testing.T) {
		quote, err := converter.Convert(models.RawQuoteData{Name: "n", NSIN: "1", Exchange: "x"})
		require.NoError(t, err)
		assert.Empty(t, quote.Items)
	})

	t.Run("empty pass-through fields stay empty", func(t *testing.T) {
		quote, err := converter.Convert(models.RawQuoteData{})
		require.NoError(t, err)
		assert.Equal(t, "", quote.Name)
		assert.Equal(t, "", quote.NSIN)
		assert.Equal(t, "", quote.Exchange)
	})

	t.Run("bad price aborts the whole conversion", func(t *testing.T) {
		_, err := converter.Convert(models.RawQuoteData{
			NSIN: "723610",
			Items: []models.RawQuoteItem{
				{Date: day(1), Price: "178,50"},
				{Date: day(4), Price: "oops"},
			},
		})
		require.Error(t, err)
		var invalidNumber *InvalidNumberError
		require.True(t, errors.As(err, &invalidNumber))
		assert.Equal(t, "oops", invalidNumber.Value)
		assert.Contains(t, err.Error(), "item 1")
	})
}
