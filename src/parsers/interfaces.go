package parsers

import "github.com/shopspring/decimal"

// NumberParser parses a numeric string whose decimal and thousands
// separators follow an unspecified locale. Implementations detect the
// locale from the string shape. The sign of the input is preserved;
// sign policy belongs to the converters.
//
// This interface is the seam for the converters in this package;
// LocaleNumberParser is the default implementation.
type NumberParser interface {
	Parse(s string) (decimal.Decimal, error)
}
