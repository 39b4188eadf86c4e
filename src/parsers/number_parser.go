package parsers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LocaleNumberParser is the default NumberParser. It detects the
// decimal separator from the string shape: when both "." and ","
// appear, the one further right is the decimal separator and the other
// marks thousands; a lone separator is taken as the decimal separator
// unless it occurs more than once, in which case it marks thousands.
// Grouping spaces and apostrophes are ignored. Ambiguous inputs such as
// "1,234" therefore parse as the decimal 1.234; callers with stricter
// locale knowledge can supply their own NumberParser.
type LocaleNumberParser struct{}

func NewLocaleNumberParser() *LocaleNumberParser {
	return &LocaleNumberParser{}
}

func (p *LocaleNumberParser) Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Zero, &InvalidNumberError{Value: s}
	}

	// Grouping characters that are never decimal separators.
	cleaned = strings.NewReplacer(" ", "", " ", "", "'", "").Replace(cleaned)

	dot := strings.LastIndex(cleaned, ".")
	comma := strings.LastIndex(cleaned, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case comma >= 0:
		if strings.Count(cleaned, ",") > 1 {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	case dot >= 0:
		if strings.Count(cleaned, ".") > 1 {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &InvalidNumberError{Value: s}
	}
	return d, nil
}
