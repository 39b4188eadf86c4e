package parsers

import "fmt"

// InvalidDateError reports a date input that matched no supported
// dialect, or matched one syntactically but does not denote a real
// calendar date.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %q", e.Value)
}

// UnknownTransactionTypeError reports a transaction type token outside
// the recognized broker vocabulary.
type UnknownTransactionTypeError struct {
	Token string
}

func (e *UnknownTransactionTypeError) Error() string {
	return fmt.Sprintf("unknown transaction type: %q", e.Token)
}

// InvalidNumberError reports a numeric string that could not be parsed
// under any recognized locale shape.
type InvalidNumberError struct {
	Value string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number: %q", e.Value)
}
