package jkopay

import "github.com/shopspring/decimal"

// ResultSuccess is the result code of an accepted request.
const ResultSuccess = "000"

// Ptr returns a pointer to v, for filling EntryOptions.
func Ptr[T any](v T) *T {
	return &v
}

func resultErr(result string, message *string) error {
	if result == ResultSuccess {
		return nil
	}
	e := &ResultError{Result: result}
	if message != nil {
		e.Message = *message
	}
	return e
}

// Amount is a money value the gateway sends as a decimal string. Numbers are
// accepted too; an empty string or null decodes to zero.
type Amount struct {
	decimal.Decimal
}

func NewAmount(v int64) Amount {
	return Amount{decimal.NewFromInt(v)}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `""`, "null":
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(b)
}
