package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID represents a unique identifier
type ID string

// GenerateUUID creates a new UUID
func GenerateUUID() ID {
	return ID(uuid.New().String())
}

// String returns string representation
func (id ID) String() string {
	return string(id)
}

// Money represents a monetary amount in a single currency. Amounts keep
// full precision internally and render with two fraction digits.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"` // Currency code (EUR, USD, etc.)
}

// NewMoney creates a new money value
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// Zero creates a zero money value in the given currency
func Zero(currency string) Money {
	return NewMoney(decimal.Zero, currency)
}

// IsZero checks if money is zero
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsNegative checks if money is negative
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Add adds two money values (must have same currency)
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, errors.New("currency mismatch")
	}
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}, nil
}

// Multiply scales the amount by the given factor
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{
		Amount:   m.Amount.Mul(factor),
		Currency: m.Currency,
	}
}

// Round rounds the amount to two fraction digits
func (m Money) Round() Money {
	return Money{
		Amount:   m.Amount.Round(2),
		Currency: m.Currency,
	}
}

// String renders the amount with two fraction digits
func (m Money) String() string {
	return m.Amount.StringFixed(2)
}
