// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"
	"math"
)

// Currency represents a monetary or settlement currency.
// Besides ISO 4217 codes the platform accepts USDT, which settles
// one-to-one against the dollar.
type Currency string

// Supported currencies in the system.
const (
	CurrencyUSD  Currency = "USD"  // US Dollar
	CurrencyVES  Currency = "VES"  // Venezuelan Bolívar
	CurrencyEUR  Currency = "EUR"  // Euro
	CurrencyCOP  Currency = "COP"  // Colombian Peso
	CurrencyUSDT Currency = "USDT" // Tether, treated as a dollar instrument
)

// IsUSDDenominated reports whether the currency settles in dollars.
// The cash-payment discount only applies to these instruments.
func (c Currency) IsUSDDenominated() bool {
	return c == CurrencyUSD || c == CurrencyUSDT
}

// Money errors define domain-specific error conditions.
var (
	ErrCurrencyMismatch = errors.New("currency mismatch in operation")
	ErrNegativeAmount   = errors.New("money amount cannot be negative")
)

// Money represents a monetary value with currency.
// It stores amounts in the smallest unit (cents) to avoid floating-point issues.
//
// Example usage:
//
//	price := valueobject.NewMoney(19999, valueobject.CurrencyUSD) // $199.99
type Money struct {
	// Amount in smallest currency unit (e.g., cents for USD)
	Amount int64 `json:"amount"`

	// Currency code
	Currency Currency `json:"currency"`
}

// NewMoney creates a new Money value object.
//
// Parameters:
//   - amount: Amount in smallest unit (e.g., cents)
//   - currency: currency code
//
// Returns:
//   - Money: the created Money value object
func NewMoney(amount int64, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// NewMoneyFromFloat creates a new Money from a decimal amount,
// rounding half away from zero to two decimal places.
//
// Parameters:
//   - amount: Decimal amount (e.g., 19.99)
//   - currency: currency code
//
// Returns:
//   - Money: the created Money value object
func NewMoneyFromFloat(amount float64, currency Currency) Money {
	cents := int64(math.Round(amount * 100))
	return NewMoney(cents, currency)
}

// USD creates a US-dollar Money from a decimal amount.
// All engine prices are fixed two-decimal USD quantities.
//
// Parameters:
//   - amount: Decimal amount (e.g., 19.99)
//
// Returns:
//   - Money: the created USD Money value object
func USD(amount float64) Money {
	return NewMoneyFromFloat(amount, CurrencyUSD)
}

// Zero returns a zero-value Money in the specified currency.
func Zero(currency Currency) Money {
	return NewMoney(0, currency)
}

// Add adds two Money values and returns a new Money.
// Both values must share a currency unless one side is zero.
//
// Parameters:
//   - other: the Money to add
//
// Returns:
//   - Money: the sum of the two Money values
//   - error: ErrCurrencyMismatch if currencies do not match
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency && !m.IsZero() && !other.IsZero() {
		return Money{}, ErrCurrencyMismatch
	}
	currency := m.Currency
	if m.IsZero() && currency == "" {
		currency = other.Currency
	}
	return NewMoney(m.Amount+other.Amount, currency), nil
}

// IsZero checks if the Money amount is zero.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// IsPositive checks if the Money amount is positive.
func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// Equals checks if two Money values are equal in amount and currency.
//
// Parameters:
//   - other: the Money to compare
//
// Returns:
//   - bool: true if both Money values are equal
func (m Money) Equals(other Money) bool {
	return m.Amount == other.Amount && m.Currency == other.Currency
}

// ToFloat converts the Money amount to a float64 representation.
//
// Returns:
//   - float64: Decimal representation (e.g., 19.99)
func (m Money) ToFloat() float64 {
	return float64(m.Amount) / 100.0
}

// String returns a formatted string representation of the Money.
//
// Returns:
//   - string: Formatted string (e.g., "USD 19.99")
func (m Money) String() string {
	return fmt.Sprintf("%s %.2f", m.Currency, m.ToFloat())
}
