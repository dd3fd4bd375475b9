package business

import "github.com/shopspring/decimal"

// Money carries a monetary value in the customer-facing (display) currency
// together with its equivalent in the store's base accounting currency.
// Every arithmetic operation is applied to both sides in the same order, so
// the two currencies cannot drift apart inside a calculation.
type Money struct {
	Amount decimal.Decimal `json:"amount"`
	Base   decimal.Decimal `json:"base_amount"`
}

// NewMoney creates a Money value from display and base currency amounts.
func NewMoney(amount, base decimal.Decimal) Money {
	return Money{Amount: amount, Base: base}
}

// ZeroMoney returns a zero value in both currencies.
func ZeroMoney() Money {
	return Money{Amount: decimal.Zero, Base: decimal.Zero}
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount.Add(o.Amount), Base: m.Base.Add(o.Base)}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{Amount: m.Amount.Sub(o.Amount), Base: m.Base.Sub(o.Base)}
}

// Mul scales both currencies by the same factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Base: m.Base.Mul(factor)}
}

// Div divides both currencies by the same divisor.
func (m Money) Div(divisor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Div(divisor), Base: m.Base.Div(divisor)}
}

// IsZero reports whether both currencies are exactly zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero() && m.Base.IsZero()
}
