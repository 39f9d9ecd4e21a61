package pricing

import (
	"errors"
	"fmt"
	"math"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount in cents.
type Money int64

func NewMoney(cents int64) Money {
	return Money(cents)
}

// MoneyFromAmount converts a decimal currency amount (e.g. 8.4) to cents, rounding half away from zero.
func MoneyFromAmount(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrNegativeAmount
	}
	return Money(math.Round(amount * 100)), nil
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Amount() float64 {
	return float64(m) / 100.0
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
