// Package money holds the only arithmetic allowed on currency values.
// Callers never use raw Add/Sub on amounts; they go through Add and SnapToZero.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places kept for currency values.
const Precision int32 = 2

// dust is the magnitude below which a balance is treated as zero.
var dust = decimal.New(1, -Precision)

// Add returns a+b rounded to two places, half away from zero.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Round(Precision)
}

// Sub returns a-b with the same rounding as Add.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return Add(a, b.Neg())
}

// Sum adds all values in order through Add.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = Add(total, v)
	}
	return total
}

// SnapToZero returns exactly zero when |x| < 0.01, otherwise x unchanged.
func SnapToZero(x decimal.Decimal) decimal.Decimal {
	if x.Abs().LessThan(dust) {
		return decimal.Zero
	}
	return x
}

// Coerce turns a nullable stored amount into a value; NULL becomes zero.
func Coerce(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// Parse reads a user or storage supplied amount. Blank or non-numeric input is zero.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
