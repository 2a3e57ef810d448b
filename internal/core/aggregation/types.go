package aggregation

import (
	"github.com/shopspring/decimal"
)

// Supported reduction operators.
// avg is derived from a Figure (sum + count) rather than folded directly.
const (
	OpCount = "count"
	OpSum   = "sum"
	OpMin   = "min"
	OpMax   = "max"
)

// FallbackKey is the bucket for records whose key-defining relation is
// missing (empty key).
const FallbackKey = "Unknown"

// Bucket maps a group key to its reduced value. Keys are unique; callers must
// not rely on any ordering.
type Bucket map[string]decimal.Decimal

// Figure is a count and a sum over the same population.
type Figure struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Add folds one value into the figure.
func (f Figure) Add(v decimal.Decimal) Figure {
	return Figure{Count: f.Count + 1, Total: f.Total.Add(v)}
}

// Average returns Total/Count, or zero for an empty population.
func (f Figure) Average() decimal.Decimal {
	return Average(f.Total, f.Count)
}

// Average divides total by n and rounds to cents. n <= 0 yields zero.
func Average(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}
