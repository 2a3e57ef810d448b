package aggregation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Aggregator defines the reduce semantics of an aggregation operator.
// To add a new operator: implement this interface and register it in Operators.
type Aggregator interface {
	// Initial returns the aggregate value after the very first record for a key.
	// count → 1; sum/min/max → the incoming value itself.
	Initial(incoming decimal.Decimal) decimal.Decimal

	// Apply folds an incoming value into an existing aggregate.
	Apply(current, incoming decimal.Decimal) decimal.Decimal
}

// Operators is the registry of all supported aggregation operators.
var Operators = map[string]Aggregator{
	OpCount: countAgg{},
	OpSum:   sumAgg{},
	OpMin:   minAgg{},
	OpMax:   maxAgg{},
}

// ValidOperator reports whether op is a registered aggregation operator.
func ValidOperator(op string) bool {
	_, ok := Operators[op]
	return ok
}

// countAgg increments by 1 per record. The incoming value is ignored.
type countAgg struct{}

func (countAgg) Initial(_ decimal.Decimal) decimal.Decimal    { return decimal.NewFromInt(1) }
func (countAgg) Apply(cur, _ decimal.Decimal) decimal.Decimal { return cur.Add(decimal.NewFromInt(1)) }

// sumAgg accumulates the sum of incoming values.
type sumAgg struct{}

func (sumAgg) Initial(v decimal.Decimal) decimal.Decimal      { return v }
func (sumAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal { return cur.Add(inc) }

// minAgg tracks the minimum value seen.
type minAgg struct{}

func (minAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (minAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.LessThan(cur) {
		return inc
	}
	return cur
}

// maxAgg tracks the maximum value seen.
type maxAgg struct{}

func (maxAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (maxAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.GreaterThan(cur) {
		return inc
	}
	return cur
}

// GroupBy assigns every record to exactly one bucket by key and reduces each
// bucket with op. A blank key lands in FallbackKey, never dropped. An
// unregistered op reduces with sum. value may be nil for count.
func GroupBy[T any](items []T, op string, key func(T) string, value func(T) decimal.Decimal) Bucket {
	if !ValidOperator(op) {
		op = OpSum
	}
	reducer := Operators[op]

	out := make(Bucket)
	for _, item := range items {
		k := key(item)
		if strings.TrimSpace(k) == "" {
			k = FallbackKey
		}

		v := decimal.Zero
		if value != nil {
			v = value(item)
		}

		current, seen := out[k]
		if !seen {
			out[k] = reducer.Initial(v)
			continue
		}
		out[k] = reducer.Apply(current, v)
	}
	return out
}

// CountBy counts records per key.
func CountBy[T any](items []T, key func(T) string) Bucket {
	return GroupBy(items, OpCount, key, nil)
}

// SumBy sums value per key.
func SumBy[T any](items []T, key func(T) string, value func(T) decimal.Decimal) Bucket {
	return GroupBy(items, OpSum, key, value)
}

// Sum reduces the whole population to one total.
func Sum[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(value(item))
	}
	return total
}

// Count returns how many records satisfy keep.
func Count[T any](items []T, keep func(T) bool) int {
	n := 0
	for _, item := range items {
		if keep(item) {
			n++
		}
	}
	return n
}

// Flatten concatenates the children of every record, preserving order.
func Flatten[T, U any](items []T, children func(T) []U) []U {
	var out []U
	for _, item := range items {
		out = append(out, children(item)...)
	}
	return out
}
