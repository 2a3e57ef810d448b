package report

import (
	"cmp"
	"strings"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/query"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func onOrAfter[T any](at func(T) time.Time) func(time.Time) query.Predicate[T] {
	return func(start time.Time) query.Predicate[T] {
		return func(item T) bool { return !at(item).Before(start) }
	}
}

func onOrBefore[T any](at func(T) time.Time) func(time.Time) query.Predicate[T] {
	return func(end time.Time) query.Predicate[T] {
		return func(item T) bool { return !at(item).After(end) }
	}
}

func sameID[T any](id func(T) *uuid.UUID) func(uuid.UUID) query.Predicate[T] {
	return func(want uuid.UUID) query.Predicate[T] {
		return func(item T) bool {
			got := id(item)
			return got != nil && *got == want
		}
	}
}

func equalFold[T any](field func(T) string) func(string) query.Predicate[T] {
	return func(want string) query.Predicate[T] {
		return func(item T) bool { return strings.EqualFold(field(item), want) }
	}
}

func saleDate(s v1.Sale) time.Time       { return s.SaleDate }
func expenseDate(e v1.Expense) time.Time { return e.ExpenseDate }

func salesFilter(f SalesFilter) *query.Filter[v1.Sale] {
	q := query.NewFilter[v1.Sale]()
	query.When(q, f.Start, onOrAfter(saleDate))
	query.When(q, f.End, onOrBefore(saleDate))
	query.When(q, f.StoreID, sameID(func(s v1.Sale) *uuid.UUID { return &s.StoreID }))
	query.When(q, f.CategoryID, func(id uuid.UUID) query.Predicate[v1.Sale] {
		return func(s v1.Sale) bool { return s.HasCategory(id) }
	})
	query.When(q, f.CustomerID, sameID(func(s v1.Sale) *uuid.UUID { return s.CustomerID }))
	query.When(q, f.EmployeeID, sameID(func(s v1.Sale) *uuid.UUID { return &s.EmployeeID }))
	query.When(q, f.PaymentMethod, equalFold(func(s v1.Sale) string { return s.PaymentMethod }))
	query.When(q, f.MinTotal, func(m decimal.Decimal) query.Predicate[v1.Sale] {
		return func(s v1.Sale) bool { return !s.TotalAmount.LessThan(m) }
	})
	query.When(q, f.MaxTotal, func(m decimal.Decimal) query.Predicate[v1.Sale] {
		return func(s v1.Sale) bool { return !s.TotalAmount.GreaterThan(m) }
	})
	return q
}

func stockFilter(f StockFilter) *query.Filter[v1.Product] {
	q := query.NewFilter[v1.Product]()
	if !f.IncludeInactive {
		q.Where(func(p v1.Product) bool { return p.IsActive })
	}
	query.When(q, f.CategoryID, sameID(func(p v1.Product) *uuid.UUID { return p.CategoryID }))
	query.When(q, f.SupplierID, sameID(func(p v1.Product) *uuid.UUID { return p.SupplierID }))
	query.When(q, f.Status, func(st v1.StockStatus) query.Predicate[v1.Product] {
		return func(p v1.Product) bool { return p.StockStatus() == st }
	})
	query.When(q, f.Search, func(term string) query.Predicate[v1.Product] {
		term = strings.ToLower(term)
		return func(p v1.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Barcode), term)
		}
	})
	return q
}

func expenseFilter(f ExpenseFilter) *query.Filter[v1.Expense] {
	q := query.NewFilter[v1.Expense]()
	query.When(q, f.Start, onOrAfter(expenseDate))
	query.When(q, f.End, onOrBefore(expenseDate))
	query.When(q, f.StoreID, sameID(func(e v1.Expense) *uuid.UUID { return e.StoreID }))
	query.When(q, f.EmployeeID, sameID(func(e v1.Expense) *uuid.UUID { return e.EmployeeID }))
	query.When(q, f.Category, equalFold(func(e v1.Expense) string { return e.Category }))
	query.When(q, f.Status, func(st v1.ExpenseStatus) query.Predicate[v1.Expense] {
		return func(e v1.Expense) bool { return e.Status == st }
	})
	query.When(q, f.Currency, equalFold(func(e v1.Expense) string { return e.Currency }))
	return q
}

func byText(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Sort keys per report. Each fallback is the report's default ordering.
var (
	salesSorter = query.NewSorter(func(a, b v1.Sale) int { return b.SaleDate.Compare(a.SaleDate) }).
			On("date", func(a, b v1.Sale) int { return a.SaleDate.Compare(b.SaleDate) }).
			On("total", func(a, b v1.Sale) int { return a.TotalAmount.Cmp(b.TotalAmount) }).
			On("customer", func(a, b v1.Sale) int { return byText(a.CustomerLabel(), b.CustomerLabel()) }).
			On("store", func(a, b v1.Sale) int { return byText(a.StoreName, b.StoreName) }).
			On("items", func(a, b v1.Sale) int { return cmp.Compare(a.ItemCount(), b.ItemCount()) })

	stockSorter = query.NewSorter(func(a, b v1.Product) int { return byText(a.Name, b.Name) }).
			On("name", func(a, b v1.Product) int { return byText(a.Name, b.Name) }).
			On("stock", func(a, b v1.Product) int { return cmp.Compare(a.StockQuantity, b.StockQuantity) }).
			On("value", func(a, b v1.Product) int { return a.StockValue().Cmp(b.StockValue()) }).
			On("price", func(a, b v1.Product) int { return a.Price.Cmp(b.Price) }).
			On("category", func(a, b v1.Product) int { return byText(a.CategoryLabel(), b.CategoryLabel()) })

	expenseSorter = query.NewSorter(func(a, b v1.Expense) int { return b.ExpenseDate.Compare(a.ExpenseDate) }).
			On("date", func(a, b v1.Expense) int { return a.ExpenseDate.Compare(b.ExpenseDate) }).
			On("amount", func(a, b v1.Expense) int { return a.AmountInBaseCurrency.Cmp(b.AmountInBaseCurrency) }).
			On("category", func(a, b v1.Expense) int { return byText(a.Category, b.Category) }).
			On("status", func(a, b v1.Expense) int { return byText(string(a.Status), string(b.Status)) })
)
