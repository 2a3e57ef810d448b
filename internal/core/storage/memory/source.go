package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/query"
	"github.com/aevon-lab/retail-insights/internal/core/storage"
	"github.com/google/uuid"
)

// Source implements storage.DataSource over an immutable Snapshot.
// It is safe for concurrent use because nothing is ever written after
// construction.
type Source struct {
	snap Snapshot
}

var _ storage.DataSource = (*Source)(nil)

// NewSource serves snap. The snapshot must not be mutated afterwards.
func NewSource(snap Snapshot) *Source {
	return &Source{snap: snap}
}

func (s *Source) SalesInRange(ctx context.Context, q storage.SaleQuery) ([]v1.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := query.NewFilter[v1.Sale]()
	query.When(f, q.Start, func(start time.Time) query.Predicate[v1.Sale] {
		return func(s v1.Sale) bool { return !s.SaleDate.Before(start) }
	})
	query.When(f, q.End, func(end time.Time) query.Predicate[v1.Sale] {
		return func(s v1.Sale) bool { return !s.SaleDate.After(end) }
	})
	query.When(f, q.StoreID, func(id uuid.UUID) query.Predicate[v1.Sale] {
		return func(s v1.Sale) bool { return s.StoreID == id }
	})
	query.When(f, q.CategoryID, func(id uuid.UUID) query.Predicate[v1.Sale] {
		return func(s v1.Sale) bool { return s.HasCategory(id) }
	})

	return f.Apply(s.snap.Sales), nil
}

func (s *Source) LatestSales(ctx context.Context, limit int) ([]v1.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sales := slices.Clone(s.snap.Sales)
	slices.SortStableFunc(sales, func(a, b v1.Sale) int {
		return b.SaleDate.Compare(a.SaleDate)
	})
	if limit >= 0 && len(sales) > limit {
		sales = sales[:limit]
	}
	if sales == nil {
		sales = []v1.Sale{}
	}
	return sales, nil
}

func (s *Source) ProductsFiltered(ctx context.Context, q storage.ProductQuery) ([]v1.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := query.NewFilter[v1.Product]()
	query.When(f, q.CategoryID, func(id uuid.UUID) query.Predicate[v1.Product] {
		return func(p v1.Product) bool { return p.CategoryID != nil && *p.CategoryID == id }
	})
	if q.ActiveOnly {
		f.Where(func(p v1.Product) bool { return p.IsActive })
	}

	return f.Apply(s.snap.Products), nil
}

func (s *Source) ExpensesFiltered(ctx context.Context, q storage.ExpenseQuery) ([]v1.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := query.NewFilter[v1.Expense]()
	query.When(f, q.Start, func(start time.Time) query.Predicate[v1.Expense] {
		return func(e v1.Expense) bool { return !e.ExpenseDate.Before(start) }
	})
	query.When(f, q.End, func(end time.Time) query.Predicate[v1.Expense] {
		return func(e v1.Expense) bool { return !e.ExpenseDate.After(end) }
	})
	query.When(f, q.StoreID, func(id uuid.UUID) query.Predicate[v1.Expense] {
		return func(e v1.Expense) bool { return e.StoreID != nil && *e.StoreID == id }
	})
	query.When(f, q.Category, func(c string) query.Predicate[v1.Expense] {
		return func(e v1.Expense) bool { return strings.EqualFold(e.Category, c) }
	})
	query.When(f, q.Status, func(st v1.ExpenseStatus) query.Predicate[v1.Expense] {
		return func(e v1.Expense) bool { return e.Status == st }
	})

	return f.Apply(s.snap.Expenses), nil
}

func (s *Source) CustomersActive(ctx context.Context) ([]v1.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.NewFilter[v1.Customer]().
		Where(func(c v1.Customer) bool { return c.IsActive }).
		Apply(s.snap.Customers), nil
}

func (s *Source) EmployeesActive(ctx context.Context) ([]v1.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.NewFilter[v1.Employee]().
		Where(func(e v1.Employee) bool { return e.IsActive }).
		Apply(s.snap.Employees), nil
}

func (s *Source) StoresActive(ctx context.Context) ([]v1.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.NewFilter[v1.Store]().
		Where(func(st v1.Store) bool { return st.IsActive }).
		Apply(s.snap.Stores), nil
}
