package storage

import (
	"context"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/google/uuid"
)

// SaleQuery narrows a sales read. Nil fields are not applied.
// End is inclusive.
type SaleQuery struct {
	Start      *time.Time
	End        *time.Time
	StoreID    *uuid.UUID
	CategoryID *uuid.UUID // sales with at least one line in this category
}

// ProductQuery narrows a product read.
type ProductQuery struct {
	CategoryID *uuid.UUID
	ActiveOnly bool
}

// ExpenseQuery narrows an expense read. Nil fields are not applied.
type ExpenseQuery struct {
	Start    *time.Time
	End      *time.Time
	StoreID  *uuid.UUID
	Category *string
	Status   *v1.ExpenseStatus
}

// SalesReader reads sales together with their line items.
type SalesReader interface {
	SalesInRange(ctx context.Context, q SaleQuery) ([]v1.Sale, error)

	// LatestSales returns the most recent sales, newest first.
	LatestSales(ctx context.Context, limit int) ([]v1.Sale, error)
}

type ProductReader interface {
	ProductsFiltered(ctx context.Context, q ProductQuery) ([]v1.Product, error)
}

type ExpenseReader interface {
	ExpensesFiltered(ctx context.Context, q ExpenseQuery) ([]v1.Expense, error)
}

// DirectoryReader lists the active reference entities used for headline counts.
type DirectoryReader interface {
	CustomersActive(ctx context.Context) ([]v1.Customer, error)
	EmployeesActive(ctx context.Context) ([]v1.Employee, error)
	StoresActive(ctx context.Context) ([]v1.Store, error)
}

// DataSource is the read-only snapshot the reporting engine consumes.
//
// Implementations should apply every query field they receive, but the engine
// re-applies its own predicates in memory, so pushing nothing down is still
// correct.
type DataSource interface {
	SalesReader
	ProductReader
	ExpenseReader
	DirectoryReader
}
