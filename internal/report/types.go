package report

import (
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/aggregation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateRange is an optional, inclusive range. Missing bounds default to the
// current calendar month.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// SalesFilter holds the optional sales report parameters. A nil field adds
// no constraint.
type SalesFilter struct {
	Start         *time.Time
	End           *time.Time
	StoreID       *uuid.UUID
	CategoryID    *uuid.UUID
	CustomerID    *uuid.UUID
	EmployeeID    *uuid.UUID
	PaymentMethod *string
	MinTotal      *decimal.Decimal
	MaxTotal      *decimal.Decimal
}

func (f SalesFilter) Range() DateRange {
	return DateRange{Start: f.Start, End: f.End}
}

// StockFilter holds the optional stock report parameters. Inactive products
// are excluded unless IncludeInactive is set.
type StockFilter struct {
	CategoryID      *uuid.UUID
	SupplierID      *uuid.UUID
	Status          *v1.StockStatus
	Search          *string
	IncludeInactive bool
}

// ExpenseFilter holds the optional expense report parameters.
type ExpenseFilter struct {
	Start      *time.Time
	End        *time.Time
	StoreID    *uuid.UUID
	EmployeeID *uuid.UUID
	Category   *string
	Status     *v1.ExpenseStatus
	Currency   *string
}

func (f ExpenseFilter) Range() DateRange {
	return DateRange{Start: f.Start, End: f.End}
}

// SaleRow is one sales report line.
type SaleRow struct {
	v1.Sale
	Units int `json:"item_count"`
}

// StockRow is one stock report line.
type StockRow struct {
	v1.Product
	Status v1.StockStatus  `json:"stock_status"`
	Value  decimal.Decimal `json:"stock_value"`
}

// SalesSummary is the full-population rollup of sales in a range.
type SalesSummary struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	TotalSales     int             `json:"total_sales"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TotalDiscount  decimal.Decimal `json:"total_discount"`
	AverageAmount  decimal.Decimal `json:"average_amount"`
	TotalItemsSold int             `json:"total_items_sold"`

	SalesByCategory      aggregation.Bucket `json:"sales_by_category"`
	SalesByStore         aggregation.Bucket `json:"sales_by_store"`
	SalesByPaymentMethod aggregation.Bucket `json:"sales_by_payment_method"`
	CountByPaymentMethod aggregation.Bucket `json:"count_by_payment_method"`

	Daily []TrendPoint `json:"daily"`
}

// StockSummary is the point-in-time rollup of the product catalog.
type StockSummary struct {
	TotalProducts  int `json:"total_products"`
	ActiveProducts int `json:"active_products"`
	InStock        int `json:"in_stock"`
	LowStock       int `json:"low_stock"`
	OutOfStock     int `json:"out_of_stock"`
	TotalUnits     int `json:"total_units"`

	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	AveragePrice    decimal.Decimal `json:"average_price"`

	ValueByCategory aggregation.Bucket `json:"value_by_category"`
	CountByCategory aggregation.Bucket `json:"count_by_category"`
	ValueBySupplier aggregation.Bucket `json:"value_by_supplier"`
}

// ExpenseSummary is the full-population rollup of expenses in a range.
// Amounts are in base currency except AmountByCurrency.
type ExpenseSummary struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	TotalExpenses int             `json:"total_expenses"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`

	PendingCount  int                `json:"pending_count"`
	ApprovedCount int                `json:"approved_count"`
	RejectedCount int                `json:"rejected_count"`
	PaidCount     int                `json:"paid_count"`
	CountByStatus aggregation.Bucket `json:"count_by_status"`

	AmountByCategory aggregation.Bucket `json:"amount_by_category"`
	AmountByStore    aggregation.Bucket `json:"amount_by_store"`
	AmountByCurrency aggregation.Bucket `json:"amount_by_currency"`
}

// TrendPoint is one calendar bucket of a sales trend.
type TrendPoint struct {
	PeriodStart time.Time       `json:"period_start"`
	SaleCount   int             `json:"sale_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SalesTrend is a sales series ordered by period, empty periods omitted.
type SalesTrend struct {
	Start       time.Time               `json:"start"`
	End         time.Time               `json:"end"`
	Granularity aggregation.Granularity `json:"granularity"`
	Points      []TrendPoint            `json:"points"`
}

type TopProduct struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type TopCustomer struct {
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	PurchaseCount int             `json:"purchase_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LastPurchase  time.Time       `json:"last_purchase"`
}

type TopEmployee struct {
	EmployeeID   uuid.UUID       `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	SaleCount    int             `json:"sale_count"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	AverageSale  decimal.Decimal `json:"average_sale"`
}

// TopCategory groups lines whose product has no category under
// v1.UnknownLabel with a nil CategoryID.
type TopCategory struct {
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type TopStore struct {
	StoreID    uuid.UUID       `json:"store_id"`
	StoreName  string          `json:"store_name"`
	SaleCount  int             `json:"sale_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// TopResult wraps a leaderboard with the range it was computed over.
type TopResult[E any] struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Entries []E       `json:"entries"`
}
