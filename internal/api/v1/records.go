package v1

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownLabel is the grouping key used when a record's defining relation
// (category, supplier, store, ...) is absent.
const UnknownLabel = "Unknown"

// Sale is a read-only projection of a completed sale with its line items.
type Sale struct {
	ID            uuid.UUID `json:"id" yaml:"id"`
	InvoiceNumber string    `json:"invoice_number" yaml:"invoice_number"`
	SaleDate      time.Time `json:"sale_date" yaml:"sale_date"`

	// CustomerID is nil for walk-in sales.
	CustomerID   *uuid.UUID `json:"customer_id,omitempty" yaml:"customer_id"`
	CustomerName string     `json:"customer_name,omitempty" yaml:"customer_name"`

	EmployeeID   uuid.UUID `json:"employee_id" yaml:"employee_id"`
	EmployeeName string    `json:"employee_name" yaml:"employee_name"`

	StoreID   uuid.UUID `json:"store_id" yaml:"store_id"`
	StoreName string    `json:"store_name" yaml:"store_name"`

	PaymentMethod  string          `json:"payment_method" yaml:"payment_method"`
	TotalAmount    decimal.Decimal `json:"total_amount" yaml:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount" yaml:"discount_amount"`

	Lines []SaleLine `json:"lines" yaml:"lines"`
}

// ItemCount is the number of units sold across all lines.
func (s Sale) ItemCount() int {
	n := 0
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}

// HasCategory reports whether any line belongs to the given category.
func (s Sale) HasCategory(categoryID uuid.UUID) bool {
	for _, l := range s.Lines {
		if l.CategoryID != nil && *l.CategoryID == categoryID {
			return true
		}
	}
	return false
}

// CustomerLabel returns the customer name, or the walk-in marker.
func (s Sale) CustomerLabel() string {
	if s.CustomerID == nil || strings.TrimSpace(s.CustomerName) == "" {
		return "Walk-in"
	}
	return s.CustomerName
}

// SaleLine is one product position of a sale.
type SaleLine struct {
	ProductID    uuid.UUID       `json:"product_id" yaml:"product_id"`
	ProductName  string          `json:"product_name" yaml:"product_name"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty" yaml:"category_id"`
	CategoryName string          `json:"category_name,omitempty" yaml:"category_name"`
	Quantity     int             `json:"quantity" yaml:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price" yaml:"unit_price"`
	Discount     decimal.Decimal `json:"discount" yaml:"discount"`
	Total        decimal.Decimal `json:"total" yaml:"total"`
}

// CategoryLabel returns the category name, or UnknownLabel when the product
// has no category.
func (l SaleLine) CategoryLabel() string {
	return labelOrUnknown(l.CategoryName)
}

// StockStatus classifies a product's stock level.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLow        StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// ParseStockStatus returns the status and whether s named one.
func ParseStockStatus(s string) (StockStatus, bool) {
	switch st := StockStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StockInStock, StockLow, StockOutOfStock:
		return st, true
	}
	return "", false
}

// Product is a read-only projection of a catalog item and its stock.
type Product struct {
	ID                 uuid.UUID       `json:"id" yaml:"id"`
	Name               string          `json:"name" yaml:"name"`
	Barcode            string          `json:"barcode,omitempty" yaml:"barcode"`
	CategoryID         *uuid.UUID      `json:"category_id,omitempty" yaml:"category_id"`
	CategoryName       string          `json:"category_name,omitempty" yaml:"category_name"`
	SupplierID         *uuid.UUID      `json:"supplier_id,omitempty" yaml:"supplier_id"`
	SupplierName       string          `json:"supplier_name,omitempty" yaml:"supplier_name"`
	StockQuantity      int             `json:"stock_quantity" yaml:"stock_quantity"`
	CriticalStockLevel int             `json:"critical_stock_level" yaml:"critical_stock_level"`
	Price              decimal.Decimal `json:"price" yaml:"price"`
	IsActive           bool            `json:"is_active" yaml:"is_active"`
}

// StockStatus derives the stock classification. Out-of-stock (stock == 0) and
// low-stock (0 < stock <= critical) are disjoint; negative stock counts as out.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.StockQuantity <= 0:
		return StockOutOfStock
	case p.StockQuantity <= p.CriticalStockLevel:
		return StockLow
	default:
		return StockInStock
	}
}

// StockValue is stock quantity times unit price.
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
}

func (p Product) CategoryLabel() string { return labelOrUnknown(p.CategoryName) }
func (p Product) SupplierLabel() string { return labelOrUnknown(p.SupplierName) }

// ExpenseStatus is the approval state of an expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
	ExpensePaid     ExpenseStatus = "paid"
)

// ParseExpenseStatus returns the status and whether s named one.
func ParseExpenseStatus(s string) (ExpenseStatus, bool) {
	switch st := ExpenseStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case ExpensePending, ExpenseApproved, ExpenseRejected, ExpensePaid:
		return st, true
	}
	return "", false
}

// Expense is a read-only projection of a recorded expense.
type Expense struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	ExpenseDate time.Time `json:"expense_date" yaml:"expense_date"`
	Category    string    `json:"category" yaml:"category"`
	Description string    `json:"description,omitempty" yaml:"description"`

	// Amount is in Currency; AmountInBaseCurrency is the converted value used
	// for every cross-currency total.
	Amount               decimal.Decimal `json:"amount" yaml:"amount"`
	Currency             string          `json:"currency" yaml:"currency"`
	AmountInBaseCurrency decimal.Decimal `json:"amount_in_base_currency" yaml:"amount_in_base_currency"`

	Status       ExpenseStatus `json:"status" yaml:"status"`
	ApproverName string        `json:"approver_name,omitempty" yaml:"approver_name"`

	StoreID      *uuid.UUID `json:"store_id,omitempty" yaml:"store_id"`
	StoreName    string     `json:"store_name,omitempty" yaml:"store_name"`
	EmployeeID   *uuid.UUID `json:"employee_id,omitempty" yaml:"employee_id"`
	EmployeeName string     `json:"employee_name,omitempty" yaml:"employee_name"`
}

func (e Expense) CategoryLabel() string { return labelOrUnknown(e.Category) }
func (e Expense) StoreLabel() string    { return labelOrUnknown(e.StoreName) }
func (e Expense) CurrencyLabel() string { return labelOrUnknown(strings.ToUpper(e.Currency)) }

// Customer, Employee and Store only feed headline counts.
type Customer struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	IsActive  bool      `json:"is_active" yaml:"is_active"`
}

type Employee struct {
	ID       uuid.UUID  `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	StoreID  *uuid.UUID `json:"store_id,omitempty" yaml:"store_id"`
	IsActive bool       `json:"is_active" yaml:"is_active"`
}

type Store struct {
	ID       uuid.UUID `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	IsActive bool      `json:"is_active" yaml:"is_active"`
}

func labelOrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return UnknownLabel
	}
	return s
}
