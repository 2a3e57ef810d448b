package report

import (
	"testing"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/storage"
	"github.com/aevon-lab/retail-insights/internal/core/storage/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wednesday; the default range is October 2026.
var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

var (
	downtown = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	airport  = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")

	grace = uuid.MustParse("00000000-0000-0000-0000-0000000000e1")
	linus = uuid.MustParse("00000000-0000-0000-0000-0000000000e2")

	ada  = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	alan = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")

	coffee   = uuid.MustParse("00000000-0000-0000-0000-0000000000f1")
	tea      = uuid.MustParse("00000000-0000-0000-0000-0000000000f2")
	roasters = uuid.MustParse("00000000-0000-0000-0000-0000000000d1")
	leafy    = uuid.MustParse("00000000-0000-0000-0000-0000000000d2")

	beans   = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	green   = uuid.MustParse("00000000-0000-0000-0000-0000000000b2")
	mug     = uuid.MustParse("00000000-0000-0000-0000-0000000000b3")
	grinder = uuid.MustParse("00000000-0000-0000-0000-0000000000b4")
	kettle  = uuid.MustParse("00000000-0000-0000-0000-0000000000b5")
)

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(product uuid.UUID, name string, category *uuid.UUID, categoryName string, qty int, total string) v1.SaleLine {
	return v1.SaleLine{
		ProductID:    product,
		ProductName:  name,
		CategoryID:   category,
		CategoryName: categoryName,
		Quantity:     qty,
		UnitPrice:    dec(total).Div(decimal.NewFromInt(int64(qty))),
		Discount:     decimal.Zero,
		Total:        dec(total),
	}
}

func fixtureSnapshot() memory.Snapshot {
	return memory.Snapshot{
		Stores: []v1.Store{
			{ID: downtown, Name: "Downtown", IsActive: true},
			{ID: airport, Name: "Airport", IsActive: true},
		},
		Employees: []v1.Employee{
			{ID: grace, Name: "Grace", StoreID: &downtown, IsActive: true},
			{ID: linus, Name: "Linus", StoreID: &airport, IsActive: true},
		},
		Customers: []v1.Customer{
			{ID: ada, Name: "Ada", CreatedAt: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), IsActive: true},
			{ID: alan, Name: "Alan", CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), IsActive: true},
		},
		Products: []v1.Product{
			{ID: beans, Name: "Beans", CategoryID: &coffee, CategoryName: "Coffee", SupplierID: &roasters, SupplierName: "Roasters",
				StockQuantity: 0, CriticalStockLevel: 10, Price: dec("12.50"), IsActive: true},
			{ID: green, Name: "Green Tea", Barcode: "TEA-001", CategoryID: &tea, CategoryName: "Tea", SupplierID: &leafy, SupplierName: "Leafy",
				StockQuantity: 5, CriticalStockLevel: 10, Price: dec("4.00"), IsActive: true},
			{ID: mug, Name: "Mug", StockQuantity: 10, CriticalStockLevel: 10, Price: dec("8.50"), IsActive: true},
			{ID: grinder, Name: "Grinder", CategoryID: &coffee, CategoryName: "Coffee", SupplierID: &roasters, SupplierName: "Roasters",
				StockQuantity: 11, CriticalStockLevel: 10, Price: dec("40"), IsActive: true},
			{ID: kettle, Name: "Old Kettle", CategoryID: &tea, CategoryName: "Tea",
				StockQuantity: 3, CriticalStockLevel: 1, Price: dec("20"), IsActive: false},
		},
		Sales: []v1.Sale{
			{
				ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), InvoiceNumber: "INV-1",
				SaleDate:   time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
				CustomerID: &ada, CustomerName: "Ada",
				EmployeeID: grace, EmployeeName: "Grace",
				StoreID: downtown, StoreName: "Downtown",
				PaymentMethod: "card", TotalAmount: dec("29"), DiscountAmount: decimal.Zero,
				Lines: []v1.SaleLine{
					line(beans, "Beans", &coffee, "Coffee", 2, "25"),
					line(green, "Green Tea", &tea, "Tea", 1, "4"),
				},
			},
			{
				ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), InvoiceNumber: "INV-2",
				SaleDate:   time.Date(2026, 10, 5, 15, 0, 0, 0, time.UTC),
				EmployeeID: linus, EmployeeName: "Linus",
				StoreID: airport, StoreName: "Airport",
				PaymentMethod: "cash", TotalAmount: dec("9"), DiscountAmount: decimal.Zero,
				Lines: []v1.SaleLine{
					line(mug, "Mug", nil, "", 1, "9"),
				},
			},
			{
				ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), InvoiceNumber: "INV-3",
				SaleDate:   time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC),
				CustomerID: &alan, CustomerName: "Alan",
				EmployeeID: grace, EmployeeName: "Grace",
				StoreID: downtown, StoreName: "Downtown",
				PaymentMethod: "card", TotalAmount: dec("40"), DiscountAmount: dec("2"),
				Lines: []v1.SaleLine{
					line(grinder, "Grinder", &coffee, "Coffee", 1, "40"),
				},
			},
			{
				ID: uuid.MustParse("00000000-0000-0000-0000-000000000004"), InvoiceNumber: "INV-4",
				SaleDate:   time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC),
				CustomerID: &ada, CustomerName: "Ada",
				EmployeeID: linus, EmployeeName: "Linus",
				StoreID: airport, StoreName: "Airport",
				PaymentMethod: "cash", TotalAmount: dec("37"), DiscountAmount: decimal.Zero,
				Lines: []v1.SaleLine{
					line(beans, "Beans", &coffee, "Coffee", 3, "37"),
				},
			},
			{
				ID: uuid.MustParse("00000000-0000-0000-0000-000000000005"), InvoiceNumber: "INV-5",
				SaleDate:   time.Date(2026, 9, 20, 11, 0, 0, 0, time.UTC),
				CustomerID: &alan, CustomerName: "Alan",
				EmployeeID: grace, EmployeeName: "Grace",
				StoreID: downtown, StoreName: "Downtown",
				PaymentMethod: "card", TotalAmount: dec("40"), DiscountAmount: decimal.Zero,
				Lines: []v1.SaleLine{
					line(green, "Green Tea", &tea, "Tea", 10, "40"),
				},
			},
		},
		Expenses: []v1.Expense{
			{ID: uuid.MustParse("00000000-0000-0000-0000-000000000101"),
				ExpenseDate: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), Category: "Rent",
				Amount: dec("1000"), Currency: "usd", AmountInBaseCurrency: dec("1000"),
				Status: v1.ExpensePending, StoreID: &downtown, StoreName: "Downtown"},
			{ID: uuid.MustParse("00000000-0000-0000-0000-000000000102"),
				ExpenseDate: time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC), Category: "Utilities",
				Amount: dec("90"), Currency: "EUR", AmountInBaseCurrency: dec("99.50"),
				Status: v1.ExpensePaid, EmployeeID: &linus, EmployeeName: "Linus"},
			{ID: uuid.MustParse("00000000-0000-0000-0000-000000000103"),
				ExpenseDate: time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC), Category: "Rent",
				Amount: dec("500"), Currency: "usd", AmountInBaseCurrency: dec("500"),
				Status: v1.ExpenseApproved, StoreID: &airport, StoreName: "Airport"},
			{ID: uuid.MustParse("00000000-0000-0000-0000-000000000104"),
				ExpenseDate: time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC), Category: "Supplies",
				Amount: dec("50"), Currency: "USD", AmountInBaseCurrency: dec("50"),
				Status: v1.ExpenseRejected, StoreID: &downtown, StoreName: "Downtown"},
		},
	}
}

func newFixtureService(t *testing.T, source storage.DataSource) *Service {
	t.Helper()

	if source == nil {
		source = memory.NewSource(fixtureSnapshot())
	}
	svc := NewService(source, 10, time.UTC)
	svc.nowFn = func() time.Time { return fixedNow }
	return svc
}

func invoices(rows []SaleRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.InvoiceNumber
	}
	return out
}
