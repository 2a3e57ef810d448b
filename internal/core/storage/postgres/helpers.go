package postgres

import (
	"fmt"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/google/uuid"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// Nullable query parameters. A nil pointer is sent as SQL NULL, which
// disables the corresponding predicate.

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func nullUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullStatus(s *v1.ExpenseStatus) interface{} {
	if s == nil {
		return nil
	}
	return string(*s)
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}

// scanSaleRow scans a sale header. Lines are attached separately.
func scanSaleRow(row scanner) (v1.Sale, error) {
	var s v1.Sale
	var customerID uuid.NullUUID

	err := row.Scan(
		&s.ID,
		&s.InvoiceNumber,
		&s.SaleDate,
		&customerID,
		&s.CustomerName,
		&s.EmployeeID,
		&s.EmployeeName,
		&s.StoreID,
		&s.StoreName,
		&s.PaymentMethod,
		&s.TotalAmount,
		&s.DiscountAmount,
	)
	if err != nil {
		return v1.Sale{}, fmt.Errorf("failed to scan sale row: %w", err)
	}

	s.CustomerID = uuidPtr(customerID)
	return s, nil
}

func scanSaleLineRow(row scanner) (uuid.UUID, v1.SaleLine, error) {
	var saleID uuid.UUID
	var l v1.SaleLine
	var categoryID uuid.NullUUID

	err := row.Scan(
		&saleID,
		&l.ProductID,
		&l.ProductName,
		&categoryID,
		&l.CategoryName,
		&l.Quantity,
		&l.UnitPrice,
		&l.Discount,
		&l.Total,
	)
	if err != nil {
		return uuid.Nil, v1.SaleLine{}, fmt.Errorf("failed to scan sale line row: %w", err)
	}

	l.CategoryID = uuidPtr(categoryID)
	return saleID, l, nil
}

func scanProductRow(row scanner) (v1.Product, error) {
	var p v1.Product
	var categoryID, supplierID uuid.NullUUID

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Barcode,
		&categoryID,
		&p.CategoryName,
		&supplierID,
		&p.SupplierName,
		&p.StockQuantity,
		&p.CriticalStockLevel,
		&p.Price,
		&p.IsActive,
	)
	if err != nil {
		return v1.Product{}, fmt.Errorf("failed to scan product row: %w", err)
	}

	p.CategoryID = uuidPtr(categoryID)
	p.SupplierID = uuidPtr(supplierID)
	return p, nil
}

func scanExpenseRow(row scanner) (v1.Expense, error) {
	var e v1.Expense
	var status string
	var storeID, employeeID uuid.NullUUID

	err := row.Scan(
		&e.ID,
		&e.ExpenseDate,
		&e.Category,
		&e.Description,
		&e.Amount,
		&e.Currency,
		&e.AmountInBaseCurrency,
		&status,
		&e.ApproverName,
		&storeID,
		&e.StoreName,
		&employeeID,
		&e.EmployeeName,
	)
	if err != nil {
		return v1.Expense{}, fmt.Errorf("failed to scan expense row: %w", err)
	}

	e.Status = v1.ExpenseStatus(status)
	e.StoreID = uuidPtr(storeID)
	e.EmployeeID = uuidPtr(employeeID)
	return e, nil
}

func scanCustomerRow(row scanner) (v1.Customer, error) {
	var c v1.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.IsActive); err != nil {
		return v1.Customer{}, fmt.Errorf("failed to scan customer row: %w", err)
	}
	return c, nil
}

func scanEmployeeRow(row scanner) (v1.Employee, error) {
	var e v1.Employee
	var storeID uuid.NullUUID
	if err := row.Scan(&e.ID, &e.Name, &storeID, &e.IsActive); err != nil {
		return v1.Employee{}, fmt.Errorf("failed to scan employee row: %w", err)
	}
	e.StoreID = uuidPtr(storeID)
	return e, nil
}

func scanStoreRow(row scanner) (v1.Store, error) {
	var s v1.Store
	if err := row.Scan(&s.ID, &s.Name, &s.IsActive); err != nil {
		return v1.Store{}, fmt.Errorf("failed to scan store row: %w", err)
	}
	return s, nil
}
