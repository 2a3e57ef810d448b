package dashboard

import (
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/aggregation"
	"github.com/aevon-lab/retail-insights/internal/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the layered home-screen view. Sales figures are nested: a sale
// made today counts towards every window.
type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Today       time.Time `json:"today"`
	WeekStart   time.Time `json:"week_start"`
	MonthStart  time.Time `json:"month_start"`
	YearStart   time.Time `json:"year_start"`

	TodaySales   aggregation.Figure `json:"today_sales"`
	WeeklySales  aggregation.Figure `json:"weekly_sales"`
	MonthlySales aggregation.Figure `json:"monthly_sales"`
	YearlySales  aggregation.Figure `json:"yearly_sales"`

	TotalProducts      int `json:"total_products"`
	ActiveProducts     int `json:"active_products"`
	LowStockProducts   int `json:"low_stock_products"`
	OutOfStockProducts int `json:"out_of_stock_products"`

	TotalCustomers        int `json:"total_customers"`
	NewCustomersThisMonth int `json:"new_customers_this_month"`
	TotalEmployees        int `json:"total_employees"`
	TotalStores           int `json:"total_stores"`

	PendingExpenses int             `json:"pending_expenses"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`

	TopProducts   []report.TopProduct  `json:"top_products"`
	TopCustomers  []report.TopCustomer `json:"top_customers"`
	TopEmployees  []report.TopEmployee `json:"top_employees"`
	TopCategories []report.TopCategory `json:"top_categories"`
	TopStores     []report.TopStore    `json:"top_stores"`

	RecentSales    []RecentSale    `json:"recent_sales"`
	LowStockAlerts []LowStockAlert `json:"low_stock_alerts"`
}

// RecentSale is one entry of the latest-sales feed.
type RecentSale struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	SaleDate      time.Time       `json:"sale_date"`
	CustomerName  string          `json:"customer_name"`
	StoreName     string          `json:"store_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemCount     int             `json:"item_count"`
}

// LowStockAlert is one entry of the lowest-stock feed.
type LowStockAlert struct {
	ProductID          uuid.UUID      `json:"product_id"`
	ProductName        string         `json:"product_name"`
	CategoryName       string         `json:"category_name"`
	StockQuantity      int            `json:"stock_quantity"`
	CriticalStockLevel int            `json:"critical_stock_level"`
	Status             v1.StockStatus `json:"status"`
}
