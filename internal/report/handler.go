package report

import (
	"log/slog"
	"net/http"

	"github.com/aevon-lab/retail-insights/internal/core/aggregation"
	httperr "github.com/aevon-lab/retail-insights/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all report API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	reports := r.Group("/v1/reports")

	reports.GET("/sales", s.HandleSalesReport)
	reports.GET("/sales/summary", s.HandleSalesSummary)
	reports.GET("/sales/trend", s.HandleSalesTrend)
	reports.GET("/stock", s.HandleStockReport)
	reports.GET("/stock/summary", s.HandleStockSummary)
	reports.GET("/expenses", s.HandleExpenseReport)
	reports.GET("/expenses/summary", s.HandleExpenseSummary)

	top := reports.Group("/top")
	top.GET("/products", s.HandleTopProducts)
	top.GET("/customers", s.HandleTopCustomers)
	top.GET("/employees", s.HandleTopEmployees)
	top.GET("/categories", s.HandleTopCategories)
	top.GET("/stores", s.HandleTopStores)
}

// respond writes body, or a 500 envelope when err is set.
func respond(c *gin.Context, body interface{}, err error, message string) {
	if err != nil {
		slog.Error("[Report] "+message,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"error", err)

		status, errType := httperr.StatusFor(err)
		c.JSON(status, httperr.ErrorResponse{
			ErrorType: errType,
			Message:   message,
			Details:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, body)
}

// HandleSalesReport handles GET /v1/reports/sales
// Query parameters: start, end, storeId, categoryId, customerId, employeeId,
// paymentMethod, minTotal, maxTotal, pageNumber, pageSize, sortBy, sortOrder
func (s *Service) HandleSalesReport(c *gin.Context) {
	page, err := s.SalesReport(c.Request.Context(), salesParams(c, s.loc), pagination(c))
	respond(c, page, err, "Failed to build sales report")
}

// HandleStockReport handles GET /v1/reports/stock
// Query parameters: categoryId, supplierId, status, search, includeInactive,
// pageNumber, pageSize, sortBy, sortOrder
func (s *Service) HandleStockReport(c *gin.Context) {
	page, err := s.StockReport(c.Request.Context(), stockParams(c), pagination(c))
	respond(c, page, err, "Failed to build stock report")
}

// HandleExpenseReport handles GET /v1/reports/expenses
// Query parameters: start, end, storeId, employeeId, category, status,
// currency, pageNumber, pageSize, sortBy, sortOrder
func (s *Service) HandleExpenseReport(c *gin.Context) {
	page, err := s.ExpenseReport(c.Request.Context(), expenseParams(c, s.loc), pagination(c))
	respond(c, page, err, "Failed to build expense report")
}

func (s *Service) HandleSalesSummary(c *gin.Context) {
	summary, err := s.SalesSummary(c.Request.Context(), salesParams(c, s.loc))
	respond(c, summary, err, "Failed to build sales summary")
}

func (s *Service) HandleStockSummary(c *gin.Context) {
	summary, err := s.StockSummary(c.Request.Context(), stockParams(c))
	respond(c, summary, err, "Failed to build stock summary")
}

func (s *Service) HandleExpenseSummary(c *gin.Context) {
	summary, err := s.ExpenseSummary(c.Request.Context(), expenseParams(c, s.loc))
	respond(c, summary, err, "Failed to build expense summary")
}

// HandleSalesTrend handles GET /v1/reports/sales/trend
// Query parameters: start, end, granularity (day|week|month)
func (s *Service) HandleSalesTrend(c *gin.Context) {
	g := aggregation.ParseGranularity(c.Query("granularity"))
	trend, err := s.SalesTrend(c.Request.Context(), dateRange(c, s.loc), g)
	respond(c, trend, err, "Failed to build sales trend")
}

// Top-N handlers take start, end and count. count is clamped to
// [1, aggregation.MaxTopN] with aggregation.DefaultTopN as the fallback.

func (s *Service) HandleTopProducts(c *gin.Context) {
	top, err := s.TopProducts(c.Request.Context(), dateRange(c, s.loc), intOr(c, "count", 0))
	respond(c, top, err, "Failed to rank products")
}

func (s *Service) HandleTopCustomers(c *gin.Context) {
	top, err := s.TopCustomers(c.Request.Context(), dateRange(c, s.loc), intOr(c, "count", 0))
	respond(c, top, err, "Failed to rank customers")
}

func (s *Service) HandleTopEmployees(c *gin.Context) {
	top, err := s.TopEmployees(c.Request.Context(), dateRange(c, s.loc), intOr(c, "count", 0))
	respond(c, top, err, "Failed to rank employees")
}

func (s *Service) HandleTopCategories(c *gin.Context) {
	top, err := s.TopCategories(c.Request.Context(), dateRange(c, s.loc), intOr(c, "count", 0))
	respond(c, top, err, "Failed to rank categories")
}

func (s *Service) HandleTopStores(c *gin.Context) {
	top, err := s.TopStores(c.Request.Context(), dateRange(c, s.loc), intOr(c, "count", 0))
	respond(c, top, err, "Failed to rank stores")
}
