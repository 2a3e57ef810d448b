package report

import (
	"strconv"
	"strings"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/query"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Query parameters are parsed permissively: a malformed value is dropped
// and the default applies. Nothing here produces a 4xx.

const dateOnly = "2006-01-02"

func optString(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

func optUUID(c *gin.Context, key string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return nil
	}
	return &id
}

func optDecimal(c *gin.Context, key string) *decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return nil
	}
	return &d
}

func optBool(c *gin.Context, key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(c.Query(key)))
	return err == nil && b
}

func intOr(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return fallback
	}
	return n
}

// optTime accepts RFC 3339 or a bare date in loc. With endOfDay a bare date
// covers the whole day.
func optTime(c *gin.Context, key string, loc *time.Location, endOfDay bool) *time.Time {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}

	d, err := time.ParseInLocation(dateOnly, raw, loc)
	if err != nil {
		return nil
	}
	if endOfDay {
		d = d.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &d
}

func dateRange(c *gin.Context, loc *time.Location) DateRange {
	return DateRange{
		Start: optTime(c, "start", loc, false),
		End:   optTime(c, "end", loc, true),
	}
}

func pagination(c *gin.Context) query.PaginationParams {
	return query.PaginationParams{
		PageNumber: intOr(c, "pageNumber", 1),
		PageSize:   intOr(c, "pageSize", 0),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}
}

func salesParams(c *gin.Context, loc *time.Location) SalesFilter {
	r := dateRange(c, loc)
	return SalesFilter{
		Start:         r.Start,
		End:           r.End,
		StoreID:       optUUID(c, "storeId"),
		CategoryID:    optUUID(c, "categoryId"),
		CustomerID:    optUUID(c, "customerId"),
		EmployeeID:    optUUID(c, "employeeId"),
		PaymentMethod: optString(c, "paymentMethod"),
		MinTotal:      optDecimal(c, "minTotal"),
		MaxTotal:      optDecimal(c, "maxTotal"),
	}
}

func stockParams(c *gin.Context) StockFilter {
	f := StockFilter{
		CategoryID:      optUUID(c, "categoryId"),
		SupplierID:      optUUID(c, "supplierId"),
		Search:          optString(c, "search"),
		IncludeInactive: optBool(c, "includeInactive"),
	}
	if raw := optString(c, "status"); raw != nil {
		if st, ok := v1.ParseStockStatus(*raw); ok {
			f.Status = &st
		}
	}
	return f
}

func expenseParams(c *gin.Context, loc *time.Location) ExpenseFilter {
	r := dateRange(c, loc)
	f := ExpenseFilter{
		Start:      r.Start,
		End:        r.End,
		StoreID:    optUUID(c, "storeId"),
		EmployeeID: optUUID(c, "employeeId"),
		Category:   optString(c, "category"),
		Currency:   optString(c, "currency"),
	}
	if raw := optString(c, "status"); raw != nil {
		if st, ok := v1.ParseExpenseStatus(*raw); ok {
			f.Status = &st
		}
	}
	return f
}
