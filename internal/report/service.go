package report

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/aggregation"
	"github.com/aevon-lab/retail-insights/internal/core/query"
	"github.com/aevon-lab/retail-insights/internal/core/storage"
	"github.com/shopspring/decimal"
)

// Service builds list reports, summaries and leaderboards from fresh
// data-source reads. It keeps no state between calls.
type Service struct {
	source          storage.DataSource
	defaultPageSize int
	loc             *time.Location
	nowFn           func() time.Time
}

// NewService creates a report service. A nil loc means time.Local; a
// defaultPageSize below 1 means query.DefaultPageSize.
func NewService(source storage.DataSource, defaultPageSize int, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	if defaultPageSize < 1 {
		defaultPageSize = query.DefaultPageSize
	}

	return &Service{
		source:          source,
		defaultPageSize: defaultPageSize,
		loc:             loc,
		nowFn:           time.Now,
	}
}

// Location is the zone used for calendar boundaries.
func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) now() time.Time {
	return s.nowFn().In(s.loc)
}

// resolveRange fills missing bounds with the current calendar month. Each
// bound defaults on its own, so an end before the month start yields an
// empty range rather than a shifted one.
func (s *Service) resolveRange(r DateRange) (time.Time, time.Time) {
	start, end := aggregation.WindowsAt(s.now()).MonthRange()
	if r.Start != nil {
		start = *r.Start
	}
	if r.End != nil {
		end = *r.End
	}
	return start, end
}

func (s *Service) loadSales(ctx context.Context, q storage.SaleQuery) ([]v1.Sale, error) {
	sales, err := s.source.SalesInRange(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	return sales, nil
}

// SalesReport returns one page of sales matching f.
func (s *Service) SalesReport(ctx context.Context, f SalesFilter, p query.PaginationParams) (query.PagedResult[SaleRow], error) {
	sales, err := s.loadSales(ctx, storage.SaleQuery{
		Start:      f.Start,
		End:        f.End,
		StoreID:    f.StoreID,
		CategoryID: f.CategoryID,
	})
	if err != nil {
		return query.PagedResult[SaleRow]{}, err
	}

	page := query.List(sales, salesFilter(f), salesSorter, p.Normalized(s.defaultPageSize))

	slog.Debug("[Report] Sales report",
		"read", len(sales),
		"matched", page.TotalCount,
		"page", page.PageNumber)

	return query.MapItems(page, func(sale v1.Sale) SaleRow {
		return SaleRow{Sale: sale, Units: sale.ItemCount()}
	}), nil
}

// StockReport returns one page of products matching f.
func (s *Service) StockReport(ctx context.Context, f StockFilter, p query.PaginationParams) (query.PagedResult[StockRow], error) {
	products, err := s.source.ProductsFiltered(ctx, storage.ProductQuery{
		CategoryID: f.CategoryID,
		ActiveOnly: !f.IncludeInactive,
	})
	if err != nil {
		return query.PagedResult[StockRow]{}, fmt.Errorf("load products: %w", err)
	}

	page := query.List(products, stockFilter(f), stockSorter, p.Normalized(s.defaultPageSize))

	slog.Debug("[Report] Stock report",
		"read", len(products),
		"matched", page.TotalCount,
		"page", page.PageNumber)

	return query.MapItems(page, func(prod v1.Product) StockRow {
		return StockRow{Product: prod, Status: prod.StockStatus(), Value: prod.StockValue()}
	}), nil
}

// ExpenseReport returns one page of expenses matching f.
func (s *Service) ExpenseReport(ctx context.Context, f ExpenseFilter, p query.PaginationParams) (query.PagedResult[v1.Expense], error) {
	expenses, err := s.source.ExpensesFiltered(ctx, storage.ExpenseQuery{
		Start:    f.Start,
		End:      f.End,
		StoreID:  f.StoreID,
		Category: f.Category,
		Status:   f.Status,
	})
	if err != nil {
		return query.PagedResult[v1.Expense]{}, fmt.Errorf("load expenses: %w", err)
	}

	page := query.List(expenses, expenseFilter(f), expenseSorter, p.Normalized(s.defaultPageSize))

	slog.Debug("[Report] Expense report",
		"read", len(expenses),
		"matched", page.TotalCount,
		"page", page.PageNumber)

	return page, nil
}

// SalesSummary rolls up every sale matching f. Missing date bounds default
// to the current month.
func (s *Service) SalesSummary(ctx context.Context, f SalesFilter) (*SalesSummary, error) {
	f.Start, f.End = ptrRange(s.resolveRange(f.Range()))

	sales, err := s.loadSales(ctx, storage.SaleQuery{
		Start:      f.Start,
		End:        f.End,
		StoreID:    f.StoreID,
		CategoryID: f.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	summary := SummarizeSales(salesFilter(f).Apply(sales), s.loc)
	summary.Start, summary.End = *f.Start, *f.End
	return summary, nil
}

// SummarizeSales reduces sales into a summary. Daily buckets use loc.
func SummarizeSales(sales []v1.Sale, loc *time.Location) *SalesSummary {
	lines := aggregation.Flatten(sales, func(s v1.Sale) []v1.SaleLine { return s.Lines })
	total := aggregation.Sum(sales, func(s v1.Sale) decimal.Decimal { return s.TotalAmount })

	items := 0
	for _, sale := range sales {
		items += sale.ItemCount()
	}

	return &SalesSummary{
		TotalSales:     len(sales),
		TotalAmount:    total,
		TotalDiscount:  aggregation.Sum(sales, func(s v1.Sale) decimal.Decimal { return s.DiscountAmount }),
		AverageAmount:  aggregation.Average(total, len(sales)),
		TotalItemsSold: items,

		SalesByCategory: aggregation.SumBy(lines,
			func(l v1.SaleLine) string { return l.CategoryLabel() },
			func(l v1.SaleLine) decimal.Decimal { return l.Total }),
		SalesByStore: aggregation.SumBy(sales,
			func(s v1.Sale) string { return s.StoreName },
			func(s v1.Sale) decimal.Decimal { return s.TotalAmount }),
		SalesByPaymentMethod: aggregation.SumBy(sales,
			func(s v1.Sale) string { return s.PaymentMethod },
			func(s v1.Sale) decimal.Decimal { return s.TotalAmount }),
		CountByPaymentMethod: aggregation.CountBy(sales,
			func(s v1.Sale) string { return s.PaymentMethod }),

		Daily: Trend(sales, aggregation.Day, loc),
	}
}

// StockSummary rolls up every product matching f.
func (s *Service) StockSummary(ctx context.Context, f StockFilter) (*StockSummary, error) {
	products, err := s.source.ProductsFiltered(ctx, storage.ProductQuery{
		CategoryID: f.CategoryID,
		ActiveOnly: !f.IncludeInactive,
	})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	return SummarizeStock(stockFilter(f).Apply(products)), nil
}

// SummarizeStock reduces products into a stock summary. Low and out of
// stock are disjoint.
func SummarizeStock(products []v1.Product) *StockSummary {
	withStatus := func(st v1.StockStatus) func(v1.Product) bool {
		return func(p v1.Product) bool { return p.StockStatus() == st }
	}
	value := func(p v1.Product) decimal.Decimal { return p.StockValue() }
	category := func(p v1.Product) string { return p.CategoryLabel() }

	units := 0
	for _, p := range products {
		units += p.StockQuantity
	}

	return &StockSummary{
		TotalProducts:  len(products),
		ActiveProducts: aggregation.Count(products, func(p v1.Product) bool { return p.IsActive }),
		InStock:        aggregation.Count(products, withStatus(v1.StockInStock)),
		LowStock:       aggregation.Count(products, withStatus(v1.StockLow)),
		OutOfStock:     aggregation.Count(products, withStatus(v1.StockOutOfStock)),
		TotalUnits:     units,

		TotalStockValue: aggregation.Sum(products, value),
		AveragePrice: aggregation.Average(
			aggregation.Sum(products, func(p v1.Product) decimal.Decimal { return p.Price }),
			len(products)),

		ValueByCategory: aggregation.SumBy(products, category, value),
		CountByCategory: aggregation.CountBy(products, category),
		ValueBySupplier: aggregation.SumBy(products, func(p v1.Product) string { return p.SupplierLabel() }, value),
	}
}

// ExpenseSummary rolls up every expense matching f. Missing date bounds
// default to the current month.
func (s *Service) ExpenseSummary(ctx context.Context, f ExpenseFilter) (*ExpenseSummary, error) {
	f.Start, f.End = ptrRange(s.resolveRange(f.Range()))

	expenses, err := s.source.ExpensesFiltered(ctx, storage.ExpenseQuery{
		Start:    f.Start,
		End:      f.End,
		StoreID:  f.StoreID,
		Category: f.Category,
		Status:   f.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	summary := SummarizeExpenses(expenseFilter(f).Apply(expenses))
	summary.Start, summary.End = *f.Start, *f.End
	return summary, nil
}

func SummarizeExpenses(expenses []v1.Expense) *ExpenseSummary {
	withStatus := func(st v1.ExpenseStatus) func(v1.Expense) bool {
		return func(e v1.Expense) bool { return e.Status == st }
	}
	base := func(e v1.Expense) decimal.Decimal { return e.AmountInBaseCurrency }
	total := aggregation.Sum(expenses, base)

	return &ExpenseSummary{
		TotalExpenses: len(expenses),
		TotalAmount:   total,
		AverageAmount: aggregation.Average(total, len(expenses)),

		PendingCount:  aggregation.Count(expenses, withStatus(v1.ExpensePending)),
		ApprovedCount: aggregation.Count(expenses, withStatus(v1.ExpenseApproved)),
		RejectedCount: aggregation.Count(expenses, withStatus(v1.ExpenseRejected)),
		PaidCount:     aggregation.Count(expenses, withStatus(v1.ExpensePaid)),
		CountByStatus: aggregation.CountBy(expenses, func(e v1.Expense) string { return string(e.Status) }),

		AmountByCategory: aggregation.SumBy(expenses, func(e v1.Expense) string { return e.CategoryLabel() }, base),
		AmountByStore:    aggregation.SumBy(expenses, func(e v1.Expense) string { return e.StoreLabel() }, base),
		AmountByCurrency: aggregation.SumBy(expenses,
			func(e v1.Expense) string { return e.CurrencyLabel() },
			func(e v1.Expense) decimal.Decimal { return e.Amount }),
	}
}

// SalesTrend buckets sales in r by calendar unit.
func (s *Service) SalesTrend(ctx context.Context, r DateRange, g aggregation.Granularity) (*SalesTrend, error) {
	start, end := s.resolveRange(r)

	sales, err := s.loadSales(ctx, storage.SaleQuery{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	inRange := salesFilter(SalesFilter{Start: &start, End: &end}).Apply(sales)
	return &SalesTrend{
		Start:       start,
		End:         end,
		Granularity: g,
		Points:      Trend(inRange, g, s.loc),
	}, nil
}

// Trend groups sales into calendar buckets of g in loc, ordered by period.
// Periods without sales are omitted. The result is never nil.
func Trend(sales []v1.Sale, g aggregation.Granularity, loc *time.Location) []TrendPoint {
	index := make(map[int64]int)
	points := []TrendPoint{}

	for _, sale := range sales {
		period := aggregation.BucketFor(sale.SaleDate.In(loc), g)
		i, ok := index[period.Unix()]
		if !ok {
			i = len(points)
			index[period.Unix()] = i
			points = append(points, TrendPoint{PeriodStart: period, TotalAmount: decimal.Zero})
		}
		points[i].SaleCount++
		points[i].TotalAmount = points[i].TotalAmount.Add(sale.TotalAmount)
	}

	slices.SortFunc(points, func(a, b TrendPoint) int {
		return a.PeriodStart.Compare(b.PeriodStart)
	})
	return points
}

func ptrRange(start, end time.Time) (*time.Time, *time.Time) {
	return &start, &end
}
