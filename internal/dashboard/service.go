package dashboard

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/aggregation"
	"github.com/aevon-lab/retail-insights/internal/core/storage"
	"github.com/aevon-lab/retail-insights/internal/report"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultFeedSize = 5
	DefaultTopN     = 5
)

// Service composes the dashboard snapshot.
type Service struct {
	source   storage.DataSource
	feedSize int
	topN     int
	loc      *time.Location
	nowFn    func() time.Time
}

// NewService creates a dashboard service. Sizes below 1 fall back to the
// package defaults and a nil loc means time.Local.
func NewService(source storage.DataSource, feedSize, topN int, loc *time.Location) *Service {
	if feedSize < 1 {
		feedSize = DefaultFeedSize
	}
	if topN < 1 {
		topN = DefaultTopN
	}
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		source:   source,
		feedSize: feedSize,
		topN:     topN,
		loc:      loc,
		nowFn:    time.Now,
	}
}

// Inputs holds the independent data-source results for one snapshot.
type Inputs struct {
	Sales           []v1.Sale // on or after Windows.Earliest
	Latest          []v1.Sale
	Products        []v1.Product
	Customers       []v1.Customer
	Employees       []v1.Employee
	Stores          []v1.Store
	Pending         []v1.Expense
	MonthlyExpenses []v1.Expense
}

// Snapshot captures the current instant once and derives every window from it.
// The underlying reads run in parallel; the first failure cancels the rest.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	w := aggregation.WindowsAt(s.nowFn().In(s.loc))

	in, err := s.load(ctx, w)
	if err != nil {
		return nil, err
	}

	slog.Debug("[Dashboard] Composing snapshot",
		"now", w.Now,
		"week_start", w.WeekStart,
		"sales", len(in.Sales),
		"products", len(in.Products))

	return Compose(w, in, s.feedSize, s.topN), nil
}

func (s *Service) load(ctx context.Context, w aggregation.Windows) (Inputs, error) {
	var r Inputs
	earliest := w.Earliest()
	monthStart, monthEnd := w.MonthRange()
	pending := v1.ExpensePending

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r.Sales, err = s.source.SalesInRange(gctx, storage.SaleQuery{Start: &earliest})
		return wrap("sales", err)
	})
	g.Go(func() (err error) {
		r.Latest, err = s.source.LatestSales(gctx, s.feedSize)
		return wrap("latest sales", err)
	})
	g.Go(func() (err error) {
		r.Products, err = s.source.ProductsFiltered(gctx, storage.ProductQuery{})
		return wrap("products", err)
	})
	g.Go(func() (err error) {
		r.Customers, err = s.source.CustomersActive(gctx)
		return wrap("customers", err)
	})
	g.Go(func() (err error) {
		r.Employees, err = s.source.EmployeesActive(gctx)
		return wrap("employees", err)
	})
	g.Go(func() (err error) {
		r.Stores, err = s.source.StoresActive(gctx)
		return wrap("stores", err)
	})
	g.Go(func() (err error) {
		r.Pending, err = s.source.ExpensesFiltered(gctx, storage.ExpenseQuery{Status: &pending})
		return wrap("pending expenses", err)
	})
	g.Go(func() (err error) {
		r.MonthlyExpenses, err = s.source.ExpensesFiltered(gctx, storage.ExpenseQuery{Start: &monthStart, End: &monthEnd})
		return wrap("monthly expenses", err)
	})

	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}
	return r, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("load %s: %w", what, err)
	}
	return nil
}

// Compose builds a snapshot from already-loaded collections. Every input is
// re-filtered against w, so sources may return a superset.
func Compose(w aggregation.Windows, in Inputs, feedSize, topN int) *Snapshot {
	snap := &Snapshot{
		GeneratedAt: w.Now,
		Today:       w.Today,
		WeekStart:   w.WeekStart,
		MonthStart:  w.MonthStart,
		YearStart:   w.YearStart,
	}

	month := make([]v1.Sale, 0, len(in.Sales))
	for _, sale := range in.Sales {
		if w.InToday(sale.SaleDate) {
			snap.TodaySales = snap.TodaySales.Add(sale.TotalAmount)
		}
		if aggregation.Since(sale.SaleDate, w.WeekStart) {
			snap.WeeklySales = snap.WeeklySales.Add(sale.TotalAmount)
		}
		if aggregation.Since(sale.SaleDate, w.MonthStart) {
			snap.MonthlySales = snap.MonthlySales.Add(sale.TotalAmount)
			month = append(month, sale)
		}
		if aggregation.Since(sale.SaleDate, w.YearStart) {
			snap.YearlySales = snap.YearlySales.Add(sale.TotalAmount)
		}
	}

	snap.TotalProducts = len(in.Products)
	for _, p := range in.Products {
		if !p.IsActive {
			continue
		}
		snap.ActiveProducts++
		switch p.StockStatus() {
		case v1.StockLow:
			snap.LowStockProducts++
		case v1.StockOutOfStock:
			snap.OutOfStockProducts++
		}
	}

	snap.TotalCustomers = len(in.Customers)
	snap.NewCustomersThisMonth = aggregation.Count(in.Customers, func(c v1.Customer) bool {
		return aggregation.Since(c.CreatedAt, w.MonthStart)
	})
	snap.TotalEmployees = len(in.Employees)
	snap.TotalStores = len(in.Stores)

	snap.PendingExpenses = aggregation.Count(in.Pending, func(e v1.Expense) bool {
		return e.Status == v1.ExpensePending
	})
	monthStart, monthEnd := w.MonthRange()
	inMonth := make([]v1.Expense, 0, len(in.MonthlyExpenses))
	for _, e := range in.MonthlyExpenses {
		if !e.ExpenseDate.Before(monthStart) && !e.ExpenseDate.After(monthEnd) {
			inMonth = append(inMonth, e)
		}
	}
	snap.MonthlyExpenses = aggregation.Sum(inMonth, func(e v1.Expense) decimal.Decimal {
		return e.AmountInBaseCurrency
	})

	snap.TopProducts = report.RankProducts(month, topN)
	snap.TopCustomers = report.RankCustomers(month, topN)
	snap.TopEmployees = report.RankEmployees(month, topN)
	snap.TopCategories = report.RankCategories(month, topN)
	snap.TopStores = report.RankStores(month, topN)

	snap.RecentSales = recentSales(in.Latest, feedSize)
	snap.LowStockAlerts = lowStockAlerts(in.Products, feedSize)
	return snap
}

// recentSales returns the newest sales first, at most n of them.
func recentSales(sales []v1.Sale, n int) []RecentSale {
	sorted := slices.Clone(sales)
	slices.SortStableFunc(sorted, func(a, b v1.Sale) int {
		return b.SaleDate.Compare(a.SaleDate)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	feed := make([]RecentSale, 0, len(sorted))
	for _, sale := range sorted {
		feed = append(feed, RecentSale{
			ID:            sale.ID,
			InvoiceNumber: sale.InvoiceNumber,
			SaleDate:      sale.SaleDate,
			CustomerName:  sale.CustomerLabel(),
			StoreName:     sale.StoreName,
			TotalAmount:   sale.TotalAmount,
			ItemCount:     sale.ItemCount(),
		})
	}
	return feed
}

// lowStockAlerts lists active products at or below their critical level,
// lowest stock first, at most n of them.
func lowStockAlerts(products []v1.Product, n int) []LowStockAlert {
	low := make([]v1.Product, 0)
	for _, p := range products {
		if p.IsActive && p.StockStatus() != v1.StockInStock {
			low = append(low, p)
		}
	}
	slices.SortStableFunc(low, func(a, b v1.Product) int {
		if c := cmp.Compare(a.StockQuantity, b.StockQuantity); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	if len(low) > n {
		low = low[:n]
	}

	feed := make([]LowStockAlert, 0, len(low))
	for _, p := range low {
		feed = append(feed, LowStockAlert{
			ProductID:          p.ID,
			ProductName:        p.Name,
			CategoryName:       p.CategoryLabel(),
			StockQuantity:      p.StockQuantity,
			CriticalStockLevel: p.CriticalStockLevel,
			Status:             p.StockStatus(),
		})
	}
	return feed
}
