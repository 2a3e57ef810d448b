package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/aggregation"
	httperr "github.com/aevon-lab/retail-insights/internal/core/errors"
	"github.com/aevon-lab/retail-insights/internal/core/storage"
	"github.com/aevon-lab/retail-insights/internal/core/storage/memory"
	storagemocks "github.com/aevon-lab/retail-insights/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Saturday; the week started on Sunday 2026-10-18.
var fixedNow = time.Date(2026, 10, 24, 12, 0, 0, 0, time.UTC)

var (
	store    = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	employee = uuid.MustParse("00000000-0000-0000-0000-0000000000e1")
	ada      = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	beans    = uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	mug      = uuid.MustParse("00000000-0000-0000-0000-0000000000b2")
	kettle   = uuid.MustParse("00000000-0000-0000-0000-0000000000b3")
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 10, 0, 0, 0, time.UTC)
}

func sale(invoice string, at time.Time, total string, customer *uuid.UUID, product uuid.UUID, qty int) v1.Sale {
	return v1.Sale{
		ID:            uuid.NewSHA1(uuid.NameSpaceURL, []byte(invoice)),
		InvoiceNumber: invoice,
		SaleDate:      at,
		CustomerID:    customer,
		CustomerName:  "Ada",
		EmployeeID:    employee,
		EmployeeName:  "Grace",
		StoreID:       store,
		StoreName:     "Downtown",
		PaymentMethod: "cash",
		TotalAmount:   dec(total),
		Lines: []v1.SaleLine{
			{ProductID: product, ProductName: product.String(), Quantity: qty, Total: dec(total)},
		},
	}
}

func fixtureSnapshot() memory.Snapshot {
	return memory.Snapshot{
		Sales: []v1.Sale{
			sale("INV-1", day(time.October, 24), "100", &ada, beans, 2),
			sale("INV-2", day(time.October, 21), "200", nil, mug, 5),
			sale("INV-3", day(time.October, 4), "300", &ada, beans, 1),
			sale("INV-4", day(time.August, 25), "400", &ada, kettle, 10),
		},
		Products: []v1.Product{
			{ID: beans, Name: "Beans", StockQuantity: 0, CriticalStockLevel: 5, IsActive: true},
			{ID: mug, Name: "Mug", StockQuantity: 5, CriticalStockLevel: 5, IsActive: true},
			{ID: kettle, Name: "Kettle", StockQuantity: 3, CriticalStockLevel: 5, IsActive: true},
			{ID: uuid.New(), Name: "Grinder", StockQuantity: 20, CriticalStockLevel: 5, IsActive: true},
			{ID: uuid.New(), Name: "Old Press", StockQuantity: 0, CriticalStockLevel: 5, IsActive: false},
		},
		Customers: []v1.Customer{
			{ID: ada, Name: "Ada", CreatedAt: day(time.October, 2), IsActive: true},
			{ID: uuid.New(), Name: "Alan", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
			{ID: uuid.New(), Name: "Gone", CreatedAt: day(time.October, 3), IsActive: false},
		},
		Employees: []v1.Employee{{ID: employee, Name: "Grace", IsActive: true}},
		Stores:    []v1.Store{{ID: store, Name: "Downtown", IsActive: true}},
		Expenses: []v1.Expense{
			{ID: uuid.New(), ExpenseDate: day(time.October, 5), Category: "Rent", AmountInBaseCurrency: dec("30"), Status: v1.ExpensePending},
			{ID: uuid.New(), ExpenseDate: day(time.October, 10), Category: "Rent", AmountInBaseCurrency: dec("70"), Status: v1.ExpenseApproved},
			{ID: uuid.New(), ExpenseDate: day(time.September, 1), Category: "Rent", AmountInBaseCurrency: dec("99"), Status: v1.ExpensePending},
		},
	}
}

func newFixtureService(t *testing.T, source storage.DataSource) *Service {
	t.Helper()
	if source == nil {
		source = memory.NewSource(fixtureSnapshot())
	}
	svc := NewService(source, 2, 5, time.UTC)
	svc.nowFn = func() time.Time { return fixedNow }
	return svc
}

func requireFigure(t *testing.T, want aggregation.Figure, got aggregation.Figure) {
	t.Helper()
	require.Equal(t, want.Count, got.Count)
	require.True(t, want.Total.Equal(got.Total), "want %s, got %s", want.Total, got.Total)
}

func TestService_Snapshot_NestedWindows(t *testing.T) {
	svc := newFixtureService(t, nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC), snap.Today)
	require.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), snap.WeekStart)
	require.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), snap.MonthStart)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), snap.YearStart)

	requireFigure(t, aggregation.Figure{Count: 1, Total: dec("100")}, snap.TodaySales)
	requireFigure(t, aggregation.Figure{Count: 2, Total: dec("300")}, snap.WeeklySales)
	requireFigure(t, aggregation.Figure{Count: 3, Total: dec("600")}, snap.MonthlySales)
	requireFigure(t, aggregation.Figure{Count: 4, Total: dec("1000")}, snap.YearlySales)
}

func TestService_Snapshot_HeadlineCounts(t *testing.T) {
	svc := newFixtureService(t, nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	require.Equal(t, 5, snap.TotalProducts)
	require.Equal(t, 4, snap.ActiveProducts)
	require.Equal(t, 2, snap.LowStockProducts)
	require.Equal(t, 1, snap.OutOfStockProducts)

	require.Equal(t, 2, snap.TotalCustomers)
	require.Equal(t, 1, snap.NewCustomersThisMonth)
	require.Equal(t, 1, snap.TotalEmployees)
	require.Equal(t, 1, snap.TotalStores)

	require.Equal(t, 2, snap.PendingExpenses)
	require.True(t, dec("100").Equal(snap.MonthlyExpenses), "got %s", snap.MonthlyExpenses)
}

func TestService_Snapshot_LeaderboardsCoverCurrentMonth(t *testing.T) {
	svc := newFixtureService(t, nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	// The August kettle sale is outside the month.
	require.Len(t, snap.TopProducts, 2)
	require.Equal(t, mug, snap.TopProducts[0].ProductID)
	require.Equal(t, 5, snap.TopProducts[0].QuantitySold)
	require.Equal(t, beans, snap.TopProducts[1].ProductID)
	require.Equal(t, 3, snap.TopProducts[1].QuantitySold)

	// The walk-in sale does not count towards any customer.
	require.Len(t, snap.TopCustomers, 1)
	require.Equal(t, ada, snap.TopCustomers[0].CustomerID)
	require.Equal(t, 2, snap.TopCustomers[0].PurchaseCount)
	require.True(t, dec("400").Equal(snap.TopCustomers[0].TotalSpent))
	require.Equal(t, day(time.October, 24), snap.TopCustomers[0].LastPurchase)

	require.Len(t, snap.TopEmployees, 1)
	require.True(t, dec("600").Equal(snap.TopEmployees[0].TotalSales))
	require.Len(t, snap.TopStores, 1)
	require.Len(t, snap.TopCategories, 1)
	require.Equal(t, v1.UnknownLabel, snap.TopCategories[0].CategoryName)
}

func TestService_Snapshot_Feeds(t *testing.T) {
	svc := newFixtureService(t, nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.RecentSales, 2)
	require.Equal(t, "INV-1", snap.RecentSales[0].InvoiceNumber)
	require.Equal(t, "INV-2", snap.RecentSales[1].InvoiceNumber)
	require.Equal(t, "Walk-in", snap.RecentSales[1].CustomerName)
	require.Equal(t, 5, snap.RecentSales[1].ItemCount)

	// Lowest stock first; the inactive product never alerts.
	require.Len(t, snap.LowStockAlerts, 2)
	require.Equal(t, "Beans", snap.LowStockAlerts[0].ProductName)
	require.Equal(t, v1.StockOutOfStock, snap.LowStockAlerts[0].Status)
	require.Equal(t, "Kettle", snap.LowStockAlerts[1].ProductName)
	require.Equal(t, v1.StockLow, snap.LowStockAlerts[1].Status)
}

func TestCompose_YearExcludesPreviousYearWeekDays(t *testing.T) {
	// Friday 2027-01-01; the week started on Sunday 2026-12-27.
	w := aggregation.WindowsAt(time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC))
	require.Equal(t, time.Date(2026, 12, 27, 0, 0, 0, 0, time.UTC), w.Earliest())

	in := Inputs{Sales: []v1.Sale{
		sale("INV-A", time.Date(2027, 1, 1, 8, 0, 0, 0, time.UTC), "10", nil, beans, 1),
		sale("INV-B", time.Date(2026, 12, 30, 8, 0, 0, 0, time.UTC), "20", nil, beans, 1),
	}}

	snap := Compose(w, in, DefaultFeedSize, DefaultTopN)
	requireFigure(t, aggregation.Figure{Count: 1, Total: dec("10")}, snap.TodaySales)
	requireFigure(t, aggregation.Figure{Count: 2, Total: dec("30")}, snap.WeeklySales)
	requireFigure(t, aggregation.Figure{Count: 1, Total: dec("10")}, snap.MonthlySales)
	requireFigure(t, aggregation.Figure{Count: 1, Total: dec("10")}, snap.YearlySales)
}

func TestCompose_EmptyInputs(t *testing.T) {
	snap := Compose(aggregation.WindowsAt(fixedNow), Inputs{}, DefaultFeedSize, DefaultTopN)

	require.Zero(t, snap.TodaySales.Count)
	require.True(t, snap.YearlySales.Average().IsZero())
	require.True(t, snap.MonthlyExpenses.IsZero())
	require.NotNil(t, snap.RecentSales)
	require.NotNil(t, snap.LowStockAlerts)
	require.Empty(t, snap.TopProducts)
}

func TestService_Snapshot_ReadsFromEarliestWindow(t *testing.T) {
	source := storagemocks.NewDataSource(t)
	svc := newFixtureService(t, source)

	yearStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pending := v1.ExpensePending

	source.EXPECT().SalesInRange(mock.Anything, storage.SaleQuery{Start: &yearStart}).Return(nil, nil).Once()
	source.EXPECT().LatestSales(mock.Anything, 2).Return(nil, nil).Once()
	source.EXPECT().ProductsFiltered(mock.Anything, storage.ProductQuery{}).Return(nil, nil).Once()
	source.EXPECT().CustomersActive(mock.Anything).Return(nil, nil).Once()
	source.EXPECT().EmployeesActive(mock.Anything).Return(nil, nil).Once()
	source.EXPECT().StoresActive(mock.Anything).Return(nil, nil).Once()
	source.EXPECT().ExpensesFiltered(mock.Anything, storage.ExpenseQuery{Status: &pending}).Return(nil, nil).Once()
	source.EXPECT().ExpensesFiltered(mock.Anything, mock.MatchedBy(func(q storage.ExpenseQuery) bool {
		return q.Status == nil && q.Start != nil && q.Start.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	})).Return(nil, nil).Once()

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.Zero(t, snap.YearlySales.Count)
}

func TestService_Snapshot_SourceErrorCancelsSnapshot(t *testing.T) {
	boom := errors.New("connection reset")
	source := storagemocks.NewDataSource(t)
	svc := newFixtureService(t, source)

	source.EXPECT().SalesInRange(mock.Anything, mock.Anything).Return(nil, boom)
	source.EXPECT().LatestSales(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	source.EXPECT().ProductsFiltered(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	source.EXPECT().CustomersActive(mock.Anything).Return(nil, nil).Maybe()
	source.EXPECT().EmployeesActive(mock.Anything).Return(nil, nil).Maybe()
	source.EXPECT().StoresActive(mock.Anything).Return(nil, nil).Maybe()
	source.EXPECT().ExpensesFiltered(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	snap, err := svc.Snapshot(context.Background())
	require.Nil(t, snap)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "load sales")
}

func TestHandleSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		r := gin.New()
		newFixtureService(t, nil).RegisterRoutes(r)

		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
		require.Equal(t, http.StatusOK, resp.Code)

		var snap Snapshot
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &snap))
		require.Equal(t, 4, snap.YearlySales.Count)
		require.True(t, dec("1000").Equal(snap.YearlySales.Total))
	})

	t.Run("source failure", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := gin.New()
		newFixtureService(t, nil).RegisterRoutes(r)

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil).WithContext(ctx)
		r.ServeHTTP(resp, req)
		require.Equal(t, http.StatusInternalServerError, resp.Code)

		var body httperr.ErrorResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, httperr.HttpInternalError, body.ErrorType)
	})

	t.Run("expired deadline", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), fixedNow.Add(-time.Hour))
		defer cancel()

		r := gin.New()
		newFixtureService(t, nil).RegisterRoutes(r)

		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil).WithContext(ctx)
		r.ServeHTTP(resp, req)
		require.Equal(t, http.StatusGatewayTimeout, resp.Code)

		var body httperr.ErrorResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, httperr.HttpTimeoutError, body.ErrorType)
	})
}
