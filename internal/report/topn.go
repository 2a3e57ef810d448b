package report

import (
	"context"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"github.com/aevon-lab/retail-insights/internal/core/aggregation"
	"github.com/aevon-lab/retail-insights/internal/core/storage"
	"github.com/shopspring/decimal"
)

func lineTotal(l v1.SaleLine) decimal.Decimal { return l.Total }
func saleTotal(s v1.Sale) decimal.Decimal     { return s.TotalAmount }

func quantity(lines []v1.SaleLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// RankProducts ranks products by quantity sold.
func RankProducts(sales []v1.Sale, n int) []TopProduct {
	lines := aggregation.Flatten(sales, func(s v1.Sale) []v1.SaleLine { return s.Lines })

	return aggregation.Rank(lines,
		func(l v1.SaleLine) string { return l.ProductID.String() },
		func(g aggregation.Group[v1.SaleLine]) TopProduct {
			first := g.Items[0]
			return TopProduct{
				ProductID:    first.ProductID,
				ProductName:  first.ProductName,
				QuantitySold: quantity(g.Items),
				Revenue:      aggregation.Sum(g.Items, lineTotal),
			}
		},
		func(e TopProduct) decimal.Decimal { return decimal.NewFromInt(int64(e.QuantitySold)) },
		n,
	)
}

// RankCustomers ranks customers by total spent. Walk-in sales are skipped.
func RankCustomers(sales []v1.Sale, n int) []TopCustomer {
	known := make([]v1.Sale, 0, len(sales))
	for _, s := range sales {
		if s.CustomerID != nil {
			known = append(known, s)
		}
	}

	return aggregation.Rank(known,
		func(s v1.Sale) string { return s.CustomerID.String() },
		func(g aggregation.Group[v1.Sale]) TopCustomer {
			first := g.Items[0]
			last := first.SaleDate
			for _, s := range g.Items[1:] {
				if s.SaleDate.After(last) {
					last = s.SaleDate
				}
			}
			return TopCustomer{
				CustomerID:    *first.CustomerID,
				CustomerName:  first.CustomerName,
				PurchaseCount: len(g.Items),
				TotalSpent:    aggregation.Sum(g.Items, saleTotal),
				LastPurchase:  last,
			}
		},
		func(e TopCustomer) decimal.Decimal { return e.TotalSpent },
		n,
	)
}

// RankEmployees ranks employees by total sales.
func RankEmployees(sales []v1.Sale, n int) []TopEmployee {
	return aggregation.Rank(sales,
		func(s v1.Sale) string { return s.EmployeeID.String() },
		func(g aggregation.Group[v1.Sale]) TopEmployee {
			total := aggregation.Sum(g.Items, saleTotal)
			return TopEmployee{
				EmployeeID:   g.Items[0].EmployeeID,
				EmployeeName: g.Items[0].EmployeeName,
				SaleCount:    len(g.Items),
				TotalSales:   total,
				AverageSale:  aggregation.Average(total, len(g.Items)),
			}
		},
		func(e TopEmployee) decimal.Decimal { return e.TotalSales },
		n,
	)
}

// RankCategories ranks categories by line revenue. Lines without a category
// rank together as v1.UnknownLabel.
func RankCategories(sales []v1.Sale, n int) []TopCategory {
	lines := aggregation.Flatten(sales, func(s v1.Sale) []v1.SaleLine { return s.Lines })

	return aggregation.Rank(lines,
		func(l v1.SaleLine) string {
			if l.CategoryID == nil {
				return ""
			}
			return l.CategoryID.String()
		},
		func(g aggregation.Group[v1.SaleLine]) TopCategory {
			first := g.Items[0]
			return TopCategory{
				CategoryID:   first.CategoryID,
				CategoryName: first.CategoryLabel(),
				QuantitySold: quantity(g.Items),
				Revenue:      aggregation.Sum(g.Items, lineTotal),
			}
		},
		func(e TopCategory) decimal.Decimal { return e.Revenue },
		n,
	)
}

// RankStores ranks stores by total sales.
func RankStores(sales []v1.Sale, n int) []TopStore {
	return aggregation.Rank(sales,
		func(s v1.Sale) string { return s.StoreID.String() },
		func(g aggregation.Group[v1.Sale]) TopStore {
			return TopStore{
				StoreID:    g.Items[0].StoreID,
				StoreName:  g.Items[0].StoreName,
				SaleCount:  len(g.Items),
				TotalSales: aggregation.Sum(g.Items, saleTotal),
			}
		},
		func(e TopStore) decimal.Decimal { return e.TotalSales },
		n,
	)
}

// rangedTop loads sales in r and ranks them with rank.
func rangedTop[E any](ctx context.Context, s *Service, r DateRange, n int, rank func([]v1.Sale, int) []E) (*TopResult[E], error) {
	start, end := s.resolveRange(r)

	sales, err := s.loadSales(ctx, storage.SaleQuery{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	inRange := salesFilter(SalesFilter{Start: &start, End: &end}).Apply(sales)
	return &TopResult[E]{Start: start, End: end, Entries: rank(inRange, n)}, nil
}

func (s *Service) TopProducts(ctx context.Context, r DateRange, n int) (*TopResult[TopProduct], error) {
	return rangedTop(ctx, s, r, n, RankProducts)
}

func (s *Service) TopCustomers(ctx context.Context, r DateRange, n int) (*TopResult[TopCustomer], error) {
	return rangedTop(ctx, s, r, n, RankCustomers)
}

func (s *Service) TopEmployees(ctx context.Context, r DateRange, n int) (*TopResult[TopEmployee], error) {
	return rangedTop(ctx, s, r, n, RankEmployees)
}

func (s *Service) TopCategories(ctx context.Context, r DateRange, n int) (*TopResult[TopCategory], error) {
	return rangedTop(ctx, s, r, n, RankCategories)
}

func (s *Service) TopStores(ctx context.Context, r DateRange, n int) (*TopResult[TopStore], error) {
	return rangedTop(ctx, s, r, n, RankStores)
}
