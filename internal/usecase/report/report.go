package report

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sagfgh000/grocery/internal/usecase/catalog"
	"github.com/sagfgh000/grocery/internal/usecase/checkout"
)

var ErrInvalidRange = errors.New("invalid date range")

var hundred = decimal.NewFromInt(100)

type Store interface {
	ListOrders(ctx context.Context) ([]checkout.Order, error)
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// Summary is the dashboard KPI block for a date range, with the revenue
// change measured against the period of the same length immediately before.
type Summary struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	SalesCount       int             `json:"salesCount"`
	ItemsSold        decimal.Decimal `json:"itemsSold"`
	OutstandingDue   decimal.Decimal `json:"outstandingDue"`
	RevenueChangePct decimal.Decimal `json:"revenueChangePct"`
	ProductsInStock  int             `json:"productsInStock"`
	LowStockCount    int             `json:"lowStockCount"`
}

func (u *Usecase) Summary(ctx context.Context, from, to time.Time) (*Summary, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	orders, err := u.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	products, err := u.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	current := inRange(orders, from, to)
	prevFrom := from.Add(-to.Sub(from))
	previous := inRange(orders, prevFrom, from)

	s := &Summary{
		TotalRevenue:   decimal.Zero,
		TotalProfit:    decimal.Zero,
		ItemsSold:      decimal.Zero,
		OutstandingDue: decimal.Zero,
		SalesCount:     len(current),
	}
	for _, o := range current {
		s.TotalRevenue = s.TotalRevenue.Add(o.Total)
		s.TotalProfit = s.TotalProfit.Add(o.TotalProfit)
		s.OutstandingDue = s.OutstandingDue.Add(o.AmountDue)
		for _, it := range o.Items {
			s.ItemsSold = s.ItemsSold.Add(it.Quantity)
		}
	}

	prevRevenue := decimal.Zero
	for _, o := range previous {
		prevRevenue = prevRevenue.Add(o.Total)
	}
	switch {
	case prevRevenue.IsPositive():
		s.RevenueChangePct = s.TotalRevenue.Sub(prevRevenue).Div(prevRevenue).Mul(hundred).Round(1)
	case s.TotalRevenue.IsPositive():
		s.RevenueChangePct = hundred
	default:
		s.RevenueChangePct = decimal.Zero
	}

	for _, p := range products {
		st := p.StockStatus()
		if st != catalog.StockOutOfStock {
			s.ProductsInStock++
		}
		if st != catalog.StockInStock {
			s.LowStockCount++
		}
	}
	return s, nil
}

// DailyPoint is one bar of the sales-over-time chart.
type DailyPoint struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Orders  int             `json:"orders"`
}

func (u *Usecase) DailySales(ctx context.Context, from, to time.Time) ([]DailyPoint, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	orders, err := u.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	byDay := map[string]*DailyPoint{}
	for _, o := range inRange(orders, from, to) {
		day := o.CreatedAt.Format("2006-01-02")
		pt, ok := byDay[day]
		if !ok {
			pt = &DailyPoint{Date: day, Revenue: decimal.Zero, Profit: decimal.Zero}
			byDay[day] = pt
		}
		pt.Revenue = pt.Revenue.Add(o.Total)
		pt.Profit = pt.Profit.Add(o.TotalProfit)
		pt.Orders++
	}

	out := make([]DailyPoint, 0, len(byDay))
	for _, pt := range byDay {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// CategorySlice is one wedge of the revenue-by-category chart, computed from
// the category frozen into each order line.
type CategorySlice struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

func (u *Usecase) CategoryRevenue(ctx context.Context, from, to time.Time) ([]CategorySlice, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	orders, err := u.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	byCat := map[string]decimal.Decimal{}
	for _, o := range inRange(orders, from, to) {
		for _, it := range o.Items {
			cat := it.Product.Category
			byCat[cat] = byCat[cat].Add(it.Subtotal)
		}
	}

	out := make([]CategorySlice, 0, len(byCat))
	for cat, rev := range byCat {
		out = append(out, CategorySlice{Category: cat, Revenue: rev})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out, nil
}

func inRange(orders []checkout.Order, from, to time.Time) []checkout.Order {
	out := make([]checkout.Order, 0, len(orders))
	for _, o := range orders {
		if !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			out = append(out, o)
		}
	}
	return out
}
