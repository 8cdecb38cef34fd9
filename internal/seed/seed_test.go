package seed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sagfgh000/grocery/internal/usecase/checkout"
)

func TestProducts_WellFormed(t *testing.T) {
	products := Products()
	require.Len(t, products, 8)

	seen := map[string]bool{}
	for _, p := range products {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		require.NotEmpty(t, p.NameEN)
		require.NotEmpty(t, p.NameBN)
		require.False(t, p.SellingPrice.IsNegative())
		require.True(t, p.SellingPrice.GreaterThan(p.BuyingPrice), "%s sells below cost", p.ID)
	}
}

func TestOrders_Deterministic(t *testing.T) {
	products := Products()

	a := Orders(products, 7, 42)
	b := Orders(products, 7, 42)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].ID, b[i].ID)
		require.True(t, a[i].Total.Equal(b[i].Total))
		require.Equal(t, a[i].PaymentStatus, b[i].PaymentStatus)
	}
}

func TestOrders_ObeyInvariants(t *testing.T) {
	orders := Orders(Products(), 30, 7)
	require.NotEmpty(t, orders)

	for _, o := range orders {
		require.True(t, o.AmountPaid.Add(o.AmountDue).Equal(o.Total),
			"%s: paid %s + due %s != total %s", o.ID, o.AmountPaid, o.AmountDue, o.Total)

		if o.PaymentStatus == checkout.StatusPaid {
			require.False(t, o.AmountDue.IsPositive())
		} else {
			require.Equal(t, checkout.StatusDue, o.PaymentStatus)
			require.True(t, o.AmountDue.IsPositive())
		}

		// no tax: the total is the plain sum of line subtotals
		sum := o.Items[0].Subtotal
		for _, it := range o.Items[1:] {
			sum = sum.Add(it.Subtotal)
		}
		require.True(t, sum.Equal(o.Total))
	}
}

func TestOrders_NewestFirst(t *testing.T) {
	orders := Orders(Products(), 14, 1)
	for i := 1; i < len(orders); i++ {
		require.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt),
			"orders[%d] older than orders[%d]", i-1, i)
	}
}
