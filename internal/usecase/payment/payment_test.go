package payment_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sagfgh000/grocery/internal/datastore"
	"github.com/sagfgh000/grocery/internal/storage"
	"github.com/sagfgh000/grocery/internal/usecase/cart"
	"github.com/sagfgh000/grocery/internal/usecase/catalog"
	"github.com/sagfgh000/grocery/internal/usecase/checkout"
	"github.com/sagfgh000/grocery/internal/usecase/payment"
)

// --- Helpers -------------------------------------------------------------

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func requireDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

// newDueOrder checks out a 500-total order with 200 paid and returns the
// stores plus the order id.
func newDueOrder(t *testing.T) (*datastore.Store, *payment.Usecase, string) {
	t.Helper()

	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	store, err := datastore.Open(context.Background(), kv, datastore.Options{ShopName: "Test Shop"})
	require.NoError(t, err)

	s, err := store.GetSettings(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Replace(context.Background(),
		[]catalog.Product{{
			ID: "prod_rice", NameEN: "Rice", Unit: catalog.UnitKg,
			StockQuantity: dec("50"), SellingPrice: dec("100"), BuyingPrice: dec("80"),
			Category: "Grains", LowStockThreshold: dec("5"),
		}},
		nil, s))

	c := cart.New(store)
	ctx := context.Background()
	require.NoError(t, c.SetQuantity(ctx, "prod_rice", dec("5"))) // total 500

	paid := dec("200")
	o, err := checkout.New(store, c, "cashier_01").Finalize(ctx, checkout.FinalizeInput{
		PaymentMethod: checkout.MethodCash,
		AmountPaid:    &paid,
		Customer:      &checkout.Customer{Name: "Karima Begum"},
	})
	require.NoError(t, err)
	require.Equal(t, checkout.StatusDue, o.PaymentStatus)

	return store, payment.New(store), o.ID
}

// --- Tests ---------------------------------------------------------------

func TestApply_PartialThenSettled(t *testing.T) {
	store, uc, orderID := newDueOrder(t)
	ctx := context.Background()

	st, err := uc.Apply(ctx, orderID, dec("100"))
	require.NoError(t, err)
	requireDec(t, "300", st.AmountPaid)
	requireDec(t, "200", st.AmountDue)
	require.Equal(t, checkout.StatusDue, st.PaymentStatus)

	st, err = uc.Apply(ctx, orderID, dec("200"))
	require.NoError(t, err)
	requireDec(t, "500", st.AmountPaid)
	requireDec(t, "0", st.AmountDue)
	require.Equal(t, checkout.StatusPaid, st.PaymentStatus)

	// the persisted order changed only in its payment fields
	o, err := store.GetOrder(ctx, orderID)
	require.NoError(t, err)
	requireDec(t, "500", o.Total)
	requireDec(t, "500", o.AmountPaid)
	requireDec(t, "0", o.AmountDue)
	require.Equal(t, checkout.StatusPaid, o.PaymentStatus)
	requireDec(t, "500", o.AmountPaid.Add(o.AmountDue))
}

func TestApply_OverpaymentRejected(t *testing.T) {
	store, uc, orderID := newDueOrder(t) // due 300

	_, err := uc.Apply(context.Background(), orderID, dec("400"))
	require.ErrorIs(t, err, payment.ErrExcessPayment)

	// state untouched
	o, err := store.GetOrder(context.Background(), orderID)
	require.NoError(t, err)
	requireDec(t, "200", o.AmountPaid)
	requireDec(t, "300", o.AmountDue)
	require.Equal(t, checkout.StatusDue, o.PaymentStatus)
}

func TestApply_NonPositiveAmountRejected(t *testing.T) {
	_, uc, orderID := newDueOrder(t)
	ctx := context.Background()

	_, err := uc.Apply(ctx, orderID, decimal.Zero)
	require.ErrorIs(t, err, payment.ErrInvalidAmount)

	_, err = uc.Apply(ctx, orderID, dec("-50"))
	require.ErrorIs(t, err, payment.ErrInvalidAmount)
}

func TestApply_UnknownOrder(t *testing.T) {
	_, uc, _ := newDueOrder(t)

	_, err := uc.Apply(context.Background(), "ORD-nope", dec("10"))
	require.ErrorIs(t, err, checkout.ErrOrderNotFound)
}

func TestListDue(t *testing.T) {
	_, uc, orderID := newDueOrder(t)
	ctx := context.Background()

	due, err := uc.ListDue(ctx)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, orderID, due[0].ID)

	// settle it; the due list empties
	_, err = uc.Apply(ctx, orderID, dec("300"))
	require.NoError(t, err)

	due, err = uc.ListDue(ctx)
	require.NoError(t, err)
	require.Empty(t, due)
}
