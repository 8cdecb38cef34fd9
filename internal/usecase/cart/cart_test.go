package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sagfgh000/grocery/internal/usecase/catalog"
)

// --- Helpers -------------------------------------------------------------

type fakeCatalog struct {
	products map[string]catalog.Product
}

func (f *fakeCatalog) GetProduct(_ context.Context, id string) (*catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	cp := p
	return &cp, nil
}

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

func testProducts() map[string]catalog.Product {
	return map[string]catalog.Product{
		"prod_milk": {
			ID: "prod_milk", NameEN: "Whole Milk", Unit: catalog.UnitPcs,
			StockQuantity: dec("50"), SellingPrice: dec("120"), BuyingPrice: dec("90"),
			Category: "Dairy", LowStockThreshold: dec("5"),
		},
		"prod_apple": {
			ID: "prod_apple", NameEN: "Fresh Apples", Unit: catalog.UnitKg,
			StockQuantity: dec("100"), SellingPrice: dec("250"), BuyingPrice: dec("180"),
			Category: "Fruits", LowStockThreshold: dec("10"),
		},
	}
}

func newTestCart() (*Usecase, *fakeCatalog) {
	store := &fakeCatalog{products: testProducts()}
	return New(store), store
}

// --- Tests ---------------------------------------------------------------

func TestCart_AddItem_PcsIncrements(t *testing.T) {
	u, _ := newTestCart()
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "prod_milk"))
	require.NoError(t, u.AddItem(ctx, "prod_milk"))

	lines := u.Snapshot()
	require.Len(t, lines, 1)
	requireDec(t, "2", lines[0].Quantity)
	requireDec(t, "240", lines[0].Subtotal)   // 2 * 120
	requireDec(t, "60", lines[0].Profit)      // 2 * (120 - 90)
}

func TestCart_AddItem_WeightUnitNeedsExplicitQuantity(t *testing.T) {
	u, _ := newTestCart()

	err := u.AddItem(context.Background(), "prod_apple")
	require.ErrorIs(t, err, ErrQuantityRequired)
	require.Empty(t, u.Snapshot())
}

func TestCart_AddItem_UnknownProduct(t *testing.T) {
	u, _ := newTestCart()

	err := u.AddItem(context.Background(), "prod_nope")
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCart_SetQuantity_LineMath(t *testing.T) {
	u, _ := newTestCart()
	ctx := context.Background()

	require.NoError(t, u.SetQuantity(ctx, "prod_apple", dec("1.5")))

	lines := u.Snapshot()
	require.Len(t, lines, 1)
	requireDec(t, "375", lines[0].Subtotal) // 1.5 * 250
	requireDec(t, "105", lines[0].Profit)   // 1.5 * (250 - 180)
}

func TestCart_SetQuantity_NonPositiveRemoves(t *testing.T) {
	u, _ := newTestCart()
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "prod_milk"))
	require.NoError(t, u.SetQuantity(ctx, "prod_milk", decimal.Zero))
	require.Empty(t, u.Snapshot())
}

func TestCart_SetQuantity_InsufficientStock(t *testing.T) {
	u, _ := newTestCart()
	ctx := context.Background()

	err := u.SetQuantity(ctx, "prod_milk", dec("51"))
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Empty(t, u.Snapshot(), "rejected entry must not change the cart")
}

func TestCart_SetQuantity_FractionalPcsRejected(t *testing.T) {
	u, _ := newTestCart()

	err := u.SetQuantity(context.Background(), "prod_milk", dec("1.5"))
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCart_RemoveItem_Idempotent(t *testing.T) {
	u, _ := newTestCart()
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "prod_milk"))
	u.RemoveItem("prod_milk")
	require.Empty(t, u.Snapshot())

	// removing again is a no-op, not an error
	u.RemoveItem("prod_milk")
	u.RemoveItem("prod_never_existed")
	require.Empty(t, u.Snapshot())
}

func TestCart_Aggregates(t *testing.T) {
	u, _ := newTestCart()
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "prod_milk"))                      // 120 / profit 30
	require.NoError(t, u.SetQuantity(ctx, "prod_apple", dec("2")))      // 500 / profit 140

	v := u.View()
	requireDec(t, "620", v.Subtotal)
	requireDec(t, "620", v.Total) // no tax: total == subtotal
	requireDec(t, "170", v.TotalProfit)
}

func TestCart_EnterQuantity_InvalidInputRemovesLine(t *testing.T) {
	u, _ := newTestCart()
	ctx := context.Background()

	require.NoError(t, u.SetQuantity(ctx, "prod_apple", dec("1")))
	require.NoError(t, u.EnterQuantity(ctx, "prod_apple", "not-a-number"))
	require.Empty(t, u.Snapshot())
}

func TestCart_EnterQuantity_Preset(t *testing.T) {
	u, _ := newTestCart()
	ctx := context.Background()

	require.NoError(t, u.EnterQuantity(ctx, "prod_apple", "250g"))

	lines := u.Snapshot()
	require.Len(t, lines, 1)
	requireDec(t, "0.25", lines[0].Quantity)
	requireDec(t, "62.5", lines[0].Subtotal) // 0.25 * 250
}

func TestCart_Clear(t *testing.T) {
	u, _ := newTestCart()

	require.NoError(t, u.AddItem(context.Background(), "prod_milk"))
	u.Clear()
	require.Empty(t, u.Snapshot())
}
