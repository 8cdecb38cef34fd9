// Package seed supplies the bootstrap catalog and a deterministic sample
// order history for demo and empty-state purposes. It is a bootstrapping
// collaborator only; nothing here participates in core correctness.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sagfgh000/grocery/internal/usecase/cart"
	"github.com/sagfgh000/grocery/internal/usecase/catalog"
	"github.com/sagfgh000/grocery/internal/usecase/checkout"
)

func num(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Products is the initial catalog a fresh install starts from.
func Products() []catalog.Product {
	return []catalog.Product{
		{ID: "prod_001", NameEN: "Fresh Apples", NameBN: "তাজা আপেল", SKU: "FRT-APL-01", Unit: catalog.UnitKg,
			StockQuantity: num(100), SellingPrice: num(250), BuyingPrice: num(180), Category: "Fruits", LowStockThreshold: num(10)},
		{ID: "prod_002", NameEN: "Whole Milk", NameBN: "পূর্ণ দুধ", SKU: "DRY-MLK-01", Unit: catalog.UnitPcs,
			StockQuantity: num(50), SellingPrice: num(120), BuyingPrice: num(90), Category: "Dairy", LowStockThreshold: num(5)},
		{ID: "prod_003", NameEN: "Brown Bread", NameBN: "বাদামী রুটি", SKU: "BKY-BRD-01", Unit: catalog.UnitPcs,
			StockQuantity: num(30), SellingPrice: num(80), BuyingPrice: num(50), Category: "Bakery", LowStockThreshold: num(6)},
		{ID: "prod_004", NameEN: "Chicken Breast", NameBN: "মুরগির বুকের মাংস", SKU: "MT-CKN-01", Unit: catalog.UnitKg,
			StockQuantity: num(25), SellingPrice: num(450), BuyingPrice: num(350), Category: "Meat", LowStockThreshold: num(5)},
		{ID: "prod_005", NameEN: "Carrots", NameBN: "গাজর", SKU: "VEG-CRT-01", Unit: catalog.UnitKg,
			StockQuantity: num(80), SellingPrice: num(60), BuyingPrice: num(40), Category: "Vegetables", LowStockThreshold: num(15)},
		{ID: "prod_006", NameEN: "Organic Eggs", NameBN: "জৈব ডিম", SKU: "DRY-EGG-01", Unit: catalog.UnitPcs,
			StockQuantity: num(60), SellingPrice: num(15), BuyingPrice: num(10), Category: "Dairy", LowStockThreshold: num(12)},
		{ID: "prod_007", NameEN: "Lentils", NameBN: "মসুর ডাল", SKU: "GRN-LNT-01", Unit: catalog.UnitKg,
			StockQuantity: num(200), SellingPrice: num(140), BuyingPrice: num(110), Category: "Grains", LowStockThreshold: num(20)},
		{ID: "prod_008", NameEN: "Olive Oil", NameBN: "জলপাই তেল", SKU: "OIL-OLV-01", Unit: catalog.UnitPcs,
			StockQuantity: num(40), SellingPrice: num(900), BuyingPrice: num(750), Category: "Pantry", LowStockThreshold: num(8)},
	}
}

// Orders generates a sample order history covering the given number of days
// back from now, 2–6 orders per day, roughly one in five left partially
// paid. The same rng seed always produces the same history. Sample orders
// obey the same arithmetic as real ones: no tax, amountPaid + amountDue ==
// total. Newest first.
func Orders(products []catalog.Product, days int, rngSeed int64) []checkout.Order {
	rng := rand.New(rand.NewSource(rngSeed))
	methods := []string{checkout.MethodCash, checkout.MethodCard, checkout.MethodMobilePay}
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var out []checkout.Order
	id := 1
	for d := days; d >= 0; d-- {
		day := today.AddDate(0, 0, -d)
		n := rng.Intn(5) + 2
		for j := 0; j < n; j++ {
			// hourly slots keep timestamps monotonic within the day, so the
			// reversed list is strictly newest-first
			createdAt := day.Add(time.Duration(8+j) * time.Hour)
			out = append(out, randomOrder(rng, id, createdAt, products, methods))
			id++
		}
	}

	// newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func randomOrder(rng *rand.Rand, id int, createdAt time.Time, products []catalog.Product, methods []string) checkout.Order {
	numItems := rng.Intn(5) + 1
	items := make([]cart.Line, 0, numItems)
	subtotal, profit := decimal.Zero, decimal.Zero

	for i := 0; i < numItems; i++ {
		p := products[rng.Intn(len(products))]

		var qty decimal.Decimal
		if p.Unit == catalog.UnitPcs {
			qty = decimal.NewFromInt(int64(rng.Intn(5) + 1))
		} else {
			qty = decimal.NewFromFloat(rng.Float64()*2 + 0.5).Round(2)
		}

		line := cart.Line{
			Product:  p,
			Quantity: qty,
			Subtotal: qty.Mul(p.SellingPrice),
			Profit:   qty.Mul(p.SellingPrice.Sub(p.BuyingPrice)),
		}
		items = append(items, line)
		subtotal = subtotal.Add(line.Subtotal)
		profit = profit.Add(line.Profit)
	}

	total := subtotal
	isDue := rng.Float64() > 0.8
	amountPaid := total
	if isDue {
		amountPaid = total.Mul(decimal.NewFromFloat(rng.Float64()*0.5 + 0.2)).Round(2)
	}
	amountDue := total.Sub(amountPaid)

	status := checkout.StatusPaid
	if amountDue.IsPositive() {
		status = checkout.StatusDue
	}

	return checkout.Order{
		ID:            fmt.Sprintf("ORD-%03d", id),
		Items:         items,
		Subtotal:      subtotal,
		Discount:      decimal.Zero,
		Total:         total,
		TotalProfit:   profit,
		PaymentMethod: methods[rng.Intn(len(methods))],
		CashierID:     fmt.Sprintf("cashier_0%d", rng.Intn(2)+1),
		CreatedAt:     createdAt,
		PaymentStatus: status,
		AmountPaid:    amountPaid,
		AmountDue:     amountDue,
		Customer: &checkout.Customer{
			ID:   fmt.Sprintf("CUST-00%d", rng.Intn(5)+1),
			Name: "Walking Customer",
		},
	}
}
