package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sagfgh000/grocery/internal/usecase/catalog"
)

var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrQuantityRequired  = errors.New("quantity must be entered for weight units")
)

// Line is one cart line. The product is embedded by value, so the line is a
// snapshot of the catalog entry at add time; edits to the catalog do not
// reach lines already in the cart, and at checkout the same values are
// frozen into the order.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Profit   decimal.Decimal `json:"profit"`
}

func newLine(p catalog.Product, qty decimal.Decimal) Line {
	return Line{
		Product:  p,
		Quantity: qty,
		Subtotal: qty.Mul(p.SellingPrice),
		Profit:   qty.Mul(p.SellingPrice.Sub(p.BuyingPrice)),
	}
}

// Catalog is the read side of the product store the cart validates against.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// Usecase is the working set for one in-progress sale. The mutex guards
// against rapid double-submission from the UI; there is no multi-user
// concurrency. Nothing here is persisted; the cart dies with the process
// or on checkout.
type Usecase struct {
	store Catalog

	mu    sync.Mutex
	lines []Line
}

func New(store Catalog) *Usecase {
	return &Usecase{store: store}
}

// AddItem puts one more unit of a pcs product in the cart, inserting the
// line at quantity 1 when absent. Weight units (kg/g) are not meaningfully
// incremented by one, so they must go through EnterQuantity instead.
func (u *Usecase) AddItem(ctx context.Context, productID string) error {
	p, err := u.store.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if p.FractionalUnit() {
		return ErrQuantityRequired
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for i, l := range u.lines {
		if l.Product.ID == productID {
			u.lines[i] = newLine(l.Product, l.Quantity.Add(decimal.NewFromInt(1)))
			return nil
		}
	}
	u.lines = append(u.lines, newLine(*p, decimal.NewFromInt(1)))
	return nil
}

// SetQuantity updates or inserts a line. A non-positive quantity removes the
// line. The quantity is validated against the catalog stock at the moment of
// entry, a soft check with no reservation semantics.
func (u *Usecase) SetQuantity(ctx context.Context, productID string, qty decimal.Decimal) error {
	if qty.LessThanOrEqual(decimal.Zero) {
		u.RemoveItem(productID)
		return nil
	}

	p, err := u.store.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if p.Unit == catalog.UnitPcs && !qty.IsInteger() {
		return fmt.Errorf("%w: %s is sold by the piece", ErrInvalidQuantity, p.NameEN)
	}
	if qty.GreaterThan(p.StockQuantity) {
		return fmt.Errorf("%w: product=%s available=%s requested=%s",
			ErrInsufficientStock, p.ID, p.StockQuantity, qty)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for i, l := range u.lines {
		if l.Product.ID == productID {
			u.lines[i] = newLine(l.Product, qty)
			return nil
		}
	}
	u.lines = append(u.lines, newLine(*p, qty))
	return nil
}

// EnterQuantity applies the quantity-editor policy: raw operator input,
// including preset shortcuts such as "250g" or "1kg", normalized into the
// product's declared unit. Unparseable or non-positive input removes the
// line rather than erroring.
func (u *Usecase) EnterQuantity(ctx context.Context, productID, raw string) error {
	p, err := u.store.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	return u.SetQuantity(ctx, productID, ParseQuantity(raw, p.Unit))
}

// RemoveItem is unconditional and idempotent: removing an absent line is a
// no-op.
func (u *Usecase) RemoveItem(productID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i, l := range u.lines {
		if l.Product.ID == productID {
			u.lines = append(u.lines[:i], u.lines[i+1:]...)
			return
		}
	}
}

// Snapshot returns a copy of the current lines.
func (u *Usecase) Snapshot() []Line {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Line(nil), u.lines...)
}

func (u *Usecase) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lines = nil
}

// View is the cart as the till renders it. Total equals subtotal: no tax is
// applied at checkout.
type View struct {
	Items       []Line          `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

func (u *Usecase) View() View {
	lines := u.Snapshot()
	subtotal, profit := Totals(lines)
	return View{
		Items:       lines,
		Subtotal:    subtotal,
		Total:       subtotal,
		TotalProfit: profit,
	}
}

// Totals sums line subtotals and profits.
func Totals(lines []Line) (subtotal, profit decimal.Decimal) {
	subtotal, profit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal)
		profit = profit.Add(l.Profit)
	}
	return subtotal, profit
}
