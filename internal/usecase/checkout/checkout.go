package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sagfgh000/grocery/internal/storage"
	"github.com/sagfgh000/grocery/internal/usecase/cart"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingCustomer   = errors.New("customer name required for due order")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
)

// Payment methods.
const (
	MethodCash      = "cash"
	MethodCard      = "card"
	MethodMobilePay = "mobile-pay"
)

// Payment lifecycle. An order is due until its amountDue reaches zero,
// after which it is paid forever.
const (
	StatusPaid = "paid"
	StatusDue  = "due"
)

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order is immutable once created except for amountPaid, amountDue and
// paymentStatus, which only payment reconciliation may touch. Items are the
// cart lines frozen by value at checkout: later catalog edits never distort
// historical receipts.
//
// Invariant: amountPaid + amountDue == total, always.
type Order struct {
	ID            string          `json:"id"`
	Items         []cart.Line     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"` // reserved, always zero
	Total         decimal.Decimal `json:"total"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	PaymentMethod string          `json:"paymentMethod"`
	CashierID     string          `json:"cashierId"`
	CreatedAt     time.Time       `json:"createdAt"`
	PaymentStatus string          `json:"paymentStatus"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	Customer      *Customer       `json:"customer,omitempty"`
}

// Cart is the in-progress sale the engine finalizes. The engine clears it
// only after the order has been committed.
type Cart interface {
	Snapshot() []cart.Line
	Clear()
}

// Store persists orders and applies the paired stock decrement.
// CreateOrder must treat the order append and every item's stock decrement
// as one unit of work: either all of it becomes visible or none of it, and
// a decrement that would push stock below zero rejects the whole order with
// ErrInsufficientStock.
type Store interface {
	CreateOrder(ctx context.Context, o *Order) error
	ListOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
}

type Usecase struct {
	store     Store
	cart      Cart
	cashierID string

	// serializes Finalize end to end; the cart and datastore locks each
	// cover only one step, so without this a double-fired checkout could
	// snapshot the same cart twice and ring the sale up twice
	mu sync.Mutex
}

func New(store Store, c Cart, cashierID string) *Usecase {
	return &Usecase{store: store, cart: c, cashierID: cashierID}
}

type FinalizeInput struct {
	PaymentMethod string           `json:"paymentMethod"`
	AmountPaid    *decimal.Decimal `json:"amountPaid"` // nil means settled in full
	Customer      *Customer        `json:"customer"`
}

// Finalize converts the current cart into a persisted order and decrements
// stock, as one synchronous unit of work. On any error nothing has changed:
// the cart is intact, no order exists, stock is untouched.
func (u *Usecase) Finalize(ctx context.Context, in FinalizeInput) (*Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	lines := u.cart.Snapshot()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if !isValidMethod(in.PaymentMethod) {
		return nil, ErrInvalidInput
	}

	subtotal, profit := cart.Totals(lines)
	total := subtotal // no tax; total is the plain sum of line subtotals

	amountPaid := total
	if in.AmountPaid != nil {
		amountPaid = *in.AmountPaid
	}
	if amountPaid.IsNegative() || amountPaid.GreaterThan(total) {
		return nil, ErrInvalidInput
	}
	amountDue := total.Sub(amountPaid)

	status := StatusPaid
	if amountDue.IsPositive() {
		status = StatusDue
		// the workflow asks for the customer before calling us, but the
		// engine refuses on its own as well
		if in.Customer == nil || strings.TrimSpace(in.Customer.Name) == "" {
			return nil, ErrMissingCustomer
		}
	}

	var customer *Customer
	if in.Customer != nil && strings.TrimSpace(in.Customer.Name) != "" {
		c := *in.Customer
		c.Name = strings.TrimSpace(c.Name)
		if c.ID == "" {
			c.ID = "cust_" + uuid.NewString()[:8]
		}
		customer = &c
	}

	now := time.Now().UTC()
	o := Order{
		ID:            newOrderID(now),
		Items:         lines,
		Subtotal:      subtotal,
		Discount:      decimal.Zero,
		Total:         total,
		TotalProfit:   profit,
		PaymentMethod: in.PaymentMethod,
		CashierID:     u.cashierID,
		CreatedAt:     now,
		PaymentStatus: status,
		AmountPaid:    amountPaid,
		AmountDue:     amountDue,
		Customer:      customer,
	}

	if err := u.store.CreateOrder(ctx, &o); err != nil {
		if errors.Is(err, storage.ErrWriteFailed) {
			// the order exists in memory and stock is decremented; the
			// failed mirror write is reported, not retried
			u.cart.Clear()
			return &o, err
		}
		return nil, err
	}

	u.cart.Clear()
	return &o, nil
}

func (u *Usecase) List(ctx context.Context) ([]Order, error) {
	return u.store.ListOrders(ctx)
}

func (u *Usecase) Get(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetOrder(ctx, id)
}

// newOrderID is time-derived so ids sort roughly by creation, with a uuid
// fragment for uniqueness beyond one session.
func newOrderID(t time.Time) string {
	return "ORD-" + t.Format("20060102150405") + "-" + uuid.NewString()[:8]
}

func isValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodMobilePay:
		return true
	default:
		return false
	}
}
