package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sagfgh000/grocery/internal/usecase/checkout"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrOrderNotFound = errors.New("order not found")
	ErrExcessPayment = errors.New("payment exceeds amount due")
)

// State is the order's payment position after a reconciliation.
type State struct {
	OrderID       string          `json:"orderId"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	PaymentStatus string          `json:"paymentStatus"`
}

// Store gives the usecase an atomic read-modify-write over one order, so a
// double-fired update from the UI cannot lose an increment. The callback
// runs under the store's lock; returning an error leaves the order as it
// was.
type Store interface {
	UpdateOrderPayment(ctx context.Context, orderID string, apply func(o *checkout.Order) error) (*checkout.Order, error)
	OrdersByStatus(ctx context.Context, status string) ([]checkout.Order, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// Apply records an incremental payment against a due order. amountPaid only
// ever grows; an increment larger than the outstanding due is rejected, so
// amountDue can never go negative and amountPaid + amountDue == total holds
// exactly. This is the only mutation path for a persisted order.
func (u *Usecase) Apply(ctx context.Context, orderID string, amount decimal.Decimal) (*State, error) {
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	o, err := u.store.UpdateOrderPayment(ctx, orderID, func(o *checkout.Order) error {
		if amount.GreaterThan(o.AmountDue) {
			return fmt.Errorf("%w: due=%s offered=%s", ErrExcessPayment, o.AmountDue, amount)
		}
		o.AmountPaid = o.AmountPaid.Add(amount)
		o.AmountDue = o.Total.Sub(o.AmountPaid)
		if o.AmountDue.LessThanOrEqual(decimal.Zero) {
			o.PaymentStatus = checkout.StatusPaid
		} else {
			o.PaymentStatus = checkout.StatusDue
		}
		return nil
	})
	if o == nil {
		return nil, err
	}

	// err may still carry a storage write failure; the reconciled state is
	// the working truth either way
	return &State{
		OrderID:       o.ID,
		Total:         o.Total,
		AmountPaid:    o.AmountPaid,
		AmountDue:     o.AmountDue,
		PaymentStatus: o.PaymentStatus,
	}, err
}

// ListDue returns the orders still owing, for the collections view.
func (u *Usecase) ListDue(ctx context.Context) ([]checkout.Order, error) {
	return u.store.OrdersByStatus(ctx, checkout.StatusDue)
}
