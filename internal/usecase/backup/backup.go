package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sagfgh000/grocery/internal/usecase/catalog"
	"github.com/sagfgh000/grocery/internal/usecase/checkout"
	"github.com/sagfgh000/grocery/internal/usecase/settings"
)

var ErrInvalidBackup = errors.New("invalid backup file")

// Version is bumped whenever the envelope layout changes; imports of a
// different version are rejected outright.
const Version = 1

// Envelope is the full application state as one backup document.
type Envelope struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exportedAt"`
	Products   []catalog.Product `json:"products"`
	Orders     []checkout.Order  `json:"orders"`
	Settings   settings.Settings `json:"settings"`
}

type Store interface {
	Snapshot(ctx context.Context) ([]catalog.Product, []checkout.Order, settings.Settings, error)
	Replace(ctx context.Context, products []catalog.Product, orders []checkout.Order, s settings.Settings) error
	ClearAll(ctx context.Context) error
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Export(ctx context.Context) (*Envelope, error) {
	products, orders, s, err := u.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Version:    Version,
		ExportedAt: time.Now().UTC(),
		Products:   products,
		Orders:     orders,
		Settings:   s,
	}, nil
}

// Import validates the envelope and atomically replaces the whole state.
// On any validation failure the current state is untouched. This is not a
// loose structural check: every product and order must carry its required
// fields and every order must satisfy the payment invariant.
func (u *Usecase) Import(ctx context.Context, raw []byte) error {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if env.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidBackup, env.Version)
	}

	for i, p := range env.Products {
		if err := validateProduct(p); err != nil {
			return fmt.Errorf("%w: products[%d]: %v", ErrInvalidBackup, i, err)
		}
	}
	for i, o := range env.Orders {
		if err := validateOrder(o); err != nil {
			return fmt.Errorf("%w: orders[%d]: %v", ErrInvalidBackup, i, err)
		}
	}
	if err := validateSettings(env.Settings); err != nil {
		return fmt.Errorf("%w: settings: %v", ErrInvalidBackup, err)
	}

	return u.store.Replace(ctx, env.Products, env.Orders, env.Settings)
}

// Clear is the global data-wipe: all products, orders and settings go.
func (u *Usecase) Clear(ctx context.Context) error {
	return u.store.ClearAll(ctx)
}

func validateProduct(p catalog.Product) error {
	if p.ID == "" || p.NameEN == "" {
		return errors.New("missing id or name")
	}
	switch p.Unit {
	case catalog.UnitKg, catalog.UnitG, catalog.UnitPcs:
	default:
		return fmt.Errorf("unknown unit %q", p.Unit)
	}
	if p.SellingPrice.IsNegative() || p.BuyingPrice.IsNegative() {
		return errors.New("negative price")
	}
	if p.StockQuantity.IsNegative() {
		return errors.New("negative stock")
	}
	return nil
}

// The settings usecase rejects blank names and currencies on edit; an import
// must not smuggle them in either.
func validateSettings(s settings.Settings) error {
	if strings.TrimSpace(s.ShopName) == "" {
		return errors.New("missing shop name")
	}
	if strings.TrimSpace(s.Currency) == "" {
		return errors.New("missing currency")
	}
	return nil
}

func validateOrder(o checkout.Order) error {
	if o.ID == "" {
		return errors.New("missing id")
	}
	if len(o.Items) == 0 {
		return errors.New("no items")
	}
	switch o.PaymentStatus {
	case checkout.StatusPaid, checkout.StatusDue:
	default:
		return fmt.Errorf("unknown payment status %q", o.PaymentStatus)
	}
	if !o.AmountPaid.Add(o.AmountDue).Equal(o.Total) {
		return errors.New("amountPaid + amountDue != total")
	}
	if o.PaymentStatus == checkout.StatusPaid && o.AmountDue.IsPositive() {
		return errors.New("paid order still owes")
	}
	if o.PaymentStatus == checkout.StatusDue && !o.AmountDue.IsPositive() {
		return errors.New("due order owes nothing")
	}
	if o.CreatedAt.IsZero() {
		return errors.New("missing createdAt")
	}
	return nil
}
