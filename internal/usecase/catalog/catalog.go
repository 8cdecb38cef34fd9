package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProductNotFound = errors.New("product not found")
)

// Measurement units. Unit decides whether quantities are integral (pcs) or
// fractional (kg, g).
const (
	UnitKg  = "kg"
	UnitG   = "g"
	UnitPcs = "pcs"
)

// Stock status labels derived from low_stock_threshold. Display-only; never
// a hard constraint.
const (
	StockInStock    = "in-stock"
	StockLow        = "low-stock"
	StockOutOfStock = "out-of-stock"
)

type Product struct {
	ID                string          `json:"id"`
	NameEN            string          `json:"name_en"`
	NameBN            string          `json:"name_bn"`
	SKU               string          `json:"sku"`
	Unit              string          `json:"unit"`
	StockQuantity     decimal.Decimal `json:"stock_quantity"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	BuyingPrice       decimal.Decimal `json:"buying_price"`
	Category          string          `json:"category"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	ImageURL          string          `json:"imageUrl,omitempty"`
}

// StockStatus labels the product for the inventory table.
func (p Product) StockStatus() string {
	if p.StockQuantity.LessThanOrEqual(decimal.Zero) {
		return StockOutOfStock
	}
	if p.StockQuantity.LessThanOrEqual(p.LowStockThreshold) {
		return StockLow
	}
	return StockInStock
}

// FractionalUnit reports whether quantities of this product may be decimal.
func (p Product) FractionalUnit() bool {
	return p.Unit == UnitKg || p.Unit == UnitG
}

type Store interface {
	CreateProduct(ctx context.Context, p Product) error
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	UpdateProduct(ctx context.Context, p Product) error
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

type CreateInput struct {
	NameEN            string          `json:"name_en"`
	NameBN            string          `json:"name_bn"`
	SKU               string          `json:"sku"`
	Unit              string          `json:"unit"`
	StockQuantity     decimal.Decimal `json:"stock_quantity"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	BuyingPrice       decimal.Decimal `json:"buying_price"`
	Category          string          `json:"category"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	ImageURL          string          `json:"imageUrl"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*Product, error) {
	if strings.TrimSpace(in.NameEN) == "" {
		return nil, ErrInvalidInput
	}
	if !isValidUnit(in.Unit) {
		return nil, ErrInvalidInput
	}
	if in.SellingPrice.IsNegative() || in.BuyingPrice.IsNegative() {
		return nil, ErrInvalidInput
	}
	if in.StockQuantity.IsNegative() || in.LowStockThreshold.IsNegative() {
		return nil, ErrInvalidInput
	}
	if in.Unit == UnitPcs && !in.StockQuantity.IsInteger() {
		return nil, ErrInvalidInput
	}

	p := Product{
		ID:                "prod_" + uuid.NewString()[:8],
		NameEN:            strings.TrimSpace(in.NameEN),
		NameBN:            strings.TrimSpace(in.NameBN),
		SKU:               strings.TrimSpace(in.SKU),
		Unit:              in.Unit,
		StockQuantity:     in.StockQuantity,
		SellingPrice:      in.SellingPrice,
		BuyingPrice:       in.BuyingPrice,
		Category:          strings.TrimSpace(in.Category),
		LowStockThreshold: in.LowStockThreshold,
		ImageURL:          in.ImageURL,
	}
	if err := u.store.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

type ListInput struct {
	Search   string
	Category string
}

// List filters over both locale names plus SKU, the way the POS search box
// matches. Products are never deleted, so no active flag exists.
func (u *Usecase) List(ctx context.Context, in ListInput) ([]Product, error) {
	all, err := u.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if in.Search == "" && in.Category == "" {
		return all, nil
	}

	q := strings.ToLower(in.Search)
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if in.Category != "" && !strings.EqualFold(p.Category, in.Category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.NameEN), q) &&
			!strings.Contains(strings.ToLower(p.NameBN), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetProduct(ctx, id)
}

type UpdateInput struct {
	NameEN            *string          `json:"name_en"`
	NameBN            *string          `json:"name_bn"`
	SKU               *string          `json:"sku"`
	StockQuantity     *decimal.Decimal `json:"stock_quantity"`
	SellingPrice      *decimal.Decimal `json:"selling_price"`
	BuyingPrice       *decimal.Decimal `json:"buying_price"`
	Category          *string          `json:"category"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold"`
	ImageURL          *string          `json:"imageUrl"`
}

// Update edits catalog fields. Stock edits are allowed here without any
// floor check: the non-negative invariant is enforced at order time, not at
// edit time. The unit is fixed at creation.
func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) (*Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	p, err := u.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.NameEN != nil {
		if strings.TrimSpace(*in.NameEN) == "" {
			return nil, ErrInvalidInput
		}
		p.NameEN = strings.TrimSpace(*in.NameEN)
	}
	if in.NameBN != nil {
		p.NameBN = strings.TrimSpace(*in.NameBN)
	}
	if in.SKU != nil {
		p.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.StockQuantity != nil {
		if in.StockQuantity.IsNegative() {
			return nil, ErrInvalidInput
		}
		p.StockQuantity = *in.StockQuantity
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, ErrInvalidInput
		}
		p.SellingPrice = *in.SellingPrice
	}
	if in.BuyingPrice != nil {
		if in.BuyingPrice.IsNegative() {
			return nil, ErrInvalidInput
		}
		p.BuyingPrice = *in.BuyingPrice
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.LowStockThreshold != nil {
		if in.LowStockThreshold.IsNegative() {
			return nil, ErrInvalidInput
		}
		p.LowStockThreshold = *in.LowStockThreshold
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}

	if err := u.store.UpdateProduct(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

func isValidUnit(u string) bool {
	switch u {
	case UnitKg, UnitG, UnitPcs:
		return true
	default:
		return false
	}
}
