package settings

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// Settings is the shop identity shown on receipts and the dashboard.
type Settings struct {
	ShopName    string `json:"shopName"`
	ShopAddress string `json:"shopAddress"`
	Currency    string `json:"currency"`
}

func Default(shopName, shopAddress string) Settings {
	return Settings{
		ShopName:    shopName,
		ShopAddress: shopAddress,
		Currency:    "BDT",
	}
}

type Store interface {
	GetSettings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Get(ctx context.Context) (Settings, error) {
	return u.store.GetSettings(ctx)
}

type UpdateInput struct {
	ShopName    *string `json:"shopName"`
	ShopAddress *string `json:"shopAddress"`
	Currency    *string `json:"currency"`
}

func (u *Usecase) Update(ctx context.Context, in UpdateInput) (Settings, error) {
	s, err := u.store.GetSettings(ctx)
	if err != nil {
		return Settings{}, err
	}
	if in.ShopName != nil {
		if strings.TrimSpace(*in.ShopName) == "" {
			return Settings{}, ErrInvalidInput
		}
		s.ShopName = strings.TrimSpace(*in.ShopName)
	}
	if in.ShopAddress != nil {
		s.ShopAddress = strings.TrimSpace(*in.ShopAddress)
	}
	if in.Currency != nil {
		if strings.TrimSpace(*in.Currency) == "" {
			return Settings{}, ErrInvalidInput
		}
		s.Currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
	}
	if err := u.store.SaveSettings(ctx, s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
