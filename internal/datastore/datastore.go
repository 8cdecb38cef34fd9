// Package datastore owns the (products, orders, settings) triple: the single
// shared mutable state of the application. State lives in process memory and
// is mirrored to the persistence adapter on every mutation. Read failures at
// boot fall back to seed data; write failures are reported and the in-memory
// state stays the working truth for the session.
package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/sagfgh000/grocery/internal/seed"
	"github.com/sagfgh000/grocery/internal/storage"
	"github.com/sagfgh000/grocery/internal/usecase/catalog"
	"github.com/sagfgh000/grocery/internal/usecase/checkout"
	"github.com/sagfgh000/grocery/internal/usecase/settings"
)

// demo history shape when SEED_DEMO_DATA is on
const (
	demoDays    = 90
	demoRNGSeed = 42
)

type Options struct {
	ShopName     string
	ShopAddress  string
	SeedDemoData bool
}

// Store is handed to every usecase; they see it through their own narrow
// interfaces. The mutex makes each mutation a single unit of work, so a
// re-render or a double-submitted request can never observe half-updated
// state.
type Store struct {
	kv storage.KV

	mu       sync.Mutex
	products []catalog.Product
	orders   []checkout.Order // most-recent-first
	settings settings.Settings
	opts     Options
}

// Open loads the persisted state, seeding anything absent or undecodable.
func Open(ctx context.Context, kv storage.KV, opts Options) (*Store, error) {
	s := &Store{kv: kv, opts: opts}

	if !loadKey(ctx, kv, storage.KeyProducts, &s.products) {
		s.products = seed.Products()
	}
	if !loadKey(ctx, kv, storage.KeyOrders, &s.orders) {
		if opts.SeedDemoData {
			s.orders = seed.Orders(s.products, demoDays, demoRNGSeed)
		} else {
			s.orders = []checkout.Order{}
		}
	}
	if !loadKey(ctx, kv, storage.KeySettings, &s.settings) {
		s.settings = settings.Default(opts.ShopName, opts.ShopAddress)
	}

	return s, nil
}

func loadKey(ctx context.Context, kv storage.KV, key string, dst any) bool {
	data, found, err := kv.Load(ctx, key)
	if err != nil {
		log.Printf("load %s failed, falling back to seed: %v", key, err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("decode %s failed, falling back to seed: %v", key, err)
		return false
	}
	return true
}

// Flush writes the whole triple out, for shutdown.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, err := range []error{
		s.persist(ctx, storage.KeyProducts, s.products),
		s.persist(ctx, storage.KeyOrders, s.orders),
		s.persist(ctx, storage.KeySettings, s.settings),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// persist marshals and saves one key. Callers hold the mutex.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", storage.ErrWriteFailed, key, err)
	}
	return s.kv.Save(ctx, key, data)
}

// --- catalog.Store --------------------------------------------------------

func (s *Store) CreateProduct(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return s.persist(ctx, storage.KeyProducts, s.products)
}

func (s *Store) ListProducts(_ context.Context) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Product(nil), s.products...), nil
}

func (s *Store) GetProduct(_ context.Context, id string) (*catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (s *Store) UpdateProduct(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return s.persist(ctx, storage.KeyProducts, s.products)
		}
	}
	return catalog.ErrProductNotFound
}

// --- checkout.Store ---------------------------------------------------------

// CreateOrder appends the order and decrements stock for every line as one
// unit of work under the lock: stock for all lines is checked first, and
// only if every decrement fits is anything mutated, then both blobs are
// flushed. A line that would push stock negative rejects the whole order.
func (s *Store) CreateOrder(ctx context.Context, o *checkout.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := make(map[string]int, len(s.products))
	for i, p := range s.products {
		idx[p.ID] = i
	}

	for _, it := range o.Items {
		i, ok := idx[it.Product.ID]
		if !ok {
			return fmt.Errorf("%w: %s", catalog.ErrProductNotFound, it.Product.ID)
		}
		if s.products[i].StockQuantity.LessThan(it.Quantity) {
			return fmt.Errorf("%w: product=%s available=%s requested=%s",
				checkout.ErrInsufficientStock, it.Product.ID, s.products[i].StockQuantity, it.Quantity)
		}
	}

	for _, it := range o.Items {
		i := idx[it.Product.ID]
		s.products[i].StockQuantity = s.products[i].StockQuantity.Sub(it.Quantity)
	}
	s.orders = append([]checkout.Order{*o}, s.orders...)

	if err := s.persist(ctx, storage.KeyProducts, s.products); err != nil {
		return err
	}
	return s.persist(ctx, storage.KeyOrders, s.orders)
}

func (s *Store) ListOrders(_ context.Context) ([]checkout.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]checkout.Order(nil), s.orders...), nil
}

func (s *Store) GetOrder(_ context.Context, id string) (*checkout.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, checkout.ErrOrderNotFound
}

// --- payment.Store ----------------------------------------------------------

// UpdateOrderPayment runs apply on a copy of the order under the lock and
// commits the copy only when apply succeeds, making the read-modify-write
// atomic against a double-fired UI update.
func (s *Store) UpdateOrderPayment(ctx context.Context, orderID string, apply func(o *checkout.Order) error) (*checkout.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		cp := s.orders[i]
		if err := apply(&cp); err != nil {
			return nil, err
		}
		s.orders[i] = cp
		out := cp
		// a failed write is reported but the in-memory update stands
		return &out, s.persist(ctx, storage.KeyOrders, s.orders)
	}
	return nil, checkout.ErrOrderNotFound
}

func (s *Store) OrdersByStatus(_ context.Context, status string) ([]checkout.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]checkout.Order, 0)
	for _, o := range s.orders {
		if o.PaymentStatus == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// --- settings.Store ---------------------------------------------------------

func (s *Store) GetSettings(_ context.Context) (settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, v settings.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = v
	return s.persist(ctx, storage.KeySettings, s.settings)
}

// --- backup.Store -----------------------------------------------------------

func (s *Store) Snapshot(_ context.Context) ([]catalog.Product, []checkout.Order, settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Product(nil), s.products...),
		append([]checkout.Order(nil), s.orders...),
		s.settings, nil
}

// Replace swaps in a fully validated imported state.
func (s *Store) Replace(ctx context.Context, products []catalog.Product, orders []checkout.Order, v settings.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = products
	s.orders = orders
	s.settings = v

	for _, err := range []error{
		s.persist(ctx, storage.KeyProducts, s.products),
		s.persist(ctx, storage.KeyOrders, s.orders),
		s.persist(ctx, storage.KeySettings, s.settings),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// ClearAll wipes the persisted keys and resets memory to an empty state.
// The seed catalog comes back on the next boot.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{storage.KeyProducts, storage.KeyOrders, storage.KeySettings} {
		if err := s.kv.Clear(ctx, key); err != nil {
			return err
		}
	}
	s.products = []catalog.Product{}
	s.orders = []checkout.Order{}
	s.settings = settings.Default(s.opts.ShopName, s.opts.ShopAddress)
	return nil
}
