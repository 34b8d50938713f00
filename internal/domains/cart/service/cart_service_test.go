package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"cozastore-backend/internal/domains/cart/model"
	productmodel "cozastore-backend/internal/domains/product/model"
)

// memoryCartRepo mirrors the postgres repository's contract, including the
// atomicity of IncrementQuantity, with a mutex instead of an upsert.
type memoryCartRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.CartItem
	seq   int
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{items: make(map[uuid.UUID]*model.CartItem)}
}

func (r *memoryCartRepo) ListByUser(_ context.Context, userID string) ([]model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.Before(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *memoryCartRepo) FindByUserAndProduct(_ context.Context, userID string, productID uuid.UUID) (*model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			copy := *item
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *memoryCartRepo) IncrementQuantity(_ context.Context, userID string, productID uuid.UUID, delta int) (*model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			item.Quantity += delta
			item.UpdatedAt = time.Now()
			copy := *item
			return &copy, nil
		}
	}

	r.seq++
	now := time.Now().Add(time.Duration(r.seq) * time.Microsecond)
	item := &model.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  delta,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items[item.ID] = item
	copy := *item
	return &copy, nil
}

func (r *memoryCartRepo) SetQuantity(_ context.Context, id uuid.UUID, userID string, quantity int) (*model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return nil, model.ErrLineNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	copy := *item
	return &copy, nil
}

func (r *memoryCartRepo) Remove(_ context.Context, id uuid.UUID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return model.ErrLineNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryCartRepo) ClearByUser(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

// fakeCatalog backs ProductReader with a mutable product map so tests can
// delete or deactivate products after lines reference them.
type fakeCatalog struct {
	mu       sync.Mutex
	products map[uuid.UUID]productmodel.Product
	errs     map[uuid.UUID]error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: make(map[uuid.UUID]productmodel.Product),
		errs:     make(map[uuid.UUID]error),
	}
}

func (f *fakeCatalog) add(name, price string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := uuid.New()
	f.products[id] = productmodel.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		IsActive: true,
	}
	return id
}

func (f *fakeCatalog) remove(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
}

func (f *fakeCatalog) deactivate(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.products[id]
	p.IsActive = false
	f.products[id] = p
}

func (f *fakeCatalog) failWith(id uuid.UUID, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[id] = err
}

func (f *fakeCatalog) GetByID(_ context.Context, id uuid.UUID) (*productmodel.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.errs[id]; ok {
		return nil, err
	}

	p, ok := f.products[id]
	if !ok {
		return nil, productmodel.ErrProductNotFound
	}
	return &p, nil
}

func setup() (ServiceInterface, *memoryCartRepo, *fakeCatalog) {
	repo := newMemoryCartRepo()
	catalog := newFakeCatalog()
	return NewCartService(repo, catalog), repo, catalog
}

const userID = "user-1"

func TestAddToCartAccumulates(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	item, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	snapshot, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 5, snapshot.Items[0].Quantity)
	assert.True(t, snapshot.Total.Equal(decimal.RequireFromString("83.20")),
		"expected 83.20, got %s", snapshot.Total)
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	for _, qty := range []int{0, -1} {
		_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: qty})
		assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	}

	snapshot, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestAddToCartInactiveProduct(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")
	catalog.deactivate(productID)

	_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestUpdateQuantityReplaces(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	added, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 4})
	require.NoError(t, err)

	item, err := svc.UpdateQuantity(context.Background(), userID, added.ID, model.UpdateQuantityRequest{Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.UpdateQuantity(context.Background(), userID, uuid.New(), model.UpdateQuantityRequest{Quantity: 2})
	assert.ErrorIs(t, err, model.ErrLineNotFound)
}

func TestUpdateQuantityInvalid(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	added, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 4})
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(context.Background(), userID, added.ID, model.UpdateQuantityRequest{Quantity: 0})
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	snapshot, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 4, snapshot.Items[0].Quantity)
}

func TestRemoveLine(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	added, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), userID, added.ID))
	assert.ErrorIs(t, svc.Remove(context.Background(), userID, added.ID), model.ErrLineNotFound)
}

func TestRemoveOtherUsersLine(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	added, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(context.Background(), "user-2", added.ID), model.ErrLineNotFound)
}

func TestClearCart(t *testing.T) {
	svc, _, catalog := setup()
	first := catalog.add("Esprit Ruffle Shirt", "16.64")
	second := catalog.add("Herschel Supply", "35.31")

	_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: first, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: second, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), userID))

	snapshot, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Items)
	assert.True(t, snapshot.Total.IsZero())

	// Clearing an already empty cart succeeds.
	require.NoError(t, svc.Clear(context.Background(), userID))
}

func TestGetCartOmitsVanishedProducts(t *testing.T) {
	svc, _, catalog := setup()
	kept := catalog.add("Esprit Ruffle Shirt", "16.64")
	removed := catalog.add("Herschel Supply", "35.31")
	deactivated := catalog.add("Only Check Trouser", "25.50")

	for _, id := range []uuid.UUID{kept, removed, deactivated} {
		_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: id, Quantity: 2})
		require.NoError(t, err)
	}

	catalog.remove(removed)
	catalog.deactivate(deactivated)

	snapshot, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, kept, snapshot.Items[0].ProductID)
	assert.True(t, snapshot.Total.Equal(decimal.RequireFromString("33.28")),
		"expected 33.28, got %s", snapshot.Total)
}

func TestGetCartSkipsLinesWhenCatalogErrors(t *testing.T) {
	svc, _, catalog := setup()
	healthy := catalog.add("Esprit Ruffle Shirt", "16.64")
	broken := catalog.add("Herschel Supply", "35.31")

	for _, id := range []uuid.UUID{healthy, broken} {
		_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: id, Quantity: 2})
		require.NoError(t, err)
	}

	catalog.failWith(broken, errors.New("catalog unreachable"))

	snapshot, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, healthy, snapshot.Items[0].ProductID)
	assert.True(t, snapshot.Total.Equal(decimal.RequireFromString("33.28")),
		"expected 33.28, got %s", snapshot.Total)

	// The line was skipped, not deleted: it prices again once the
	// catalog recovers.
	catalog.mu.Lock()
	delete(catalog.errs, broken)
	catalog.mu.Unlock()

	snapshot, err = svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 2)
}

func TestGetCartPricesAtCurrentCatalog(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)

	catalog.mu.Lock()
	p := catalog.products[productID]
	p.Price = decimal.RequireFromString("20.00")
	catalog.products[productID] = p
	catalog.mu.Unlock()

	snapshot, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, snapshot.Total.Equal(decimal.RequireFromString("60.00")),
		"expected 60.00, got %s", snapshot.Total)
}

func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	const n = 50

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := svc.AddToCart(context.Background(), userID, model.AddToCartRequest{ProductID: productID, Quantity: 1})
			return err
		})
	}
	require.NoError(t, g.Wait())

	snapshot, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, n, snapshot.Items[0].Quantity)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	svc, _, catalog := setup()
	productID := catalog.add("Esprit Ruffle Shirt", "16.64")

	_, err := svc.AddToCart(context.Background(), "alice", model.AddToCartRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), "bob", model.AddToCartRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)

	aliceCart, err := svc.GetCart(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, aliceCart.Items, 1)
	assert.Equal(t, 1, aliceCart.Items[0].Quantity)

	bobCart, err := svc.GetCart(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, bobCart.Items, 1)
	assert.Equal(t, 3, bobCart.Items[0].Quantity)
}
