package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
)

// fakeStore mirrors the SQL semantics of store.Store in memory: one line per
// (user, product), merge on upsert, delete at zero.
type fakeStore struct {
	users    map[string]bool
	lines    map[string][]models.CartLine
	products map[uint]models.Product
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]bool{"u1": true},
		lines:    make(map[string][]models.CartLine),
		products: map[uint]models.Product{
			1: {ID: 1, Name: "Mug", Price: 100, Image: "mug.png"},
			2: {ID: 2, Name: "Teapot", Price: 50, Image: "teapot.png"},
		},
	}
}

func (f *fakeStore) UserExists(_ context.Context, userID string) (bool, error) {
	return f.users[userID], nil
}

func (f *fakeStore) CartLines(_ context.Context, userID string) ([]models.CartLine, error) {
	return append([]models.CartLine(nil), f.lines[userID]...), nil
}

func (f *fakeStore) UpsertCartLine(_ context.Context, userID string, productID uint, delta int) error {
	for i, l := range f.lines[userID] {
		if l.ProductID == productID {
			f.lines[userID][i].Quantity += delta
			return nil
		}
	}
	f.lines[userID] = append(f.lines[userID], models.CartLine{
		UserID: userID, ProductID: productID, Quantity: delta, AddedAt: time.Now(),
	})
	return nil
}

func (f *fakeStore) DecrementCartLine(_ context.Context, userID string, productID uint) error {
	for i, l := range f.lines[userID] {
		if l.ProductID == productID {
			if l.Quantity <= 1 {
				f.lines[userID] = append(f.lines[userID][:i], f.lines[userID][i+1:]...)
			} else {
				f.lines[userID][i].Quantity--
			}
			return nil
		}
	}
	return apperr.New(apperr.KindNotFound, "product not in cart")
}

func (f *fakeStore) SetCartLineQuantity(_ context.Context, userID string, productID uint, quantity int) error {
	for i, l := range f.lines[userID] {
		if l.ProductID == productID {
			f.lines[userID][i].Quantity = quantity
			return nil
		}
	}
	return apperr.New(apperr.KindNotFound, "product not in cart")
}

func (f *fakeStore) RemoveCartLine(_ context.Context, userID string, productID uint) error {
	for i, l := range f.lines[userID] {
		if l.ProductID == productID {
			f.lines[userID] = append(f.lines[userID][:i], f.lines[userID][i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) Product(_ context.Context, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "product not found")
	}
	return &p, nil
}

func (f *fakeStore) ProductsByID(_ context.Context, ids []uint) (map[uint]models.Product, error) {
	out := make(map[uint]models.Product)
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func newTestEngine() (*Engine, *fakeStore) {
	f := newFakeStore()
	return NewEngine(f, f), f
}

func TestAddOrMergeMergesDuplicates(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	_, err := eng.AddOrMerge(ctx, "u1", 1, 2)
	require.NoError(t, err)
	lines, err := eng.AddOrMerge(ctx, "u1", 1, 3)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddOrMergeRejectsNonPositiveQuantity(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.AddOrMerge(context.Background(), "u1", 1, 0)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestAddOrMergeUnknownUser(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.AddOrMerge(context.Background(), "ghost", 1, 1)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAddOrMergeUnknownProduct(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.AddOrMerge(context.Background(), "u1", 99, 1)
	assert.True(t, apperr.IsNotFound(err))
}

func TestIncrementCreatesAbsentLine(t *testing.T) {
	eng, _ := newTestEngine()

	lines, err := eng.Increment(context.Background(), "u1", 2)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestDecrementRemovesLineAtQuantityOne(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	_, err := eng.AddOrMerge(ctx, "u1", 1, 1)
	require.NoError(t, err)
	lines, err := eng.Decrement(ctx, "u1", 1)
	require.NoError(t, err)

	assert.Empty(t, lines)
}

func TestDecrementLowersQuantity(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	_, err := eng.AddOrMerge(ctx, "u1", 1, 3)
	require.NoError(t, err)
	lines, err := eng.Decrement(ctx, "u1", 1)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestDecrementAbsentLineFails(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.Decrement(context.Background(), "u1", 1)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRemoveIsIdempotent(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	_, err := eng.AddOrMerge(ctx, "u1", 1, 2)
	require.NoError(t, err)

	lines, err := eng.Remove(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// removing again, and removing something never added, both succeed
	lines, err = eng.Remove(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Empty(t, lines)
	_, err = eng.Remove(ctx, "u1", 2)
	require.NoError(t, err)
}

func TestSetQuantityOverwritesWithoutMerging(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	_, err := eng.AddOrMerge(ctx, "u1", 1, 5)
	require.NoError(t, err)
	lines, err := eng.SetQuantity(ctx, "u1", 1, 2)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	_, err := eng.AddOrMerge(ctx, "u1", 1, 2)
	require.NoError(t, err)
	lines, err := eng.SetQuantity(ctx, "u1", 1, 0)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// zero on an absent line is a no-op, not an error
	_, err = eng.SetQuantity(ctx, "u1", 2, 0)
	require.NoError(t, err)
}

func TestSetQuantityAbsentLineFails(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.SetQuantity(context.Background(), "u1", 1, 3)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSetQuantityRejectsNegative(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.SetQuantity(context.Background(), "u1", 1, -1)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestReadJoinsCatalogData(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	_, err := eng.AddOrMerge(ctx, "u1", 1, 2)
	require.NoError(t, err)
	_, err = eng.AddOrMerge(ctx, "u1", 2, 1)
	require.NoError(t, err)

	lines, err := eng.Read(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Mug", lines[0].Name)
	assert.Equal(t, 100.0, lines[0].Price)
	assert.Equal(t, "mug.png", lines[0].Image)
	assert.Equal(t, "Teapot", lines[1].Name)
}

func TestReadToleratesVanishedProduct(t *testing.T) {
	eng, f := newTestEngine()
	ctx := context.Background()

	_, err := eng.AddOrMerge(ctx, "u1", 1, 2)
	require.NoError(t, err)
	delete(f.products, 1)

	lines, err := eng.Read(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Empty(t, lines[0].Name)
	assert.Zero(t, lines[0].Price)
}
