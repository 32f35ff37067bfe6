package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
)

type fakeStore struct {
	user      *models.User
	lines     []models.CartLine
	products  map[uint]models.Product
	orders    []*models.Order
	failClear bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		user: &models.User{
			ID:   "u1",
			Name: "Asha",
			Address: models.Address{
				Street: "12 Hill Road", Pincode: "400050", City: "Mumbai", State: "MH",
			},
		},
		products: map[uint]models.Product{
			1: {ID: 1, Name: "Mug", Price: 100, Image: "mug.png"},
			2: {ID: 2, Name: "Teapot", Price: 50, Image: "teapot.png"},
		},
	}
}

func (f *fakeStore) User(_ context.Context, id string) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return f.user, nil
}

func (f *fakeStore) CartLines(_ context.Context, userID string) ([]models.CartLine, error) {
	return append([]models.CartLine(nil), f.lines...), nil
}

func (f *fakeStore) Product(_ context.Context, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "product not found")
	}
	return &p, nil
}

func (f *fakeStore) CreateOrder(_ context.Context, order *models.Order) error {
	order.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeStore) ClearCart(_ context.Context, userID string) error {
	if f.failClear {
		return apperr.Wrap(apperr.KindStorage, errors.New("disk gone"), "failed to clear cart")
	}
	f.lines = nil
	return nil
}

func (f *fakeStore) Transaction(_ context.Context, fn func(tx Store) error) error {
	return fn(f)
}

func fixedEngine(f *fakeStore) *Engine {
	eng := NewEngine(f)
	eng.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return eng
}

func TestCheckoutSnapshotsPricesAndTotals(t *testing.T) {
	f := newFakeStore()
	f.lines = []models.CartLine{
		{UserID: "u1", ProductID: 1, Quantity: 2},
		{UserID: "u1", ProductID: 2, Quantity: 1},
	}
	eng := fixedEngine(f)

	order, err := eng.Checkout(context.Background(), "u1", "Cash")
	require.NoError(t, err)

	assert.Equal(t, 250.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 100.0, order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "Mug", order.Items[0].ProductName)
	assert.Equal(t, 50.0, order.Items[1].UnitPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentMethodCash, order.PaymentMethod)
	assert.Equal(t, f.user.Address, order.Address)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), order.CreatedAt)
}

func TestCheckoutClearsCart(t *testing.T) {
	f := newFakeStore()
	f.lines = []models.CartLine{{UserID: "u1", ProductID: 1, Quantity: 1}}
	eng := fixedEngine(f)

	_, err := eng.Checkout(context.Background(), "u1", "Online")
	require.NoError(t, err)
	assert.Empty(t, f.lines)
}

func TestCheckoutOrderImmuneToLaterPriceChange(t *testing.T) {
	f := newFakeStore()
	f.lines = []models.CartLine{{UserID: "u1", ProductID: 1, Quantity: 1}}
	eng := fixedEngine(f)

	order, err := eng.Checkout(context.Background(), "u1", "Cash")
	require.NoError(t, err)

	p := f.products[1]
	p.Price = 150
	f.products[1] = p

	assert.Equal(t, 100.0, order.TotalAmount)
	assert.Equal(t, 100.0, order.Items[0].UnitPrice)
	assert.Equal(t, 100.0, f.orders[0].Items[0].UnitPrice)
}

func TestCheckoutRejectsBadPaymentMethod(t *testing.T) {
	f := newFakeStore()
	eng := fixedEngine(f)

	// payment method is checked before the empty-cart gate
	_, err := eng.Checkout(context.Background(), "u1", "Barter")
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	assert.Empty(t, f.orders)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFakeStore()
	f.user.Address = models.Address{} // cart gate fires before the address gate
	eng := fixedEngine(f)

	_, err := eng.Checkout(context.Background(), "u1", "Cash")
	assert.Equal(t, apperr.KindPreconditionFailed, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "cart is empty")
	assert.Empty(t, f.orders)
}

func TestCheckoutIncompleteAddress(t *testing.T) {
	f := newFakeStore()
	f.lines = []models.CartLine{{UserID: "u1", ProductID: 1, Quantity: 1}}
	f.user.Address.City = ""
	eng := fixedEngine(f)

	_, err := eng.Checkout(context.Background(), "u1", "Cash")
	assert.Equal(t, apperr.KindPreconditionFailed, apperr.KindOf(err))
	assert.Equal(t, []string{"city"}, apperr.DetailsOf(err))
	assert.Empty(t, f.orders)
	assert.Len(t, f.lines, 1, "failed checkout must leave the cart untouched")
}

func TestCheckoutVanishedProduct(t *testing.T) {
	f := newFakeStore()
	f.lines = []models.CartLine{
		{UserID: "u1", ProductID: 1, Quantity: 1},
		{UserID: "u1", ProductID: 99, Quantity: 1},
	}
	eng := fixedEngine(f)

	_, err := eng.Checkout(context.Background(), "u1", "Cash")
	assert.True(t, apperr.IsNotFound(err))
	assert.Empty(t, f.orders, "no order may be created when a line cannot be priced")
	assert.Len(t, f.lines, 2)
}

func TestCheckoutUnknownUser(t *testing.T) {
	eng := fixedEngine(newFakeStore())

	_, err := eng.Checkout(context.Background(), "ghost", "Cash")
	assert.True(t, apperr.IsNotFound(err))
}

// Without a rolling-back transaction (as this fake), a cart-clearing fault
// surfaces the error but never loses the already-created order.
func TestCheckoutClearFaultKeepsOrder(t *testing.T) {
	f := newFakeStore()
	f.lines = []models.CartLine{{UserID: "u1", ProductID: 1, Quantity: 1}}
	f.failClear = true
	eng := fixedEngine(f)

	_, err := eng.Checkout(context.Background(), "u1", "Cash")
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	require.Len(t, f.orders, 1)
	assert.Equal(t, 100.0, f.orders[0].TotalAmount)
}
