package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/storefront/internal/db"
	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/payment"
	"github.com/vbonduro/storefront/internal/store"
)

// stubProvider is a minimal payment.Provider for tests.
type stubProvider struct {
	lastReq payment.SessionRequest
	url     string
	err     error
}

func (s *stubProvider) CreateSession(_ context.Context, req payment.SessionRequest) (string, error) {
	s.lastReq = req
	return s.url, s.err
}

// stubDestroyer records hosted image deletions.
type stubDestroyer struct {
	destroyed []string
	err       error
}

func (s *stubDestroyer) Destroy(_ context.Context, publicID string) error {
	s.destroyed = append(s.destroyed, publicID)
	return s.err
}

type testEnv struct {
	svc      *Service
	payments *stubProvider
	images   *stubDestroyer
}

func newTestService(t *testing.T) *testEnv {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	payments := &stubProvider{url: "https://pay.example/session/abc"}
	images := &stubDestroyer{}

	svc := New(
		store.NewStoreStore(d),
		store.NewBillboardStore(d),
		store.NewCategoryStore(d),
		store.NewSizeStore(d),
		store.NewColorStore(d),
		store.NewProductStore(d),
		store.NewOrderStore(d),
		payments,
		images,
		Config{Currency: "USD", FrontendStoreURL: "http://localhost:3001"},
		slog.Default(),
	)

	return &testEnv{svc: svc, payments: payments, images: images}
}

// seedCatalog creates a store with one billboard, category, size, and color.
func seedCatalog(t *testing.T, env *testEnv, userID string) (*domain.Store, *domain.Billboard, *domain.Category, *domain.Size, *domain.Color) {
	t.Helper()
	ctx := context.Background()

	st, err := env.svc.CreateStore(ctx, userID, StoreInput{Name: "Outfitters"})
	require.NoError(t, err)
	bb, err := env.svc.CreateBillboard(ctx, userID, st.ID, BillboardInput{
		Label:    "Summer Sale",
		ImageURL: "https://img.example/up/summer.png",
	})
	require.NoError(t, err)
	cat, err := env.svc.CreateCategory(ctx, userID, st.ID, CategoryInput{Name: "Shirts", BillboardID: bb.ID})
	require.NoError(t, err)
	size, err := env.svc.CreateSize(ctx, userID, st.ID, AttributeInput{Name: "Medium", Value: "M"})
	require.NoError(t, err)
	color, err := env.svc.CreateColor(ctx, userID, st.ID, AttributeInput{Name: "Red", Value: "#ff0000"})
	require.NoError(t, err)

	return st, bb, cat, size, color
}

func productInput(cat *domain.Category, size *domain.Size, color *domain.Color) ProductInput {
	return ProductInput{
		Name:       "Linen Shirt",
		Price:      decimal.RequireFromString("49.90"),
		Quantity:   10,
		CategoryID: cat.ID,
		SizeID:     size.ID,
		ColorID:    color.ID,
		Images:     []ImageInput{{URL: "https://img.example/up/shirt.png"}},
	}
}

func TestCreateStoreRequiresIdentity(t *testing.T) {
	env := newTestService(t)

	_, err := env.svc.CreateStore(context.Background(), "", StoreInput{Name: "Outfitters"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthorizeStoreRejectsForeignOwner(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, _, _, _, _ := seedCatalog(t, env, "user_1")

	_, err := env.svc.UpdateStore(ctx, "user_2", st.ID, StoreInput{Name: "Hijacked"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = env.svc.CreateBillboard(ctx, "user_2", st.ID, BillboardInput{
		Label:    "Stolen",
		ImageURL: "https://img.example/up/x.png",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDeleteStoreBlockedByCatalog(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, _, _, _, _ := seedCatalog(t, env, "user_1")

	_, err := env.svc.DeleteStore(ctx, "user_1", st.ID)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Make sure you removed all products and categories first", conflict.Reason)
}

func TestDeleteEmptyStore(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, err := env.svc.CreateStore(ctx, "user_1", StoreInput{Name: "Empty"})
	require.NoError(t, err)

	deleted, err := env.svc.DeleteStore(ctx, "user_1", st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, deleted.ID)

	got, err := env.svc.GetStore(ctx, st.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateBillboardDestroysReplacedImage(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, bb, _, _, _ := seedCatalog(t, env, "user_1")

	updated, err := env.svc.UpdateBillboard(ctx, "user_1", st.ID, bb.ID, BillboardInput{
		Label:    "Winter Sale",
		ImageURL: "https://img.example/up/winter.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Winter Sale", updated.Label)
	assert.Equal(t, []string{"summer"}, env.images.destroyed)
}

func TestUpdateBillboardKeepsUnchangedImage(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, bb, _, _, _ := seedCatalog(t, env, "user_1")

	_, err := env.svc.UpdateBillboard(ctx, "user_1", st.ID, bb.ID, BillboardInput{
		Label:    "Renamed",
		ImageURL: bb.ImageURL,
	})
	require.NoError(t, err)
	assert.Empty(t, env.images.destroyed)
}

func TestDeleteBillboardBlockedByCategory(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, bb, _, _, _ := seedCatalog(t, env, "user_1")

	_, err := env.svc.DeleteBillboard(ctx, "user_1", st.ID, bb.ID)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Make sure you removed all categories using this billboard first", conflict.Reason)
	assert.Empty(t, env.images.destroyed)
}

func TestCreateCategoryRejectsForeignBillboard(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st1, _, _, _, _ := seedCatalog(t, env, "user_1")
	_, bb2, _, _, _ := seedCatalog(t, env, "user_2")

	_, err := env.svc.CreateCategory(ctx, "user_1", st1.ID, CategoryInput{Name: "Pants", BillboardID: bb2.ID})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Billboard", notFound.Resource)
}

func TestCreateProductRejectsForeignRefs(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st1, _, cat1, size1, color1 := seedCatalog(t, env, "user_1")
	_, _, cat2, _, _ := seedCatalog(t, env, "user_2")

	in := productInput(cat2, size1, color1)
	_, err := env.svc.CreateProduct(ctx, "user_1", st1.ID, in)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Category", notFound.Resource)

	in = productInput(cat1, size1, color1)
	in.SizeID = "missing"
	_, err = env.svc.CreateProduct(ctx, "user_1", st1.ID, in)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Size", notFound.Resource)
}

func TestProductLifecycle(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, _, cat, size, color := seedCatalog(t, env, "user_1")

	created, err := env.svc.CreateProduct(ctx, "user_1", st.ID, productInput(cat, size, color))
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", created.Name)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("49.90")))
	require.Len(t, created.Images, 1)

	in := productInput(cat, size, color)
	in.Name = "Silk Shirt"
	in.IsFeatured = true
	updated, err := env.svc.UpdateProduct(ctx, "user_1", st.ID, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Silk Shirt", updated.Name)
	assert.True(t, updated.IsFeatured)

	listed, err := env.svc.ListProducts(ctx, st.ID, store.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	_, err = env.svc.DeleteProduct(ctx, "user_1", st.ID, created.ID)
	require.NoError(t, err)

	got, err := env.svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPurchaseProductDecrementsQuantity(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, _, cat, size, color := seedCatalog(t, env, "user_1")
	created, err := env.svc.CreateProduct(ctx, "user_1", st.ID, productInput(cat, size, color))
	require.NoError(t, err)

	bought, err := env.svc.PurchaseProduct(ctx, st.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, bought.ID)

	got, err := env.svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.Quantity)
}

func TestPurchaseProductWrongStore(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st1, _, cat, size, color := seedCatalog(t, env, "user_1")
	st2, _, _, _, _ := seedCatalog(t, env, "user_2")

	created, err := env.svc.CreateProduct(ctx, "user_1", st1.ID, productInput(cat, size, color))
	require.NoError(t, err)

	_, err = env.svc.PurchaseProduct(ctx, st2.ID, created.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Product", notFound.Resource)
}

func TestCheckoutCreatesOrderAndSession(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, _, cat, size, color := seedCatalog(t, env, "user_1")
	p1, err := env.svc.CreateProduct(ctx, "user_1", st.ID, productInput(cat, size, color))
	require.NoError(t, err)
	in := productInput(cat, size, color)
	in.Name = "Wool Sweater"
	in.Price = decimal.RequireFromString("15.00")
	p2, err := env.svc.CreateProduct(ctx, "user_1", st.ID, in)
	require.NoError(t, err)

	url, err := env.svc.Checkout(ctx, st.ID, []string{p1.ID, p2.ID})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/session/abc", url)

	req := env.payments.lastReq
	assert.Equal(t, "USD", req.Currency)
	assert.Equal(t, "http://localhost:3001/cart?success=1", req.SuccessURL)
	assert.Equal(t, "http://localhost:3001/cart?canceled=1", req.CancelURL)
	require.Len(t, req.Items, 2)
	for _, item := range req.Items {
		assert.Equal(t, int64(1), item.Quantity)
	}
	require.NotEmpty(t, req.OrderID)

	order, err := env.svc.GetOrder(ctx, req.OrderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.False(t, order.IsPaid)
	assert.Len(t, order.Items, 2)
}

func TestCheckoutNoProducts(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, _, _, _, _ := seedCatalog(t, env, "user_1")

	_, err := env.svc.Checkout(ctx, st.ID, []string{"missing"})
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCheckoutProviderFailure(t *testing.T) {
	env := newTestService(t)
	env.payments.err = errors.New("provider down")
	ctx := context.Background()

	st, _, cat, size, color := seedCatalog(t, env, "user_1")
	p, err := env.svc.CreateProduct(ctx, "user_1", st.ID, productInput(cat, size, color))
	require.NoError(t, err)

	_, err = env.svc.Checkout(ctx, st.ID, []string{p.ID})
	assert.Error(t, err)
}

func TestOrderCRUD(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	st, _, _, _, _ := seedCatalog(t, env, "user_1")

	order, err := env.svc.CreateOrder(ctx, "user_1", st.ID, OrderInput{Phone: "555-0100", Address: "1 Main St"})
	require.NoError(t, err)
	assert.False(t, order.IsPaid)

	updated, err := env.svc.UpdateOrder(ctx, "user_1", st.ID, order.ID, OrderInput{
		Phone:   "555-0199",
		Address: "2 Side St",
		IsPaid:  true,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
	assert.Equal(t, "555-0199", updated.Phone)

	orders, err := env.svc.ListOrders(ctx, st.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = env.svc.DeleteOrder(ctx, "user_1", st.ID, order.ID)
	require.NoError(t, err)
}
