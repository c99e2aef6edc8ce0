package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-plant-shop/internal/domain"
	"go-plant-shop/internal/service"
)

func TestPlaceOrderComputesTotalAndDecrementsStock(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)
	p := seedPlant(t, db, "Rose", 10, 5)

	svc := service.NewCheckoutService(db, nil)
	order, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{
		{PlantID: p.ID, Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(30), order.TotalPrice)
	assert.Equal(t, domain.StatusConfirmed, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, p.ID, order.Items[0].PlantID)
	assert.Equal(t, 2, plantStock(t, db, p.ID))
}

func TestPlaceOrderMultipleLines(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)
	rose := seedPlant(t, db, "Rose", 10, 5)
	mint := seedPlant(t, db, "Menthe", 7, 8)

	svc := service.NewCheckoutService(db, nil)
	order, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{
		{PlantID: rose.ID, Quantity: 2},
		{PlantID: mint.ID, Quantity: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2*10+4*7), order.TotalPrice)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 3, plantStock(t, db, rose.ID))
	assert.Equal(t, 4, plantStock(t, db, mint.ID))
}

func TestPlaceOrderUnknownPlantLeavesNothingBehind(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)
	p := seedPlant(t, db, "Rose", 10, 5)

	svc := service.NewCheckoutService(db, nil)
	_, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{
		{PlantID: p.ID, Quantity: 2},
		{PlantID: "nope", Quantity: 1},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	// 整单回滚：没有订单、没有条目、库存原样
	assert.EqualValues(t, 0, countRows(t, db, &domain.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &domain.OrderItem{}))
	assert.Equal(t, 5, plantStock(t, db, p.ID))
}

func TestPlaceOrderInsufficientStockRejectsWholeCart(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)
	p := seedPlant(t, db, "Rose", 10, 5)

	svc := service.NewCheckoutService(db, nil)
	// 同一植物两行各 3 件：第二行只剩 2 件，整单拒绝
	_, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{
		{PlantID: p.ID, Quantity: 3},
		{PlantID: p.ID, Quantity: 3},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.EqualValues(t, 0, countRows(t, db, &domain.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &domain.OrderItem{}))
	assert.Equal(t, 5, plantStock(t, db, p.ID))
}

func TestPlaceOrderSingleLineOverStock(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)
	p := seedPlant(t, db, "Rose", 10, 5)

	svc := service.NewCheckoutService(db, nil)
	_, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{
		{PlantID: p.ID, Quantity: 6},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, plantStock(t, db, p.ID))
}

func TestPlaceOrderEmptyCartRejected(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)

	svc := service.NewCheckoutService(db, nil)
	_, err := svc.PlaceOrder(context.Background(), u.ID, nil)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPlaceOrderNonPositiveQuantityRejected(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)
	p := seedPlant(t, db, "Rose", 10, 5)

	svc := service.NewCheckoutService(db, nil)
	for _, qty := range []int{0, -1} {
		_, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{
			{PlantID: p.ID, Quantity: qty},
		})
		require.ErrorIs(t, err, domain.ErrValidation, "qty=%d", qty)
	}
	assert.Equal(t, 5, plantStock(t, db, p.ID))
}

func TestPlaceOrderRefetchIsStable(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)
	p := seedPlant(t, db, "Rose", 10, 5)

	svc := service.NewCheckoutService(db, nil)
	order, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{
		{PlantID: p.ID, Quantity: 2},
	})
	require.NoError(t, err)

	again, err := svc.GetOrder(context.Background(), u.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.TotalPrice, again.TotalPrice)
	require.Len(t, again.Items, len(order.Items))
	assert.Equal(t, order.Items[0].ID, again.Items[0].ID)
}

func TestGetOrderScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	owner := seedUser(t, db, "owner@example.com", false)
	other := seedUser(t, db, "other@example.com", false)
	p := seedPlant(t, db, "Rose", 10, 5)

	svc := service.NewCheckoutService(db, nil)
	order, err := svc.PlaceOrder(context.Background(), owner.ID, []domain.CartLine{
		{PlantID: p.ID, Quantity: 1},
	})
	require.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), other.ID, order.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)
	u := seedUser(t, db, "buyer@example.com", false)
	p := seedPlant(t, db, "Rose", 10, 50)

	svc := service.NewCheckoutService(db, nil)
	first, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{{PlantID: p.ID, Quantity: 1}})
	require.NoError(t, err)
	second, err := svc.PlaceOrder(context.Background(), u.ID, []domain.CartLine{{PlantID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	orders, err := svc.ListOrders(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	ids := []string{orders[0].ID, orders[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.False(t, orders[0].CreatedAt.Before(orders[1].CreatedAt))
}
