package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/IlyaM70/RedMango-API/entity"
)

func createTestOrder(t *testing.T, svc *OrderService, req *CreateOrderReq) *entity.Order {
	t.Helper()
	order, err := svc.Create(req)
	require.NoError(t, err)
	return order
}

func baseOrderReq(items ...OrderItemIn) *CreateOrderReq {
	return &CreateOrderReq{
		PickupName:  "Jamie Doe",
		PickupPhone: "555-0101",
		PickupEmail: "jamie@example.com",
		OrderTotal:  decimal.RequireFromString("25.98"),
		TotalItems:  2,
		Items:       items,
	}
}

func TestCreateOrderSnapshotsLines(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	item := seedMenuItem(t, db, "Pad Thai", "12.99")

	req := baseOrderReq(
		OrderItemIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 2},
	)
	order := createTestOrder(t, svc, req)

	// the response strips the lines but they are persisted
	require.Nil(t, order.Items)
	require.Equal(t, entity.StatusPending, order.Status)

	var lines []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&lines).Error)
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
	require.True(t, lines[0].Price.Equal(decimal.RequireFromString("12.99")))

	// later catalog price changes must not rewrite the snapshot
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("price", decimal.RequireFromString("99.99")).Error)

	stored, err := svc.Get(order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	require.True(t, stored.Items[0].Price.Equal(decimal.RequireFromString("12.99")),
		"order line price must stay frozen, got %s", stored.Items[0].Price)
}

func TestCreateOrderKeepsCallerStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	item := seedMenuItem(t, db, "Satay", "8.25")

	req := baseOrderReq(OrderItemIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1})
	req.Status = entity.StatusConfirmed
	order := createTestOrder(t, svc, req)
	require.Equal(t, entity.StatusConfirmed, order.Status)
}

func TestUpdateOrderPatchSemantics(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	item := seedMenuItem(t, db, "Tom Yum", "9.75")

	owner := uint(4)
	req := baseOrderReq(OrderItemIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1})
	req.UserID = &owner
	order := createTestOrder(t, svc, req)

	patch := &UpdateOrderReq{
		ID:     order.ID,
		Status: entity.StatusReadyForPickup,
		// every other field left empty on purpose
	}
	require.NoError(t, svc.Update(order.ID, patch))

	stored, err := svc.Get(order.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusReadyForPickup, stored.Status)
	require.Equal(t, "Jamie Doe", stored.PickupName, "empty patch field must not clear")
	require.Equal(t, "jamie@example.com", stored.PickupEmail)
	require.True(t, stored.OrderTotal.Equal(decimal.RequireFromString("25.98")),
		"total must never change through update")
	require.NotNil(t, stored.UserID)
	require.Equal(t, owner, *stored.UserID, "owner must never change through update")

	// non-empty fields do overwrite
	require.NoError(t, svc.Update(order.ID, &UpdateOrderReq{
		ID:          order.ID,
		PickupPhone: "555-0199",
	}))
	stored, err = svc.Get(order.ID)
	require.NoError(t, err)
	require.Equal(t, "555-0199", stored.PickupPhone)
	require.Equal(t, entity.StatusReadyForPickup, stored.Status)
}

func TestUpdateOrderFailures(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	item := seedMenuItem(t, db, "Satay", "8.25")

	order := createTestOrder(t, svc, baseOrderReq(
		OrderItemIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1},
	))

	err := svc.Update(order.ID, &UpdateOrderReq{ID: order.ID + 1})
	require.ErrorIs(t, err, ErrIDMismatch)

	missing := order.ID + 100
	err = svc.Update(missing, &UpdateOrderReq{ID: missing})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	item := seedMenuItem(t, db, "Spring Roll", "7.99")
	line := OrderItemIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1}

	alice := uint(1)
	first := baseOrderReq(line)
	first.UserID = &alice
	first.PickupName = "Alice Smith"
	first.PickupEmail = "alice@example.com"
	createTestOrder(t, svc, first)

	bob := uint(2)
	second := baseOrderReq(line)
	second.UserID = &bob
	second.PickupName = "Bob Jones"
	second.PickupPhone = "555-7777"
	second.Status = entity.StatusCompleted
	createTestOrder(t, svc, second)

	// no filters: everything, newest first, lines and items included
	all, err := svc.List(nil, "", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Bob Jones", all[0].PickupName)
	require.Len(t, all[0].Items, 1)
	require.Equal(t, "Spring Roll", all[0].Items[0].MenuItem.Name)

	// owner filter is exact
	mine, err := svc.List(&alice, "", "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Alice Smith", mine[0].PickupName)

	// search is a case-insensitive substring over name, email and phone
	byName, err := svc.List(nil, "ALICE", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)

	byPhone, err := svc.List(nil, "555-77", "")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	require.Equal(t, "Bob Jones", byPhone[0].PickupName)

	// status filter is case-insensitive exact
	done, err := svc.List(nil, "", "COMPLETED")
	require.NoError(t, err)
	require.Len(t, done, 1)
	require.Equal(t, "Bob Jones", done[0].PickupName)

	// conjunctive: owner AND status
	none, err := svc.List(&alice, "", entity.StatusCompleted)
	require.NoError(t, err)
	require.Empty(t, none)
}
