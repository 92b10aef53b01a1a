package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josbet/floreria/app/models"
	"github.com/josbet/floreria/app/repositories"
	"github.com/josbet/floreria/app/services"
)

func TestPlaceOrder(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewOrderService(repositories.NewOrderRepository(db))

	user := models.User{Username: "ana", Email: "ana@x.com"}
	require.NoError(t, user.SetPassword("pw123"))
	require.NoError(t, db.Create(&user).Error)

	order, err := svc.Place(user, services.PlaceOrderInput{
		FlowerType: "rosas",
		Color:      "rojo",
		Quantity:   "5",
		Message:    "feliz cumpleaños",
		Phone:      "555 123",
	})
	require.NoError(t, err)

	require.NotNil(t, order.UserID)
	assert.Equal(t, user.ID, *order.UserID)
	assert.Equal(t, "ana", order.CustomerName, "customer name defaults to the username")
	assert.Zero(t, order.Total, "orders are quoted later, never priced at submission")

	_, err = uuid.Parse(order.Reference)
	assert.NoError(t, err, "reference should be a UUID")

	detail, err := order.ParsedDetail()
	require.NoError(t, err)
	assert.Equal(t, "rosas", detail.FlowerType)
	assert.Equal(t, "rojo", detail.Color)
	assert.Equal(t, "5", detail.Quantity)
	assert.Equal(t, "feliz cumpleaños", detail.Message)
}

func TestPlaceOrderCustomerNameOverride(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewOrderService(repositories.NewOrderRepository(db))

	user := models.User{Username: "ana", Email: "ana@x.com"}
	require.NoError(t, user.SetPassword("pw123"))
	require.NoError(t, db.Create(&user).Error)

	order, err := svc.Place(user, services.PlaceOrderInput{
		FlowerType:   "girasoles",
		Quantity:     "3",
		CustomerName: "  Para mamá  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Para mamá", order.CustomerName)
}

func TestPlaceOrderAcceptsSparseForm(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewOrderService(repositories.NewOrderRepository(db))

	user := models.User{Username: "ana", Email: "ana@x.com"}
	require.NoError(t, user.SetPassword("pw123"))
	require.NoError(t, db.Create(&user).Error)

	// Only two fields filled in, like the minimal form submission.
	order, err := svc.Place(user, services.PlaceOrderInput{
		FlowerType: "rosas",
		Quantity:   "5",
	})
	require.NoError(t, err)

	detail, err := order.ParsedDetail()
	require.NoError(t, err)
	assert.Equal(t, "rosas", detail.FlowerType)
	assert.Empty(t, detail.Color)
}
