package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{ProductID: 1, Quantity: 3, Price: 10.0},
			{ProductID: 2, Quantity: 2, Price: 2.5},
		},
	}

	order.ComputeTotals()

	assert.Equal(t, 35.0, order.TotalAmount)
	assert.Equal(t, 5, order.TotalItems)
}

func TestComputeTotals_NoItems(t *testing.T) {
	order := &Order{}

	order.ComputeTotals()

	assert.Equal(t, 0.0, order.TotalAmount)
	assert.Equal(t, 0, order.TotalItems)
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(OrderStatusPending))
	assert.True(t, IsValidOrderStatus(OrderStatusDelivered))
	assert.True(t, IsValidOrderStatus(OrderStatusCancelled))

	assert.False(t, IsValidOrderStatus("SHIPPED"))
	assert.False(t, IsValidOrderStatus("pending"))
	assert.False(t, IsValidOrderStatus(""))
}
