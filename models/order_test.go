package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for in, want := range map[string]OrderStatus{
		"pending":    OrderStatusPending,
		"Processing": OrderStatusProcessing,
		"SHIPPED":    OrderStatusShipped,
		"delivered":  OrderStatusDelivered,
		"Cancelled":  OrderStatusCancelled,
	} {
		got, err := ParseOrderStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseOrderStatus("returned")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestParsePaymentMethod(t *testing.T) {
	got, err := ParsePaymentMethod("cash")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodCash, got)

	got, err = ParsePaymentMethod("Online")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodOnline, got)

	_, err = ParsePaymentMethod("card")
	assert.Error(t, err)
}
