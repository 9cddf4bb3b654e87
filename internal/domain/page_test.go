package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       PageParams
		wantPage int
		wantSize int
	}{
		{"zero_values", PageParams{}, 1, 1},
		{"negative_page", PageParams{Page: -3, Size: 20}, 1, 20},
		{"oversized_page_size", PageParams{Page: 2, Size: 500}, 2, 100},
		{"in_range_untouched", PageParams{Page: 3, Size: 25}, 3, 25},
		{"size_at_upper_bound", PageParams{Page: 1, Size: 100}, 1, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, tc.wantSize, got.Size)
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 1, Size: 20}.Offset())
	assert.Equal(t, 40, PageParams{Page: 3, Size: 20}.Offset())
}

func TestAccessScope(t *testing.T) {
	assert.True(t, Unrestricted().Allows(7))
	assert.True(t, Unrestricted().Allows(0))

	owned := OwnedBy(7)
	assert.True(t, owned.Allows(7))
	assert.False(t, owned.Allows(8))
}

func TestOrderTerminal(t *testing.T) {
	assert.False(t, OrderTerminal(OrderPending))
	assert.False(t, OrderTerminal(OrderInProgress))
	assert.True(t, OrderTerminal(OrderCompleted))
	assert.True(t, OrderTerminal(OrderCancelled))
}

func TestValidStatuses(t *testing.T) {
	for _, status := range []string{OrderPending, OrderInProgress, OrderCompleted, OrderCancelled} {
		assert.True(t, ValidOrderStatus(status))
	}
	assert.False(t, ValidOrderStatus("ready"))

	for _, status := range []string{PaymentPending, PaymentCompleted, PaymentFailed} {
		assert.True(t, ValidPaymentStatus(status))
	}
	assert.False(t, ValidPaymentStatus("refunded"))
}
