package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatus_CanonicalValues(t *testing.T) {
	for _, s := range OrderStatusOptions() {
		got, ok := CanonicalStatus(s)
		assert.True(t, ok, "canonical value %q must resolve", s)
		assert.Equal(t, s, got)
	}
}

func TestCanonicalStatus_LegacyAliases(t *testing.T) {
	cases := map[string]string{
		"pending":                    StatusPendingConfirmation,
		"Confirmed":                  StatusPendingConfirmation,
		"Being Prepared/Cooking":     StatusBeingPrepared,
		"Ready for Pickup":           StatusReadyForPickup,
		"Out for Delivery/Picked Up": StatusOutForDelivery,
		"Delivered/Completed":        StatusDelivered,
		"delivered":                  StatusDelivered,
	}
	for raw, want := range cases {
		got, ok := CanonicalStatus(raw)
		assert.True(t, ok, "legacy value %q must resolve", raw)
		assert.Equal(t, want, got, "legacy value %q", raw)
	}
}

func TestCanonicalStatus_CaseInsensitive(t *testing.T) {
	got, ok := CanonicalStatus("BEING PREPARED")
	assert.True(t, ok)
	assert.Equal(t, StatusBeingPrepared, got)

	got, ok = CanonicalStatus("  pending_confirmation ")
	assert.True(t, ok)
	assert.Equal(t, StatusPendingConfirmation, got)
}

func TestCanonicalStatus_Unknown(t *testing.T) {
	for _, raw := range []string{"", "   ", "shipped", "on hold"} {
		_, ok := CanonicalStatus(raw)
		assert.False(t, ok, "value %q must not resolve", raw)
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusDelivered))
	assert.True(t, IsTerminalStatus("Delivered/Completed"))
	assert.True(t, IsTerminalStatus("delivered"))

	assert.False(t, IsTerminalStatus(StatusPendingConfirmation))
	assert.False(t, IsTerminalStatus(StatusOutForDelivery))
	assert.False(t, IsTerminalStatus("nonsense"))
}

func TestMenuCategory_IsValid(t *testing.T) {
	for _, c := range MenuCategories() {
		assert.True(t, c.IsValid())
	}
	assert.False(t, MenuCategory("dessert").IsValid())
	assert.False(t, MenuCategory("").IsValid())
	assert.False(t, MenuCategory("Food").IsValid())
}
