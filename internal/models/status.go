package models

import "strings"

// MenuCategory is the fixed menu classification.
type MenuCategory string

const (
	CategoryFood   MenuCategory = "food"
	CategoryDrinks MenuCategory = "drinks"
	CategorySnacks MenuCategory = "snacks"
)

// IsValid checks if the category is one of the fixed enumeration.
func (m MenuCategory) IsValid() bool {
	switch m {
	case CategoryFood, CategoryDrinks, CategorySnacks:
		return true
	default:
		return false
	}
}

// MenuCategories lists the valid categories in tab order.
func MenuCategories() []MenuCategory {
	return []MenuCategory{CategoryFood, CategoryDrinks, CategorySnacks}
}

// Canonical order statuses, in display order. The vocabulary grew organically
// in production; several legacy spellings for the same logical state are still
// persisted and must keep resolving (see statusAliases).
const (
	StatusPendingConfirmation = "pending_confirmation"
	StatusBeingPrepared       = "Being Prepared"
	StatusReadyForPickup      = "Ready for pickup"
	StatusOutForDelivery      = "Out for delivery"
	StatusDelivered           = "Delivered/completed"
)

// OrderStatusOptions is the ordered list a client offers in the status
// selector. Not a state machine: any option may be chosen from any
// non-terminal status.
func OrderStatusOptions() []string {
	return []string{
		StatusPendingConfirmation,
		StatusBeingPrepared,
		StatusReadyForPickup,
		StatusOutForDelivery,
		StatusDelivered,
	}
}

// statusAliases maps lowercased legacy spellings to their canonical value.
// Persisted legacy rows are never rewritten; they normalize on read.
var statusAliases = map[string]string{
	"pending":                    StatusPendingConfirmation,
	"confirmed":                  StatusPendingConfirmation,
	"being prepared/cooking":     StatusBeingPrepared,
	"out for delivery/picked up": StatusOutForDelivery,
	"delivered":                  StatusDelivered,
}

// CanonicalStatus resolves a raw status string to its canonical value.
// Matching is case-insensitive over both canonical values and legacy aliases.
// Returns false for values outside the known vocabulary.
func CanonicalStatus(raw string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return "", false
	}
	for _, s := range OrderStatusOptions() {
		if strings.ToLower(s) == lowered {
			return s, true
		}
	}
	if s, ok := statusAliases[lowered]; ok {
		return s, true
	}
	return "", false
}

// IsTerminalStatus reports whether the status (canonical or legacy) means the
// order is delivered and complete. Terminal orders accept no further status
// changes.
func IsTerminalStatus(raw string) bool {
	s, ok := CanonicalStatus(raw)
	return ok && s == StatusDelivered
}
