package pricing

import (
	"festivo/models"
)

// PriceBreakdown is the displayable price of one plan line.
type PriceBreakdown struct {
	BasePrice  float64 `json:"basePrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// DisplayPrice resolves the base price of an occupied category slot with
// category-specific rules, then adds the attached add-on prices. A zero
// price field counts as unset; the first set value in the chain wins.
func DisplayPrice(slot models.PlanSlot, attached []models.PlanAddon) PriceBreakdown {
	base := basePriceFor(slot)
	total := base
	for _, a := range attached {
		total += a.Addon.Price
	}
	return PriceBreakdown{BasePrice: base, TotalPrice: total}
}

// basePriceFor implements the per-category fallback chains. Party bags are
// quantity-priced, so their bundle totals take precedence over the raw
// per-bag price.
func basePriceFor(slot models.PlanSlot) float64 {
	pkg := slot.Package
	supplier := slot.Supplier

	if supplier.Category == models.CategoryPartyBags {
		if slot.Metadata.TotalPrice > 0 {
			return slot.Metadata.TotalPrice
		}
		if pkg.TotalPrice > 0 {
			return pkg.TotalPrice
		}
		if pkg.Price > 0 && pkg.Quantity > 0 {
			return pkg.Price * float64(pkg.Quantity)
		}
		if supplier.Price > 0 {
			return supplier.Price
		}
		if supplier.PriceFrom > 0 {
			return supplier.PriceFrom
		}
		return 0
	}

	if pkg.Price > 0 {
		return pkg.Price
	}
	if supplier.Price > 0 {
		return supplier.Price
	}
	return 0
}

// AddonTotal sums the prices of a set of supplier add-ons.
func AddonTotal(addons []models.Addon) float64 {
	total := 0.0
	for _, a := range addons {
		total += a.Price
	}
	return total
}

// PlanTotal sums the display totals of every occupied category slot plus
// every standalone add-on. It is pure: calling it twice with unchanged
// input yields the same result.
func PlanTotal(plan *models.PartyPlan) float64 {
	if plan == nil {
		return 0
	}
	total := 0.0
	for key, slot := range plan.Slots {
		total += DisplayPrice(slot, plan.AddonsFor(key)).TotalPrice
	}
	for _, a := range plan.Addons {
		if a.AttachedTo == "" {
			total += a.Addon.Price
		}
	}
	return total
}
