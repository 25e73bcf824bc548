package pos

import (
	"math"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

const (
	// PointsPerDollar is the accrual rate: 1 point per $10 of net total.
	PointsPerDollar = 0.1
	// RedemptionRate is the dollar value of one loyalty point.
	RedemptionRate = 0.10
)

// Totals carries every figure derived from the current cart. It is
// recomputed from the lines on every read, never cached.
type Totals struct {
	Subtotal           float64 `json:"subtotal"`
	TotalTax           float64 `json:"total_tax"`
	GrossTotal         float64 `json:"gross_total"`
	MaxRedeemableValue float64 `json:"max_redeemable_value"`
	RedemptionValue    float64 `json:"redemption_value"`
	PointsUsed         int     `json:"points_used"`
	FinalTotal         float64 `json:"final_total"`
	PointsToEarn       int     `json:"points_to_earn"`
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// lineAmounts derives a line's total and tax from its price, quantity
// and tax rate. Every cart mutation goes through this, so the cached
// pair on the line can never go stale.
func lineAmounts(price float64, quantity int, taxRate float64) (total, tax float64) {
	total = roundMoney(price * float64(quantity))
	tax = roundMoney(total * taxRate / 100)
	return total, tax
}

// computeTotals implements the billing arithmetic. Prices are
// tax-exclusive; each line carries its own tax rate.
//
// Redemption is quantized to whole points before any money is derived:
// pointsUsed = min(floor(balance), floor(grossTotal/RedemptionRate)),
// redemptionValue = pointsUsed × RedemptionRate. The value therefore
// never exceeds the customer's balance worth nor the sale's own gross
// total, and a whole-number balance stays whole after any sale.
func computeTotals(items []CartItem, customer *models.Customer, redeem bool) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.ItemTotal
		t.TotalTax += it.ItemTax
	}
	t.Subtotal = roundMoney(t.Subtotal)
	t.TotalTax = roundMoney(t.TotalTax)
	t.GrossTotal = roundMoney(t.Subtotal + t.TotalTax)

	if customer != nil {
		t.MaxRedeemableValue = roundMoney(customer.LoyaltyPoints * RedemptionRate)
	}

	if redeem && customer != nil && len(items) > 0 {
		available := int(math.Floor(customer.LoyaltyPoints))
		affordable := int(math.Floor(t.GrossTotal/RedemptionRate + 1e-9))
		points := available
		if affordable < points {
			points = affordable
		}
		if points > 0 {
			t.PointsUsed = points
			t.RedemptionValue = roundMoney(float64(points) * RedemptionRate)
		}
	}

	t.FinalTotal = roundMoney(t.GrossTotal - t.RedemptionValue)
	if t.FinalTotal < 0 {
		t.FinalTotal = 0
	}
	t.PointsToEarn = int(math.Floor(t.FinalTotal*PointsPerDollar + 1e-9))
	return t
}
