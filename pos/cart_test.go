package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

func silk(id uint, price, taxRate float64) models.Product {
	return models.Product{
		ID:      id,
		Name:    "Royal Blue Silk",
		Type:    models.ProductTypeFabric,
		Unit:    models.UnitMeters,
		HSNCode: "5007",
		TaxRate: taxRate,
		Price:   price,
		Stock:   100,
	}
}

func TestAddItemMergesLines(t *testing.T) {
	cart := NewCart()
	p := silk(1, 100, 5)

	require.NoError(t, cart.AddItem(p))
	require.NoError(t, cart.AddItem(p))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 200.0, items[0].ItemTotal)
	assert.Equal(t, 10.0, items[0].ItemTax)
}

func TestAddItemRejectsUnsavedProduct(t *testing.T) {
	cart := NewCart()
	err := cart.AddItem(models.Product{Name: "not yet saved", Price: 10})
	assert.ErrorIs(t, err, ErrUnsavedProduct)
	assert.Empty(t, cart.Items())
}

func TestChangeQuantityRecomputesLine(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))

	require.NoError(t, cart.ChangeQuantity(1, 2))

	items := cart.Items()
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 300.0, items[0].ItemTotal)
	assert.Equal(t, 15.0, items[0].ItemTax)
}

func TestChangeQuantityRejectsDropToZero(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))

	// A decrement that would hit zero is a no-op, not a removal.
	require.NoError(t, cart.ChangeQuantity(1, -1))
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	require.NoError(t, cart.ChangeQuantity(1, -5))
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestChangeQuantityUnknownItem(t *testing.T) {
	cart := NewCart()
	assert.ErrorIs(t, cart.ChangeQuantity(42, 1), ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))
	require.NoError(t, cart.AddItem(silk(2, 50, 12)))

	require.NoError(t, cart.RemoveItem(1))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].Product.ID)

	assert.ErrorIs(t, cart.RemoveItem(1), ErrItemNotFound)
}

func TestTotalsSingleLine(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))
	require.NoError(t, cart.ChangeQuantity(1, 1)) // qty 2

	totals := cart.Totals()
	assert.Equal(t, 200.0, totals.Subtotal)
	assert.Equal(t, 10.0, totals.TotalTax)
	assert.Equal(t, 210.0, totals.GrossTotal)
	assert.Equal(t, 210.0, totals.FinalTotal)
	assert.Equal(t, 0, totals.PointsUsed)
	assert.Equal(t, 21, totals.PointsToEarn)
}

func TestTotalsMixedTaxRates(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))
	require.NoError(t, cart.AddItem(silk(2, 250, 12)))

	totals := cart.Totals()
	assert.Equal(t, 350.0, totals.Subtotal)
	assert.Equal(t, 35.0, totals.TotalTax) // 5 + 30
	assert.Equal(t, 385.0, totals.GrossTotal)
}

func TestRedemptionCappedByGrossTotal(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))
	require.NoError(t, cart.ChangeQuantity(1, 1)) // gross 210

	cart.SelectCustomer(&models.Customer{ID: "c1", Name: "Meera", LoyaltyPoints: 1000})
	cart.SetRedeemPoints(true)

	totals := cart.Totals()
	assert.Equal(t, 100.0, totals.MaxRedeemableValue)
	assert.Equal(t, 100.0, totals.RedemptionValue)
	assert.Equal(t, 1000, totals.PointsUsed)
	assert.Equal(t, 110.0, totals.FinalTotal)
	assert.Equal(t, 11, totals.PointsToEarn)
}

func TestRedemptionCappedByBalance(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))
	require.NoError(t, cart.ChangeQuantity(1, 1)) // gross 210

	cart.SelectCustomer(&models.Customer{ID: "c1", Name: "Meera", LoyaltyPoints: 50})
	cart.SetRedeemPoints(true)

	totals := cart.Totals()
	assert.Equal(t, 5.0, totals.RedemptionValue)
	assert.Equal(t, 50, totals.PointsUsed)
	assert.Equal(t, 205.0, totals.FinalTotal)
}

func TestRedemptionWholePointsOnly(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 99.95, 0)))

	cart.SelectCustomer(&models.Customer{ID: "c1", Name: "Meera", LoyaltyPoints: 1000})
	cart.SetRedeemPoints(true)

	// 999.5 points' worth of gross total: only 999 whole points apply.
	totals := cart.Totals()
	assert.Equal(t, 999, totals.PointsUsed)
	assert.Equal(t, 99.90, totals.RedemptionValue)
	assert.InDelta(t, 0.05, totals.FinalTotal, 1e-9)
}

func TestRedeemFlagNeedsCustomerAndItems(t *testing.T) {
	cart := NewCart()

	cart.SetRedeemPoints(true)
	assert.False(t, cart.RedeemPoints(), "no customer, no items")

	cart.SelectCustomer(&models.Customer{ID: "c1", LoyaltyPoints: 10})
	cart.SetRedeemPoints(true)
	assert.False(t, cart.RedeemPoints(), "customer but empty cart")

	require.NoError(t, cart.AddItem(silk(1, 100, 5)))
	cart.SetRedeemPoints(true)
	assert.True(t, cart.RedeemPoints())
}

func TestDeselectCustomerClearsRedeemFlag(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))
	cart.SelectCustomer(&models.Customer{ID: "c1", LoyaltyPoints: 10})
	cart.SetRedeemPoints(true)
	require.True(t, cart.RedeemPoints())

	cart.SelectCustomer(nil)
	assert.False(t, cart.RedeemPoints())
	assert.Nil(t, cart.Customer())
	assert.Equal(t, 0.0, cart.Totals().RedemptionValue)
}

func TestClearResetsEverything(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(silk(1, 100, 5)))
	cart.SelectCustomer(&models.Customer{ID: "c1", LoyaltyPoints: 10})
	cart.SetRedeemPoints(true)

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Nil(t, cart.Customer())
	assert.False(t, cart.RedeemPoints())
	assert.Equal(t, 0.0, cart.Totals().GrossTotal)
}
