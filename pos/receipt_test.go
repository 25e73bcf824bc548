package pos

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

func sampleSale() *models.Sale {
	custID := "cust-1"
	return &models.Sale{
		ID:            1,
		InvoiceNo:     "INV-2026-0001",
		Date:          time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
		CustomerID:    &custID,
		CustomerName:  "Meera",
		CustomerPhone: "+91 98765-43210",
		Items: []models.SaleItem{
			{ProductID: 1, Name: "Royal Blue Silk", HSNCode: "5007", Unit: models.UnitMeters, TaxRate: 5, Price: 100, Quantity: 2, ItemTotal: 200, ItemTax: 10},
		},
		Subtotal:      200,
		TotalTax:      10,
		Discount:      100,
		Total:         110,
		PaymentMethod: models.PaymentUPI,
		PointsEarned:  11,
		PointsUsed:    1000,
	}
}

func sampleSettings() models.ShopSettings {
	return models.ShopSettings{
		ShopName:           "BusyTextile & Fabrics",
		AddressLine1:       "123 Weaver Street",
		AddressLine2:       "Textile Market",
		City:               "Coimbatore",
		Pincode:            "641001",
		Phone:              "0422-1234567",
		GSTIN:              "33AAAAA0000A1Z5",
		TermsAndConditions: "Goods once sold cannot be returned.",
	}
}

func TestRenderReceipt(t *testing.T) {
	out := RenderReceipt(sampleSale(), sampleSettings())

	assert.Contains(t, out, "BUSYTEXTILE & FABRICS")
	assert.Contains(t, out, "Textile Market, Coimbatore - 641001")
	assert.Contains(t, out, "GSTIN: 33AAAAA0000A1Z5")
	assert.Contains(t, out, "TAX INVOICE")
	assert.Contains(t, out, "Inv: INV-2026-0001")
	assert.Contains(t, out, "Date: 30/08/2026")
	assert.Contains(t, out, "Bill To: Meera")
	assert.Contains(t, out, "Mode: UPI")
	assert.Contains(t, out, "HSN:5007 | GST:5%")
	assert.Contains(t, out, "Taxable: 200.00  CGST: 5.00  SGST: 5.00")
	assert.Contains(t, out, "Discount (1000 pts)")
	assert.Contains(t, out, "-100.00")
	assert.Contains(t, out, "110.00")
	assert.Contains(t, out, "GRAND TOTAL")
	assert.Contains(t, out, "Loyalty Points Earned: 11")
	assert.Contains(t, out, "Goods once sold cannot be returned.")
	assert.Contains(t, out, "*** Thank You, Visit Again ***")
}

func TestRenderReceiptDefaults(t *testing.T) {
	sale := sampleSale()
	sale.Discount = 0
	sale.PointsUsed = 0
	sale.PointsEarned = 0
	sale.CustomerName = ""

	out := RenderReceipt(sale, models.ShopSettings{})

	assert.Contains(t, out, "BUSYTEXTILE SHOP", "falls back to the default shop name")
	assert.NotContains(t, out, "Discount")
	assert.NotContains(t, out, "Bill To:")
	assert.NotContains(t, out, "Loyalty Points Earned")
}

func TestRenderReceiptCityWithoutAddressLine2(t *testing.T) {
	settings := sampleSettings()
	settings.AddressLine2 = ""
	settings.Pincode = ""

	out := RenderReceipt(sampleSale(), settings)
	assert.Contains(t, out, "Coimbatore\n")
	assert.NotContains(t, out, ", Coimbatore")
}

func TestWhatsAppShareLink(t *testing.T) {
	link, err := WhatsAppShareLink(sampleSale(), sampleSettings(), "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)

	raw, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/919876543210?text="))
	require.NoError(t, err)
	assert.Contains(t, raw, "*INVOICE: BusyTextile & Fabrics*")
	assert.Contains(t, raw, "Inv No: INV-2026-0001")
	assert.Contains(t, raw, "Royal Blue Silk x 2 : 200.00")
	assert.Contains(t, raw, "*Grand Total: $110.00*")
	assert.Contains(t, raw, "Loyalty Points Earned: 11")
}

func TestWhatsAppShareLinkOverrideWins(t *testing.T) {
	link, err := WhatsAppShareLink(sampleSale(), sampleSettings(), "(091) 11111 22222")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/0911111122222?text="), link)
}

func TestWhatsAppShareLinkNoPhone(t *testing.T) {
	sale := sampleSale()
	sale.CustomerPhone = ""

	_, err := WhatsAppShareLink(sale, sampleSettings(), "")
	assert.ErrorIs(t, err, ErrNoPhoneNumber)

	// An override with no digits in it does not help.
	_, err = WhatsAppShareLink(sale, sampleSettings(), "n/a")
	assert.ErrorIs(t, err, ErrNoPhoneNumber)
}
