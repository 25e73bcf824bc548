package pos

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

var ErrNoPhoneNumber = errors.New("no phone number for customer")

const receiptWidth = 42

// RenderReceipt produces the printable till receipt for a completed
// sale. It is a pure derivation from the sale snapshot plus the shop
// settings and reproduces the billed figures verbatim; the total tax
// is shown split into two equal CGST and SGST halves.
func RenderReceipt(sale *models.Sale, settings models.ShopSettings) string {
	shopName := settings.ShopName
	if shopName == "" {
		shopName = "BusyTextile Shop"
	}

	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}
	divider := func(ch string) {
		b.WriteString(strings.Repeat(ch, receiptWidth) + "\n")
	}

	line("%s", center(strings.ToUpper(shopName)))
	if settings.AddressLine1 != "" {
		line("%s", center(settings.AddressLine1))
	}
	locality := settings.AddressLine2
	if settings.City != "" {
		if locality != "" {
			locality += ", "
		}
		locality += settings.City
		if settings.Pincode != "" {
			locality += " - " + settings.Pincode
		}
	}
	if locality != "" {
		line("%s", center(locality))
	}
	if settings.Phone != "" {
		line("%s", center("Ph: "+settings.Phone))
	}
	if settings.GSTIN != "" {
		line("%s", center("GSTIN: "+settings.GSTIN))
	}
	line("%s", center("TAX INVOICE"))
	divider("-")

	line("Inv: %s", sale.InvoiceNo)
	line("Date: %s", sale.Date.Format("02/01/2006"))
	if sale.CustomerName != "" {
		line("Bill To: %s", sale.CustomerName)
	}
	line("Mode: %s", sale.PaymentMethod)
	divider("-")

	line("%-20s %4s %7s %8s", "Item", "Qty", "Rate", "Amt")
	divider("-")
	for _, it := range sale.Items {
		line("%-20s %4d %7.2f %8.2f", clip(it.Name, 20), it.Quantity, it.Price, it.ItemTotal)
		line("  HSN:%s | GST:%g%%", it.HSNCode, it.TaxRate)
	}
	divider("-")

	half := roundMoney(sale.TotalTax / 2)
	line("Taxable: %.2f  CGST: %.2f  SGST: %.2f", sale.Subtotal, half, half)
	divider("-")

	line("%-25s %15.2f", "Subtotal", sale.Subtotal)
	line("%-25s %15.2f", "Total Tax", sale.TotalTax)
	if sale.Discount > 0 {
		line("%-25s %15.2f", fmt.Sprintf("Discount (%d pts)", sale.PointsUsed), -sale.Discount)
	}
	divider("=")
	line("%-25s %15.2f", "GRAND TOTAL", sale.Total)
	divider("=")

	if sale.PointsEarned > 0 {
		line("Loyalty Points Earned: %d", sale.PointsEarned)
	}
	if settings.TermsAndConditions != "" {
		line("%s", settings.TermsAndConditions)
	}
	line("%s", center("*** Thank You, Visit Again ***"))
	return b.String()
}

// WhatsAppShareLink builds the deep link that opens a chat with the
// customer and a prefilled invoice summary. phoneOverride, when set,
// wins over the phone stored on the sale. Phone numbers are reduced to
// digits only.
func WhatsAppShareLink(sale *models.Sale, settings models.ShopSettings, phoneOverride string) (string, error) {
	phone := digitsOnly(phoneOverride)
	if phone == "" {
		phone = digitsOnly(sale.CustomerPhone)
	}
	if phone == "" {
		return "", ErrNoPhoneNumber
	}

	shopName := settings.ShopName
	if shopName == "" {
		shopName = "BusyTextile"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*INVOICE: %s*\n", shopName)
	fmt.Fprintf(&b, "Inv No: %s\n", sale.InvoiceNo)
	fmt.Fprintf(&b, "Date: %s\n", sale.Date.Format("02/01/2006"))
	b.WriteString("------------------------\n")
	for _, it := range sale.Items {
		fmt.Fprintf(&b, "%s x %d : %.2f\n", it.Name, it.Quantity, it.ItemTotal)
	}
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "*Grand Total: $%.2f*\n", sale.Total)
	if sale.PointsEarned > 0 {
		fmt.Fprintf(&b, "Loyalty Points Earned: %d\n", sale.PointsEarned)
	}
	b.WriteString("\nThank you for shopping with us!")

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(b.String()), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	pad := (receiptWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
