package pos

import (
	"errors"
	"fmt"
	"time"

	"github.com/sulthanularief148/RoyalTextiles/models"
	"github.com/sulthanularief148/RoyalTextiles/store"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// CheckoutService commits a cart: it persists the sale, decrements
// stock and settles the customer's loyalty balance, all inside one
// store transaction so a failure leaves nothing half applied.
type CheckoutService struct {
	store         store.Store
	allowOversell bool
}

func NewCheckoutService(st store.Store, allowOversell bool) *CheckoutService {
	return &CheckoutService{store: st, allowOversell: allowOversell}
}

// Checkout finalizes the cart against the given payment method and
// returns the completed sale. The cart is cleared only after the
// transaction commits; on any error it is left untouched.
func (s *CheckoutService) Checkout(cart *Cart, method models.PaymentMethod) (*models.Sale, error) {
	snap, err := cart.beginCheckout()
	if err != nil {
		return nil, err
	}
	completed := false
	defer func() { cart.endCheckout(completed) }()

	now := time.Now()
	var sale *models.Sale
	err = s.store.Transaction(func(tx store.Store) error {
		seq, err := tx.NextInvoiceSeq(now.Year())
		if err != nil {
			return err
		}

		items := make([]models.SaleItem, 0, len(snap.items))
		for _, it := range snap.items {
			items = append(items, models.SaleItem{
				ProductID: it.Product.ID,
				Name:      it.Name,
				HSNCode:   it.HSNCode,
				SKU:       it.SKU,
				Unit:      it.Unit,
				TaxRate:   it.TaxRate,
				Price:     it.Price,
				Quantity:  it.Quantity,
				ItemTotal: it.ItemTotal,
				ItemTax:   it.ItemTax,
			})
		}

		record := models.Sale{
			InvoiceNo:     fmt.Sprintf("INV-%d-%04d", now.Year(), seq),
			Date:          now,
			Items:         items,
			Subtotal:      snap.totals.Subtotal,
			TotalTax:      snap.totals.TotalTax,
			Discount:      snap.totals.RedemptionValue,
			Total:         snap.totals.FinalTotal,
			PaymentMethod: method,
			PointsEarned:  snap.totals.PointsToEarn,
			PointsUsed:    snap.totals.PointsUsed,
		}
		if snap.customer != nil {
			id := snap.customer.ID
			record.CustomerID = &id
			record.CustomerName = snap.customer.Name
			record.CustomerPhone = snap.customer.Phone
		}
		if err := tx.Sales().Add(&record); err != nil {
			return err
		}

		for _, it := range snap.items {
			product, err := tx.Products().GetForUpdate(it.Product.ID)
			if err != nil {
				return err
			}
			if !s.allowOversell && product.Stock < float64(it.Quantity) {
				return fmt.Errorf("%w for product %q", ErrInsufficientStock, product.Name)
			}
			product.Stock -= float64(it.Quantity)
			if err := tx.Products().Update(&product); err != nil {
				return err
			}
		}

		if snap.customer != nil {
			cust, err := tx.Customers().Get(snap.customer.ID)
			if err != nil {
				return err
			}
			cust.LoyaltyPoints = cust.LoyaltyPoints - float64(snap.totals.PointsUsed) + float64(snap.totals.PointsToEarn)
			cust.TotalSpend = roundMoney(cust.TotalSpend + snap.totals.FinalTotal)
			if err := tx.Customers().Update(&cust); err != nil {
				return err
			}
		}

		sale = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	completed = true
	return sale, nil
}
