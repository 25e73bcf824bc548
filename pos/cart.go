// Package pos holds the point-of-sale core: the cart engine, the
// checkout orchestrator and receipt rendering.
package pos

import (
	"errors"
	"sync"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

var (
	ErrUnsavedProduct     = errors.New("product has not been saved and cannot be sold")
	ErrItemNotFound       = errors.New("item is not in the cart")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("a checkout is already in progress")
)

// CartItem is one bill line: a snapshot of the product at the moment it
// was added, plus the quantity and the derived amounts for that line.
type CartItem struct {
	models.Product
	Quantity  int     `json:"quantity"`
	ItemTotal float64 `json:"item_total"`
	ItemTax   float64 `json:"item_tax"`
}

// Cart is the state of one till session: an ordered sequence of lines,
// at most one selected customer, and the redeem-points flag. It is
// discarded (cleared) after each completed sale.
type Cart struct {
	mu         sync.Mutex
	items      []CartItem
	customer   *models.Customer
	redeem     bool
	inCheckout bool
}

func NewCart() *Cart { return &Cart{} }

func recalc(it CartItem) CartItem {
	it.ItemTotal, it.ItemTax = lineAmounts(it.Price, it.Quantity, it.TaxRate)
	return it
}

// AddItem merges into an existing line for the same product, otherwise
// appends a new line with quantity 1. Stock is not checked here; the
// sufficiency decision belongs to checkout.
func (c *Cart) AddItem(p models.Product) error {
	if p.ID == 0 {
		return ErrUnsavedProduct
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.Product.ID == p.ID {
			it.Quantity++
			c.items[i] = recalc(it)
			return nil
		}
	}
	c.items = append(c.items, recalc(CartItem{Product: p, Quantity: 1}))
	return nil
}

// ChangeQuantity adjusts a line's quantity by delta. A change that
// would take the quantity to zero or below is rejected as a no-op:
// the line stays at its current quantity, removal is explicit.
func (c *Cart) ChangeQuantity(productID uint, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.Product.ID == productID {
			if it.Quantity+delta <= 0 {
				return nil
			}
			it.Quantity += delta
			c.items[i] = recalc(it)
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) RemoveItem(productID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// SelectCustomer sets or clears the customer on the cart. Clearing
// always clears the redeem flag with it.
func (c *Cart) SelectCustomer(cust *models.Customer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cust == nil {
		c.customer = nil
		c.redeem = false
		return
	}
	snapshot := *cust
	c.customer = &snapshot
}

// SetRedeemPoints turns redemption on or off. Turning it on has no
// effect unless a customer is selected and the cart has lines.
func (c *Cart) SetRedeemPoints(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on && (c.customer == nil || len(c.items) == 0) {
		return
	}
	c.redeem = on
}

func (c *Cart) Customer() *models.Customer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.customer == nil {
		return nil
	}
	snapshot := *c.customer
	return &snapshot
}

func (c *Cart) RedeemPoints() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.redeem
}

func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CartItem(nil), c.items...)
}

func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return computeTotals(c.items, c.customer, c.redeem)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.customer = nil
	c.redeem = false
}

type checkoutSnapshot struct {
	items    []CartItem
	customer *models.Customer
	totals   Totals
}

// beginCheckout atomically validates the cart, marks a checkout in
// flight and captures a consistent snapshot of lines, customer and
// totals. A second call before endCheckout fails.
func (c *Cart) beginCheckout() (checkoutSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inCheckout {
		return checkoutSnapshot{}, ErrCheckoutInProgress
	}
	if len(c.items) == 0 {
		return checkoutSnapshot{}, ErrEmptyCart
	}
	c.inCheckout = true
	snap := checkoutSnapshot{
		items:  append([]CartItem(nil), c.items...),
		totals: computeTotals(c.items, c.customer, c.redeem),
	}
	if c.customer != nil {
		cust := *c.customer
		snap.customer = &cust
	}
	return snap, nil
}

// endCheckout releases the in-flight guard. A completed checkout also
// resets the cart for the next sale.
func (c *Cart) endCheckout(completed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inCheckout = false
	if completed {
		c.items = nil
		c.customer = nil
		c.redeem = false
	}
}
