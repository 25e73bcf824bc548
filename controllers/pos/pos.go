package poscontroller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/cache"
	salescontroller "github.com/sulthanularief148/RoyalTextiles/controllers/sales"
	"github.com/sulthanularief148/RoyalTextiles/models"
	"github.com/sulthanularief148/RoyalTextiles/pos"
	"github.com/sulthanularief148/RoyalTextiles/store"
)

// -------- Request Structs --------

type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type QuantityRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Delta     int  `json:"delta" binding:"required"`
}

type SelectCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

type RedeemRequest struct {
	Redeem *bool `json:"redeem" binding:"required"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// -------- Helpers --------

func mapPaymentMethod(s string) (models.PaymentMethod, error) {
	switch models.PaymentMethod(s) {
	case models.PaymentCash, models.PaymentCard, models.PaymentUPI:
		return models.PaymentMethod(s), nil
	default:
		return "", errors.New("invalid payment method")
	}
}

func cartView(cart *pos.Cart) gin.H {
	return gin.H{
		"items":         cart.Items(),
		"customer":      cart.Customer(),
		"redeem_points": cart.RedeemPoints(),
		"totals":        cart.Totals(),
	}
}

// -------- Cart Handlers --------

func GetCart(cart *pos.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func AddItem(st store.Store, cart *pos.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := st.Products().Get(req.ProductID)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		if err := cart.AddItem(product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func UpdateQuantity(cart *pos.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := cart.ChangeQuantity(req.ProductID, req.Delta); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func RemoveItem(cart *pos.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if err := cart.RemoveItem(uint(id)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func ClearCart(cart *pos.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.JSON(http.StatusOK, cartView(cart))
	}
}

// -------- Customer / Loyalty Handlers --------

func SelectCustomer(st store.Store, cart *pos.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customer, err := st.Customers().Get(req.CustomerID)
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}

		cart.SelectCustomer(&customer)
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func DeselectCustomer(cart *pos.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.SelectCustomer(nil)
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func SetRedeemPoints(cart *pos.Cart) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RedeemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cart.SetRedeemPoints(*req.Redeem)
		c.JSON(http.StatusOK, cartView(cart))
	}
}

// -------- Checkout --------

func Checkout(svc *pos.CheckoutService, cart *pos.Cart, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sale, err := svc.Checkout(cart, method)
		switch {
		case errors.Is(err, pos.ErrCheckoutInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		case errors.Is(err, pos.ErrEmptyCart), errors.Is(err, pos.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete sale"})
			return
		}

		// Stock changed; the cached product list is stale now.
		if pc != nil {
			pc.Invalidate(context.Background())
		}
		salescontroller.BroadcastSale(*sale)

		c.JSON(http.StatusCreated, sale)
	}
}

// -------- Receipt --------

func GetReceipt(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale id"})
			return
		}
		sale, err := st.Sales().Get(uint(id))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale"})
			return
		}

		settings, _, err := st.Settings().Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shop settings"})
			return
		}

		c.String(http.StatusOK, pos.RenderReceipt(&sale, settings))
	}
}

func GetWhatsAppLink(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale id"})
			return
		}
		sale, err := st.Sales().Get(uint(id))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale"})
			return
		}

		settings, _, err := st.Settings().Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shop settings"})
			return
		}

		link, err := pos.WhatsAppShareLink(&sale, settings, c.Query("phone"))
		if errors.Is(err, pos.ErrNoPhoneNumber) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build share link"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": link})
	}
}
