package customercontroller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sulthanularief148/RoyalTextiles/models"
	"github.com/sulthanularief148/RoyalTextiles/store"
)

type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
}

// CustomerPatch carries a partial profile edit. Loyalty points and
// total spend are settled by checkout, not through this endpoint.
type CustomerPatch struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin"`
	Tier    *string `json:"tier"`
}

func GetCustomers(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))

		customers, err := st.Customers().List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}

		if search == "" {
			c.JSON(http.StatusOK, customers)
			return
		}
		filtered := make([]models.Customer, 0, len(customers))
		for _, cust := range customers {
			if strings.Contains(strings.ToLower(cust.Name), search) ||
				strings.Contains(cust.Phone, search) {
				filtered = append(filtered, cust)
			}
		}
		c.JSON(http.StatusOK, filtered)
	}
}

func GetCustomerByID(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, err := st.Customers().Get(c.Param("id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func CreateCustomer(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customer := models.Customer{
			ID:       uuid.NewString(),
			Name:     input.Name,
			Phone:    input.Phone,
			Email:    input.Email,
			Address:  input.Address,
			GSTIN:    input.GSTIN,
			Tier:     models.TierBronze,
			JoinDate: time.Now(),
		}
		if err := st.Customers().Add(&customer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

func UpdateCustomer(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch CustomerPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		customer, err := st.Customers().Get(c.Param("id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
			return
		}

		if patch.Name != nil {
			customer.Name = *patch.Name
		}
		if patch.Phone != nil {
			customer.Phone = *patch.Phone
		}
		if patch.Email != nil {
			customer.Email = *patch.Email
		}
		if patch.Address != nil {
			customer.Address = *patch.Address
		}
		if patch.GSTIN != nil {
			customer.GSTIN = *patch.GSTIN
		}
		if patch.Tier != nil {
			switch models.CustomerTier(*patch.Tier) {
			case models.TierBronze, models.TierSilver, models.TierGold:
				customer.Tier = models.CustomerTier(*patch.Tier)
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tier"})
				return
			}
		}

		if err := st.Customers().Update(&customer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}
