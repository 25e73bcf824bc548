package settingscontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/store"
)

type SettingsInput struct {
	ShopName           string `json:"shop_name" binding:"required"`
	AddressLine1       string `json:"address_line1"`
	AddressLine2       string `json:"address_line2"`
	City               string `json:"city"`
	Pincode            string `json:"pincode"`
	Phone              string `json:"phone"`
	GSTIN              string `json:"gstin"`
	TermsAndConditions string `json:"terms_and_conditions"`
}

func GetSettings(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, ok, err := st.Settings().Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shop settings not configured"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// SaveSettings creates or replaces the single shop-settings record.
func SaveSettings(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		settings, _, err := st.Settings().Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		settings.ShopName = input.ShopName
		settings.AddressLine1 = input.AddressLine1
		settings.AddressLine2 = input.AddressLine2
		settings.City = input.City
		settings.Pincode = input.Pincode
		settings.Phone = input.Phone
		settings.GSTIN = input.GSTIN
		settings.TermsAndConditions = input.TermsAndConditions

		if err := st.Settings().Save(&settings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
