package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

// Seed populates an empty store with a starter catalog, a walk-in
// customer and default shop settings. A store that already has
// products is left alone.
func Seed(s Store) error {
	count, err := s.Products().Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:          "Royal Blue Silk",
			Type:          models.ProductTypeFabric,
			Material:      "Silk",
			Color:         "Royal Blue",
			Variant:       "Raw Silk",
			Unit:          models.UnitMeters,
			HSNCode:       "5007",
			TaxRate:       5,
			Price:         450.00,
			Stock:         120,
			MinStockLevel: 50,
			SKU:           "SLK-BLU-001",
			ImageURL:      "https://picsum.photos/200/200?random=1",
		},
		{
			Name:          "Cotton Floral Print",
			Type:          models.ProductTypeFabric,
			Material:      "Cotton",
			Color:         "Multicolor",
			Variant:       "60s Count",
			Unit:          models.UnitMeters,
			HSNCode:       "5208",
			TaxRate:       5,
			Price:         120.00,
			Stock:         500,
			MinStockLevel: 100,
			SKU:           "CTN-FLR-002",
			ImageURL:      "https://picsum.photos/200/200?random=2",
		},
		{
			Name:          "Wool Yarn Ball",
			Type:          models.ProductTypeYarn,
			Material:      "Wool",
			Color:         "Grey",
			Variant:       "100g",
			Unit:          models.UnitKg,
			HSNCode:       "5109",
			TaxRate:       5,
			Price:         80.00,
			Stock:         45,
			MinStockLevel: 10,
			SKU:           "WL-GRY-100",
			ImageURL:      "https://picsum.photos/200/200?random=3",
		},
		{
			Name:          "Gold Buttons",
			Type:          models.ProductTypeAccessory,
			Material:      "Metal",
			Color:         "Gold",
			Variant:       "18mm",
			Unit:          models.UnitBox,
			HSNCode:       "9606",
			TaxRate:       12,
			Price:         250.00,
			Stock:         20,
			MinStockLevel: 5,
			SKU:           "BTN-GLD-10",
			ImageURL:      "https://picsum.photos/200/200?random=4",
		},
	}
	if err := s.Products().BulkAdd(products); err != nil {
		return err
	}

	walkIn := models.Customer{
		ID:       uuid.NewString(),
		Name:     "Cash Customer",
		Phone:    "0000000000",
		Email:    "walkin@store.com",
		Tier:     models.TierBronze,
		JoinDate: time.Now(),
	}
	if err := s.Customers().Add(&walkIn); err != nil {
		return err
	}

	settings := models.ShopSettings{
		ShopName:           "BusyTextile & Fabrics",
		AddressLine1:       "12, Market Road",
		AddressLine2:       "Textile Market Area",
		City:               "Mumbai",
		Pincode:            "400002",
		Phone:              "+91 98765 43210",
		GSTIN:              "27AAAAA0000A1Z5",
		TermsAndConditions: "No returns on cut fabrics. Exchange within 7 days.",
	}
	return s.Settings().Save(&settings)
}
