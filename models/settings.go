package models

// ShopSettings is a singleton record describing the issuing shop.
// Used only for receipt rendering.
type ShopSettings struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	ShopName           string `json:"shop_name"`
	AddressLine1       string `json:"address_line1"`
	AddressLine2       string `json:"address_line2"`
	City               string `json:"city"`
	Pincode            string `json:"pincode"`
	Phone              string `json:"phone"`
	GSTIN              string `json:"gstin"`
	TermsAndConditions string `json:"terms_and_conditions"`
}
