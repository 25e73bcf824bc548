package models

import "time"

type ProductType string
type UnitOfMeasure string

const (
	ProductTypeFabric    ProductType = "Fabric"
	ProductTypeYarn      ProductType = "Yarn"
	ProductTypeAccessory ProductType = "Accessory"
	ProductTypeReadyMade ProductType = "Ready Made"

	UnitMeters UnitOfMeasure = "Meters"
	UnitKg     UnitOfMeasure = "Kg"
	UnitPcs    UnitOfMeasure = "Pcs"
	UnitBox    UnitOfMeasure = "Box"
	UnitRoll   UnitOfMeasure = "Roll"
)

type Product struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"not null" json:"name"`
	Type          ProductType   `gorm:"type:VARCHAR(20)" json:"type"`
	Material      string        `json:"material"`
	Color         string        `json:"color"`
	Variant       string        `json:"variant"`
	Unit          UnitOfMeasure `gorm:"type:VARCHAR(10)" json:"unit"`
	HSNCode       string        `json:"hsn_code"` // GST requirement, printed on receipts
	TaxRate       float64       `json:"tax_rate"` // percent: typically 5, 12, 18 or 28
	Price         float64       `gorm:"not null" json:"price"` // unit price, exclusive of tax
	CostPrice     float64       `json:"cost_price"`
	Stock         float64       `json:"stock"` // fractional for Meters/Kg units
	MinStockLevel float64       `json:"min_stock_level"`
	SKU           string        `json:"sku"`
	Supplier      string        `json:"supplier"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"image_url"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
