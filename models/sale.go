package models

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentCard PaymentMethod = "Card"
	PaymentUPI  PaymentMethod = "UPI"
)

// Sale is an immutable record of a completed checkout. It snapshots the
// cart lines and all derived totals; there is no update or delete path.
type Sale struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	InvoiceNo     string        `gorm:"uniqueIndex;not null" json:"invoice_no"`
	Date          time.Time     `json:"date"`
	CustomerID    *string       `json:"customer_id,omitempty"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	Items         []SaleItem    `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	TotalTax      float64       `json:"total_tax"`
	Discount      float64       `json:"discount"` // loyalty redemption value
	Total         float64       `json:"total"`    // subtotal + totalTax - discount
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(10)" json:"payment_method"`
	PointsEarned  int           `json:"points_earned"`
	PointsUsed    int           `json:"points_used"`
}

type SaleItem struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	SaleID    uint          `gorm:"index" json:"sale_id"`
	ProductID uint          `json:"product_id"`
	Name      string        `json:"name"`
	HSNCode   string        `json:"hsn_code"`
	SKU       string        `json:"sku"`
	Unit      UnitOfMeasure `json:"unit"`
	TaxRate   float64       `json:"tax_rate"`
	Price     float64       `json:"price"` // unit price at time of sale
	Quantity  int           `json:"quantity"`
	ItemTotal float64       `json:"item_total"`
	ItemTax   float64       `json:"item_tax"`
}

// InvoiceCounter backs the per-year monotonic invoice sequence.
type InvoiceCounter struct {
	Year    int   `gorm:"primaryKey" json:"year"`
	LastSeq int64 `gorm:"not null" json:"last_seq"`
}
