// Package store is the persistence boundary of the POS service. The
// engine and the handlers only see the Store interface; the concrete
// driver (Postgres via gorm, or in-memory) is chosen at startup and
// passed in explicitly.
package store

import (
	"errors"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

var ErrNotFound = errors.New("record not found")

type ProductRepo interface {
	List() ([]models.Product, error)
	Get(id uint) (models.Product, error)
	// GetForUpdate reads a product with a row lock when called inside a
	// Transaction. Outside one it behaves like Get.
	GetForUpdate(id uint) (models.Product, error)
	Add(p *models.Product) error
	Update(p *models.Product) error
	BulkAdd(ps []models.Product) error
	Count() (int64, error)
}

type CustomerRepo interface {
	List() ([]models.Customer, error)
	Get(id string) (models.Customer, error)
	Add(c *models.Customer) error
	Update(c *models.Customer) error
	Count() (int64, error)
}

// SaleRepo is append-only: completed sales are never updated or deleted.
type SaleRepo interface {
	List() ([]models.Sale, error) // newest first
	Get(id uint) (models.Sale, error)
	Add(s *models.Sale) error
	Count() (int64, error)
}

type SettingsRepo interface {
	Get() (models.ShopSettings, bool, error)
	Save(s *models.ShopSettings) error
}

type Store interface {
	Products() ProductRepo
	Customers() CustomerRepo
	Sales() SaleRepo
	Settings() SettingsRepo

	// NextInvoiceSeq increments and returns the invoice sequence for the
	// given year. Call it inside a Transaction so a failed checkout does
	// not burn a number.
	NextInvoiceSeq(year int) (int64, error)

	// Transaction runs fn against a transactional view of the store.
	// If fn returns an error, none of its writes are kept.
	Transaction(fn func(Store) error) error
}
