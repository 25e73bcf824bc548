package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &GormStore{db: db}, nil
}

// AutoMigrate creates or updates all POS tables.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleItem{},
		&models.ShopSettings{},
		&models.InvoiceCounter{},
	)
}

func (s *GormStore) Products() ProductRepo   { return gormProducts{s.db} }
func (s *GormStore) Customers() CustomerRepo { return gormCustomers{s.db} }
func (s *GormStore) Sales() SaleRepo         { return gormSales{s.db} }
func (s *GormStore) Settings() SettingsRepo  { return gormSettings{s.db} }

func (s *GormStore) NextInvoiceSeq(year int) (int64, error) {
	var counter models.InvoiceCounter
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&counter, "year = ?", year).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		counter = models.InvoiceCounter{Year: year, LastSeq: 1}
		if err := s.db.Create(&counter).Error; err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		counter.LastSeq++
		if err := s.db.Save(&counter).Error; err != nil {
			return 0, err
		}
	}
	return counter.LastSeq, nil
}

func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// -------- Products --------

type gormProducts struct{ db *gorm.DB }

func (r gormProducts) List() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("id").Find(&products).Error
	return products, err
}

func (r gormProducts) Get(id uint) (models.Product, error) {
	var p models.Product
	err := r.db.First(&p, "id = ?", id).Error
	return p, mapErr(err)
}

func (r gormProducts) GetForUpdate(id uint) (models.Product, error) {
	var p models.Product
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ?", id).Error
	return p, mapErr(err)
}

func (r gormProducts) Add(p *models.Product) error {
	return r.db.Create(p).Error
}

func (r gormProducts) Update(p *models.Product) error {
	return r.db.Save(p).Error
}

func (r gormProducts) BulkAdd(ps []models.Product) error {
	if len(ps) == 0 {
		return nil
	}
	return r.db.Create(&ps).Error
}

func (r gormProducts) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Product{}).Count(&n).Error
	return n, err
}

// -------- Customers --------

type gormCustomers struct{ db *gorm.DB }

func (r gormCustomers) List() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("name").Find(&customers).Error
	return customers, err
}

func (r gormCustomers) Get(id string) (models.Customer, error) {
	var c models.Customer
	err := r.db.First(&c, "id = ?", id).Error
	return c, mapErr(err)
}

func (r gormCustomers) Add(c *models.Customer) error {
	return r.db.Create(c).Error
}

func (r gormCustomers) Update(c *models.Customer) error {
	return r.db.Save(c).Error
}

func (r gormCustomers) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Customer{}).Count(&n).Error
	return n, err
}

// -------- Sales --------

type gormSales struct{ db *gorm.DB }

func (r gormSales) List() ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Items").Order("date DESC, id DESC").Find(&sales).Error
	return sales, err
}

func (r gormSales) Get(id uint) (models.Sale, error) {
	var s models.Sale
	err := r.db.Preload("Items").First(&s, "id = ?", id).Error
	return s, mapErr(err)
}

func (r gormSales) Add(s *models.Sale) error {
	return r.db.Create(s).Error
}

func (r gormSales) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Sale{}).Count(&n).Error
	return n, err
}

// -------- Settings --------

type gormSettings struct{ db *gorm.DB }

func (r gormSettings) Get() (models.ShopSettings, bool, error) {
	var s models.ShopSettings
	err := r.db.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ShopSettings{}, false, nil
	}
	return s, err == nil, err
}

func (r gormSettings) Save(s *models.ShopSettings) error {
	return r.db.Save(s).Error
}
