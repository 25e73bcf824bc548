package store

import (
	"sort"
	"sync"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

// MemoryStore keeps everything in process memory. It backs the tests
// and the no-database demo mode (STORE_DRIVER=memory).
type MemoryStore struct {
	mu    sync.Mutex
	state memState
}

type memState struct {
	products      map[uint]models.Product
	nextProductID uint
	customers     map[string]models.Customer
	sales         []models.Sale
	nextSaleID    uint
	settings      *models.ShopSettings
	counters      map[int]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: memState{
		products:      make(map[uint]models.Product),
		nextProductID: 1,
		customers:     make(map[string]models.Customer),
		nextSaleID:    1,
		counters:      make(map[int]int64),
	}}
}

func (s *MemoryStore) Products() ProductRepo   { return memProducts{s: s} }
func (s *MemoryStore) Customers() CustomerRepo { return memCustomers{s: s} }
func (s *MemoryStore) Sales() SaleRepo         { return memSales{s: s} }
func (s *MemoryStore) Settings() SettingsRepo  { return memSettings{s: s} }

func (s *MemoryStore) NextInvoiceSeq(year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.counters[year]++
	return s.state.counters[year], nil
}

// Transaction holds the store lock for the whole callback and restores
// a snapshot of the state if the callback fails, so the memory driver
// gives the same all-or-nothing behavior as the database one.
func (s *MemoryStore) Transaction(fn func(Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state.clone()
	if err := fn(&memTx{s: s}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (st memState) clone() memState {
	out := memState{
		products:      make(map[uint]models.Product, len(st.products)),
		nextProductID: st.nextProductID,
		customers:     make(map[string]models.Customer, len(st.customers)),
		sales:         make([]models.Sale, len(st.sales)),
		nextSaleID:    st.nextSaleID,
		counters:      make(map[int]int64, len(st.counters)),
	}
	for k, v := range st.products {
		out.products[k] = v
	}
	for k, v := range st.customers {
		out.customers[k] = v
	}
	for i, sale := range st.sales {
		sale.Items = append([]models.SaleItem(nil), sale.Items...)
		out.sales[i] = sale
	}
	if st.settings != nil {
		cp := *st.settings
		out.settings = &cp
	}
	for k, v := range st.counters {
		out.counters[k] = v
	}
	return out
}

// memTx is the view handed to Transaction callbacks. The outer lock is
// already held, so its repos skip locking.
type memTx struct{ s *MemoryStore }

func (t *memTx) Products() ProductRepo   { return memProducts{s: t.s, inTx: true} }
func (t *memTx) Customers() CustomerRepo { return memCustomers{s: t.s, inTx: true} }
func (t *memTx) Sales() SaleRepo         { return memSales{s: t.s, inTx: true} }
func (t *memTx) Settings() SettingsRepo  { return memSettings{s: t.s, inTx: true} }

func (t *memTx) NextInvoiceSeq(year int) (int64, error) {
	t.s.state.counters[year]++
	return t.s.state.counters[year], nil
}

func (t *memTx) Transaction(fn func(Store) error) error {
	// Already inside the outer transaction.
	return fn(t)
}

// -------- Products --------

type memProducts struct {
	s    *MemoryStore
	inTx bool
}

func (r memProducts) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r memProducts) List() ([]models.Product, error) {
	defer r.lock()()
	out := make([]models.Product, 0, len(r.s.state.products))
	for _, p := range r.s.state.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProducts) Get(id uint) (models.Product, error) {
	defer r.lock()()
	p, ok := r.s.state.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (r memProducts) GetForUpdate(id uint) (models.Product, error) {
	return r.Get(id)
}

func (r memProducts) Add(p *models.Product) error {
	defer r.lock()()
	r.add(p)
	return nil
}

func (r memProducts) add(p *models.Product) {
	if p.ID == 0 {
		p.ID = r.s.state.nextProductID
	}
	if p.ID >= r.s.state.nextProductID {
		r.s.state.nextProductID = p.ID + 1
	}
	r.s.state.products[p.ID] = *p
}

func (r memProducts) Update(p *models.Product) error {
	defer r.lock()()
	if _, ok := r.s.state.products[p.ID]; !ok {
		return ErrNotFound
	}
	r.s.state.products[p.ID] = *p
	return nil
}

func (r memProducts) BulkAdd(ps []models.Product) error {
	defer r.lock()()
	for i := range ps {
		r.add(&ps[i])
	}
	return nil
}

func (r memProducts) Count() (int64, error) {
	defer r.lock()()
	return int64(len(r.s.state.products)), nil
}

// -------- Customers --------

type memCustomers struct {
	s    *MemoryStore
	inTx bool
}

func (r memCustomers) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r memCustomers) List() ([]models.Customer, error) {
	defer r.lock()()
	out := make([]models.Customer, 0, len(r.s.state.customers))
	for _, c := range r.s.state.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memCustomers) Get(id string) (models.Customer, error) {
	defer r.lock()()
	c, ok := r.s.state.customers[id]
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	return c, nil
}

func (r memCustomers) Add(c *models.Customer) error {
	defer r.lock()()
	r.s.state.customers[c.ID] = *c
	return nil
}

func (r memCustomers) Update(c *models.Customer) error {
	defer r.lock()()
	if _, ok := r.s.state.customers[c.ID]; !ok {
		return ErrNotFound
	}
	r.s.state.customers[c.ID] = *c
	return nil
}

func (r memCustomers) Count() (int64, error) {
	defer r.lock()()
	return int64(len(r.s.state.customers)), nil
}

// -------- Sales --------

type memSales struct {
	s    *MemoryStore
	inTx bool
}

func (r memSales) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r memSales) List() ([]models.Sale, error) {
	defer r.lock()()
	out := make([]models.Sale, 0, len(r.s.state.sales))
	for i := len(r.s.state.sales) - 1; i >= 0; i-- {
		sale := r.s.state.sales[i]
		sale.Items = append([]models.SaleItem(nil), sale.Items...)
		out = append(out, sale)
	}
	return out, nil
}

func (r memSales) Get(id uint) (models.Sale, error) {
	defer r.lock()()
	for _, sale := range r.s.state.sales {
		if sale.ID == id {
			sale.Items = append([]models.SaleItem(nil), sale.Items...)
			return sale, nil
		}
	}
	return models.Sale{}, ErrNotFound
}

func (r memSales) Add(sale *models.Sale) error {
	defer r.lock()()
	sale.ID = r.s.state.nextSaleID
	r.s.state.nextSaleID++
	for i := range sale.Items {
		sale.Items[i].ID = uint(i + 1)
		sale.Items[i].SaleID = sale.ID
	}
	stored := *sale
	stored.Items = append([]models.SaleItem(nil), sale.Items...)
	r.s.state.sales = append(r.s.state.sales, stored)
	return nil
}

func (r memSales) Count() (int64, error) {
	defer r.lock()()
	return int64(len(r.s.state.sales)), nil
}

// -------- Settings --------

type memSettings struct {
	s    *MemoryStore
	inTx bool
}

func (r memSettings) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r memSettings) Get() (models.ShopSettings, bool, error) {
	defer r.lock()()
	if r.s.state.settings == nil {
		return models.ShopSettings{}, false, nil
	}
	return *r.s.state.settings, true, nil
}

func (r memSettings) Save(s *models.ShopSettings) error {
	defer r.lock()()
	if s.ID == 0 {
		s.ID = 1
	}
	cp := *s
	r.s.state.settings = &cp
	return nil
}
