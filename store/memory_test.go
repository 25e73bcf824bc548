package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

func TestMemoryProducts(t *testing.T) {
	st := NewMemoryStore()

	p := models.Product{Name: "Cotton Floral Print", Price: 120, TaxRate: 5, Stock: 30}
	require.NoError(t, st.Products().Add(&p))
	assert.Equal(t, uint(1), p.ID, "add assigns the next id")

	got, err := st.Products().Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Cotton Floral Print", got.Name)

	got.Stock = 25
	require.NoError(t, st.Products().Update(&got))
	got, err = st.Products().Get(1)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Stock)

	_, err = st.Products().Get(99)
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.Products().Update(&models.Product{ID: 99, Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryProductsBulkAdd(t *testing.T) {
	st := NewMemoryStore()

	batch := []models.Product{
		{Name: "Wool Yarn Ball", Price: 80},
		{Name: "Gold Buttons", Price: 250},
	}
	require.NoError(t, st.Products().BulkAdd(batch))
	assert.Equal(t, uint(1), batch[0].ID)
	assert.Equal(t, uint(2), batch[1].ID)

	n, err := st.Products().Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	list, err := st.Products().List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Wool Yarn Ball", list[0].Name, "list is ordered by id")
}

func TestMemoryCustomers(t *testing.T) {
	st := NewMemoryStore()

	c := models.Customer{ID: "c1", Name: "Meera", LoyaltyPoints: 100}
	require.NoError(t, st.Customers().Add(&c))

	got, err := st.Customers().Get("c1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.LoyaltyPoints)

	got.LoyaltyPoints = 50
	require.NoError(t, st.Customers().Update(&got))
	got, err = st.Customers().Get("c1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.LoyaltyPoints)

	_, err = st.Customers().Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySalesAppendOnly(t *testing.T) {
	st := NewMemoryStore()

	first := models.Sale{InvoiceNo: "INV-2026-0001", Items: []models.SaleItem{{Name: "Silk", Quantity: 1}}}
	second := models.Sale{InvoiceNo: "INV-2026-0002"}
	require.NoError(t, st.Sales().Add(&first))
	require.NoError(t, st.Sales().Add(&second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(1), first.Items[0].SaleID)

	list, err := st.Sales().List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "INV-2026-0002", list[0].InvoiceNo, "newest first")

	got, err := st.Sales().Get(1)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", got.InvoiceNo)
	require.Len(t, got.Items, 1)

	// Mutating a returned sale must not leak into the store.
	got.Items[0].Name = "tampered"
	again, err := st.Sales().Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Silk", again.Items[0].Name)
}

func TestMemorySettings(t *testing.T) {
	st := NewMemoryStore()

	_, ok, err := st.Settings().Get()
	require.NoError(t, err)
	assert.False(t, ok)

	s := models.ShopSettings{ShopName: "BusyTextile & Fabrics"}
	require.NoError(t, st.Settings().Save(&s))
	assert.Equal(t, uint(1), s.ID)

	got, ok, err := st.Settings().Get()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "BusyTextile & Fabrics", got.ShopName)
}

func TestMemoryInvoiceSeqPerYear(t *testing.T) {
	st := NewMemoryStore()

	for want := int64(1); want <= 3; want++ {
		seq, err := st.NextInvoiceSeq(2026)
		require.NoError(t, err)
		assert.Equal(t, want, seq)
	}

	seq, err := st.NextInvoiceSeq(2027)
	require.NoError(t, err)
	assert.EqualValues(t, 1, seq, "each year counts from one")
}

func TestMemoryTransactionRollback(t *testing.T) {
	st := NewMemoryStore()

	p := models.Product{Name: "Silk", Price: 100, Stock: 10}
	require.NoError(t, st.Products().Add(&p))
	c := models.Customer{ID: "c1", Name: "Meera", LoyaltyPoints: 100}
	require.NoError(t, st.Customers().Add(&c))

	boom := errors.New("boom")
	err := st.Transaction(func(tx Store) error {
		if _, err := tx.NextInvoiceSeq(2026); err != nil {
			return err
		}
		if err := tx.Sales().Add(&models.Sale{InvoiceNo: "INV-2026-0001"}); err != nil {
			return err
		}
		prod, err := tx.Products().GetForUpdate(1)
		if err != nil {
			return err
		}
		prod.Stock = 0
		if err := tx.Products().Update(&prod); err != nil {
			return err
		}
		cust, err := tx.Customers().Get("c1")
		if err != nil {
			return err
		}
		cust.LoyaltyPoints = 0
		if err := tx.Customers().Update(&cust); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := st.Sales().Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	prod, err := st.Products().Get(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, prod.Stock)

	cust, err := st.Customers().Get("c1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, cust.LoyaltyPoints)

	seq, err := st.NextInvoiceSeq(2026)
	require.NoError(t, err)
	assert.EqualValues(t, 1, seq, "rolled-back transaction does not burn a sequence number")
}

func TestMemoryTransactionCommit(t *testing.T) {
	st := NewMemoryStore()

	err := st.Transaction(func(tx Store) error {
		return tx.Products().Add(&models.Product{Name: "Silk", Price: 100})
	})
	require.NoError(t, err)

	n, err := st.Products().Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
