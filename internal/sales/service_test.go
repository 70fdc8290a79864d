package sales

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/shared"
)

type memoryRepo struct {
	ledger  []Sale
	saves   int
	saveErr error
}

func (r *memoryRepo) LoadSales() ([]Sale, error) { return r.ledger, nil }

func (r *memoryRepo) SaveSales(ledger []Sale) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.ledger = append([]Sale(nil), ledger...)
	return nil
}

type stubCatalog struct {
	products map[int64]catalog.Product
	clients  map[int64]catalog.Client
	vendors  map[int64]catalog.Vendor

	decrements   map[int64]int
	decrementErr error
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		products: map[int64]catalog.Product{
			1: {ID: 1, Name: "Coffee", PurchasePrice: 1200, Profit: 300, SalePrice: 1500, Stock: 10},
		},
		clients: map[int64]catalog.Client{
			3: {ID: 3, Name: "Acme Corp", TaxID: "J-1234"},
		},
		vendors: map[int64]catalog.Vendor{
			2: {ID: 2, Name: "Maria", CommissionPct: 10},
		},
		decrements: make(map[int64]int),
	}
}

func (c *stubCatalog) ProductByID(id int64) (catalog.Product, error) {
	if p, ok := c.products[id]; ok {
		return p, nil
	}
	return catalog.Product{}, fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
}

func (c *stubCatalog) ClientByID(id int64) (catalog.Client, error) {
	if cl, ok := c.clients[id]; ok {
		return cl, nil
	}
	return catalog.Client{}, fmt.Errorf("client %d: %w", id, shared.ErrNotFound)
}

func (c *stubCatalog) VendorByID(id int64) (catalog.Vendor, error) {
	if v, ok := c.vendors[id]; ok {
		return v, nil
	}
	return catalog.Vendor{}, fmt.Errorf("vendor %d: %w", id, shared.ErrNotFound)
}

func (c *stubCatalog) DecrementStock(id int64, qty int) error {
	if c.decrementErr != nil {
		return c.decrementErr
	}
	c.decrements[id] += qty
	return nil
}

func newTestService(t *testing.T, repo *memoryRepo, cat *stubCatalog) *Service {
	t.Helper()
	svc, err := NewService(repo, cat, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 10, 14, 30, 0, 0, time.Local)
	}
	return svc
}

func TestRecordSaleComputesSnapshot(t *testing.T) {
	repo := &memoryRepo{}
	cat := newStubCatalog()
	svc := newTestService(t, repo, cat)

	sale, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 3, VendorID: 2, Quantity: 4})
	require.NoError(t, err)

	require.Equal(t, int64(1), sale.ID)
	require.Equal(t, "2024-06-10 14:30:00", sale.Timestamp)
	require.Equal(t, "Coffee", sale.ProductName)
	require.Equal(t, "Acme Corp", sale.ClientName)
	require.Equal(t, "Maria", sale.VendorName)
	require.InDelta(t, 1500, sale.UnitPrice, 0.0001)
	require.InDelta(t, 6000, sale.Subtotal, 0.0001)
	require.InDelta(t, 1200, sale.ProfitTotal, 0.0001)
	require.InDelta(t, 120, sale.Commission, 0.0001, "commission is a share of profit, not revenue")
	require.InDelta(t, 6000, sale.Total, 0.0001, "the customer pays the subtotal")

	require.Equal(t, 4, cat.decrements[1])
	require.Len(t, repo.ledger, 1)
}

func TestRecordSaleGeneralCustomer(t *testing.T) {
	svc := newTestService(t, &memoryRepo{}, newStubCatalog())

	sale, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: catalog.GeneralClientID, VendorID: 2, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, catalog.GeneralClientID, sale.ClientID)
	require.Equal(t, "General Customer", sale.ClientName)
}

func TestRecordSaleQuantityBounds(t *testing.T) {
	svc := newTestService(t, &memoryRepo{}, newStubCatalog())

	for _, qty := range []int{0, -1, 1000} {
		_, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 0, VendorID: 2, Quantity: qty})
		require.ErrorIs(t, err, shared.ErrInvalidInput, "quantity %d", qty)
	}
}

func TestRecordSaleUnknownParties(t *testing.T) {
	svc := newTestService(t, &memoryRepo{}, newStubCatalog())

	_, err := svc.RecordSale(RecordSaleInput{ProductID: 99, ClientID: 0, VendorID: 2, Quantity: 1})
	require.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 99, VendorID: 2, Quantity: 1})
	require.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 0, VendorID: 99, Quantity: 1})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	repo := &memoryRepo{}
	cat := newStubCatalog()
	svc := newTestService(t, repo, cat)

	_, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 0, VendorID: 2, Quantity: 11})
	require.ErrorIs(t, err, shared.ErrInsufficientStock)
	require.ErrorContains(t, err, "only 10 units")
	require.Empty(t, repo.ledger, "a refused sale appends nothing")
	require.Zero(t, cat.decrements[1], "a refused sale decrements nothing")
}

func TestRecordSaleExactStockAllowed(t *testing.T) {
	cat := newStubCatalog()
	svc := newTestService(t, &memoryRepo{}, cat)

	_, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 0, VendorID: 2, Quantity: 10})
	require.NoError(t, err)
	require.Equal(t, 10, cat.decrements[1])
}

func TestRecordSaleIDsIncrement(t *testing.T) {
	repo := &memoryRepo{ledger: []Sale{{ID: 5, ProductID: 1, VendorID: 2}}}
	svc := newTestService(t, repo, newStubCatalog())

	sale, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 0, VendorID: 2, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, int64(6), sale.ID)
}

func TestRecordSaleSaveErrorPropagates(t *testing.T) {
	repo := &memoryRepo{saveErr: errors.New("disk full")}
	cat := newStubCatalog()
	svc := newTestService(t, repo, cat)

	_, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 0, VendorID: 2, Quantity: 1})
	require.ErrorContains(t, err, "disk full")
	require.Zero(t, cat.decrements[1], "stock untouched when the ledger write fails")
	require.Empty(t, svc.Sales(), "the failed sale does not linger in memory")
}

func TestRecordSaleFailedSaveIsNotResurrected(t *testing.T) {
	repo := &memoryRepo{saveErr: errors.New("disk full")}
	cat := newStubCatalog()
	svc := newTestService(t, repo, cat)

	_, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 0, VendorID: 2, Quantity: 2})
	require.Error(t, err)

	repo.saveErr = nil
	sale, err := svc.RecordSale(RecordSaleInput{ProductID: 1, ClientID: 0, VendorID: 2, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, int64(1), sale.ID, "the rolled-back sale frees its id")

	require.Len(t, repo.ledger, 1, "only the successful sale reaches disk")
	require.Equal(t, int64(1), repo.ledger[0].ID)
	require.Equal(t, 1, cat.decrements[1], "stock matches the one persisted sale")
}

func TestReferencedCheckers(t *testing.T) {
	repo := &memoryRepo{ledger: []Sale{
		{ID: 1, ProductID: 1, ClientID: 3, VendorID: 2},
	}}
	svc := newTestService(t, repo, newStubCatalog())

	require.True(t, svc.ProductReferenced(1))
	require.False(t, svc.ProductReferenced(9))
	require.True(t, svc.ClientReferenced(3))
	require.False(t, svc.ClientReferenced(9))
	require.True(t, svc.VendorReferenced(2))
	require.False(t, svc.VendorReferenced(9))
}
