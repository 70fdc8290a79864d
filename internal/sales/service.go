package sales

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/shared"
)

// Catalog is the catalog surface the recorder needs: snapshot lookups plus
// the stock decrement that follows a successful sale. DecrementStock is
// expected to persist the product collection.
type Catalog interface {
	ProductByID(id int64) (catalog.Product, error)
	ClientByID(id int64) (catalog.Client, error)
	VendorByID(id int64) (catalog.Vendor, error)
	DecrementStock(id int64, qty int) error
}

// Service owns the in-memory sales ledger. Sales are append-only; no edit
// or delete operation exists.
type Service struct {
	repo     Repository
	catalog  Catalog
	logger   *slog.Logger
	validate *validator.Validate
	now      func() time.Time

	ledger []Sale
}

// NewService loads the ledger and returns a ready service.
func NewService(repo Repository, cat Catalog, logger *slog.Logger) (*Service, error) {
	s := &Service{
		repo:     repo,
		catalog:  cat,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
	var err error
	if s.ledger, err = repo.LoadSales(); err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	return s, nil
}

// Sales returns a copy of the ledger in stored order.
func (s *Service) Sales() []Sale {
	return append([]Sale(nil), s.ledger...)
}

// RecordSale validates the selection, computes the monetary snapshot,
// appends the sale and decrements stock. The two persists are sequential
// best-effort, not a transaction: a crash between them can leave the ledger
// ahead of the stock decrement.
func (s *Service) RecordSale(in RecordSaleInput) (*Sale, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: quantity must be between 1 and 999", shared.ErrInvalidInput)
	}

	product, err := s.catalog.ProductByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	client := catalog.GeneralClient()
	if in.ClientID != catalog.GeneralClientID {
		if client, err = s.catalog.ClientByID(in.ClientID); err != nil {
			return nil, err
		}
	}
	vendor, err := s.catalog.VendorByID(in.VendorID)
	if err != nil {
		return nil, err
	}

	if in.Quantity > product.Stock {
		return nil, fmt.Errorf("%w: only %d units of %s left",
			shared.ErrInsufficientStock, product.Stock, product.Name)
	}

	subtotal := product.SalePrice * float64(in.Quantity)
	profitTotal := product.Profit * float64(in.Quantity)
	commission := profitTotal * vendor.CommissionPct / 100

	sale := Sale{
		ID:            nextSaleID(s.ledger),
		Timestamp:     s.now().Format(TimestampLayout),
		ProductID:     product.ID,
		ProductName:   product.Name,
		PurchasePrice: product.PurchasePrice,
		UnitProfit:    product.Profit,
		ClientID:      client.ID,
		ClientName:    client.Name,
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		Quantity:      in.Quantity,
		UnitPrice:     product.SalePrice,
		Subtotal:      subtotal,
		ProfitTotal:   profitTotal,
		Commission:    commission,
		CommissionPct: vendor.CommissionPct,
		// Commission comes out of the margin; the customer pays the subtotal.
		Total: subtotal,
	}

	s.ledger = append(s.ledger, sale)
	if err := s.repo.SaveSales(s.ledger); err != nil {
		// Drop the unsaved entry so a later successful save cannot
		// resurrect a sale the caller was told failed.
		s.ledger = s.ledger[:len(s.ledger)-1]
		return nil, fmt.Errorf("save sales: %w", err)
	}
	if err := s.catalog.DecrementStock(product.ID, in.Quantity); err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	s.logger.Info("sale recorded",
		slog.Int64("id", sale.ID),
		slog.String("product", sale.ProductName),
		slog.Int("quantity", sale.Quantity),
		slog.Float64("total", sale.Total))
	return &sale, nil
}

// ProductReferenced reports whether any sale references the product.
func (s *Service) ProductReferenced(id int64) bool {
	for _, e := range s.ledger {
		if e.ProductID == id {
			return true
		}
	}
	return false
}

// ClientReferenced reports whether any sale references the client.
func (s *Service) ClientReferenced(id int64) bool {
	for _, e := range s.ledger {
		if e.ClientID == id {
			return true
		}
	}
	return false
}

// VendorReferenced reports whether any sale references the vendor.
func (s *Service) VendorReferenced(id int64) bool {
	for _, e := range s.ledger {
		if e.VendorID == id {
			return true
		}
	}
	return false
}

func nextSaleID(ledger []Sale) int64 {
	var max int64
	for _, e := range ledger {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
