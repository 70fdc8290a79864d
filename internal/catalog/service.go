package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vendia-pos/vendia/internal/shared"
)

// minPurchasePrice is the floor a bulk cost decrease cannot cross.
const minPurchasePrice = 0.01

// UsageChecker reports whether sales still reference a catalog record.
// Deletes are refused while a reference exists so historical sales always
// point at ids that once were real.
type UsageChecker interface {
	ProductReferenced(id int64) bool
	ClientReferenced(id int64) bool
	VendorReferenced(id int64) bool
}

// Service owns the in-memory catalog collections and rewrites the affected
// collection after every mutation.
type Service struct {
	repo     Repository
	logger   *slog.Logger
	validate *validator.Validate
	usage    UsageChecker

	products []Product
	clients  []Client
	vendors  []Vendor
}

// NewService loads all three collections and returns a ready service.
func NewService(repo Repository, logger *slog.Logger) (*Service, error) {
	s := &Service{
		repo:     repo,
		logger:   logger,
		validate: validator.New(),
	}
	var err error
	if s.products, err = repo.LoadProducts(); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if s.clients, err = repo.LoadClients(); err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	if s.vendors, err = repo.LoadVendors(); err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}
	return s, nil
}

// SetUsage wires the sale-reference checker. It is injected after
// construction because the sales ledger is itself loaded on top of the
// catalog. With no checker set, deletes skip the referential guard.
func (s *Service) SetUsage(usage UsageChecker) {
	s.usage = usage
}

// ============================================================================
// PRODUCTS
// ============================================================================

// Products returns a copy of the product collection in stored order.
func (s *Service) Products() []Product {
	return append([]Product(nil), s.products...)
}

// ProductByID returns the product with the given id.
func (s *Service) ProductByID(id int64) (Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
}

// CreateProduct validates the input, assigns the next id and persists the
// collection.
func (s *Service) CreateProduct(in CreateProductInput) (Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return Product{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	p := Product{
		ID:            nextProductID(s.products),
		Name:          strings.TrimSpace(in.Name),
		PurchasePrice: in.PurchasePrice,
		Profit:        in.Profit,
		SalePrice:     in.PurchasePrice + in.Profit,
		Stock:         in.Stock,
	}
	s.products = append(s.products, p)
	if err := s.repo.SaveProducts(s.products); err != nil {
		// Keep memory and disk aligned when the rewrite fails.
		s.products = s.products[:len(s.products)-1]
		return Product{}, fmt.Errorf("save products: %w", err)
	}
	s.logger.Info("product created", slog.Int64("id", p.ID), slog.String("name", p.Name))
	return p, nil
}

// UpdateProduct applies the non-nil fields and re-derives the sale price.
func (s *Service) UpdateProduct(id int64, in UpdateProductInput) (Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return Product{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	i := productIndex(s.products, id)
	if i < 0 {
		return Product{}, fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
	}
	p := &s.products[i]
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.PurchasePrice != nil {
		p.PurchasePrice = *in.PurchasePrice
	}
	if in.Profit != nil {
		p.Profit = *in.Profit
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	p.SalePrice = p.PurchasePrice + p.Profit
	if err := s.repo.SaveProducts(s.products); err != nil {
		return Product{}, fmt.Errorf("save products: %w", err)
	}
	return *p, nil
}

// DeleteProduct removes a product unless a sale references it.
func (s *Service) DeleteProduct(id int64) error {
	if s.usage != nil && s.usage.ProductReferenced(id) {
		return fmt.Errorf("product %d: %w", id, shared.ErrReferentialConflict)
	}
	i := productIndex(s.products, id)
	if i < 0 {
		return fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	if err := s.repo.SaveProducts(s.products); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	s.logger.Info("product deleted", slog.Int64("id", id))
	return nil
}

// DecrementStock subtracts a sold quantity from a product's stock and
// persists the collection. The quantity-versus-stock check happens before
// the sale is appended; this only applies the agreed decrement.
func (s *Service) DecrementStock(id int64, qty int) error {
	i := productIndex(s.products, id)
	if i < 0 {
		return fmt.Errorf("product %d: %w", id, shared.ErrNotFound)
	}
	s.products[i].Stock -= qty
	if err := s.repo.SaveProducts(s.products); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}

// SearchProducts matches a numeric term against ids exactly, anything else
// against names case-insensitively.
func (s *Service) SearchProducts(term string) []Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	if id, ok := numericTerm(term); ok {
		if p, err := s.ProductByID(id); err == nil {
			return []Product{p}
		}
		return nil
	}
	needle := strings.ToLower(term)
	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// BulkAdjustCost applies a percentage change to every positive purchase
// price, re-derives sale prices and persists once. Decreases never push a
// price below the floor. Returns how many products changed; zero percent is
// a no-op.
func (s *Service) BulkAdjustCost(pct float64) (int, error) {
	if pct == 0 {
		return 0, nil
	}
	factor := 1 + pct/100
	updated := 0
	for i := range s.products {
		p := &s.products[i]
		if p.PurchasePrice <= 0 {
			continue
		}
		price := p.PurchasePrice * factor
		if price < minPurchasePrice && pct < 0 {
			price = minPurchasePrice
		}
		p.PurchasePrice = price
		p.SalePrice = p.PurchasePrice + p.Profit
		updated++
	}
	if err := s.repo.SaveProducts(s.products); err != nil {
		return 0, fmt.Errorf("save products: %w", err)
	}
	s.logger.Info("bulk cost update", slog.Float64("pct", pct), slog.Int("updated", updated))
	return updated, nil
}

// ============================================================================
// CLIENTS
// ============================================================================

// Clients returns a copy of the client collection in stored order.
func (s *Service) Clients() []Client {
	return append([]Client(nil), s.clients...)
}

// ClientByID returns the stored client with the given id. The virtual
// general customer is not part of the collection; resolving id zero is the
// sale recorder's concern.
func (s *Service) ClientByID(id int64) (Client, error) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, fmt.Errorf("client %d: %w", id, shared.ErrNotFound)
}

// CreateClient validates the input, assigns the next id and persists the
// collection.
func (s *Service) CreateClient(in CreateClientInput) (Client, error) {
	if err := s.validate.Struct(in); err != nil {
		return Client{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	c := Client{
		ID:    nextClientID(s.clients),
		Name:  strings.TrimSpace(in.Name),
		TaxID: strings.TrimSpace(in.TaxID),
		Phone: strings.TrimSpace(in.Phone),
	}
	s.clients = append(s.clients, c)
	if err := s.repo.SaveClients(s.clients); err != nil {
		s.clients = s.clients[:len(s.clients)-1]
		return Client{}, fmt.Errorf("save clients: %w", err)
	}
	s.logger.Info("client created", slog.Int64("id", c.ID), slog.String("name", c.Name))
	return c, nil
}

// UpdateClient applies the non-nil fields.
func (s *Service) UpdateClient(id int64, in UpdateClientInput) (Client, error) {
	if err := s.validate.Struct(in); err != nil {
		return Client{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	i := clientIndex(s.clients, id)
	if i < 0 {
		return Client{}, fmt.Errorf("client %d: %w", id, shared.ErrNotFound)
	}
	c := &s.clients[i]
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.TaxID != nil {
		c.TaxID = strings.TrimSpace(*in.TaxID)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if err := s.repo.SaveClients(s.clients); err != nil {
		return Client{}, fmt.Errorf("save clients: %w", err)
	}
	return *c, nil
}

// DeleteClient removes a client unless a sale references it.
func (s *Service) DeleteClient(id int64) error {
	if s.usage != nil && s.usage.ClientReferenced(id) {
		return fmt.Errorf("client %d: %w", id, shared.ErrReferentialConflict)
	}
	i := clientIndex(s.clients, id)
	if i < 0 {
		return fmt.Errorf("client %d: %w", id, shared.ErrNotFound)
	}
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	if err := s.repo.SaveClients(s.clients); err != nil {
		return fmt.Errorf("save clients: %w", err)
	}
	s.logger.Info("client deleted", slog.Int64("id", id))
	return nil
}

// SearchClients matches a numeric term against ids exactly, anything else
// against name, tax id and phone case-insensitively.
func (s *Service) SearchClients(term string) []Client {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	if id, ok := numericTerm(term); ok {
		if c, err := s.ClientByID(id); err == nil {
			return []Client{c}
		}
		return nil
	}
	needle := strings.ToLower(term)
	var out []Client
	for _, c := range s.clients {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.TaxID), needle) ||
			strings.Contains(strings.ToLower(c.Phone), needle) {
			out = append(out, c)
		}
	}
	return out
}

// ============================================================================
// VENDORS
// ============================================================================

// Vendors returns a copy of the vendor collection in stored order.
func (s *Service) Vendors() []Vendor {
	return append([]Vendor(nil), s.vendors...)
}

// VendorByID returns the vendor with the given id.
func (s *Service) VendorByID(id int64) (Vendor, error) {
	for _, v := range s.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return Vendor{}, fmt.Errorf("vendor %d: %w", id, shared.ErrNotFound)
}

// CreateVendor validates the input, assigns the next id and persists the
// collection.
func (s *Service) CreateVendor(in CreateVendorInput) (Vendor, error) {
	if err := s.validate.Struct(in); err != nil {
		return Vendor{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	v := Vendor{
		ID:            nextVendorID(s.vendors),
		Name:          strings.TrimSpace(in.Name),
		CommissionPct: in.CommissionPct,
	}
	s.vendors = append(s.vendors, v)
	if err := s.repo.SaveVendors(s.vendors); err != nil {
		s.vendors = s.vendors[:len(s.vendors)-1]
		return Vendor{}, fmt.Errorf("save vendors: %w", err)
	}
	s.logger.Info("vendor created", slog.Int64("id", v.ID), slog.String("name", v.Name))
	return v, nil
}

// UpdateVendor applies the non-nil fields.
func (s *Service) UpdateVendor(id int64, in UpdateVendorInput) (Vendor, error) {
	if err := s.validate.Struct(in); err != nil {
		return Vendor{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	i := vendorIndex(s.vendors, id)
	if i < 0 {
		return Vendor{}, fmt.Errorf("vendor %d: %w", id, shared.ErrNotFound)
	}
	v := &s.vendors[i]
	if in.Name != nil {
		v.Name = strings.TrimSpace(*in.Name)
	}
	if in.CommissionPct != nil {
		v.CommissionPct = *in.CommissionPct
	}
	if err := s.repo.SaveVendors(s.vendors); err != nil {
		return Vendor{}, fmt.Errorf("save vendors: %w", err)
	}
	return *v, nil
}

// DeleteVendor removes a vendor unless a sale references it.
func (s *Service) DeleteVendor(id int64) error {
	if s.usage != nil && s.usage.VendorReferenced(id) {
		return fmt.Errorf("vendor %d: %w", id, shared.ErrReferentialConflict)
	}
	i := vendorIndex(s.vendors, id)
	if i < 0 {
		return fmt.Errorf("vendor %d: %w", id, shared.ErrNotFound)
	}
	s.vendors = append(s.vendors[:i], s.vendors[i+1:]...)
	if err := s.repo.SaveVendors(s.vendors); err != nil {
		return fmt.Errorf("save vendors: %w", err)
	}
	s.logger.Info("vendor deleted", slog.Int64("id", id))
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

// The next id is one past the current maximum, matching what the stored
// collections already contain. Deleting a record in the middle never shifts
// the ids of its neighbors.

func nextProductID(products []Product) int64 {
	var max int64
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func nextClientID(clients []Client) int64 {
	var max int64
	for _, c := range clients {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func nextVendorID(vendors []Vendor) int64 {
	var max int64
	for _, v := range vendors {
		if v.ID > max {
			max = v.ID
		}
	}
	return max + 1
}

func productIndex(products []Product, id int64) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func clientIndex(clients []Client, id int64) int {
	for i, c := range clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func vendorIndex(vendors []Vendor, id int64) int {
	for i, v := range vendors {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func numericTerm(term string) (int64, bool) {
	var id int64
	for _, r := range term {
		if r < '0' || r > '9' {
			return 0, false
		}
		id = id*10 + int64(r-'0')
	}
	return id, true
}
