package catalog

import (
	"github.com/vendia-pos/vendia/internal/store"
)

// Collection file names inside the data directory.
const (
	productsFile = "products.json"
	clientsFile  = "clients.json"
	vendorsFile  = "vendors.json"
)

// Repository abstracts durable storage for the catalog collections.
type Repository interface {
	LoadProducts() ([]Product, error)
	SaveProducts([]Product) error
	LoadClients() ([]Client, error)
	SaveClients([]Client) error
	LoadVendors() ([]Vendor, error)
	SaveVendors([]Vendor) error
}

// FileRepository persists the catalog through a JSON record store.
type FileRepository struct {
	store *store.Store
}

// NewFileRepository wraps a record store.
func NewFileRepository(st *store.Store) *FileRepository {
	return &FileRepository{store: st}
}

// LoadProducts reads the product collection.
func (r *FileRepository) LoadProducts() ([]Product, error) {
	var products []Product
	if err := r.store.Load(productsFile, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts rewrites the product collection.
func (r *FileRepository) SaveProducts(products []Product) error {
	return r.store.Save(productsFile, products)
}

// clientRecord tolerates the pre-rename schema on disk, where the tax id
// lived under an "email" key.
type clientRecord struct {
	Client
	LegacyEmail string `json:"email,omitempty"`
}

// LoadClients reads the client collection, running the one-shot schema
// upgrade: a record still carrying the historical "email" key and no tax id
// has the value moved to tax_id, and the collection is rewritten once. The
// pass is a no-op on already-migrated files.
func (r *FileRepository) LoadClients() ([]Client, error) {
	var records []clientRecord
	if err := r.store.Load(clientsFile, &records); err != nil {
		return nil, err
	}
	clients := make([]Client, 0, len(records))
	migrated := false
	for _, rec := range records {
		if rec.LegacyEmail != "" && rec.TaxID == "" {
			rec.TaxID = rec.LegacyEmail
			migrated = true
		}
		clients = append(clients, rec.Client)
	}
	if migrated {
		if err := r.SaveClients(clients); err != nil {
			return nil, err
		}
	}
	return clients, nil
}

// SaveClients rewrites the client collection.
func (r *FileRepository) SaveClients(clients []Client) error {
	return r.store.Save(clientsFile, clients)
}

// LoadVendors reads the vendor collection.
func (r *FileRepository) LoadVendors() ([]Vendor, error) {
	var vendors []Vendor
	if err := r.store.Load(vendorsFile, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// SaveVendors rewrites the vendor collection.
func (r *FileRepository) SaveVendors(vendors []Vendor) error {
	return r.store.Save(vendorsFile, vendors)
}
