package sales

import (
	"github.com/vendia-pos/vendia/internal/store"
)

const salesFile = "sales.json"

// Repository abstracts durable storage for the sales ledger.
type Repository interface {
	LoadSales() ([]Sale, error)
	SaveSales([]Sale) error
}

// FileRepository persists the ledger through a JSON record store.
type FileRepository struct {
	store *store.Store
}

// NewFileRepository wraps a record store.
func NewFileRepository(st *store.Store) *FileRepository {
	return &FileRepository{store: st}
}

// LoadSales reads the full ledger.
func (r *FileRepository) LoadSales() ([]Sale, error) {
	var ledger []Sale
	if err := r.store.Load(salesFile, &ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// SaveSales rewrites the full ledger.
func (r *FileRepository) SaveSales(ledger []Sale) error {
	return r.store.Save(salesFile, ledger)
}
