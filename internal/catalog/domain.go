package catalog

// Product is a catalog item. SalePrice is always PurchasePrice plus Profit
// and is re-derived on every edit.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	Profit        float64 `json:"profit"`
	SalePrice     float64 `json:"sale_price"`
	Stock         int     `json:"stock"`
}

// Client is a registered customer. TaxID and Phone are optional.
type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone"`
}

// Vendor is a salesperson paid a commission computed against sale profit,
// not revenue.
type Vendor struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	CommissionPct float64 `json:"commission_pct"`
}

// GeneralClientID selects the virtual walk-in customer on a sale.
const GeneralClientID int64 = 0

// GeneralClient returns the virtual customer used when no registered client
// is chosen. It is never persisted to the client collection.
func GeneralClient() Client {
	return Client{ID: GeneralClientID, Name: "General Customer"}
}

// CreateProductInput carries a new product's fields.
type CreateProductInput struct {
	Name          string  `validate:"required"`
	PurchasePrice float64 `validate:"gt=0"`
	Profit        float64 `validate:"gte=0"`
	Stock         int     `validate:"gte=0,lte=999"`
}

// UpdateProductInput updates a product; nil fields keep current values.
type UpdateProductInput struct {
	Name          *string  `validate:"omitempty,min=1"`
	PurchasePrice *float64 `validate:"omitempty,gt=0"`
	Profit        *float64 `validate:"omitempty,gte=0"`
	Stock         *int     `validate:"omitempty,gte=0,lte=999"`
}

// CreateClientInput carries a new client's fields.
type CreateClientInput struct {
	Name  string `validate:"required"`
	TaxID string
	Phone string
}

// UpdateClientInput updates a client; nil fields keep current values.
type UpdateClientInput struct {
	Name  *string `validate:"omitempty,min=1"`
	TaxID *string
	Phone *string
}

// CreateVendorInput carries a new vendor's fields.
type CreateVendorInput struct {
	Name          string  `validate:"required"`
	CommissionPct float64 `validate:"gte=0"`
}

// UpdateVendorInput updates a vendor; nil fields keep current values.
type UpdateVendorInput struct {
	Name          *string  `validate:"omitempty,min=1"`
	CommissionPct *float64 `validate:"omitempty,gte=0"`
}
