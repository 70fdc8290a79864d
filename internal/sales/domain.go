package sales

// TimestampLayout is the fixed wire format for sale timestamps, local time.
// Anything else in the ledger is unparseable and excluded from period
// queries.
const TimestampLayout = "2006-01-02 15:04:05"

// Sale is one immutable ledger entry. Product, client and vendor figures
// are denormalized at creation time so historical reports never drift when
// the catalog changes later; nothing beyond the ids points back at the
// source records.
type Sale struct {
	ID            int64   `json:"id"`
	Timestamp     string  `json:"timestamp"`
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	PurchasePrice float64 `json:"purchase_price"`
	UnitProfit    float64 `json:"unit_profit"`
	ClientID      int64   `json:"client_id"`
	ClientName    string  `json:"client_name"`
	VendorID      int64   `json:"vendor_id"`
	VendorName    string  `json:"vendor_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Subtotal      float64 `json:"subtotal"`
	ProfitTotal   float64 `json:"profit_total"`
	Commission    float64 `json:"commission"`
	CommissionPct float64 `json:"commission_pct"`
	Total         float64 `json:"total"`
}

// RecordSaleInput selects the parties and quantity for a new sale.
// ClientID zero selects the virtual general customer.
type RecordSaleInput struct {
	ProductID int64
	ClientID  int64
	VendorID  int64
	Quantity  int `validate:"gte=1,lte=999"`
}
