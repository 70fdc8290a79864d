package reports

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendia-pos/vendia/internal/sales"
)

func TestSumEmpty(t *testing.T) {
	totals := Sum(nil)
	require.Zero(t, totals.Revenue)
	require.Zero(t, totals.Profit)
	require.Zero(t, totals.Commission)
}

func TestSumAccumulates(t *testing.T) {
	entries := []sales.Sale{
		{Total: 1000, ProfitTotal: 200, Commission: 20},
		{Total: 500, ProfitTotal: 100, Commission: 5},
	}
	totals := Sum(entries)
	require.InDelta(t, 1500, totals.Revenue, 0.0001)
	require.InDelta(t, 300, totals.Profit, 0.0001)
	require.InDelta(t, 25, totals.Commission, 0.0001)
}

func TestTopClientsTiesKeepFirstAppearanceOrder(t *testing.T) {
	entries := []sales.Sale{
		{ClientID: 1, ClientName: "Acme", Total: 300},
		{ClientID: 2, ClientName: "Globex", Total: 300},
		{ClientID: 3, ClientName: "Initech", Total: 100},
	}

	ranks := TopClients(entries, 2)
	require.Len(t, ranks, 2)
	require.Equal(t, "Acme", ranks[0].ClientName)
	require.Equal(t, "Globex", ranks[1].ClientName)
}

func TestTopClientsAccumulatesAcrossSales(t *testing.T) {
	entries := []sales.Sale{
		{ClientID: 1, ClientName: "Acme", Total: 100},
		{ClientID: 2, ClientName: "Globex", Total: 150},
		{ClientID: 1, ClientName: "Acme", Total: 100},
	}

	ranks := TopClients(entries, 0)
	require.Len(t, ranks, 2)
	require.Equal(t, "Acme", ranks[0].ClientName)
	require.InDelta(t, 200, ranks[0].TotalSpent, 0.0001)
}

func TestTopClientsSplitsRenamedParties(t *testing.T) {
	// The ledger snapshots names, so a renamed client keeps separate rows.
	entries := []sales.Sale{
		{ClientID: 1, ClientName: "Acme", Total: 100},
		{ClientID: 1, ClientName: "Acme Corp", Total: 50},
	}
	require.Len(t, TopClients(entries, 0), 2)
}

func TestTopProductsRanksByUnits(t *testing.T) {
	entries := []sales.Sale{
		{ProductID: 1, ProductName: "Coffee", Quantity: 3},
		{ProductID: 2, ProductName: "Tea", Quantity: 10},
		{ProductID: 1, ProductName: "Coffee", Quantity: 4},
	}

	ranks := TopProducts(entries, 5)
	require.Len(t, ranks, 2)
	require.Equal(t, "Tea", ranks[0].ProductName)
	require.Equal(t, 10, ranks[0].QuantitySold)
	require.Equal(t, 7, ranks[1].QuantitySold)
}

func TestVendorPayoutsKeepInsertionOrder(t *testing.T) {
	entries := []sales.Sale{
		{VendorID: 2, VendorName: "Maria", Commission: 10},
		{VendorID: 1, VendorName: "Pedro", Commission: 500},
		{VendorID: 2, VendorName: "Maria", Commission: 15},
	}

	payouts := VendorPayouts(entries)
	require.Len(t, payouts, 2)
	require.Equal(t, "Maria", payouts[0].VendorName, "payouts stay in first-seen order, unsorted")
	require.InDelta(t, 25, payouts[0].Commission, 0.0001)
	require.Equal(t, "Pedro", payouts[1].VendorName)
}
