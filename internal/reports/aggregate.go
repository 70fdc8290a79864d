package reports

import (
	"sort"

	"github.com/vendia-pos/vendia/internal/sales"
)

// Totals is the monetary outcome of a set of sales.
type Totals struct {
	Revenue    float64
	Profit     float64
	Commission float64
}

// Sum accumulates revenue, profit and commission over the given sales.
func Sum(entries []sales.Sale) Totals {
	var t Totals
	for _, e := range entries {
		t.Revenue += e.Total
		t.Profit += e.ProfitTotal
		t.Commission += e.Commission
	}
	return t
}

// groupKey identifies a party by id plus the name snapshot captured on the
// sale, so renamed catalog records keep their historical rows apart.
type groupKey struct {
	id   int64
	name string
}

// ClientRank is one row of the top-clients report.
type ClientRank struct {
	ClientID   int64
	ClientName string
	TotalSpent float64
}

// TopClients ranks clients by total spent, descending. Ties keep
// first-appearance order; the result is truncated to n.
func TopClients(entries []sales.Sale, n int) []ClientRank {
	index := make(map[groupKey]int)
	var ranks []ClientRank
	for _, e := range entries {
		k := groupKey{id: e.ClientID, name: e.ClientName}
		i, ok := index[k]
		if !ok {
			i = len(ranks)
			index[k] = i
			ranks = append(ranks, ClientRank{ClientID: e.ClientID, ClientName: e.ClientName})
		}
		ranks[i].TotalSpent += e.Total
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].TotalSpent > ranks[j].TotalSpent })
	if n > 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// ProductRank is one row of the top-products report.
type ProductRank struct {
	ProductID    int64
	ProductName  string
	QuantitySold int
}

// TopProducts ranks products by units sold, descending. Ties keep
// first-appearance order; the result is truncated to n.
func TopProducts(entries []sales.Sale, n int) []ProductRank {
	index := make(map[groupKey]int)
	var ranks []ProductRank
	for _, e := range entries {
		k := groupKey{id: e.ProductID, name: e.ProductName}
		i, ok := index[k]
		if !ok {
			i = len(ranks)
			index[k] = i
			ranks = append(ranks, ProductRank{ProductID: e.ProductID, ProductName: e.ProductName})
		}
		ranks[i].QuantitySold += e.Quantity
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].QuantitySold > ranks[j].QuantitySold })
	if n > 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// VendorPayout is one row of the commission payout report.
type VendorPayout struct {
	VendorID   int64
	VendorName string
	Commission float64
}

// VendorPayouts sums commission per vendor in first-seen order. The payout
// report deliberately keeps insertion order rather than sorting.
func VendorPayouts(entries []sales.Sale) []VendorPayout {
	index := make(map[groupKey]int)
	var payouts []VendorPayout
	for _, e := range entries {
		k := groupKey{id: e.VendorID, name: e.VendorName}
		i, ok := index[k]
		if !ok {
			i = len(payouts)
			index[k] = i
			payouts = append(payouts, VendorPayout{VendorID: e.VendorID, VendorName: e.VendorName})
		}
		payouts[i].Commission += e.Commission
	}
	return payouts
}
