package ui

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/sales"
	"github.com/vendia-pos/vendia/internal/store"
)

// runSession feeds scripted lines through a full UI wired to real services
// on a temp data directory, and returns the rendered output and the
// directory.
func runSession(t *testing.T, lines ...string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(dir, logger)

	catalogService, err := catalog.NewService(catalog.NewFileRepository(st), logger)
	require.NoError(t, err)
	salesService, err := sales.NewService(sales.NewFileRepository(st), catalogService, logger)
	require.NoError(t, err)
	catalogService.SetUsage(salesService)

	var out bytes.Buffer
	terminal := New(Params{
		Catalog:  catalogService,
		Sales:    salesService,
		Style:    NewStyle(false),
		In:       strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out:      &out,
		Logger:   logger,
		TopLimit: 5,
	})
	require.NoError(t, terminal.Run())
	return out.String(), dir
}

func TestCapitalizeHandlesMultiByteRunes(t *testing.T) {
	require.Equal(t, "Hello", capitalize("hello"))
	require.Equal(t, "Última venta", capitalize("última venta"))
	require.Equal(t, "Ñandú", capitalize("ñandú"))
	require.Equal(t, "", capitalize(""))
	require.Equal(t, "7 units", capitalize("7 units"))
}

func TestSessionExitImmediately(t *testing.T) {
	out, _ := runSession(t,
		"", // start screen
		"5",
	)
	require.Contains(t, out, "MAIN MENU")
	require.Contains(t, out, "Come back soon")
}

func TestSessionEndOfInputIsCleanExit(t *testing.T) {
	out, _ := runSession(t,
		"", // start screen; input then ends mid-menu
	)
	require.Contains(t, out, "Come back soon")
}

func TestSessionRecordSaleFlow(t *testing.T) {
	out, dir := runSession(t,
		"",     // start screen
		"2",    // products
		"2",    // add product
		"Coffee",
		"1200", // purchase price
		"300",  // profit
		"10",   // stock
		"",     // pause
		"7",    // back
		"4",    // vendors
		"2",    // add vendor
		"Maria",
		"10",  // commission pct
		"",    // pause
		"5",   // back
		"1",   // sales
		"1",   // record sale
		"1",   // product id (no clients registered, general customer implied)
		"1",   // vendor id
		"4",   // quantity
		"y",   // confirm
		"",    // pause
		"4",   // back
		"5",   // exit
	)

	require.Contains(t, out, "SALE RECORDED")
	require.Contains(t, out, "TOTAL: $6.000")
	require.Contains(t, out, "General Customer")

	raw, err := os.ReadFile(filepath.Join(dir, "sales.json"))
	require.NoError(t, err)
	var ledger []sales.Sale
	require.NoError(t, json.Unmarshal(raw, &ledger))
	require.Len(t, ledger, 1)
	require.InDelta(t, 6000, ledger[0].Total, 0.0001)
	require.InDelta(t, 120, ledger[0].Commission, 0.0001)

	raw, err = os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	var products []catalog.Product
	require.NoError(t, json.Unmarshal(raw, &products))
	require.Equal(t, 6, products[0].Stock, "stock decremented and persisted")
}

func TestSessionDeclinedConfirmationRecordsNothing(t *testing.T) {
	_, dir := runSession(t,
		"",    // start screen
		"2",   // products
		"2",   // add product
		"Mate",
		"500", // purchase price
		"100", // profit
		"5",   // stock
		"",    // pause
		"7",   // back
		"4",   // vendors
		"2",   // add vendor
		"Ana",
		"8",   // commission pct
		"",    // pause
		"5",   // back
		"1",   // sales
		"1",   // record sale
		"1",   // product id
		"1",   // vendor id
		"2",   // quantity
		"n",   // decline
		"",    // pause
		"4",   // back
		"5",   // exit
	)

	raw, err := os.ReadFile(filepath.Join(dir, "sales.json"))
	require.NoError(t, err)
	var ledger []sales.Sale
	require.NoError(t, json.Unmarshal(raw, &ledger))
	require.Empty(t, ledger)

	raw, err = os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	var products []catalog.Product
	require.NoError(t, json.Unmarshal(raw, &products))
	require.Equal(t, 5, products[0].Stock, "declined confirmation leaves stock alone")
}

func TestSessionInsufficientStockKeepsState(t *testing.T) {
	out, dir := runSession(t,
		"",     // start screen
		"2",    // products
		"2",    // add product
		"Tea",
		"800", // purchase price
		"200", // profit
		"3",   // stock
		"",    // pause
		"7",   // back
		"4",   // vendors
		"2",   // add vendor
		"Pedro",
		"5",   // commission pct
		"",    // pause
		"5",   // back
		"1",   // sales
		"1",   // record sale
		"1",   // product id
		"1",   // vendor id
		"50",  // quantity beyond stock
		"y",   // confirm; the stock check happens in the recorder
		"",    // pause
		"4",   // back
		"5",   // exit
	)

	require.Contains(t, out, "only 3 units of Tea left")

	_, err := os.Stat(filepath.Join(dir, "sales.json"))
	require.NoError(t, err)
	raw, err := os.ReadFile(filepath.Join(dir, "sales.json"))
	require.NoError(t, err)
	var ledger []sales.Sale
	require.NoError(t, json.Unmarshal(raw, &ledger))
	require.Empty(t, ledger)
}
