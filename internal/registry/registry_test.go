package registry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envios-registry/internal/core/docstore"
	customersdomain "envios-registry/internal/features/customers/domain"
	shipmentsdomain "envios-registry/internal/features/shipments/domain"
)

func newFileRegistry(t *testing.T) (*Registry, *docstore.FileStore) {
	t.Helper()

	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return New(store), store
}

func newTestCustomer(t *testing.T, id string) *customersdomain.Customer {
	t.Helper()

	customer, err := customersdomain.NewCustomer(
		"Ana María", "Gómez", id, customersdomain.IDTypeCC,
		"Calle 45 # 12-10", "6015551234", "3001112233", "Teusaquillo",
	)
	require.NoError(t, err)
	return customer
}

func newTestShipment(senderID string) *shipmentsdomain.Shipment {
	return shipmentsdomain.NewShipment(
		time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local),
		shipmentsdomain.Recipient{
			Name:         "Carlos Pérez",
			Address:      "Carrera 15 # 82-30",
			Phone:        "3105556789",
			City:         "Bogotá",
			Neighborhood: "El Chicó",
		},
		senderID,
	)
}

func TestRegistry_LoadEmptyStore(t *testing.T) {
	reg, _ := newFileRegistry(t)
	ctx := context.Background()

	reg.Load(ctx)

	customers, err := reg.AllCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)

	shipments, err := reg.AllShipments(ctx)
	require.NoError(t, err)
	assert.Empty(t, shipments)
}

// TestRegistry_RoundTrip verifies that records written by one registry are
// read back field for field by a fresh registry over the same store.
func TestRegistry_RoundTrip(t *testing.T) {
	reg, store := newFileRegistry(t)
	ctx := context.Background()

	customer := newTestCustomer(t, "1023456789")
	require.NoError(t, reg.InsertCustomer(ctx, customer))

	shipment := newTestShipment(customer.IDNumber)
	require.NoError(t, shipment.AdvanceStatus(shipmentsdomain.StatusInTransit, "recogido"))
	require.NoError(t, reg.InsertShipment(ctx, shipment))

	reloaded := New(store)
	reloaded.Load(ctx)

	gotCustomer, err := reloaded.FindCustomer(ctx, customer.IDNumber)
	require.NoError(t, err)
	assert.Equal(t, customer, gotCustomer)

	gotShipment, err := reloaded.FindShipment(ctx, shipment.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, shipment, gotShipment)
}

func TestRegistry_PersistWritesBothCollections(t *testing.T) {
	reg, store := newFileRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.InsertCustomer(ctx, newTestCustomer(t, "1023456789")))

	customersData, err := store.Read(ctx, "clientes")
	require.NoError(t, err)
	var customers map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(customersData, &customers))
	assert.Contains(t, customers, "1023456789")
	assert.Contains(t, string(customersData), "    \"", "collections are written indented")

	shipmentsData, err := store.Read(ctx, "envios")
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(shipmentsData), "the untouched collection is rewritten too")
}

func TestRegistry_LoadToleratesCorruptCollection(t *testing.T) {
	reg, store := newFileRegistry(t)
	ctx := context.Background()

	shipment := newTestShipment("1023456789")
	require.NoError(t, reg.InsertShipment(ctx, shipment))
	require.NoError(t, store.Write(ctx, "clientes", []byte("{not json")))

	reloaded := New(store)
	reloaded.Load(ctx)

	customers, err := reloaded.AllCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers, "the corrupt collection starts empty")

	got, err := reloaded.FindShipment(ctx, shipment.TrackingNumber)
	require.NoError(t, err)
	assert.NotNil(t, got, "the healthy collection still loads")
}

func TestRegistry_PersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	reg := New(&failingStore{writeErr: errors.New("disk full")})
	ctx := context.Background()

	customer := newTestCustomer(t, "1023456789")
	require.NoError(t, reg.InsertCustomer(ctx, customer))

	got, err := reg.FindCustomer(ctx, customer.IDNumber)
	require.NoError(t, err)
	assert.Equal(t, customer, got)
}

func TestRegistry_FindMissing(t *testing.T) {
	reg, _ := newFileRegistry(t)
	ctx := context.Background()

	customer, err := reg.FindCustomer(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, customer)

	shipment, err := reg.FindShipment(ctx, "no-such-guide")
	require.NoError(t, err)
	assert.Nil(t, shipment)

	ok, err := reg.HasCustomer(ctx, "999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_AllCustomersSortedByID(t *testing.T) {
	reg, _ := newFileRegistry(t)
	ctx := context.Background()

	for _, id := range []string{"300", "100", "200"} {
		require.NoError(t, reg.InsertCustomer(ctx, newTestCustomer(t, id)))
	}

	customers, err := reg.AllCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "100", customers[0].IDNumber)
	assert.Equal(t, "200", customers[1].IDNumber)
	assert.Equal(t, "300", customers[2].IDNumber)
}

func TestRegistry_ShipmentsBySender(t *testing.T) {
	reg, _ := newFileRegistry(t)
	ctx := context.Background()

	older := newTestShipment("111")
	older.History[0].Date = shipmentsdomain.EventTime(time.Date(2025, 3, 1, 8, 0, 0, 0, time.Local))
	newer := newTestShipment("111")
	newer.History[0].Date = shipmentsdomain.EventTime(time.Date(2025, 3, 2, 8, 0, 0, 0, time.Local))
	other := newTestShipment("222")

	require.NoError(t, reg.InsertShipment(ctx, newer))
	require.NoError(t, reg.InsertShipment(ctx, older))
	require.NoError(t, reg.InsertShipment(ctx, other))

	got, err := reg.ShipmentsBySender(ctx, "111")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, older.TrackingNumber, got[0].TrackingNumber)
	assert.Equal(t, newer.TrackingNumber, got[1].TrackingNumber)

	none, err := reg.ShipmentsBySender(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

type failingStore struct {
	writeErr error
}

func (f *failingStore) Read(ctx context.Context, collection string) ([]byte, error) {
	return nil, docstore.ErrNotFound
}

func (f *failingStore) Write(ctx context.Context, collection string, data []byte) error {
	return f.writeErr
}

func (f *failingStore) Ping(ctx context.Context) error { return nil }

func (f *failingStore) Close() error { return nil }
