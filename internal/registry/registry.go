// Package registry holds every customer and shipment record in memory and
// mirrors both collections to a document store after each mutation.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"go.uber.org/zap"

	"envios-registry/internal/core/docstore"
	"envios-registry/internal/core/logger"
	customersdomain "envios-registry/internal/features/customers/domain"
	shipmentsdomain "envios-registry/internal/features/shipments/domain"
)

const (
	customersCollection = "clientes"
	shipmentsCollection = "envios"
)

// Registry is the single source of truth for records during a session.
// It is not safe for concurrent use: the application runs one operator
// command at a time.
type Registry struct {
	store  docstore.Store
	logger *zap.Logger

	customers map[string]*customersdomain.Customer
	shipments map[string]*shipmentsdomain.Shipment
}

// New creates an empty Registry backed by the given document store.
func New(store docstore.Store) *Registry {
	return &Registry{
		store:     store,
		logger:    logger.Named("registry"),
		customers: make(map[string]*customersdomain.Customer),
		shipments: make(map[string]*shipmentsdomain.Shipment),
	}
}

// Load fills both collections from the document store. A collection that
// does not exist yet starts empty. Unreadable or undecodable collections
// are logged and start empty as well; their stored bytes are only
// replaced by the next persist.
func (r *Registry) Load(ctx context.Context) {
	r.customers = make(map[string]*customersdomain.Customer)
	if data, ok := r.readCollection(ctx, customersCollection); ok {
		if err := json.Unmarshal(data, &r.customers); err != nil {
			r.logger.Warn("Failed to decode customers collection", zap.Error(err))
			r.customers = make(map[string]*customersdomain.Customer)
		}
	}

	r.shipments = make(map[string]*shipmentsdomain.Shipment)
	if data, ok := r.readCollection(ctx, shipmentsCollection); ok {
		if err := json.Unmarshal(data, &r.shipments); err != nil {
			r.logger.Warn("Failed to decode shipments collection", zap.Error(err))
			r.shipments = make(map[string]*shipmentsdomain.Shipment)
		}
	}

	r.logger.Info("Registry loaded",
		zap.Int("customers", len(r.customers)),
		zap.Int("shipments", len(r.shipments)),
	)
}

func (r *Registry) readCollection(ctx context.Context, collection string) ([]byte, bool) {
	data, err := r.store.Read(ctx, collection)
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			r.logger.Warn("Failed to read collection", zap.String("collection", collection), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// persist rewrites both collections wholesale. Write failures are logged
// and not surfaced: the in-memory state stays authoritative until the
// next successful persist.
func (r *Registry) persist(ctx context.Context) {
	r.persistCollection(ctx, customersCollection, r.customers)
	r.persistCollection(ctx, shipmentsCollection, r.shipments)
}

func (r *Registry) persistCollection(ctx context.Context, collection string, records any) {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		r.logger.Error("Failed to encode collection", zap.String("collection", collection), zap.Error(err))
		return
	}
	if err := r.store.Write(ctx, collection, data); err != nil {
		r.logger.Error("Failed to persist collection", zap.String("collection", collection), zap.Error(err))
	}
}

// InsertCustomer stores a customer under its document number. Existing
// records are overwritten; uniqueness checks belong to the service layer.
func (r *Registry) InsertCustomer(ctx context.Context, customer *customersdomain.Customer) error {
	r.customers[customer.IDNumber] = customer
	r.persist(ctx)
	return nil
}

// SaveCustomer rewrites an already stored customer record.
func (r *Registry) SaveCustomer(ctx context.Context, customer *customersdomain.Customer) error {
	r.customers[customer.IDNumber] = customer
	r.persist(ctx)
	return nil
}

// FindCustomer returns the customer with the given document number, or
// nil when no such customer is registered.
func (r *Registry) FindCustomer(ctx context.Context, id string) (*customersdomain.Customer, error) {
	return r.customers[id], nil
}

// HasCustomer reports whether a customer with the given document number
// is registered.
func (r *Registry) HasCustomer(ctx context.Context, id string) (bool, error) {
	_, ok := r.customers[id]
	return ok, nil
}

// AllCustomers returns every registered customer ordered by document
// number.
func (r *Registry) AllCustomers(ctx context.Context) ([]*customersdomain.Customer, error) {
	out := make([]*customersdomain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		out = append(out, customer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDNumber < out[j].IDNumber })
	return out, nil
}

// InsertShipment stores a shipment under its tracking number.
func (r *Registry) InsertShipment(ctx context.Context, shipment *shipmentsdomain.Shipment) error {
	r.shipments[shipment.TrackingNumber] = shipment
	r.persist(ctx)
	return nil
}

// SaveShipment rewrites an already stored shipment record.
func (r *Registry) SaveShipment(ctx context.Context, shipment *shipmentsdomain.Shipment) error {
	r.shipments[shipment.TrackingNumber] = shipment
	r.persist(ctx)
	return nil
}

// FindShipment returns the shipment with the given tracking number, or
// nil when no such shipment exists.
func (r *Registry) FindShipment(ctx context.Context, trackingNumber string) (*shipmentsdomain.Shipment, error) {
	return r.shipments[trackingNumber], nil
}

// ShipmentsBySender returns every shipment originated by the given
// customer, oldest first.
func (r *Registry) ShipmentsBySender(ctx context.Context, senderID string) ([]*shipmentsdomain.Shipment, error) {
	var out []*shipmentsdomain.Shipment
	for _, shipment := range r.shipments {
		if shipment.SenderID == senderID {
			out = append(out, shipment)
		}
	}
	sortShipments(out)
	return out, nil
}

// AllShipments returns every stored shipment, oldest first.
func (r *Registry) AllShipments(ctx context.Context) ([]*shipmentsdomain.Shipment, error) {
	out := make([]*shipmentsdomain.Shipment, 0, len(r.shipments))
	for _, shipment := range r.shipments {
		out = append(out, shipment)
	}
	sortShipments(out)
	return out, nil
}

func sortShipments(shipments []*shipmentsdomain.Shipment) {
	sort.Slice(shipments, func(i, j int) bool {
		a, b := shipments[i].CreatedAt(), shipments[j].CreatedAt()
		if a.Equal(b) {
			return shipments[i].TrackingNumber < shipments[j].TrackingNumber
		}
		return a.Before(b)
	})
}
