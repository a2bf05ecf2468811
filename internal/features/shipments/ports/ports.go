package ports

import (
	"context"
	"time"

	"envios-registry/internal/features/shipments/domain"
)

// ShipmentService defines the primary port for shipment operations.
type ShipmentService interface {
	Register(ctx context.Context, sendDate time.Time, recipient domain.Recipient, senderID string) (*domain.Shipment, error)
	AdvanceStatus(ctx context.Context, trackingNumber string, newStatus domain.ShipmentStatus, note string) (*domain.Shipment, error)
	Find(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	BySender(ctx context.Context, senderID string) ([]*domain.Shipment, error)
	FindMany(ctx context.Context, trackingNumbers []string) (map[string]*domain.Shipment, error)
	Report(ctx context.Context, start, end time.Time) (*domain.Report, error)
}

// ShipmentRepository defines the secondary port for shipment storage.
// FindShipment reports a missing record as (nil, nil).
type ShipmentRepository interface {
	InsertShipment(ctx context.Context, shipment *domain.Shipment) error
	SaveShipment(ctx context.Context, shipment *domain.Shipment) error
	FindShipment(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	ShipmentsBySender(ctx context.Context, senderID string) ([]*domain.Shipment, error)
	AllShipments(ctx context.Context) ([]*domain.Shipment, error)
}

// SenderDirectory answers whether a document number belongs to a
// registered customer.
type SenderDirectory interface {
	HasCustomer(ctx context.Context, idNumber string) (bool, error)
}

// ReportExporter writes a rendered period report somewhere durable and
// returns the location of the result.
type ReportExporter interface {
	Export(report *domain.Report, start, end time.Time) (string, error)
}
