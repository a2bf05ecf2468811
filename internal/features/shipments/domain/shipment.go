package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus represents the current stage of a shipment. The values are
// the Spanish wire strings persisted in the envios collection.
type ShipmentStatus string

const (
	// StatusReceived indicates the package was received at the office.
	StatusReceived ShipmentStatus = "Recibido"
	// StatusInTransit indicates the package is moving between cities.
	StatusInTransit ShipmentStatus = "En Tránsito"
	// StatusInDestinationCity indicates the package arrived in the destination city.
	StatusInDestinationCity ShipmentStatus = "En Ciudad Destino"
	// StatusInCarrierWarehouse indicates the package is held at the carrier's warehouse.
	StatusInCarrierWarehouse ShipmentStatus = "En Bodega De La Transportadora"
	// StatusOutForDelivery indicates the package is on a delivery route.
	StatusOutForDelivery ShipmentStatus = "En Reparto"
	// StatusDelivered indicates the package reached the recipient.
	StatusDelivered ShipmentStatus = "Entregado"
)

// Statuses lists every shipment status in lifecycle order. The order is
// informative only: transitions are not validated against it, so any status
// may follow any other, including repeats and regressions.
var Statuses = []ShipmentStatus{
	StatusReceived,
	StatusInTransit,
	StatusInDestinationCity,
	StatusInCarrierWarehouse,
	StatusOutForDelivery,
	StatusDelivered,
}

var (
	// ErrInvalidStatus is returned when a status is not one of Statuses.
	ErrInvalidStatus = errors.New("invalid shipment status")
	// ErrMalformedDate is returned when an operator-supplied date cannot be parsed.
	ErrMalformedDate = errors.New("malformed date")
)

// initialHistoryNote is the fixed description of the creation history entry.
const initialHistoryNote = "Paquete recibido en la oficina"

// Valid reports whether s is one of the accepted shipment statuses.
func (s ShipmentStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Recipient is the destination contact data owned by exactly one shipment.
// It has no identity of its own and never changes after the shipment is created.
type Recipient struct {
	// Name is the recipient's full name.
	Name string `json:"nombre"`
	// Address is the delivery street address.
	Address string `json:"direccion"`
	// Phone is the recipient's contact phone.
	Phone string `json:"telefono"`
	// City is the destination city.
	City string `json:"ciudad"`
	// Neighborhood is the destination neighborhood.
	Neighborhood string `json:"barrio"`
}

// StatusEntry is one record of the shipment's audit trail.
type StatusEntry struct {
	// Status is the status the shipment entered.
	Status ShipmentStatus `json:"estado"`
	// Date is the wall-clock time the entry was recorded.
	Date EventTime `json:"fecha"`
	// Description is the operator's note for the change.
	Description string `json:"descripcion"`
}

// Shipment is the tracked entity. The tracking number is assigned once at
// creation and never reassigned; History is append-only and its last entry
// always carries the same status as Status.
type Shipment struct {
	// TrackingNumber is the system-generated unique identifier (UUID v4).
	TrackingNumber string
	// SendDate is the caller-supplied dispatch date and time; it may lie in
	// the past or the future and is independent of the creation timestamp.
	SendDate time.Time
	// Recipient is the embedded destination contact data.
	Recipient Recipient
	// SenderID references the registered customer who sent the package.
	SenderID string
	// Status is the current stage, always equal to the last History entry's status.
	Status ShipmentStatus
	// History is the ordered, append-only audit trail of status changes.
	History []StatusEntry
}

// NewShipment creates a Shipment with a fresh tracking number, the initial
// Recibido status and the fixed creation history entry stamped with the
// current wall-clock time. Timestamps are truncated to whole seconds, the
// resolution of the persisted form.
func NewShipment(sendDate time.Time, recipient Recipient, senderID string) *Shipment {
	now := time.Now().Truncate(time.Second)

	return &Shipment{
		TrackingNumber: uuid.NewString(),
		SendDate:       sendDate.Truncate(time.Second),
		Recipient:      recipient,
		SenderID:       senderID,
		Status:         StatusReceived,
		History: []StatusEntry{{
			Status:      StatusReceived,
			Date:        EventTime(now),
			Description: initialHistoryNote,
		}},
	}
}

// AdvanceStatus appends exactly one history entry for newStatus and makes it
// the current status. Any member of Statuses is accepted regardless of the
// current stage; only unknown statuses are rejected.
func (s *Shipment) AdvanceStatus(newStatus ShipmentStatus, note string) error {
	if !newStatus.Valid() {
		return fmt.Errorf("%w: %q (expected one of %v)", ErrInvalidStatus, newStatus, Statuses)
	}

	s.Status = newStatus
	s.History = append(s.History, StatusEntry{
		Status:      newStatus,
		Date:        EventTime(time.Now().Truncate(time.Second)),
		Description: note,
	})
	return nil
}

// CreatedAt returns the timestamp of the creation history entry.
// The zero time is returned for externally crafted shipments with no history.
func (s *Shipment) CreatedAt() time.Time {
	if len(s.History) == 0 {
		return time.Time{}
	}
	return s.History[0].Date.Time()
}

// DeliveredAt returns the timestamp of the first Entregado history entry,
// or false when the history holds none.
func (s *Shipment) DeliveredAt() (time.Time, bool) {
	for _, entry := range s.History {
		if entry.Status == StatusDelivered {
			return entry.Date.Time(), true
		}
	}
	return time.Time{}, false
}
