package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Wire layouts of the persisted envios collection.
const (
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04:05"
	eventTimeLayout = "2006-01-02 15:04:05"
)

// EventTime is a history timestamp serialized as "YYYY-MM-DD HH:MM:SS".
// The wire form carries no zone; values are interpreted in local time.
type EventTime time.Time

// Time returns the timestamp as a time.Time.
func (t EventTime) Time() time.Time {
	return time.Time(t)
}

// String formats the timestamp the way it travels on the wire.
func (t EventTime) String() string {
	return time.Time(t).Format(eventTimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (t EventTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format(eventTimeLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *EventTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*t = EventTime(time.Time{})
		return nil
	}

	parsed, err := time.ParseInLocation(eventTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid history timestamp %q: %w", s, err)
	}

	*t = EventTime(parsed)
	return nil
}

// shipmentJSON is the wire form of a Shipment: the send instant is split
// into separate date and clock fields.
type shipmentJSON struct {
	SendDate       string         `json:"fecha_envio"`
	SendTime       string         `json:"hora_envio"`
	Recipient      Recipient      `json:"destinatario"`
	SenderID       string         `json:"id_remitente"`
	TrackingNumber string         `json:"numero_guia"`
	Status         ShipmentStatus `json:"estado"`
	History        []StatusEntry  `json:"historial_estados"`
}

// MarshalJSON implements json.Marshaler.
func (s Shipment) MarshalJSON() ([]byte, error) {
	return json.Marshal(shipmentJSON{
		SendDate:       s.SendDate.Format(dateLayout),
		SendTime:       s.SendDate.Format(clockLayout),
		Recipient:      s.Recipient,
		SenderID:       s.SenderID,
		TrackingNumber: s.TrackingNumber,
		Status:         s.Status,
		History:        s.History,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Shipment) UnmarshalJSON(b []byte) error {
	var wire shipmentJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	sendDate, err := time.ParseInLocation(eventTimeLayout, wire.SendDate+" "+wire.SendTime, time.Local)
	if err != nil {
		return fmt.Errorf("invalid send instant %q %q: %w", wire.SendDate, wire.SendTime, err)
	}

	*s = Shipment{
		TrackingNumber: wire.TrackingNumber,
		SendDate:       sendDate,
		Recipient:      wire.Recipient,
		SenderID:       wire.SenderID,
		Status:         wire.Status,
		History:        wire.History,
	}
	return nil
}

// ParseDate parses an operator-supplied "YYYY-MM-DD" date in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrMalformedDate, s)
	}
	return t, nil
}

// ParseDateTime parses an operator-supplied date and "HH:MM" clock into a
// single send instant in local time.
func ParseDateTime(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q (expected YYYY-MM-DD and HH:MM)", ErrMalformedDate, date, clock)
	}
	return t, nil
}
