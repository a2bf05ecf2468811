package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTime_MarshalJSON(t *testing.T) {
	et := EventTime(time.Date(2025, 3, 10, 14, 5, 9, 0, time.Local))

	data, err := json.Marshal(et)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10 14:05:09"`, string(data))
}

func TestEventTime_UnmarshalJSON(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var et EventTime
		require.NoError(t, json.Unmarshal([]byte(`"2025-03-10 14:05:09"`), &et))

		want := time.Date(2025, 3, 10, 14, 5, 9, 0, time.Local)
		assert.True(t, et.Time().Equal(want))
	})

	t.Run("EmptyAndNull", func(t *testing.T) {
		var et EventTime
		require.NoError(t, json.Unmarshal([]byte(`""`), &et))
		assert.True(t, et.Time().IsZero())

		require.NoError(t, json.Unmarshal([]byte(`null`), &et))
		assert.True(t, et.Time().IsZero())
	})

	t.Run("Malformed", func(t *testing.T) {
		var et EventTime
		assert.Error(t, json.Unmarshal([]byte(`"10/03/2025"`), &et))
	})
}

func TestShipment_MarshalJSON(t *testing.T) {
	sh := NewShipment(time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local), testRecipient(), "1023456789")

	data, err := json.Marshal(sh)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "2025-03-10", raw["fecha_envio"])
	assert.Equal(t, "14:30:00", raw["hora_envio"])
	assert.Equal(t, "1023456789", raw["id_remitente"])
	assert.Equal(t, sh.TrackingNumber, raw["numero_guia"])
	assert.Equal(t, "Recibido", raw["estado"])

	recipient, ok := raw["destinatario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Carlos Pérez", recipient["nombre"])
	assert.Equal(t, "Bogotá", recipient["ciudad"])
	assert.Equal(t, "El Chicó", recipient["barrio"])

	history, ok := raw["historial_estados"].([]any)
	require.True(t, ok)
	require.Len(t, history, 1)
	entry, ok := history[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Recibido", entry["estado"])
	assert.Equal(t, "Paquete recibido en la oficina", entry["descripcion"])
	assert.NotEmpty(t, entry["fecha"])
}

// TestShipment_JSONRoundTrip verifies that a shipment survives
// marshal, unmarshal and marshal again byte for byte.
func TestShipment_JSONRoundTrip(t *testing.T) {
	sh := NewShipment(time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local), testRecipient(), "1023456789")
	require.NoError(t, sh.AdvanceStatus(StatusInTransit, "recogido por la transportadora"))
	require.NoError(t, sh.AdvanceStatus(StatusDelivered, "entregado al destinatario"))

	first, err := json.Marshal(sh)
	require.NoError(t, err)

	var restored Shipment
	require.NoError(t, json.Unmarshal(first, &restored))

	assert.Equal(t, sh.TrackingNumber, restored.TrackingNumber)
	assert.Equal(t, sh.SenderID, restored.SenderID)
	assert.Equal(t, sh.Status, restored.Status)
	assert.Equal(t, sh.Recipient, restored.Recipient)
	assert.True(t, restored.SendDate.Equal(sh.SendDate))
	require.Len(t, restored.History, len(sh.History))
	for i := range sh.History {
		assert.Equal(t, sh.History[i].Status, restored.History[i].Status)
		assert.Equal(t, sh.History[i].Description, restored.History[i].Description)
		assert.True(t, restored.History[i].Date.Time().Equal(sh.History[i].Date.Time()))
	}

	second, err := json.Marshal(restored)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

// The send date travels as a separate date and clock pair, so the
// time-of-day portion must recombine without drift.
func TestShipment_UnmarshalJSON_RecombinesSendDate(t *testing.T) {
	payload := `{
        "fecha_envio": "2025-03-10",
        "hora_envio": "14:30:00",
        "destinatario": {
            "nombre": "Ana",
            "direccion": "Calle 1",
            "telefono": "300",
            "ciudad": "Cali",
            "barrio": "San Fernando"
        },
        "id_remitente": "55",
        "numero_guia": "abc-123",
        "estado": "En Reparto",
        "historial_estados": []
    }`

	var sh Shipment
	require.NoError(t, json.Unmarshal([]byte(payload), &sh))

	want := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)
	assert.True(t, sh.SendDate.Equal(want))
	assert.Equal(t, StatusOutForDelivery, sh.Status)
	assert.Equal(t, "abc-123", sh.TrackingNumber)
	assert.Empty(t, sh.History)
}

func TestShipment_UnmarshalJSON_MalformedDates(t *testing.T) {
	var sh Shipment
	err := json.Unmarshal([]byte(`{"fecha_envio": "10/03/2025", "hora_envio": "14:30:00"}`), &sh)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"fecha_envio": "2025-03-10", "hora_envio": "2pm"}`), &sh)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		got, err := ParseDate("2025-03-10")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)))
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, input := range []string{"10-03-2025", "2025/03/10", "ayer", ""} {
			_, err := ParseDate(input)
			assert.ErrorIs(t, err, ErrMalformedDate, "input %q", input)
		}
	})
}

func TestParseDateTime(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		got, err := ParseDateTime("2025-03-10", "14:30")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)))
	})

	t.Run("MalformedClock", func(t *testing.T) {
		_, err := ParseDateTime("2025-03-10", "25:99")
		assert.ErrorIs(t, err, ErrMalformedDate)
	})
}
