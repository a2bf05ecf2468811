package cli

import (
	"errors"
	"fmt"
	"strings"

	customersdomain "envios-registry/internal/features/customers/domain"
	customersservice "envios-registry/internal/features/customers/service"
	shipmentsdomain "envios-registry/internal/features/shipments/domain"
	shipmentsservice "envios-registry/internal/features/shipments/service"
)

func joinIDTypes() string {
	parts := make([]string, len(customersdomain.IDTypes))
	for i, t := range customersdomain.IDTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func joinStatuses() string {
	parts := make([]string, len(shipmentsdomain.Statuses))
	for i, s := range shipmentsdomain.Statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// customerError rewords customer record failures for the operator.
func customerError(err error, idNumber string) error {
	switch {
	case errors.Is(err, customersservice.ErrDuplicateCustomer):
		return fmt.Errorf("ya existe un cliente con el ID %s", idNumber)
	case errors.Is(err, customersservice.ErrCustomerNotFound):
		return fmt.Errorf("no se encontró un cliente con ID: %s", idNumber)
	case errors.Is(err, customersdomain.ErrInvalidIDType):
		return fmt.Errorf("tipo de ID inválido, debe ser uno de: %s", joinIDTypes())
	}
	return err
}

// shipmentError rewords shipment record failures for the operator.
func shipmentError(err error, trackingNumber string) error {
	switch {
	case errors.Is(err, shipmentsservice.ErrShipmentNotFound):
		return fmt.Errorf("no se encontró un envío con el número de guía: %s", trackingNumber)
	case errors.Is(err, shipmentsdomain.ErrInvalidStatus):
		return fmt.Errorf("estado inválido, debe ser uno de: %s", joinStatuses())
	}
	return err
}

// senderError rewords a rejected sender reference during shipment registration.
func senderError(err error, senderID string) error {
	if errors.Is(err, shipmentsservice.ErrSenderNotFound) {
		return fmt.Errorf("no existe un cliente con el ID %s", senderID)
	}
	return err
}

// dateError rewords an unparseable operator-supplied date.
func dateError(err error) error {
	if errors.Is(err, shipmentsdomain.ErrMalformedDate) {
		return errors.New("formato de fecha inválido, use YYYY-MM-DD")
	}
	return err
}

// dateTimeError rewords an unparseable operator-supplied send instant.
func dateTimeError(err error) error {
	if errors.Is(err, shipmentsdomain.ErrMalformedDate) {
		return errors.New("formato de fecha u hora inválido, use YYYY-MM-DD y HH:MM")
	}
	return err
}
