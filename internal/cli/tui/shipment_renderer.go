package tui

import (
	"fmt"
	"strings"

	customersdomain "envios-registry/internal/features/customers/domain"
	shipmentsdomain "envios-registry/internal/features/shipments/domain"
)

// RenderShipment renders the full shipment card: identification, the
// sender block when the sender is still registered, the recipient and
// the numbered status history.
func RenderShipment(shipment *shipmentsdomain.Shipment, sender *customersdomain.Customer) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Información del envío") + "\n")
	b.WriteString(field("Número de guía", shipment.TrackingNumber) + "\n")
	b.WriteString(field("Fecha de envío", shipment.SendDate.Format(dateLayout)) + "\n")
	b.WriteString(field("Hora de envío", shipment.SendDate.Format(clockLayout)) + "\n")
	b.WriteString(labelStyle.Render("Estado actual: ") + StatusBadge(shipment.Status) + "\n\n")

	if sender != nil {
		b.WriteString(field("Remitente", sender.FullName()) + "\n")
		b.WriteString(field("ID", sender.IDNumber) + "\n")
		b.WriteString(field("Teléfono", sender.Mobile) + "\n")
	} else {
		b.WriteString(labelStyle.Render("Remitente ID: ") +
			valueStyle.Render(shipment.SenderID) + " " + missingStyle.Render("(No encontrado)") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(field("Destinatario", shipment.Recipient.Name) + "\n")
	b.WriteString(field("Dirección", shipment.Recipient.Address) + "\n")
	b.WriteString(field("Ciudad", fmt.Sprintf("%s, Barrio: %s", shipment.Recipient.City, shipment.Recipient.Neighborhood)) + "\n")
	b.WriteString(field("Teléfono", shipment.Recipient.Phone) + "\n\n")

	writeHistory(&b, shipment.History)

	return b.String()
}

// RenderShipmentList renders the numbered summary used by the
// shipments-by-sender view.
func RenderShipmentList(sender *customersdomain.Customer, shipments []*shipmentsdomain.Shipment) string {
	if len(shipments) == 0 {
		return noteStyle.Render(fmt.Sprintf("No hay envíos registrados para el cliente %s", sender.FullName())) + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Envíos de "+sender.FullName()) + "\n")
	for i, shipment := range shipments {
		fmt.Fprintf(&b, "%d. Guía: %s - Fecha: %s - Estado: %s\n",
			i+1, shipment.TrackingNumber, shipment.SendDate.Format(dateLayout), StatusBadge(shipment.Status))
	}

	return b.String()
}

// RenderTracking renders the short package view used by the tracking
// flows.
func RenderTracking(shipment *shipmentsdomain.Shipment) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Estado del envío") + "\n")
	b.WriteString(field("Número de guía", shipment.TrackingNumber) + "\n")
	b.WriteString(labelStyle.Render("Estado actual: ") + StatusBadge(shipment.Status) + "\n")
	b.WriteString(field("Destinatario", shipment.Recipient.Name) + "\n")
	b.WriteString(field("Ciudad destino", shipment.Recipient.City) + "\n\n")

	writeHistory(&b, shipment.History)

	return b.String()
}

// RenderTrackingResults renders one block per distinct requested number,
// in request order, and a found-of-requested summary. The total counts
// the raw request, repeats included.
func RenderTrackingResults(requested []string, results map[string]*shipmentsdomain.Shipment) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Resultados de seguimiento") + "\n")

	seen := make(map[string]bool, len(requested))
	found := 0
	for _, number := range requested {
		if seen[number] {
			continue
		}
		seen[number] = true

		shipment := results[number]
		if shipment == nil {
			b.WriteString("\n" + labelStyle.Render("Guía: ") + valueStyle.Render(number) +
				" - " + missingStyle.Render("No encontrado") + "\n")
			continue
		}

		found++
		b.WriteString("\n" + field("Guía", number) + "\n")
		b.WriteString(labelStyle.Render("Estado: ") + StatusBadge(shipment.Status) + "\n")
		b.WriteString(field("Destinatario", shipment.Recipient.Name) + "\n")
		b.WriteString(field("Ciudad", shipment.Recipient.City) + "\n")
	}

	fmt.Fprintf(&b, "\nTotal: %d de %d envíos encontrados\n", found, len(requested))

	return b.String()
}

func writeHistory(b *strings.Builder, history []shipmentsdomain.StatusEntry) {
	b.WriteString(titleStyle.Render("Historial de estados") + "\n")
	for i, entry := range history {
		fmt.Fprintf(b, "%d. %s - %s\n", i+1, StatusBadge(entry.Status), entry.Date)
		if entry.Description != "" {
			b.WriteString("   " + noteStyle.Render(entry.Description) + "\n")
		}
	}
}
