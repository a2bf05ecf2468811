package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"envios-registry/internal/features/shipments/domain"
)

// RenderReport renders the period aggregates: statuses in lifecycle
// order, cities alphabetically, and the delivery average when at least
// one shipment was delivered.
func RenderReport(report *domain.Report, start, end time.Time) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("INFORME DE ENVÍOS") + "\n")
	b.WriteString(field("Período", start.Format(dateLayout)+" a "+end.Format(dateLayout)) + "\n")
	b.WriteString(field("Total de envíos", strconv.Itoa(report.TotalShipments)) + "\n\n")

	b.WriteString(titleStyle.Render("Distribución por estados") + "\n")
	for _, status := range domain.Statuses {
		fmt.Fprintf(&b, "- %s: %d\n", StatusBadge(status), report.StatusCounts[status])
	}

	b.WriteString("\n" + titleStyle.Render("Distribución por ciudades") + "\n")
	cities := make([]string, 0, len(report.CityCounts))
	for city := range report.CityCounts {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	for _, city := range cities {
		fmt.Fprintf(&b, "- %s: %d\n", city, report.CityCounts[city])
	}

	b.WriteString("\n" + field("Envíos entregados", strconv.Itoa(report.DeliveredCount)) + "\n")
	if report.DeliveredCount > 0 {
		b.WriteString(field("Tiempo promedio de entrega", fmt.Sprintf("%.2f horas", report.AvgDeliveryHours)) + "\n")
	}

	return b.String()
}
