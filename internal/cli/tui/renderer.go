// Package tui renders records for the terminal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	shipmentsdomain "envios-registry/internal/features/shipments/domain"
)

// warm terminal palette
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	danger  = lipgloss.Color("#EF4444") // red
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle   = lipgloss.NewStyle().Foreground(dim)
	valueStyle   = lipgloss.NewStyle().Foreground(fg)
	missingStyle = lipgloss.NewStyle().Foreground(danger)
	noteStyle    = lipgloss.NewStyle().Foreground(info).Italic(true)
)

var statusColors = map[shipmentsdomain.ShipmentStatus]lipgloss.Color{
	shipmentsdomain.StatusReceived:           info,
	shipmentsdomain.StatusInTransit:          warning,
	shipmentsdomain.StatusInDestinationCity:  warning,
	shipmentsdomain.StatusInCarrierWarehouse: warning,
	shipmentsdomain.StatusOutForDelivery:     accent,
	shipmentsdomain.StatusDelivered:          success,
}

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// StatusBadge renders a shipment status with its lifecycle color.
func StatusBadge(status shipmentsdomain.ShipmentStatus) string {
	color, ok := statusColors[status]
	if !ok {
		color = dim
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(string(status))
}

func field(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value)
}
