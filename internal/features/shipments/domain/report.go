package domain

// Report aggregates the shipments dispatched inside an inclusive date range.
type Report struct {
	// TotalShipments counts every shipment whose send date falls in range.
	TotalShipments int `json:"total_envios"`
	// StatusCounts holds one entry per known status, zero-filled.
	StatusCounts map[ShipmentStatus]int `json:"conteo_estados"`
	// CityCounts counts shipments per destination city; only observed
	// cities appear.
	CityCounts map[string]int `json:"conteo_ciudades"`
	// DeliveredCount counts shipments whose current status is Entregado.
	DeliveredCount int `json:"envios_entregados"`
	// AvgDeliveryHours is the mean time from creation to the first
	// Entregado history entry, in hours, over the delivered shipments that
	// have such an entry. Zero when none contribute.
	AvgDeliveryHours float64 `json:"tiempo_promedio_entrega_horas"`
}

// NewReport returns an empty report with every known status zero-filled.
func NewReport() *Report {
	counts := make(map[ShipmentStatus]int, len(Statuses))
	for _, status := range Statuses {
		counts[status] = 0
	}

	return &Report{
		StatusCounts: counts,
		CityCounts:   make(map[string]int),
	}
}
