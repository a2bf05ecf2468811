package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"envios-registry/internal/features/shipments/domain"
)

const exportDateLayout = "2006-01-02"

// FileReportExporter implements ports.ReportExporter by writing plain
// text files named after the queried period.
type FileReportExporter struct {
	dir string
}

// NewFileReportExporter creates an exporter that writes into dir.
func NewFileReportExporter(dir string) *FileReportExporter {
	return &FileReportExporter{
		dir: dir,
	}
}

// Export writes the report and returns the path of the created file.
func (e *FileReportExporter) Export(report *domain.Report, start, end time.Time) (string, error) {
	name := fmt.Sprintf("informe_%s_%s.txt", start.Format(exportDateLayout), end.Format(exportDateLayout))
	path := filepath.Join(e.dir, name)

	if err := os.WriteFile(path, []byte(formatReport(report, start, end)), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return path, nil
}

// formatReport renders the aggregate layout: header, period, totals, the
// per-status and per-city distributions, and the delivery average when at
// least one shipment was delivered. Statuses keep their lifecycle order;
// cities are listed alphabetically.
func formatReport(report *domain.Report, start, end time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "===== INFORME DE ENVÍOS =====\n")
	fmt.Fprintf(&b, "Período: %s a %s\n", start.Format(exportDateLayout), end.Format(exportDateLayout))
	fmt.Fprintf(&b, "Total de envíos: %d\n\n", report.TotalShipments)

	b.WriteString("Distribución por estados:\n")
	for _, status := range domain.Statuses {
		fmt.Fprintf(&b, "- %s: %d\n", status, report.StatusCounts[status])
	}

	b.WriteString("\nDistribución por ciudades:\n")
	cities := make([]string, 0, len(report.CityCounts))
	for city := range report.CityCounts {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	for _, city := range cities {
		fmt.Fprintf(&b, "- %s: %d\n", city, report.CityCounts[city])
	}

	fmt.Fprintf(&b, "\nEnvíos entregados: %d\n", report.DeliveredCount)
	if report.DeliveredCount > 0 {
		fmt.Fprintf(&b, "Tiempo promedio de entrega: %.2f horas\n", report.AvgDeliveryHours)
	}

	return b.String()
}
