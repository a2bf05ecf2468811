package tui

import (
	"fmt"
	"strings"

	"envios-registry/internal/features/customers/domain"
)

// RenderCustomer renders the full customer card.
func RenderCustomer(customer *domain.Customer) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Información del cliente") + "\n")
	b.WriteString(field("Nombres", customer.Names) + "\n")
	b.WriteString(field("Apellidos", customer.Surnames) + "\n")
	b.WriteString(field("ID", fmt.Sprintf("%s (%s)", customer.IDNumber, customer.IDType)) + "\n")
	b.WriteString(field("Dirección", customer.Address) + "\n")
	b.WriteString(field("Teléfono fijo", customer.Landline) + "\n")
	b.WriteString(field("Celular", customer.Mobile) + "\n")
	b.WriteString(field("Barrio", customer.Neighborhood) + "\n")

	return b.String()
}

// RenderCustomerList renders one line per customer, document number first.
func RenderCustomerList(customers []*domain.Customer) string {
	if len(customers) == 0 {
		return noteStyle.Render("No hay clientes registrados en el sistema") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Lista de clientes") + "\n")
	for _, customer := range customers {
		fmt.Fprintf(&b, "%s - %s\n", titleStyle.Render(customer.IDNumber), customer.FullName())
	}

	return b.String()
}
