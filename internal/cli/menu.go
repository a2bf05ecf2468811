package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"envios-registry/internal/cli/tui"
	customersdomain "envios-registry/internal/features/customers/domain"
	customersservice "envios-registry/internal/features/customers/service"
	shipmentsdomain "envios-registry/internal/features/shipments/domain"
	shipmentsservice "envios-registry/internal/features/shipments/service"
)

// menu drives the interactive console session over the wired services.
// Input exhaustion is sticky: once the reader runs dry every pending
// prompt declines and the session unwinds without further output.
type menu struct {
	deps Deps
	in   *bufio.Scanner
	out  io.Writer
	ctx  context.Context
	eof  bool
}

func runMenu(cmd *cobra.Command, deps Deps) error {
	m := &menu{
		deps: deps,
		in:   bufio.NewScanner(cmd.InOrStdin()),
		out:  cmd.OutOrStdout(),
		ctx:  cmd.Context(),
	}
	m.run()
	return nil
}

// prompt prints the label and reads one line of input.
func (m *menu) prompt(label string) string {
	if m.eof {
		return ""
	}
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		m.eof = true
		fmt.Fprintln(m.out)
		return ""
	}
	return m.in.Text()
}

func (m *menu) run() {
	fmt.Fprintln(m.out, "¡Bienvenido al Sistema de Gestión de Envíos!")

	for !m.eof {
		fmt.Fprintln(m.out, "\n===== SISTEMA DE GESTIÓN DE ENVÍOS =====")
		fmt.Fprintln(m.out, "1. Gestión de Clientes")
		fmt.Fprintln(m.out, "2. Gestión de Envíos")
		fmt.Fprintln(m.out, "3. Seguimiento de Paquetes")
		fmt.Fprintln(m.out, "4. Informes")
		fmt.Fprintln(m.out, "5. Salir")

		opcion := m.prompt("Seleccione una opción: ")
		if m.eof {
			return
		}

		switch opcion {
		case "1":
			m.customersMenu()
		case "2":
			m.shipmentsMenu()
		case "3":
			m.trackingMenu()
		case "4":
			m.reportsMenu()
		case "5":
			fmt.Fprintln(m.out, "¡Gracias por usar el Sistema de Gestión de Envíos!")
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida. Inténtelo de nuevo.")
		}
	}
}

func (m *menu) customersMenu() {
	for !m.eof {
		fmt.Fprintln(m.out, "\n===== GESTIÓN DE CLIENTES =====")
		fmt.Fprintln(m.out, "1. Registrar nuevo cliente")
		fmt.Fprintln(m.out, "2. Actualizar información de cliente")
		fmt.Fprintln(m.out, "3. Buscar cliente")
		fmt.Fprintln(m.out, "4. Ver todos los clientes")
		fmt.Fprintln(m.out, "5. Volver al menú principal")

		opcion := m.prompt("Seleccione una opción: ")
		if m.eof {
			return
		}

		switch opcion {
		case "1":
			m.registerCustomer()
		case "2":
			m.updateCustomer()
		case "3":
			m.findCustomer()
		case "4":
			m.listCustomers()
		case "5":
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida. Inténtelo de nuevo.")
		}
	}
}

func (m *menu) registerCustomer() {
	fmt.Fprintln(m.out, "\n----- Registrar Nuevo Cliente -----")

	nombres := m.prompt("Nombres: ")
	apellidos := m.prompt("Apellidos: ")
	idNumero := m.prompt("Número de identificación: ")

	fmt.Fprintf(m.out, "Tipos de identificación disponibles: %s\n", joinIDTypes())
	tipoID := m.prompt("Tipo de identificación: ")

	direccion := m.prompt("Dirección: ")
	telefono := m.prompt("Teléfono fijo: ")
	celular := m.prompt("Número celular: ")
	barrio := m.prompt("Barrio de residencia: ")
	if m.eof {
		return
	}

	customer, err := m.deps.Customers.Register(
		m.ctx, nombres, apellidos, idNumero,
		customersdomain.IDType(strings.ToUpper(tipoID)),
		direccion, telefono, celular, barrio,
	)
	if err != nil {
		fmt.Fprintf(m.out, "Error al registrar cliente: %v\n", customerError(err, idNumero))
		return
	}

	fmt.Fprintf(m.out, "Cliente registrado exitosamente con ID: %s\n", customer.IDNumber)
}

func (m *menu) updateCustomer() {
	fmt.Fprintln(m.out, "\n----- Actualizar Información de Cliente -----")

	idNumero := m.prompt("Ingrese el número de identificación del cliente: ")
	if m.eof {
		return
	}

	customer, err := m.deps.Customers.Find(m.ctx, idNumero)
	if errors.Is(err, customersservice.ErrCustomerNotFound) {
		fmt.Fprintf(m.out, "No se encontró un cliente con ID: %s\n", idNumero)
		return
	}
	if err != nil {
		fmt.Fprintf(m.out, "Error al actualizar cliente: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "Cliente actual: %s\n", customer.FullName())
	fmt.Fprintln(m.out, "Deje en blanco los campos que no desea modificar")

	direccion := m.prompt(fmt.Sprintf("Nueva dirección [%s]: ", customer.Address))
	telefono := m.prompt(fmt.Sprintf("Nuevo teléfono fijo [%s]: ", customer.Landline))
	celular := m.prompt(fmt.Sprintf("Nuevo número celular [%s]: ", customer.Mobile))
	barrio := m.prompt(fmt.Sprintf("Nuevo barrio de residencia [%s]: ", customer.Neighborhood))
	if m.eof {
		return
	}

	_, err = m.deps.Customers.Update(m.ctx, idNumero, customersdomain.Patch{
		Address:      direccion,
		Landline:     telefono,
		Mobile:       celular,
		Neighborhood: barrio,
	})
	if err != nil {
		fmt.Fprintf(m.out, "Error al actualizar cliente: %v\n", customerError(err, idNumero))
		return
	}

	fmt.Fprintln(m.out, "Información del cliente actualizada exitosamente")
}

func (m *menu) findCustomer() {
	fmt.Fprintln(m.out, "\n----- Buscar Cliente -----")

	idNumero := m.prompt("Ingrese el número de identificación del cliente: ")
	if m.eof {
		return
	}

	customer, err := m.deps.Customers.Find(m.ctx, idNumero)
	if errors.Is(err, customersservice.ErrCustomerNotFound) {
		fmt.Fprintf(m.out, "No se encontró un cliente con ID: %s\n", idNumero)
		return
	}
	if err != nil {
		fmt.Fprintf(m.out, "Error al buscar cliente: %v\n", err)
		return
	}

	fmt.Fprint(m.out, tui.RenderCustomer(customer))
}

func (m *menu) listCustomers() {
	customers, err := m.deps.Customers.List(m.ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error al listar clientes: %v\n", err)
		return
	}

	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, tui.RenderCustomerList(customers))
}

func (m *menu) shipmentsMenu() {
	for !m.eof {
		fmt.Fprintln(m.out, "\n===== GESTIÓN DE ENVÍOS =====")
		fmt.Fprintln(m.out, "1. Registrar nuevo envío")
		fmt.Fprintln(m.out, "2. Actualizar estado de envío")
		fmt.Fprintln(m.out, "3. Buscar envío por número de guía")
		fmt.Fprintln(m.out, "4. Ver envíos por remitente")
		fmt.Fprintln(m.out, "5. Volver al menú principal")

		opcion := m.prompt("Seleccione una opción: ")
		if m.eof {
			return
		}

		switch opcion {
		case "1":
			m.registerShipment()
		case "2":
			m.updateStatus()
		case "3":
			m.findShipment()
		case "4":
			m.shipmentsBySender()
		case "5":
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida. Inténtelo de nuevo.")
		}
	}
}

func (m *menu) registerShipment() {
	fmt.Fprintln(m.out, "\n----- Registrar Nuevo Envío -----")

	senderID := m.prompt("Número de identificación del remitente: ")
	if m.eof {
		return
	}

	sender, err := m.deps.Customers.Find(m.ctx, senderID)
	if errors.Is(err, customersservice.ErrCustomerNotFound) {
		fmt.Fprintf(m.out, "No se encontró un cliente con ID: %s\n", senderID)
		fmt.Fprintln(m.out, "El remitente debe estar registrado en el sistema")
		return
	}
	if err != nil {
		fmt.Fprintf(m.out, "Error al registrar envío: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "Remitente: %s\n", sender.FullName())

	now := time.Now()
	fecha := m.prompt(fmt.Sprintf("Fecha del envío (YYYY-MM-DD) [%s]: ", now.Format(dateLayout)))
	hora := m.prompt(fmt.Sprintf("Hora del envío (HH:MM) [%s]: ", now.Format(clockLayout)))
	if m.eof {
		return
	}

	if fecha == "" {
		fecha = now.Format(dateLayout)
	}
	if hora == "" {
		hora = now.Format(clockLayout)
	}

	sendDate, err := shipmentsdomain.ParseDateTime(fecha, hora)
	if err != nil {
		fmt.Fprintf(m.out, "Error al registrar envío: %v\n", dateTimeError(err))
		return
	}

	fmt.Fprintln(m.out, "\nInformación del destinatario:")
	nombre := m.prompt("Nombre completo: ")
	direccion := m.prompt("Dirección: ")
	telefono := m.prompt("Teléfono de contacto: ")
	ciudad := m.prompt("Ciudad: ")
	barrio := m.prompt("Barrio: ")
	if m.eof {
		return
	}

	shipment, err := m.deps.Shipments.Register(m.ctx, sendDate, shipmentsdomain.Recipient{
		Name:         nombre,
		Address:      direccion,
		Phone:        telefono,
		City:         ciudad,
		Neighborhood: barrio,
	}, senderID)
	if err != nil {
		fmt.Fprintf(m.out, "Error al registrar envío: %v\n", senderError(err, senderID))
		return
	}

	fmt.Fprintln(m.out, "\n¡Envío registrado exitosamente!")
	fmt.Fprintf(m.out, "Número de guía: %s\n", shipment.TrackingNumber)
	fmt.Fprintf(m.out, "Estado inicial: %s\n", tui.StatusBadge(shipment.Status))
}

func (m *menu) updateStatus() {
	fmt.Fprintln(m.out, "\n----- Actualizar Estado de Envío -----")

	numeroGuia := m.prompt("Ingrese el número de guía del envío: ")
	if m.eof {
		return
	}

	shipment, err := m.deps.Shipments.Find(m.ctx, numeroGuia)
	if errors.Is(err, shipmentsservice.ErrShipmentNotFound) {
		fmt.Fprintf(m.out, "No se encontró un envío con el número de guía: %s\n", numeroGuia)
		return
	}
	if err != nil {
		fmt.Fprintf(m.out, "Error al actualizar estado: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "Estado actual: %s\n", tui.StatusBadge(shipment.Status))
	fmt.Fprintf(m.out, "Estados disponibles: %s\n", joinStatuses())

	nuevoEstado := m.prompt("Nuevo estado: ")
	descripcion := m.prompt("Descripción o comentario (opcional): ")
	if m.eof {
		return
	}

	_, err = m.deps.Shipments.AdvanceStatus(m.ctx, numeroGuia,
		shipmentsdomain.ShipmentStatus(nuevoEstado), descripcion)
	if err != nil {
		fmt.Fprintf(m.out, "Error al actualizar estado: %v\n", shipmentError(err, numeroGuia))
		return
	}

	fmt.Fprintln(m.out, "Estado del envío actualizado exitosamente")
}

func (m *menu) findShipment() {
	fmt.Fprintln(m.out, "\n----- Buscar Envío -----")

	numeroGuia := m.prompt("Ingrese el número de guía: ")
	if m.eof {
		return
	}

	shipment, err := m.deps.Shipments.Find(m.ctx, numeroGuia)
	if errors.Is(err, shipmentsservice.ErrShipmentNotFound) {
		fmt.Fprintf(m.out, "No se encontró un envío con el número de guía: %s\n", numeroGuia)
		return
	}
	if err != nil {
		fmt.Fprintf(m.out, "Error al buscar envío: %v\n", err)
		return
	}

	m.showShipment(shipment)
}

// showShipment renders the full card. A sender deleted from the records
// after the shipment was created still leaves the card displayable.
func (m *menu) showShipment(shipment *shipmentsdomain.Shipment) {
	sender, err := m.deps.Customers.Find(m.ctx, shipment.SenderID)
	if err != nil && !errors.Is(err, customersservice.ErrCustomerNotFound) {
		fmt.Fprintf(m.out, "Error al buscar envío: %v\n", err)
		return
	}

	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, tui.RenderShipment(shipment, sender))
}

func (m *menu) shipmentsBySender() {
	fmt.Fprintln(m.out, "\n----- Ver Envíos por Remitente -----")

	senderID := m.prompt("Ingrese el número de identificación del remitente: ")
	if m.eof {
		return
	}

	sender, err := m.deps.Customers.Find(m.ctx, senderID)
	if errors.Is(err, customersservice.ErrCustomerNotFound) {
		fmt.Fprintf(m.out, "No se encontró un cliente con ID: %s\n", senderID)
		return
	}
	if err != nil {
		fmt.Fprintf(m.out, "Error al buscar envíos: %v\n", err)
		return
	}

	shipments, err := m.deps.Shipments.BySender(m.ctx, senderID)
	if err != nil {
		fmt.Fprintf(m.out, "Error al buscar envíos: %v\n", err)
		return
	}

	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, tui.RenderShipmentList(sender, shipments))
	if len(shipments) == 0 {
		return
	}

	respuesta := m.prompt("\n¿Desea ver el detalle de algún envío? (S/N): ")
	if m.eof || !strings.EqualFold(respuesta, "S") {
		return
	}

	indiceStr := m.prompt("Ingrese el número del envío: ")
	if m.eof {
		return
	}

	indice, err := strconv.Atoi(strings.TrimSpace(indiceStr))
	if err != nil || indice < 1 || indice > len(shipments) {
		fmt.Fprintln(m.out, "Índice inválido")
		return
	}

	m.showShipment(shipments[indice-1])
}

func (m *menu) trackingMenu() {
	for !m.eof {
		fmt.Fprintln(m.out, "\n===== SEGUIMIENTO DE PAQUETES =====")
		fmt.Fprintln(m.out, "1. Seguimiento por número de guía")
		fmt.Fprintln(m.out, "2. Seguimiento múltiple")
		fmt.Fprintln(m.out, "3. Volver al menú principal")

		opcion := m.prompt("Seleccione una opción: ")
		if m.eof {
			return
		}

		switch opcion {
		case "1":
			m.trackOne()
		case "2":
			m.trackMany()
		case "3":
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida. Inténtelo de nuevo.")
		}
	}
}

func (m *menu) trackOne() {
	fmt.Fprintln(m.out, "\n----- Seguimiento de Paquete -----")

	numeroGuia := m.prompt("Ingrese el número de guía: ")
	if m.eof {
		return
	}

	shipment, err := m.deps.Shipments.Find(m.ctx, numeroGuia)
	if errors.Is(err, shipmentsservice.ErrShipmentNotFound) {
		fmt.Fprintf(m.out, "No se encontró un envío con el número de guía: %s\n", numeroGuia)
		return
	}
	if err != nil {
		fmt.Fprintf(m.out, "Error al consultar el envío: %v\n", err)
		return
	}

	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, tui.RenderTracking(shipment))
}

func (m *menu) trackMany() {
	fmt.Fprintln(m.out, "\n----- Seguimiento Múltiple de Paquetes -----")

	entrada := m.prompt("Ingrese los números de guía separados por coma: ")
	if m.eof {
		return
	}

	numeros := strings.Split(entrada, ",")
	for i, numero := range numeros {
		numeros[i] = strings.TrimSpace(numero)
	}

	results, err := m.deps.Shipments.FindMany(m.ctx, numeros)
	if err != nil {
		fmt.Fprintf(m.out, "Error al consultar los envíos: %v\n", err)
		return
	}

	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, tui.RenderTrackingResults(numeros, results))
}

func (m *menu) reportsMenu() {
	for !m.eof {
		fmt.Fprintln(m.out, "\n===== INFORMES =====")
		fmt.Fprintln(m.out, "1. Informe de envíos por período")
		fmt.Fprintln(m.out, "2. Volver al menú principal")

		opcion := m.prompt("Seleccione una opción: ")
		if m.eof {
			return
		}

		switch opcion {
		case "1":
			m.periodReport()
		case "2":
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida. Inténtelo de nuevo.")
		}
	}
}

func (m *menu) periodReport() {
	fmt.Fprintln(m.out, "\n----- Informe de Envíos por Período -----")

	desde := m.prompt("Fecha de inicio (YYYY-MM-DD): ")
	hasta := m.prompt("Fecha de fin (YYYY-MM-DD): ")
	if m.eof {
		return
	}

	start, err := shipmentsdomain.ParseDate(desde)
	if err != nil {
		fmt.Fprintln(m.out, "Error en el formato de fecha: use YYYY-MM-DD")
		return
	}
	end, err := shipmentsdomain.ParseDate(hasta)
	if err != nil {
		fmt.Fprintln(m.out, "Error en el formato de fecha: use YYYY-MM-DD")
		return
	}

	report, err := m.deps.Shipments.Report(m.ctx, start, end)
	if err != nil {
		fmt.Fprintf(m.out, "Error al generar informe: %v\n", err)
		return
	}

	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, tui.RenderReport(report, start, end))

	respuesta := m.prompt("\n¿Desea guardar este informe en un archivo? (S/N): ")
	if m.eof || !strings.EqualFold(respuesta, "S") {
		return
	}

	path, err := m.deps.Exporter.Export(report, start, end)
	if err != nil {
		fmt.Fprintf(m.out, "Error al generar informe: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "Informe guardado en el archivo: %s\n", path)
}
