// Package cli exposes the operator-facing commands over the record
// services. Running the binary without a subcommand opens the
// interactive menu.
package cli

import (
	"github.com/spf13/cobra"

	customersports "envios-registry/internal/features/customers/ports"
	shipmentsports "envios-registry/internal/features/shipments/ports"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Deps carries the wired services the commands run against.
type Deps struct {
	Customers customersports.CustomerService
	Shipments shipmentsports.ShipmentService
	Exporter  shipmentsports.ReportExporter
}

func newRootCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "envios",
		Short:         "Registro de clientes y envíos de paquetería",
		Long:          "Sistema de gestión de envíos: registro de clientes remitentes, envíos con historial de estados, seguimiento por número de guía e informes por período.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, deps)
		},
	}

	cmd.AddCommand(newClientesCmd(deps))
	cmd.AddCommand(newRegistrarCmd(deps))
	cmd.AddCommand(newEstadoCmd(deps))
	cmd.AddCommand(newBuscarCmd(deps))
	cmd.AddCommand(newRemitenteCmd(deps))
	cmd.AddCommand(newRastrearCmd(deps))
	cmd.AddCommand(newInformeCmd(deps))

	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest(deps Deps) *cobra.Command {
	return newRootCmd(deps)
}

// Execute runs the command tree.
func Execute(deps Deps) error {
	return newRootCmd(deps).Execute()
}
