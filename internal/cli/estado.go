package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"envios-registry/internal/cli/tui"
	shipmentsdomain "envios-registry/internal/features/shipments/domain"
)

func newEstadoCmd(deps Deps) *cobra.Command {
	var nota string

	cmd := &cobra.Command{
		Use:   "estado <guia> <nuevo-estado>",
		Short: "Actualizar el estado de un envío",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trackingNumber := args[0]

			shipment, err := deps.Shipments.AdvanceStatus(
				cmd.Context(), trackingNumber, shipmentsdomain.ShipmentStatus(args[1]), nota,
			)
			if err != nil {
				return shipmentError(err, trackingNumber)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Estado del envío actualizado exitosamente")
			fmt.Fprint(out, tui.RenderTracking(shipment))
			return nil
		},
	}

	cmd.Flags().StringVar(&nota, "nota", "", "Descripción del cambio de estado")

	return cmd
}
