package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"envios-registry/internal/cli/tui"
)

func newRastrearCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "rastrear <guia> [guia...]",
		Short: "Consultar el historial de estados de uno o varios envíos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				shipment, err := deps.Shipments.Find(cmd.Context(), args[0])
				if err != nil {
					return shipmentError(err, args[0])
				}

				fmt.Fprint(cmd.OutOrStdout(), tui.RenderTracking(shipment))
				return nil
			}

			results, err := deps.Shipments.FindMany(cmd.Context(), args)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTrackingResults(args, results))
			return nil
		},
	}
}
