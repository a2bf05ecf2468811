package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"envios-registry/internal/cli/tui"
)

func newRemitenteCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "remitente <id>",
		Short: "Listar los envíos de un cliente remitente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := deps.Customers.Find(cmd.Context(), args[0])
			if err != nil {
				return customerError(err, args[0])
			}

			shipments, err := deps.Shipments.BySender(cmd.Context(), sender.IDNumber)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderShipmentList(sender, shipments))
			return nil
		},
	}
}
