package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"envios-registry/internal/cli/tui"
	customersdomain "envios-registry/internal/features/customers/domain"
	customersservice "envios-registry/internal/features/customers/service"
)

func newBuscarCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "buscar <guia>",
		Short: "Buscar un envío por su número de guía",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shipment, err := deps.Shipments.Find(cmd.Context(), args[0])
			if err != nil {
				return shipmentError(err, args[0])
			}

			// A missing sender still leaves the shipment displayable.
			var sender *customersdomain.Customer
			sender, err = deps.Customers.Find(cmd.Context(), shipment.SenderID)
			if err != nil && !errors.Is(err, customersservice.ErrCustomerNotFound) {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderShipment(shipment, sender))
			return nil
		},
	}
}
