package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	shipmentsdomain "envios-registry/internal/features/shipments/domain"
)

func newRegistrarCmd(deps Deps) *cobra.Command {
	var (
		remitente    string
		fecha        string
		hora         string
		destinatario string
		direccion    string
		telefono     string
		ciudad       string
		barrio       string
	)

	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Registrar un nuevo envío",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fecha == "" {
				fecha = time.Now().Format(dateLayout)
			}
			if hora == "" {
				hora = time.Now().Format(clockLayout)
			}

			sendDate, err := shipmentsdomain.ParseDateTime(fecha, hora)
			if err != nil {
				return dateTimeError(err)
			}

			shipment, err := deps.Shipments.Register(cmd.Context(), sendDate, shipmentsdomain.Recipient{
				Name:         destinatario,
				Address:      direccion,
				Phone:        telefono,
				City:         ciudad,
				Neighborhood: barrio,
			}, remitente)
			if err != nil {
				return senderError(err, remitente)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "¡Envío registrado exitosamente!")
			fmt.Fprintf(out, "Número de guía: %s\n", shipment.TrackingNumber)
			fmt.Fprintf(out, "Estado inicial: %s\n", shipment.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&remitente, "remitente", "", "ID del cliente remitente")
	cmd.Flags().StringVar(&fecha, "fecha", "", "Fecha de envío (YYYY-MM-DD, por defecto hoy)")
	cmd.Flags().StringVar(&hora, "hora", "", "Hora de envío (HH:MM, por defecto ahora)")
	cmd.Flags().StringVar(&destinatario, "destinatario", "", "Nombre del destinatario")
	cmd.Flags().StringVar(&direccion, "direccion", "", "Dirección de entrega")
	cmd.Flags().StringVar(&telefono, "telefono", "", "Teléfono del destinatario")
	cmd.Flags().StringVar(&ciudad, "ciudad", "", "Ciudad de destino")
	cmd.Flags().StringVar(&barrio, "barrio", "", "Barrio de destino")

	_ = cmd.MarkFlagRequired("remitente")
	_ = cmd.MarkFlagRequired("destinatario")

	return cmd
}
