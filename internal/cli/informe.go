package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"envios-registry/internal/cli/tui"
	shipmentsdomain "envios-registry/internal/features/shipments/domain"
)

func newInformeCmd(deps Deps) *cobra.Command {
	var (
		desde   string
		hasta   string
		guardar bool
	)

	cmd := &cobra.Command{
		Use:   "informe",
		Short: "Generar el informe de envíos de un período",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := shipmentsdomain.ParseDate(desde)
			if err != nil {
				return dateError(err)
			}
			end, err := shipmentsdomain.ParseDate(hasta)
			if err != nil {
				return dateError(err)
			}

			report, err := deps.Shipments.Report(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderReport(report, start, end))

			if guardar {
				path, err := deps.Exporter.Export(report, start, end)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Informe guardado en el archivo: %s\n", path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&desde, "desde", "", "Fecha de inicio (YYYY-MM-DD)")
	cmd.Flags().StringVar(&hasta, "hasta", "", "Fecha de fin (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&guardar, "guardar", false, "Guardar el informe en un archivo de texto")

	_ = cmd.MarkFlagRequired("desde")
	_ = cmd.MarkFlagRequired("hasta")

	return cmd
}
