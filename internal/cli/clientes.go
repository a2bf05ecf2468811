package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"envios-registry/internal/cli/tui"
	customersdomain "envios-registry/internal/features/customers/domain"
)

func newClientesCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clientes",
		Short: "Gestión de clientes remitentes",
	}

	cmd.AddCommand(newClientesRegistrarCmd(deps))
	cmd.AddCommand(newClientesActualizarCmd(deps))
	cmd.AddCommand(newClientesBuscarCmd(deps))
	cmd.AddCommand(newClientesListarCmd(deps))

	return cmd
}

func newClientesRegistrarCmd(deps Deps) *cobra.Command {
	var (
		nombres   string
		apellidos string
		idNumero  string
		tipoID    string
		direccion string
		telefono  string
		celular   string
		barrio    string
	)

	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Registrar un nuevo cliente remitente",
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := deps.Customers.Register(
				cmd.Context(),
				nombres, apellidos, idNumero,
				customersdomain.IDType(strings.ToUpper(tipoID)),
				direccion, telefono, celular, barrio,
			)
			if err != nil {
				return customerError(err, idNumero)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cliente registrado exitosamente con ID: %s\n", customer.IDNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&nombres, "nombres", "", "Nombres del cliente")
	cmd.Flags().StringVar(&apellidos, "apellidos", "", "Apellidos del cliente")
	cmd.Flags().StringVar(&idNumero, "id", "", "Número de identificación")
	cmd.Flags().StringVar(&tipoID, "tipo", "", "Tipo de identificación (CC, TI o CE)")
	cmd.Flags().StringVar(&direccion, "direccion", "", "Dirección de residencia")
	cmd.Flags().StringVar(&telefono, "telefono", "", "Teléfono fijo")
	cmd.Flags().StringVar(&celular, "celular", "", "Número de celular")
	cmd.Flags().StringVar(&barrio, "barrio", "", "Barrio de residencia")

	_ = cmd.MarkFlagRequired("nombres")
	_ = cmd.MarkFlagRequired("apellidos")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("tipo")

	return cmd
}

func newClientesActualizarCmd(deps Deps) *cobra.Command {
	var (
		direccion string
		telefono  string
		celular   string
		barrio    string
	)

	cmd := &cobra.Command{
		Use:   "actualizar <id>",
		Short: "Actualizar los datos de contacto de un cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idNumero := args[0]

			_, err := deps.Customers.Update(cmd.Context(), idNumero, customersdomain.Patch{
				Address:      direccion,
				Landline:     telefono,
				Mobile:       celular,
				Neighborhood: barrio,
			})
			if err != nil {
				return customerError(err, idNumero)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Información del cliente actualizada exitosamente")
			return nil
		},
	}

	cmd.Flags().StringVar(&direccion, "direccion", "", "Nueva dirección")
	cmd.Flags().StringVar(&telefono, "telefono", "", "Nuevo teléfono fijo")
	cmd.Flags().StringVar(&celular, "celular", "", "Nuevo celular")
	cmd.Flags().StringVar(&barrio, "barrio", "", "Nuevo barrio")

	return cmd
}

func newClientesBuscarCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "buscar <id>",
		Short: "Buscar un cliente por su número de identificación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := deps.Customers.Find(cmd.Context(), args[0])
			if err != nil {
				return customerError(err, args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCustomer(customer))
			return nil
		},
	}
}

func newClientesListarCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "Listar todos los clientes registrados",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := deps.Customers.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCustomerList(customers))
			return nil
		},
	}
}
