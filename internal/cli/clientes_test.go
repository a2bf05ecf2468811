package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientesRegistrarCommand(t *testing.T) {
	deps := newTestDeps(t)

	out, err := runCommand(t, deps, "clientes", "registrar",
		"--nombres", "Ana María",
		"--apellidos", "Gómez",
		"--id", "1023456789",
		"--tipo", "CC",
		"--direccion", "Calle 45 # 12-10",
		"--telefono", "6015551234",
		"--celular", "3001112233",
		"--barrio", "Teusaquillo",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Cliente registrado exitosamente con ID: 1023456789")
}

func TestClientesRegistrarCommand_LowercaseType(t *testing.T) {
	deps := newTestDeps(t)

	_, err := runCommand(t, deps, "clientes", "registrar",
		"--nombres", "Ana María", "--apellidos", "Gómez", "--id", "1023456789", "--tipo", "cc")
	require.NoError(t, err)

	out, err := runCommand(t, deps, "clientes", "buscar", "1023456789")
	require.NoError(t, err)
	assert.Contains(t, out, "1023456789 (CC)")
}

func TestClientesRegistrarCommand_DuplicateID(t *testing.T) {
	deps := newTestDeps(t)
	registerAna(t, deps)

	_, err := runCommand(t, deps, "clientes", "registrar",
		"--nombres", "Otra", "--apellidos", "Persona", "--id", "1023456789", "--tipo", "CC")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya existe un cliente con el ID 1023456789")
}

func TestClientesRegistrarCommand_InvalidIDType(t *testing.T) {
	deps := newTestDeps(t)

	_, err := runCommand(t, deps, "clientes", "registrar",
		"--nombres", "Ana María", "--apellidos", "Gómez", "--id", "1", "--tipo", "PASAPORTE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo de ID inválido, debe ser uno de: CC, TI, CE")
}

func TestClientesActualizarCommand(t *testing.T) {
	deps := newTestDeps(t)
	registerAna(t, deps)

	out, err := runCommand(t, deps, "clientes", "actualizar", "1023456789",
		"--direccion", "Carrera 15 # 98-40")
	require.NoError(t, err)
	assert.Contains(t, out, "Información del cliente actualizada exitosamente")

	out, err = runCommand(t, deps, "clientes", "buscar", "1023456789")
	require.NoError(t, err)
	assert.Contains(t, out, "Carrera 15 # 98-40")
	assert.Contains(t, out, "3001112233")
}

func TestClientesActualizarCommand_NotFound(t *testing.T) {
	deps := newTestDeps(t)

	_, err := runCommand(t, deps, "clientes", "actualizar", "999", "--direccion", "Calle 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no se encontró un cliente con ID: 999")
}

func TestClientesBuscarCommand_NotFound(t *testing.T) {
	deps := newTestDeps(t)

	_, err := runCommand(t, deps, "clientes", "buscar", "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no se encontró un cliente con ID: 999")
}

func TestClientesListarCommand(t *testing.T) {
	deps := newTestDeps(t)

	out, err := runCommand(t, deps, "clientes", "listar")
	require.NoError(t, err)
	assert.Contains(t, out, "No hay clientes registrados en el sistema")

	registerAna(t, deps)

	out, err = runCommand(t, deps, "clientes", "listar")
	require.NoError(t, err)
	assert.Contains(t, out, "1023456789")
	assert.Contains(t, out, "Ana María Gómez")
}
