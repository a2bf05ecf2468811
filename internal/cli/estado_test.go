package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstadoCommand(t *testing.T) {
	deps := newTestDeps(t)
	registerAna(t, deps)
	number := registerShipment(t, deps, "1023456789")

	out, err := runCommand(t, deps, "estado", number, "En Tránsito", "--nota", "Salió de la bodega de Bogotá")
	require.NoError(t, err)
	assert.Contains(t, out, "Estado del envío actualizado exitosamente")
	assert.Contains(t, out, "En Tránsito")
	assert.Contains(t, out, "Salió de la bodega de Bogotá")
	assert.Contains(t, out, "Paquete recibido en la oficina")
}

func TestEstadoCommand_BackwardsTransition(t *testing.T) {
	deps := newTestDeps(t)
	registerAna(t, deps)
	number := registerShipment(t, deps, "1023456789")

	_, err := runCommand(t, deps, "estado", number, "Entregado")
	require.NoError(t, err)

	out, err := runCommand(t, deps, "estado", number, "Recibido")
	require.NoError(t, err)
	assert.Contains(t, out, "Estado del envío actualizado exitosamente")
	assert.Contains(t, out, "3. ")
}

func TestEstadoCommand_InvalidStatus(t *testing.T) {
	deps := newTestDeps(t)
	registerAna(t, deps)
	number := registerShipment(t, deps, "1023456789")

	_, err := runCommand(t, deps, "estado", number, "Perdido")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estado inválido, debe ser uno de: Recibido")
}

func TestEstadoCommand_NotFound(t *testing.T) {
	deps := newTestDeps(t)

	_, err := runCommand(t, deps, "estado", "no-such", "En Tránsito")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no se encontró un envío con el número de guía: no-such")
}
