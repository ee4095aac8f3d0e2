package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacigarreria/tienda-api/internal/application/checkout"
	"github.com/lacigarreria/tienda-api/internal/domain"
)

func TestSession_FlujoFeliz(t *testing.T) {
	s := checkout.NewSession()
	assert.Equal(t, checkout.StateCollectingAddress, s.State())

	require.NoError(t, s.Submit())
	assert.Equal(t, checkout.StateSubmitting, s.State())

	require.NoError(t, s.Succeed())
	assert.Equal(t, checkout.StateSubmitted, s.State())
}

func TestSession_FalloPermiteReintentar(t *testing.T) {
	s := checkout.NewSession()
	require.NoError(t, s.Submit())
	require.NoError(t, s.Fail())
	assert.Equal(t, checkout.StateFailed, s.State())

	// desde failed se puede volver a enviar
	require.NoError(t, s.Submit())
	require.NoError(t, s.Succeed())
	assert.Equal(t, checkout.StateSubmitted, s.State())
}

func TestSession_SubmittedEsTerminal(t *testing.T) {
	s := checkout.NewSession()
	require.NoError(t, s.Submit())
	require.NoError(t, s.Succeed())

	assert.ErrorIs(t, s.Submit(), domain.ErrConflict)
	assert.ErrorIs(t, s.Succeed(), domain.ErrConflict)
	assert.ErrorIs(t, s.Fail(), domain.ErrConflict)
}

func TestSession_TransicionesInvalidasDesdeInicio(t *testing.T) {
	s := checkout.NewSession()

	assert.ErrorIs(t, s.Succeed(), domain.ErrConflict)
	assert.ErrorIs(t, s.Fail(), domain.ErrConflict)
}
