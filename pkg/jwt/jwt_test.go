package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	token, err := Generate("secreto", "bodeguero", "inventario-core", 5)
	require.NoError(t, err)

	actor, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "bodeguero", actor)
}

func TestGenerate_EntradasVacias(t *testing.T) {
	_, err := Generate("", "bodeguero", "x", 5)
	assert.Error(t, err)

	_, err = Generate("secreto", "", "x", 5)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secreto", "bodeguero", "x", 5)
	require.NoError(t, err)

	_, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate("secreto", "bodeguero", "x", -1)
	require.NoError(t, err)

	_, err = Parse("secreto", token)
	assert.Error(t, err)
}
