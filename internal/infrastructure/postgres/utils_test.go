package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/domain"
)

func TestCanonicalIDs_MinusculasSinDuplicadosOrdenados(t *testing.T) {
	a := "6f1c2a4e-8f4b-4a57-9a43-0f5b7f6d2b11"
	b := "2b0f6c44-0a4e-4c7f-a3f4-1f1de0f0a0aa"

	got, err := canonicalIDs([]string{a, strings.ToUpper(b), b, strings.ToUpper(a)})
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, got)
}

func TestCanonicalIDs_Vacio(t *testing.T) {
	got, err := canonicalIDs(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCanonicalIDs_IDMalFormado(t *testing.T) {
	_, err := canonicalIDs([]string{"6f1c2a4e-8f4b-4a57-9a43-0f5b7f6d2b11", "xyz"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

// La lectura agrega ids y nombres con el mismo orden que canonicalIDs.
func TestProductSelect_OrdenaCategoriasPorID(t *testing.T) {
	assert.Equal(t, 2, strings.Count(productSelect, "ORDER BY c.id::text"))
	assert.NotContains(t, productSelect, "ORDER BY c.name")
}
