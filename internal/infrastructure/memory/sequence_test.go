package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-core/internal/domain"
)

func TestNextID(t *testing.T) {
	items := map[int64]string{}
	assert.Equal(t, int64(1), nextID(items), "colección vacía arranca en 1")

	items[1] = "a"
	items[2] = "b"
	assert.Equal(t, int64(3), nextID(items))

	// max+1: borrar el máximo reutiliza su ID (semántica heredada)
	delete(items, 2)
	assert.Equal(t, int64(2), nextID(items))
}

func TestDocumentNumber_Formato(t *testing.T) {
	at := time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC)

	num, err := documentNumber("PO", at, 0)
	require.NoError(t, err)
	assert.Equal(t, "PO-202603-001", num)

	num, err = documentNumber("PO", at, 41)
	require.NoError(t, err)
	assert.Equal(t, "PO-202603-042", num, "el consecutivo va con ceros a tres dígitos")
}

func TestDocumentNumber_ConsecutivoAgotado(t *testing.T) {
	at := time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC)

	num, err := documentNumber("PO", at, maxDocumentSeq-1)
	require.NoError(t, err)
	assert.Equal(t, "PO-202603-999", num, "999 es el último consecutivo válido")

	_, err = documentNumber("PO", at, maxDocumentSeq)
	assert.ErrorIs(t, err, domain.ErrSequenceExhausted)
}

func TestSameCalendarDay(t *testing.T) {
	base := time.Date(2026, time.March, 7, 0, 1, 0, 0, time.UTC)
	assert.True(t, sameCalendarDay(base, base.Add(23*time.Hour)))
	assert.False(t, sameCalendarDay(base, base.AddDate(0, 0, 1)))
	assert.False(t, sameCalendarDay(base, base.AddDate(0, 1, 0)))
}
