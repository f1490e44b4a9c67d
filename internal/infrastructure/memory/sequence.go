package memory

import (
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-core/internal/domain"
)

// maxDocumentSeq tope del consecutivo NNN de un número de documento. El
// formato PO-YYYYMM-NNN es contrato de estado persistido: antes que ensanchar
// el campo, la numeración falla con ErrSequenceExhausted.
const maxDocumentSeq = 999

// nextID siguiente identificador de una colección: max(existentes)+1, o 1 si
// está vacía. El llamador debe tener tomado el lock de la colección; leer el
// máximo y escribir el registro son una sola sección crítica.
func nextID[T any](items map[int64]T) int64 {
	var max int64
	for id := range items {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// documentNumber arma el número <prefix>-<YYYYMM>-<NNN>. El periodo del
// prefijo es el mes, pero el consecutivo NNN se deriva del conteo de
// documentos del mismo día calendario: comportamiento heredado del sistema
// original, donde el contador se reinicia por día aunque el prefijo sea
// mensual, y donde borrar órdenes puede reabrir consecutivos ya usados.
func documentNumber(prefix string, at time.Time, sameDayCount int) (string, error) {
	seq := sameDayCount + 1
	if seq > maxDocumentSeq {
		return "", domain.ErrSequenceExhausted
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, at.Format("200601"), seq), nil
}

// sameCalendarDay compara año, mes y día de dos instantes.
func sameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
