package query

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidQuery indica paginación inválida (page o limit menores a 1).
var ErrInvalidQuery = errors.New("parámetros de consulta inválidos")

// Predicate filtro de igualdad o rango sobre un registro.
type Predicate[T any] func(T) bool

// Options parámetros de una consulta listable: búsqueda libre, filtros,
// orden y paginación. Se evalúa siempre en ese orden.
type Options[T any] struct {
	Search       string            // texto libre; vacío = sin búsqueda
	SearchFields []func(T) string  // campos de texto sobre los que aplica Search
	Filters      []Predicate[T]    // todos deben cumplirse (AND)
	Less         func(a, b T) bool // nil conserva el orden de entrada
	Page         int               // >= 1
	Limit        int               // >= 1
}

// Result página de resultados. Total cuenta los registros después de filtrar
// y antes de paginar.
type Result[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un texto para búsqueda: minúsculas y sin tildes
// ("Categoría" -> "categoria"). Si la transformación falla se usa el
// original en minúsculas.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Apply evalúa búsqueda, filtros, orden y paginación sobre una colección.
// No muta la entrada ni tiene efectos secundarios; sirve para cualquier
// tipo de entidad parametrizando los accesores de campo.
func Apply[T any](items []T, opts Options[T]) (Result[T], error) {
	if opts.Page < 1 || opts.Limit < 1 {
		return Result[T]{}, ErrInvalidQuery
	}

	needle := Fold(strings.TrimSpace(opts.Search))

	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if !matchesFilters(it, opts.Filters) {
			continue
		}
		if needle != "" && !matchesSearch(it, needle, opts.SearchFields) {
			continue
		}
		filtered = append(filtered, it)
	}

	if opts.Less != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return opts.Less(filtered[i], filtered[j])
		})
	}

	total := len(filtered)
	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return Result[T]{
		Items: filtered[start:end],
		Total: total,
		Page:  opts.Page,
		Limit: opts.Limit,
	}, nil
}

func matchesFilters[T any](it T, filters []Predicate[T]) bool {
	for _, f := range filters {
		if f == nil {
			continue
		}
		if !f(it) {
			return false
		}
	}
	return true
}

func matchesSearch[T any](it T, needle string, fields []func(T) string) bool {
	for _, field := range fields {
		if field == nil {
			continue
		}
		if strings.Contains(Fold(field(it)), needle) {
			return true
		}
	}
	return false
}
