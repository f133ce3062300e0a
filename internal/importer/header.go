package importer

import (
	"fmt"
	"strings"
)

// Canonical column names. Each must appear as a case-insensitive substring
// of some actual header; order in the file does not matter.
const (
	ColProfessor  = "Professor"
	ColCurso      = "Curso"
	ColPeriodo    = "Período"
	ColTurma      = "Turma"
	ColDisciplina = "Disciplina"
	ColSala       = "Sala"
	ColHorario    = "Horário"
	ColDataAula   = "Data da Aula"
)

// RequiredColumns lists every column a class-import file must carry.
var RequiredColumns = []string{
	ColProfessor,
	ColCurso,
	ColPeriodo,
	ColTurma,
	ColDisciplina,
	ColSala,
	ColHorario,
	ColDataAula,
}

// HeaderMap links each required column to the index of the actual header
// that matched it.
type HeaderMap struct {
	// Headers holds the actual header texts in file order.
	Headers []string
	indexes map[string]int
}

// Index returns the field position for a required column name.
func (h *HeaderMap) Index(required string) int {
	if i, ok := h.indexes[required]; ok {
		return i
	}
	return -1
}

// ReconcileHeader matches the tokenized header fields against
// RequiredColumns. Matching is case-insensitive substring search. A single
// descriptive error naming every required column is returned when any is
// missing, and no row parsing is attempted by callers in that case.
func ReconcileHeader(fields []string) (*HeaderMap, error) {
	hm := &HeaderMap{Headers: fields, indexes: make(map[string]int, len(RequiredColumns))}

	var missing []string
	for _, required := range RequiredColumns {
		needle := strings.ToLower(required)
		found := -1
		for i, actual := range fields {
			if strings.Contains(strings.ToLower(actual), needle) {
				found = i
				break
			}
		}
		if found < 0 {
			missing = append(missing, required)
			continue
		}
		hm.indexes[required] = found
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("cabeçalho inválido: colunas obrigatórias ausentes (%s); esperadas: %s",
			strings.Join(missing, ", "), strings.Join(RequiredColumns, ", "))
	}
	return hm, nil
}

// FieldMap builds the raw per-row mapping keyed by actual header text with
// trimmed values. The caller has already checked the field count.
func (h *HeaderMap) FieldMap(fields []string) map[string]string {
	m := make(map[string]string, len(h.Headers))
	for i, header := range h.Headers {
		if i < len(fields) {
			m[header] = strings.TrimSpace(fields[i])
		}
	}
	return m
}

// Value fetches the trimmed field value for a required column.
func (h *HeaderMap) Value(fields []string, required string) string {
	i := h.Index(required)
	if i < 0 || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
