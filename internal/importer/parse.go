package importer

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse runs the whole pipeline over a CSV file: blank-line filtering, header
// reconciliation, per-row tokenization and field validation. A structural
// problem (unreadable content, missing required header) aborts with an error
// before any row is parsed; per-row failures are collected in Result.Erros
// and never abort the batch.
func Parse(r io.Reader) (*Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	lines := SplitLines(string(content))
	if len(lines) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}

	headerFields, err := TokenizeLine(lines[0].Text)
	if err != nil {
		return nil, fmt.Errorf("cabeçalho ilegível: %w", err)
	}
	hm, err := ReconcileHeader(headerFields)
	if err != nil {
		return nil, err
	}

	result := &Result{
		AulasValidas: make([]ClassRecord, 0, len(lines)-1),
		Erros:        make([]RowError, 0),
	}

	for _, line := range lines[1:] {
		fields, err := TokenizeLine(line.Text)
		if err != nil {
			result.Erros = append(result.Erros, RowError{
				Linha: line.Number,
				Erro:  err.Error(),
				Dados: map[string]string{"conteudo": line.Text},
			})
			continue
		}

		// A mismatched field count is reported, not silently dropped.
		if len(fields) != len(headerFields) {
			result.Erros = append(result.Erros, RowError{
				Linha: line.Number,
				Erro:  fmt.Sprintf("número de campos (%d) difere do cabeçalho (%d)", len(fields), len(headerFields)),
				Dados: hm.FieldMap(fields),
			})
			continue
		}

		record, rowErr := buildRecord(hm, fields, line.Number)
		if rowErr != nil {
			result.Erros = append(result.Erros, *rowErr)
			continue
		}
		result.AulasValidas = append(result.AulasValidas, *record)
	}

	return result, nil
}

func buildRecord(hm *HeaderMap, fields []string, lineNumber int) (*ClassRecord, *RowError) {
	var problems []string

	requireText := func(col string) string {
		v := hm.Value(fields, col)
		if !RequiredText(v) {
			problems = append(problems, fmt.Sprintf("campo obrigatório vazio: %s", col))
		}
		return v
	}

	professor := requireText(ColProfessor)
	curso := requireText(ColCurso)
	periodo := requireText(ColPeriodo)
	turma := requireText(ColTurma)
	disciplina := requireText(ColDisciplina)
	sala := requireText(ColSala)

	horario := hm.Value(fields, ColHorario)
	tr, ok := ParseTimeRange(horario)
	if !ok {
		problems = append(problems, fmt.Sprintf("horário inválido: %q (esperado HH:MM-HH:MM, ex: 18:50-19:40)", horario))
	}

	dataAula := hm.Value(fields, ColDataAula)
	if reason := DateError(dataAula); reason != "" {
		problems = append(problems, fmt.Sprintf("data da aula inválida: %q (%s, esperado AAAA-MM-DD, ex: 2025-11-10)", dataAula, reason))
	}

	if len(problems) > 0 {
		return nil, &RowError{
			Linha: lineNumber,
			Erro:  strings.Join(problems, "; "),
			Dados: hm.FieldMap(fields),
		}
	}

	diaSemana, diaNome, err := Weekday(dataAula)
	if err != nil {
		return nil, &RowError{
			Linha: lineNumber,
			Erro:  fmt.Sprintf("data da aula inválida: %v", err),
			Dados: hm.FieldMap(fields),
		}
	}

	bloco, numero := SplitSala(sala)
	return &ClassRecord{
		ProfessorNome:   professor,
		Disciplina:      disciplina,
		Curso:           curso,
		Turma:           turma,
		PeriodoOriginal: periodo,
		SalaNumero:      numero,
		SalaBloco:       bloco,
		HorarioInicio:   tr.Inicio,
		HorarioFim:      tr.Fim,
		DataAula:        dataAula,
		DiaSemana:       diaSemana,
		DiaSemanaNome:   diaNome,
	}, nil
}

// SplitSala separates a room label like "D206" into its block letters and
// room number. Labels without a letter prefix map entirely to the number.
func SplitSala(sala string) (bloco, numero string) {
	sala = strings.TrimSpace(sala)
	i := 0
	for _, r := range sala {
		if !unicode.IsLetter(r) {
			break
		}
		i += len(string(r))
	}
	bloco = sala[:i]
	numero = strings.TrimSpace(sala[i:])
	if numero == "" {
		return "", sala
	}
	return bloco, numero
}

// Revalidate re-runs every field predicate against an edited record. Either
// the whole row validates and the derived weekday fields are recomputed, or
// the original record is returned untouched alongside the field errors:
// partial commits are not allowed.
func Revalidate(rec ClassRecord) (ClassRecord, []FieldError) {
	var errs []FieldError

	textFields := []struct {
		campo string
		value string
	}{
		{"professor_nome", rec.ProfessorNome},
		{"disciplina", rec.Disciplina},
		{"curso", rec.Curso},
		{"turma", rec.Turma},
		{"periodo_original", rec.PeriodoOriginal},
		{"sala_numero", rec.SalaNumero},
	}
	for _, f := range textFields {
		if !RequiredText(f.value) {
			errs = append(errs, FieldError{Campo: f.campo, Mensagem: "campo obrigatório"})
		}
	}

	if _, ok := ParseTimeRange(rec.HorarioInicio + "-" + rec.HorarioFim); !ok {
		errs = append(errs, FieldError{Campo: "horario_inicio", Mensagem: "horário inválido (esperado HH:MM-HH:MM com início antes do fim)"})
	}

	if reason := DateError(rec.DataAula); reason != "" {
		errs = append(errs, FieldError{Campo: "data_aula", Mensagem: reason + " (esperado AAAA-MM-DD)"})
	}

	if len(errs) > 0 {
		return rec, errs
	}

	diaSemana, diaNome, err := Weekday(rec.DataAula)
	if err != nil {
		return rec, []FieldError{{Campo: "data_aula", Mensagem: err.Error()}}
	}
	rec.DiaSemana = diaSemana
	rec.DiaSemanaNome = diaNome
	return rec, nil
}
