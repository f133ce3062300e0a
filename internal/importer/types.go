package importer

// ClassRecord is one validated class occurrence ready for batch insertion.
// Field names follow the wire contract consumed by the admin frontend.
type ClassRecord struct {
	ProfessorNome   string `json:"professor_nome" db:"professor_nome"`
	Disciplina      string `json:"disciplina" db:"disciplina"`
	Curso           string `json:"curso" db:"curso"`
	Turma           string `json:"turma" db:"turma"`
	PeriodoOriginal string `json:"periodo_original" db:"periodo_original"`
	SalaNumero      string `json:"sala_numero" db:"sala_numero"`
	SalaBloco       string `json:"sala_bloco" db:"sala_bloco"`
	HorarioInicio   string `json:"horario_inicio" db:"horario_inicio"`
	HorarioFim      string `json:"horario_fim" db:"horario_fim"`
	DataAula        string `json:"data_aula" db:"data_aula"`
	DiaSemana       int    `json:"dia_semana" db:"dia_semana"`
	DiaSemanaNome   string `json:"dia_semana_nome" db:"dia_semana_nome"`
}

// RowError pairs a 1-based source line number with the reason a row was
// rejected and the raw field values that produced it. Never mutated after
// creation.
type RowError struct {
	Linha int               `json:"linha"`
	Erro  string            `json:"erro"`
	Dados map[string]string `json:"dados,omitempty"`
}

// FieldError names a single invalid field during row revalidation.
type FieldError struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// Result partitions a parsed file into valid records and per-row errors.
type Result struct {
	AulasValidas []ClassRecord `json:"aulas_validas"`
	Erros        []RowError    `json:"erros"`
}

// TimeRange is a parsed HH:MM-HH:MM pair with start strictly before end.
type TimeRange struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}
