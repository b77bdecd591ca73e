package status

import (
	"errors"
	"fmt"
	"strings"
)

// Status is a customer-facing lifecycle label. Values are either members of
// the canonical vocabulary below or legacy free text carried over from old
// records.
type Status string

// Canonical vocabulary. The display strings are the stored representation.
const (
	AtendimentoRecebido   Status = "Atendimento - Recebido"
	AtendimentoOrcado     Status = "Atendimento - Orçado"
	AtendimentoAprovado   Status = "Atendimento - Aprovado"
	LavagemAFazer         Status = "Lavagem - A Fazer"
	LavagemEmAndamento    Status = "Lavagem - Em Andamento"
	LavagemConcluido      Status = "Lavagem - Concluído"
	PinturaAFazer         Status = "Pintura - A Fazer"
	PinturaEmAndamento    Status = "Pintura - Em Andamento"
	PinturaConcluido      Status = "Pintura - Concluído"
	AcabamentoAFazer      Status = "Acabamento - A Fazer"
	AcabamentoEmAndamento Status = "Acabamento - Em Andamento"
	AcabamentoConcluido   Status = "Acabamento - Concluído"
	CosturaAFazer         Status = "Costura - A Fazer"
	CosturaEmAndamento    Status = "Costura - Em Andamento"
	CosturaConcluido      Status = "Costura - Concluído"
	SapatariaAFazer       Status = "Sapataria - A Fazer"
	SapatariaEmAndamento  Status = "Sapataria - Em Andamento"
	SapatariaConcluido    Status = "Sapataria - Concluído"
	AtendimentoFinalizado Status = "Atendimento - Finalizado"
	AtendimentoEntregue   Status = "Atendimento - Entregue"
)

// ErrInvalidStatus is returned by strict normalization for values outside
// the vocabulary and its alias table.
var ErrInvalidStatus = errors.New("invalid status")

// InvalidStatusError carries the offending raw value of a strict
// normalization failure.
type InvalidStatusError struct {
	Raw string
}

// NewInvalidStatusError creates an InvalidStatusError for the given raw value.
func NewInvalidStatusError(raw string) *InvalidStatusError {
	return &InvalidStatusError{Raw: raw}
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidStatus, e.Raw)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// terminal substrings recognized on records that predate the canonical
// vocabulary. Must be preserved for correctness on old data.
var terminalFragments = []string{
	"finalizado",
	"concluido",
	"pronto para retirada",
	"aguardando retirada",
}

// NormalizeOptions control how Normalize treats empty and unknown values.
type NormalizeOptions struct {
	// Strict rejects values outside the alias table instead of passing
	// them through unchanged.
	Strict bool

	// Fallback is returned for empty input.
	Fallback Status
}

// Vocabulary is the process-wide, read-only status table: canonical values,
// their historical aliases, the terminal set, and per-role column listings.
// Construct it once with NewVocabulary and inject it; it is never mutated
// after construction and is safe for concurrent use.
type Vocabulary struct {
	all      []Status
	aliases  map[string]Status
	terminal map[Status]bool
	roles    map[string][]Status
}

// NewVocabulary builds the vocabulary: every canonical value aliased to
// itself plus the explicit historical aliases.
func NewVocabulary() *Vocabulary {
	all := []Status{
		AtendimentoRecebido,
		AtendimentoOrcado,
		AtendimentoAprovado,
		LavagemAFazer,
		LavagemEmAndamento,
		LavagemConcluido,
		PinturaAFazer,
		PinturaEmAndamento,
		PinturaConcluido,
		AcabamentoAFazer,
		AcabamentoEmAndamento,
		AcabamentoConcluido,
		CosturaAFazer,
		CosturaEmAndamento,
		CosturaConcluido,
		SapatariaAFazer,
		SapatariaEmAndamento,
		SapatariaConcluido,
		AtendimentoFinalizado,
		AtendimentoEntregue,
	}

	v := &Vocabulary{
		all:     all,
		aliases: make(map[string]Status, len(all)+16),
		terminal: map[Status]bool{
			AtendimentoFinalizado: true,
			AtendimentoEntregue:   true,
		},
		roles: map[string][]Status{
			"admin":      all,
			"lavagem":    {LavagemAFazer, LavagemEmAndamento, LavagemConcluido},
			"pintura":    {PinturaAFazer, PinturaEmAndamento, PinturaConcluido},
			"acabamento": {AcabamentoAFazer, AcabamentoEmAndamento, AcabamentoConcluido},
			"costura":    {CosturaAFazer, CosturaEmAndamento, CosturaConcluido},
			"sapataria":  {SapatariaAFazer, SapatariaEmAndamento, SapatariaConcluido},
			"atendimento": {
				AtendimentoRecebido,
				AtendimentoOrcado,
				AtendimentoAprovado,
				AtendimentoFinalizado,
				AtendimentoEntregue,
			},
		},
	}

	for _, s := range all {
		v.addAlias(string(s), s)
	}

	v.addAlias("criado", AtendimentoRecebido)
	v.addAlias("created", AtendimentoRecebido)
	v.addAlias("iniciado", AtendimentoRecebido)
	v.addAlias("atendimento - aguardando aprovação", AtendimentoOrcado)
	v.addAlias("atendimento - aguardando aprovacao", AtendimentoOrcado)
	v.addAlias("finalizado", AtendimentoFinalizado)
	v.addAlias("concluido", AtendimentoFinalizado)
	v.addAlias("pronto para retirada", AtendimentoFinalizado)
	v.addAlias("aguardando retirada", AtendimentoFinalizado)
	v.addAlias("entregue", AtendimentoEntregue)

	return v
}

func (v *Vocabulary) addAlias(alias string, canonical Status) {
	v.aliases[Slugify(alias)] = canonical
}

// Normalize maps a raw status onto the canonical vocabulary.
// Empty input yields the fallback. Unknown values pass through unchanged in
// lenient mode, a deliberate compatibility policy for legacy data; strict
// mode rejects them with an InvalidStatusError.
func (v *Vocabulary) Normalize(raw string, opts NormalizeOptions) (Status, error) {
	original := strings.TrimSpace(raw)
	if original == "" {
		return opts.Fallback, nil
	}

	if canonical, ok := v.aliases[Slugify(original)]; ok {
		return canonical, nil
	}

	if opts.Strict {
		return "", NewInvalidStatusError(original)
	}

	return Status(original), nil
}

// IsKnown reports whether the value resolves through the alias table.
func (v *Vocabulary) IsKnown(raw string) bool {
	_, ok := v.aliases[Slugify(raw)]
	return ok
}

// IsFinal reports whether a status denotes a finished order. Canonical
// terminal values match directly; everything else falls back to the terminal
// substring scan so pre-vocabulary records are classified correctly.
func (v *Vocabulary) IsFinal(raw string) bool {
	normalized, _ := v.Normalize(raw, NormalizeOptions{Fallback: ""})
	if v.terminal[normalized] {
		return true
	}

	slug := Slugify(raw)
	for _, fragment := range terminalFragments {
		if strings.Contains(slug, fragment) {
			return true
		}
	}
	return false
}

// All returns the full canonical vocabulary in display order.
func (v *Vocabulary) All() []Status {
	out := make([]Status, len(v.all))
	copy(out, v.all)
	return out
}

// ColumnsByRole returns the ordered kanban columns visible to a role, or
// false for roles without a configured column set.
func (v *Vocabulary) ColumnsByRole(role string) ([]Status, bool) {
	statuses, ok := v.roles[role]
	if !ok {
		return nil, false
	}

	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out, true
}

// ForSector derives the customer-facing status for an order entering a
// sector. The exit station maps to the terminal finalized status; every
// other sector maps to "<Name> - Em Andamento", normalized leniently with
// the literal string as its own fallback.
func (v *Vocabulary) ForSector(sectorName string, exit bool) Status {
	if exit {
		return AtendimentoFinalizado
	}
	if sectorName == "" {
		return AtendimentoRecebido
	}

	candidate := sectorName + " - Em Andamento"
	normalized, _ := v.Normalize(candidate, NormalizeOptions{Fallback: Status(candidate)})
	return normalized
}
