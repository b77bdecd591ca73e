package sector

import (
	"strings"

	"repairshop/internal/core/domain/model/status"
)

// intake statuses resolve to the entry station, finish statuses to the exit
// station. Both lists are matched by slug prefix so suffixed legacy variants
// ("Atendimento - Recebido na loja") still resolve.
var (
	intakeStatuses = []status.Status{
		status.AtendimentoRecebido,
		status.AtendimentoOrcado,
		status.AtendimentoAprovado,
	}
	finishStatuses = []status.Status{
		status.AtendimentoFinalizado,
		status.AtendimentoEntregue,
	}
)

// ResolveByStatus maps a raw status string onto the sector that produces it.
// Two resolution paths coexist: the fixed intake/finish mapping onto the
// synthetic entry and exit stations, and a generic fallback that picks the
// first active sector whose display-name slug prefixes the status slug.
// Returns false when neither path matches; the caller must then supply an
// explicit sector ID.
func (c *Catalog) ResolveByStatus(vocab *status.Vocabulary, raw string) (Sector, bool) {
	normalized, _ := vocab.Normalize(raw, status.NormalizeOptions{Fallback: status.Status(raw)})
	slug := status.Slugify(string(normalized))
	if slug == "" {
		return Sector{}, false
	}

	for _, s := range intakeStatuses {
		if strings.HasPrefix(slug, status.Slugify(string(s))) {
			entry, _ := c.Get(EntryID)
			return entry, true
		}
	}

	for _, s := range finishStatuses {
		if strings.HasPrefix(slug, status.Slugify(string(s))) {
			exit, _ := c.Get(ExitID)
			return exit, true
		}
	}

	for _, candidate := range c.ListActive() {
		if strings.HasPrefix(slug, status.Slugify(candidate.Name)) {
			return candidate, true
		}
	}

	return Sector{}, false
}

// Next returns the sector after current in the given frozen flow, or false
// when current is unset, unknown, or already last.
func (c *Catalog) Next(flow []string, current string) (Sector, bool) {
	idx := indexOf(flow, current)
	if idx < 0 || idx >= len(flow)-1 {
		return Sector{}, false
	}
	return c.Get(flow[idx+1])
}

// Previous returns the sector before current in the given frozen flow, or
// false when current is unset, unknown, or first.
func (c *Catalog) Previous(flow []string, current string) (Sector, bool) {
	idx := indexOf(flow, current)
	if idx <= 0 {
		return Sector{}, false
	}
	return c.Get(flow[idx-1])
}

func indexOf(flow []string, id string) int {
	if id == "" {
		return -1
	}
	for i, v := range flow {
		if v == id {
			return i
		}
	}
	return -1
}
