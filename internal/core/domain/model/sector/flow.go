package sector

import (
	"sort"
	"strings"
)

// keywordRule maps a service-name fragment to the sector that handles it.
type keywordRule struct {
	fragment string
	sectorID string
}

// defaultKeywordRules is the classifier table for service names. It is a
// best-effort heuristic, not a guaranteed-correct parser: service names
// outside the table simply add no sector.
var defaultKeywordRules = []keywordRule{
	{"cola", "sapataria"},
	{"solado", "sapataria"},
	{"salto", "sapataria"},
	{"reparo", "sapataria"},
	{"costura", "costura"},
	{"rasgado", "costura"},
	{"ajuste", "costura"},
	{"limpeza", "lavagem"},
	{"lavagem", "lavagem"},
	{"higienização", "lavagem"},
	{"pintura", "pintura"},
	{"customização", "pintura"},
	{"cor", "pintura"},
}

// FlowDeriver computes the ordered subset of sectors an order must traverse
// from its service line items. The derivation runs exactly once, at order
// creation; the result is frozen into the order afterwards.
type FlowDeriver struct {
	catalog *Catalog
	rules   []keywordRule
}

// NewFlowDeriver creates a deriver over the given catalog using the default
// keyword table.
func NewFlowDeriver(catalog *Catalog) FlowDeriver {
	return FlowDeriver{catalog: catalog, rules: defaultKeywordRules}
}

// Derive returns the sector IDs for the given service names, sorted by the
// catalog's flow order. The entry station always opens the flow and the exit
// station always closes it. The finishing sector joins whenever more than
// one production sector was matched.
func (d FlowDeriver) Derive(serviceNames []string) []string {
	needed := map[string]bool{EntryID: true}

	for _, name := range serviceNames {
		lowered := strings.ToLower(name)
		for _, rule := range d.rules {
			if strings.Contains(lowered, rule.fragment) {
				needed[rule.sectorID] = true
			}
		}
	}

	if len(needed) > 2 {
		needed["acabamento"] = true
	}
	needed[ExitID] = true

	flow := make([]string, 0, len(needed))
	for id := range needed {
		flow = append(flow, id)
	}

	sort.Slice(flow, func(i, j int) bool {
		a, _ := d.catalog.Get(flow[i])
		b, _ := d.catalog.Get(flow[j])
		return a.Order < b.Order
	})

	return flow
}
