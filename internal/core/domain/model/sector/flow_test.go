package sector_test

import (
	"testing"

	"repairshop/internal/core/domain/model/sector"

	"github.com/stretchr/testify/assert"
)

func TestFlowDeriver_Derive(t *testing.T) {
	deriver := sector.NewFlowDeriver(sector.DefaultCatalog())

	tests := []struct {
		name     string
		services []string
		expected []string
	}{
		{
			name:     "single_sector_service_skips_finishing",
			services: []string{"Limpeza profunda"},
			expected: []string{sector.EntryID, "lavagem", sector.ExitID},
		},
		{
			name:     "two_production_sectors_pull_in_finishing",
			services: []string{"Troca de solado", "Pintura completa"},
			expected: []string{sector.EntryID, "sapataria", "acabamento", "pintura", sector.ExitID},
		},
		{
			name:     "no_recognized_keywords_yields_entry_and_exit_only",
			services: []string{"Avaliação geral"},
			expected: []string{sector.EntryID, sector.ExitID},
		},
		{
			name:     "empty_service_list_yields_entry_and_exit_only",
			services: nil,
			expected: []string{sector.EntryID, sector.ExitID},
		},
		{
			name:     "keyword_matching_is_case_insensitive",
			services: []string{"LIMPEZA COMPLETA"},
			expected: []string{sector.EntryID, "lavagem", sector.ExitID},
		},
		{
			name:     "one_service_may_need_several_sectors",
			services: []string{"Costura do solado"},
			expected: []string{sector.EntryID, "sapataria", "costura", "acabamento", sector.ExitID},
		},
		{
			name:     "duplicate_keywords_add_each_sector_once",
			services: []string{"Limpeza externa", "Limpeza interna", "Lavagem premium"},
			expected: []string{sector.EntryID, "lavagem", sector.ExitID},
		},
		{
			name:     "result_follows_catalog_order_not_service_order",
			services: []string{"Pintura personalizada", "Reparo no salto", "Ajuste de tecido"},
			expected: []string{sector.EntryID, "sapataria", "costura", "acabamento", "pintura", sector.ExitID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriver.Derive(tt.services))
		})
	}
}
