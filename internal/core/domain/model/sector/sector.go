package sector

import (
	"errors"
	"fmt"
	"sort"

	"repairshop/internal/pkg/errs"
)

// Well-known station IDs. Both are synthetic: they do not correspond to a
// production department but to the front desk opening and closing an order.
const (
	EntryID = "atendimento-inicial"
	ExitID  = "atendimento-final"
)

// ErrSectorNotFound is returned when a sector ID does not resolve in the catalog.
var ErrSectorNotFound = errors.New("sector not found")

// SectorNotFoundError carries the unresolved sector ID.
type SectorNotFoundError struct {
	ID string
}

// NewSectorNotFoundError creates a SectorNotFoundError for the given ID.
func NewSectorNotFoundError(id string) *SectorNotFoundError {
	return &SectorNotFoundError{ID: id}
}

func (e *SectorNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSectorNotFound, e.ID)
}

func (e *SectorNotFoundError) Unwrap() error {
	return ErrSectorNotFound
}

// Sector is a department station in the repair workflow. Sectors are static
// configuration, not per-order state.
type Sector struct {
	ID          string
	Name        string
	Order       int
	Mandatory   bool
	Active      bool
	Color       string
	Icon        string
	Description string
}

// Catalog is the process-wide, read-only sector table. Construct it once
// with NewCatalog (or DefaultCatalog) and inject it; it is never mutated
// after construction and is safe for concurrent use.
type Catalog struct {
	sectors []Sector
	byID    map[string]Sector
}

// NewCatalog builds a catalog and validates its invariants: flow positions
// must be unique and strictly increasing across active sectors, and the
// synthetic entry and exit stations must be present. A catalog violating
// either is a configuration error.
func NewCatalog(sectors []Sector) (*Catalog, error) {
	ordered := make([]Sector, len(sectors))
	copy(ordered, sectors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	c := &Catalog{
		sectors: ordered,
		byID:    make(map[string]Sector, len(ordered)),
	}

	lastOrder := 0
	for _, s := range ordered {
		if _, dup := c.byID[s.ID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("sector catalog",
				fmt.Errorf("duplicate sector ID %q", s.ID))
		}
		c.byID[s.ID] = s

		if !s.Active {
			continue
		}
		if s.Order <= lastOrder {
			return nil, errs.NewValueIsInvalidErrorWithCause("sector catalog",
				fmt.Errorf("sector %q order %d is not strictly increasing", s.ID, s.Order))
		}
		lastOrder = s.Order
	}

	for _, required := range []string{EntryID, ExitID} {
		if _, ok := c.byID[required]; !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("sector catalog",
				fmt.Errorf("mandatory sector %q is missing", required))
		}
	}

	return c, nil
}

// DefaultCatalog returns the standard workshop catalog.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog([]Sector{
		{
			ID:          EntryID,
			Name:        "Atendimento",
			Order:       1,
			Mandatory:   true,
			Active:      true,
			Color:       "#2196F3",
			Icon:        "person",
			Description: "Recepção e cadastro do pedido",
		},
		{
			ID:          "sapataria",
			Name:        "Sapataria",
			Order:       2,
			Active:      true,
			Color:       "#FF9800",
			Icon:        "build",
			Description: "Reparos estruturais e consertos",
		},
		{
			ID:          "costura",
			Name:        "Costura",
			Order:       3,
			Active:      true,
			Color:       "#9C27B0",
			Icon:        "cut",
			Description: "Costuras e ajustes de tecido",
		},
		{
			ID:          "lavagem",
			Name:        "Lavagem",
			Order:       4,
			Active:      true,
			Color:       "#00BCD4",
			Icon:        "water_drop",
			Description: "Limpeza profunda e higienização",
		},
		{
			ID:          "acabamento",
			Name:        "Acabamento",
			Order:       5,
			Active:      true,
			Color:       "#4CAF50",
			Icon:        "auto_fix_high",
			Description: "Acabamentos finais e detalhes",
		},
		{
			ID:          "pintura",
			Name:        "Pintura",
			Order:       6,
			Active:      true,
			Color:       "#F44336",
			Icon:        "brush",
			Description: "Pintura e customização",
		},
		{
			ID:          ExitID,
			Name:        "Atendimento (email)",
			Order:       7,
			Mandatory:   true,
			Active:      true,
			Color:       "#4CAF50",
			Icon:        "check_circle",
			Description: "Finalização e entrega ao cliente (dispara notificação)",
		},
	})
	if err != nil {
		// The built-in catalog satisfies its own invariants; reaching this
		// means the table above was edited into an invalid state.
		panic(err)
	}
	return catalog
}

// ListActive returns the active sectors in ascending flow order.
func (c *Catalog) ListActive() []Sector {
	out := make([]Sector, 0, len(c.sectors))
	for _, s := range c.sectors {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// Get resolves a sector by ID. Inactive sectors resolve too, so legacy
// orders referencing them keep working.
func (c *Catalog) Get(id string) (Sector, bool) {
	s, ok := c.byID[id]
	return s, ok
}
