package order

import (
	"time"

	"repairshop/internal/core/domain/model/status"
)

// Service is one line item of a repair order. Line items are read-only input
// to flow derivation; the engine never mutates them.
type Service struct {
	ID    string
	Name  string
	Price float64
}

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// DisplayName returns the best human-readable identity available.
func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.Email != "" {
		return a.Email
	}
	return a.ID
}

// StatusEntry is one append-only record of the order's status history.
// Date and Time duplicate Timestamp in the legacy wire format.
type StatusEntry struct {
	Status    status.Status
	Date      string
	Time      string
	UserID    string
	UserName  string
	Timestamp time.Time
}

func newStatusEntry(s status.Status, actor Actor, now time.Time) StatusEntry {
	return StatusEntry{
		Status:    s,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04"),
		UserID:    actor.ID,
		UserName:  actor.DisplayName(),
		Timestamp: now,
	}
}

// SectorInterval records one stay in a sector. An interval with a nil
// ExitedAt is open: the order is currently in that sector.
type SectorInterval struct {
	SectorID      string
	SectorName    string
	EnteredAt     time.Time
	ExitedAt      *time.Time
	EnteredByID   string
	EnteredByName string
	EnteringStaff string
	ExitedByID    string
	ExitedByName  string
	ExitingStaff  string
	Notes         string
}

// Open reports whether the order is still inside this interval.
func (i SectorInterval) Open() bool {
	return i.ExitedAt == nil
}

// HoursIn returns the whole hours spent in the sector: now minus entry for
// an open interval, exit minus entry for a closed one.
func (i SectorInterval) HoursIn(now time.Time) int {
	end := now
	if i.ExitedAt != nil {
		end = *i.ExitedAt
	}
	return int(end.Sub(i.EnteredAt).Hours())
}
