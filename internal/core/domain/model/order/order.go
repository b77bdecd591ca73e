package order

import (
	"errors"
	"fmt"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/sector"
	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrSectorNotInFlow is returned when a transition targets a sector
	// outside the order's frozen flow.
	ErrSectorNotInFlow = errors.New("sector is not in the order flow")
)

// SectorNotInFlowError carries the rejected target sector.
type SectorNotInFlowError struct {
	SectorID   string
	SectorName string
}

// NewSectorNotInFlowError creates a SectorNotInFlowError for the given sector.
func NewSectorNotInFlowError(id, name string) *SectorNotInFlowError {
	return &SectorNotInFlowError{SectorID: id, SectorName: name}
}

func (e *SectorNotInFlowError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrSectorNotInFlow, e.SectorName, e.SectorID)
}

func (e *SectorNotInFlowError) Unwrap() error {
	return ErrSectorNotInFlow
}

// Priority bounds. 1 is highest, 3 lowest; 2 is the default.
const (
	PriorityHigh    = 1
	PriorityDefault = 2
	PriorityLow     = 3
)

// Order is the aggregate root for a repair job. It owns the order's status,
// its append-only status history, and its sector routing state.
//
// Order follows these invariants:
//   - sectorFlow is derived once at creation and never recomputed, even if
//     the service list is edited later
//   - statusHistory grows by exactly one entry per real status change
//   - at most one sectorHistory interval is open at any time, and it always
//     matches currentSector
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id           kernel.UUID
	code         string
	customerID   string
	customerName string
	sneakerModel string
	services     []Service
	priority     int

	status        status.Status
	statusHistory []StatusEntry

	sectorFlow       []string
	currentSector    string
	sectorHistory    []SectorInterval
	currentStaffName string

	expectedDelivery string
	actualDelivery   string
	remarks          string

	createdAt time.Time
	updatedAt time.Time
	createdBy Actor
	updatedBy string

	version int

	isConstructed bool
}

// NewOrder creates an order with its flow frozen and its status history
// seeded with the initial status entry. The flow must come from the
// FlowDeriver; it is stored as-is and never recomputed.
func NewOrder(
	id kernel.UUID,
	code string,
	customerID string,
	customerName string,
	sneakerModel string,
	services []Service,
	priority int,
	expectedDelivery string,
	remarks string,
	initialStatus status.Status,
	flow []string,
	actor Actor,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if len(services) == 0 {
		return nil, errs.NewValueIsRequiredError("services")
	}
	for _, svc := range services {
		if svc.ID == "" || svc.Name == "" {
			return nil, errs.NewValueIsInvalidErrorWithCause("services",
				errors.New("every service needs an ID and a name"))
		}
		if svc.Price < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("services",
				fmt.Errorf("service %q has a negative price", svc.Name))
		}
	}
	if priority == 0 {
		priority = PriorityDefault
	}
	if priority < PriorityHigh || priority > PriorityLow {
		return nil, errs.NewValueIsOutOfRangeError("priority", priority, PriorityHigh, PriorityLow)
	}
	if len(flow) == 0 {
		return nil, errs.NewValueIsRequiredError("flow")
	}
	if initialStatus == "" {
		initialStatus = status.AtendimentoRecebido
	}

	return &Order{
		id:               id,
		code:             code,
		customerID:       customerID,
		customerName:     customerName,
		sneakerModel:     sneakerModel,
		services:         copySlice(services),
		priority:         priority,
		status:           initialStatus,
		statusHistory:    []StatusEntry{newStatusEntry(initialStatus, actor, now)},
		sectorFlow:       copySlice(flow),
		sectorHistory:    []SectorInterval{},
		expectedDelivery: expectedDelivery,
		remarks:          remarks,
		createdAt:        now,
		updatedAt:        now,
		createdBy:        actor,
		updatedBy:        actor.Email,
		version:          1,
		isConstructed:    true,
	}, nil
}

// RestoreOrderParams carries the persisted state needed to rebuild an order.
type RestoreOrderParams struct {
	ID               kernel.UUID
	Code             string
	CustomerID       string
	CustomerName     string
	SneakerModel     string
	Services         []Service
	Priority         int
	Status           status.Status
	StatusHistory    []StatusEntry
	SectorFlow       []string
	CurrentSector    string
	SectorHistory    []SectorInterval
	CurrentStaffName string
	ExpectedDelivery string
	ActualDelivery   string
	Remarks          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CreatedBy        Actor
	UpdatedBy        string
	Version          int
}

// RestoreOrder rebuilds an order from persistence without re-running
// creation-time validation; stored legacy records may predate current rules.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if p.Version <= 0 {
		return nil, errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not a valid version", p.Version))
	}

	return &Order{
		id:               p.ID,
		code:             p.Code,
		customerID:       p.CustomerID,
		customerName:     p.CustomerName,
		sneakerModel:     p.SneakerModel,
		services:         copySlice(p.Services),
		priority:         p.Priority,
		status:           p.Status,
		statusHistory:    copySlice(p.StatusHistory),
		sectorFlow:       copySlice(p.SectorFlow),
		currentSector:    p.CurrentSector,
		sectorHistory:    copySlice(p.SectorHistory),
		currentStaffName: p.CurrentStaffName,
		expectedDelivery: p.ExpectedDelivery,
		actualDelivery:   p.ActualDelivery,
		remarks:          p.Remarks,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
		createdBy:        p.CreatedBy,
		updatedBy:        p.UpdatedBy,
		version:          p.Version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// MoveToSector drives the order into the target sector: it closes the open
// interval of the current sector, opens one for the target, recomputes the
// canonical status, and appends a status history entry.
//
// Returns (false, nil) when the order is already in the target sector; the
// repeated request changes nothing and must not duplicate history. Returns
// ErrSectorNotInFlow when the target lies outside the flow frozen at
// creation.
func (o *Order) MoveToSector(
	target sector.Sector,
	vocab *status.Vocabulary,
	actor Actor,
	staffName string,
	note string,
	now time.Time,
) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if o.currentSector == target.ID {
		return false, nil
	}

	if !contains(o.sectorFlow, target.ID) {
		return false, NewSectorNotInFlowError(target.ID, target.Name)
	}

	displayName := staffName
	if displayName == "" {
		displayName = actor.DisplayName()
	}

	// Close the open interval by rebuilding the list instead of mutating
	// the shared backing array.
	history := copySlice(o.sectorHistory)
	if o.currentSector != "" {
		for i := range history {
			if history[i].SectorID == o.currentSector && history[i].Open() {
				exited := now
				history[i].ExitedAt = &exited
				history[i].ExitedByID = actor.ID
				history[i].ExitedByName = displayName
				history[i].ExitingStaff = staffName
				break
			}
		}
	}

	history = append(history, SectorInterval{
		SectorID:      target.ID,
		SectorName:    target.Name,
		EnteredAt:     now,
		EnteredByID:   actor.ID,
		EnteredByName: actor.DisplayName(),
		EnteringStaff: staffName,
		Notes:         note,
	})

	newStatus := vocab.ForSector(target.Name, target.ID == sector.ExitID)

	o.sectorHistory = history
	o.currentSector = target.ID
	o.currentStaffName = displayName
	o.status = newStatus
	o.statusHistory = append(copySlice(o.statusHistory), newStatusEntry(newStatus, actor, now))
	o.updatedAt = now
	o.updatedBy = actor.Email

	if vocab.IsFinal(string(newStatus)) {
		o.actualDelivery = now.Format("2006-01-02")
	}

	return true, nil
}

// ChangeStatus applies a direct status update outside the sector workflow.
// Returns false without touching history when the status is unchanged.
func (o *Order) ChangeStatus(newStatus status.Status, actor Actor, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if newStatus == o.status {
		return false, nil
	}

	o.status = newStatus
	o.statusHistory = append(copySlice(o.statusHistory), newStatusEntry(newStatus, actor, now))
	o.updatedAt = now
	o.updatedBy = actor.Email
	return true, nil
}

// OpenInterval returns the currently open sector interval, if any.
func (o *Order) OpenInterval() (SectorInterval, bool) {
	for _, interval := range o.sectorHistory {
		if interval.SectorID == o.currentSector && interval.Open() {
			return interval, true
		}
	}
	return SectorInterval{}, false
}

// HoursInCurrentSector returns the whole hours spent in the current sector,
// or zero when the order has not entered any sector yet.
func (o *Order) HoursInCurrentSector(now time.Time) int {
	interval, ok := o.OpenInterval()
	if !ok {
		return 0
	}
	return interval.HoursIn(now)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-legible sequential display code.
func (o *Order) Code() string {
	return o.code
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// CustomerName returns the owning customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// SneakerModel returns the shoe model under repair.
func (o *Order) SneakerModel() string {
	return o.sneakerModel
}

// Services returns a copy of the order's service line items.
func (o *Order) Services() []Service {
	return copySlice(o.services)
}

// ServiceNames returns the line item names, used for flow derivation and
// notification summaries.
func (o *Order) ServiceNames() []string {
	names := make([]string, len(o.services))
	for i, svc := range o.services {
		names[i] = svc.Name
	}
	return names
}

// TotalPrice returns the sum of all line item prices.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, svc := range o.services {
		total += svc.Price
	}
	return total
}

// Priority returns the order priority (1 high .. 3 low).
func (o *Order) Priority() int {
	return o.priority
}

// Status returns the current status value.
func (o *Order) Status() status.Status {
	return o.status
}

// StatusHistory returns a copy of the append-only status history.
func (o *Order) StatusHistory() []StatusEntry {
	return copySlice(o.statusHistory)
}

// SectorFlow returns a copy of the flow frozen at creation.
func (o *Order) SectorFlow() []string {
	return copySlice(o.sectorFlow)
}

// CurrentSector returns the occupied sector ID, empty before first movement.
func (o *Order) CurrentSector() string {
	return o.currentSector
}

// SectorHistory returns a copy of the sector interval records.
func (o *Order) SectorHistory() []SectorInterval {
	return copySlice(o.sectorHistory)
}

// CurrentStaffName returns the staff member tied to the latest entry.
func (o *Order) CurrentStaffName() string {
	return o.currentStaffName
}

// ExpectedDelivery returns the promised delivery date.
func (o *Order) ExpectedDelivery() string {
	return o.expectedDelivery
}

// ActualDelivery returns the real delivery date, stamped when the order
// reaches a terminal status.
func (o *Order) ActualDelivery() string {
	return o.actualDelivery
}

// Remarks returns free-text notes recorded at creation.
func (o *Order) Remarks() string {
	return o.remarks
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CreatedBy returns the actor who created the order.
func (o *Order) CreatedBy() Actor {
	return o.createdBy
}

// UpdatedBy returns the identity of the last mutator.
func (o *Order) UpdatedBy() string {
	return o.updatedBy
}

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

func contains(flow []string, id string) bool {
	for _, v := range flow {
		if v == id {
			return true
		}
	}
	return false
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
