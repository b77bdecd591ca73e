package staff

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

// Domain errors for staff operations.
var (
	// ErrNameIsRequired is returned when attempting to create a staff member without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a staff member without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrRoleIsRequired is returned when attempting to create a staff member without a role.
	ErrRoleIsRequired = errs.NewValueIsRequiredError("role")
	// ErrStaffIsNotConstructed is returned when using an improperly initialized Staff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
)

// Staff represents a workshop employee. It is an aggregate root holding the
// employee's identity, their role, and the sector they work in. The role
// decides which status columns the employee sees on the board; the sector
// ties the employee to a station so transitions can record who did the work.
type Staff struct {
	// id uniquely identifies the staff member
	id kernel.UUID
	// name is the human-readable name of the staff member
	name string
	// email is the login identity, unique across the workshop
	email string
	// role selects the board view (admin, sapataria, costura, lavagem, pintura, acabamento, atendimento)
	role string
	// sectorID is the station the staff member is assigned to, empty for admins
	sectorID string
	// active marks whether the staff member can be assigned work
	active bool
	// guard ensures the staff member was properly constructed
	guard guard.ConstructorGuard
}

// NewStaff creates a new Staff member with the specified parameters.
// This is the only way to create a valid Staff instance.
// New staff members start active.
func NewStaff(id kernel.UUID, name, email, role, sectorID string) (*Staff, error) {
	staff := &Staff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staff.setID(id),
		staff.setName(name),
		staff.setEmail(email),
		staff.setRole(role),
	); err != nil {
		return nil, err
	}

	staff.sectorID = sectorID
	staff.active = true
	return staff, nil
}

// RestoreStaff reconstructs a Staff aggregate from persistent storage,
// preserving the persisted active flag.
func RestoreStaff(id kernel.UUID, name, email, role, sectorID string, active bool) (*Staff, error) {
	staff := &Staff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staff.setID(id),
		staff.setName(name),
		staff.setEmail(email),
		staff.setRole(role),
	); err != nil {
		return nil, err
	}

	staff.sectorID = sectorID
	staff.active = active
	return staff, nil
}

// IsEqual compares two staff members by their unique identifiers.
func (s *Staff) IsEqual(other *Staff) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks if the Staff was properly constructed via NewStaff.
func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// Deactivate marks the staff member as unavailable for work. Existing history
// entries keep referencing them.
func (s *Staff) Deactivate() {
	s.active = false
}

// Activate marks the staff member as available for work again.
func (s *Staff) Activate() {
	s.active = true
}

// AssignToSector moves the staff member to another station.
func (s *Staff) AssignToSector(sectorID string) {
	s.sectorID = sectorID
}

// ID returns the unique identifier of the staff member.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable name of the staff member.
func (s *Staff) Name() string {
	return s.name
}

// Email returns the staff member's login identity.
func (s *Staff) Email() string {
	return s.email
}

// Role returns the staff member's board role.
func (s *Staff) Role() string {
	return s.role
}

// SectorID returns the station the staff member is assigned to.
func (s *Staff) SectorID() string {
	return s.sectorID
}

// Active reports whether the staff member can be assigned work.
func (s *Staff) Active() bool {
	return s.active
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

func (s *Staff) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	s.email = email
	return nil
}

func (s *Staff) setRole(role string) error {
	if role == "" {
		return ErrRoleIsRequired
	}

	s.role = role
	return nil
}
