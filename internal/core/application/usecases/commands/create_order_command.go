package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIsRequired = errors.New("customer ID and name are required")
	ErrServicesAreEmpty   = errors.New("at least one service is required")
)

// CreateOrderCommand represents a request to open a new repair order.
// The sector flow is derived from the service names by the handler and frozen
// into the order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       string
	customerName     string
	sneakerModel     string
	services         []order.Service
	priority         int
	expectedDelivery string
	remarks          string
	initialStatus    string
	actor            order.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new repair order.
// Priority 0 means "use the default". The initial status is a raw string and
// is normalized by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID string,
	customerName string,
	sneakerModel string,
	services []order.Service,
	priority int,
	expectedDelivery string,
	remarks string,
	initialStatus string,
	actor order.Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customerID, customerName),
		cmd.setServices(services),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.sneakerModel = sneakerModel
	cmd.expectedDelivery = expectedDelivery
	cmd.remarks = remarks
	cmd.initialStatus = initialStatus
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// CustomerName returns the owning customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// SneakerModel returns the shoe model under repair.
func (c CreateOrderCommand) SneakerModel() string {
	return c.sneakerModel
}

// Services returns the requested service line items.
func (c CreateOrderCommand) Services() []order.Service {
	out := make([]order.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Priority returns the requested priority, 0 when unset.
func (c CreateOrderCommand) Priority() int {
	return c.priority
}

// ExpectedDelivery returns the promised delivery date.
func (c CreateOrderCommand) ExpectedDelivery() string {
	return c.expectedDelivery
}

// Remarks returns free-text notes for the order.
func (c CreateOrderCommand) Remarks() string {
	return c.remarks
}

// InitialStatus returns the raw initial status, empty for the default.
func (c CreateOrderCommand) InitialStatus() string {
	return c.initialStatus
}

// Actor returns the authenticated user creating the order.
func (c CreateOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(id, name string) error {
	if id == "" || name == "" {
		return ErrCustomerIsRequired
	}

	c.customerID = id
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setServices(services []order.Service) error {
	if len(services) == 0 {
		return ErrServicesAreEmpty
	}

	c.services = make([]order.Service, len(services))
	copy(c.services, services)
	return nil
}

func (c *CreateOrderCommand) setPriority(priority int) error {
	if priority < 0 || priority > order.PriorityLow {
		return errs.NewValueIsOutOfRangeError("priority", priority, order.PriorityHigh, order.PriorityLow)
	}

	c.priority = priority
	return nil
}
