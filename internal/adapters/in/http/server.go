// Package http exposes the REST surface of the workshop service. Handlers
// are thin: they bind requests, build commands or queries, and translate
// domain errors to HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"repairshop/internal/core/application/usecases/commands"
	"repairshop/internal/core/application/usecases/queries"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/model/sector"
	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	moveOrderHandler        commands.MoveOrderToSectorCommandHandler
	changeStatusHandler     commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler      commands.DeleteOrderCommandHandler
	createStaffHandler      commands.CreateStaffCommandHandler
	getOrdersBoardHandler   queries.GetOrdersBoardQueryHandler
	getSectorStatsHandler   queries.GetSectorStatisticsQueryHandler
	getStatusColumnsHandler queries.GetStatusColumnsQueryHandler
	getAdjacentHandler      queries.GetAdjacentSectorsQueryHandler
	getAllStaffHandler      queries.GetAllStaffQueryHandler
	catalog                 *sector.Catalog
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	moveOrderHandler commands.MoveOrderToSectorCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createStaffHandler commands.CreateStaffCommandHandler,
	getOrdersBoardHandler queries.GetOrdersBoardQueryHandler,
	getSectorStatsHandler queries.GetSectorStatisticsQueryHandler,
	getStatusColumnsHandler queries.GetStatusColumnsQueryHandler,
	getAdjacentHandler queries.GetAdjacentSectorsQueryHandler,
	getAllStaffHandler queries.GetAllStaffQueryHandler,
	catalog *sector.Catalog,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		moveOrderHandler:        moveOrderHandler,
		changeStatusHandler:     changeStatusHandler,
		deleteOrderHandler:      deleteOrderHandler,
		createStaffHandler:      createStaffHandler,
		getOrdersBoardHandler:   getOrdersBoardHandler,
		getSectorStatsHandler:   getSectorStatsHandler,
		getStatusColumnsHandler: getStatusColumnsHandler,
		getAdjacentHandler:      getAdjacentHandler,
		getAllStaffHandler:      getAllStaffHandler,
		catalog:                 catalog,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersBoard)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/move", s.MoveOrderToSector)
	api.GET("/orders/:id/adjacent-sectors", s.GetAdjacentSectors)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/sectors", s.GetSectors)
	api.GET("/sectors/statistics", s.GetSectorStatistics)
	api.GET("/status-columns", s.GetStatusColumns)
	api.GET("/staff", s.GetAllStaff)
	api.POST("/staff", s.CreateStaff)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// httpError maps domain errors onto HTTP statuses.
func httpError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ports.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, sector.ErrSectorNotFound),
		errors.Is(err, order.ErrSectorNotInFlow),
		errors.Is(err, status.ErrInvalidStatus),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// actorFromHeaders builds the acting user from the auth headers set by the
// gateway. Authentication itself happens upstream.
func actorFromHeaders(ctx echo.Context) order.Actor {
	h := ctx.Request().Header
	return order.Actor{
		ID:    h.Get("X-User-Id"),
		Email: h.Get("X-User-Email"),
		Name:  h.Get("X-User-Name"),
		Role:  h.Get("X-User-Role"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ServiceRequest is one service line item in an order creation request.
type ServiceRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID       string           `json:"customer_id"`
	CustomerName     string           `json:"customer_name"`
	SneakerModel     string           `json:"sneaker_model"`
	Services         []ServiceRequest `json:"services"`
	Priority         int              `json:"priority"`
	ExpectedDelivery string           `json:"expected_delivery"`
	Remarks          string           `json:"remarks"`
	InitialStatus    string           `json:"initial_status"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	services := make([]order.Service, 0, len(req.Services))
	for _, svc := range req.Services {
		services = append(services, order.Service{ID: svc.ID, Name: svc.Name, Price: svc.Price})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.CustomerID,
		req.CustomerName,
		req.SneakerModel,
		services,
		req.Priority,
		req.ExpectedDelivery,
		req.Remarks,
		req.InitialStatus,
		actorFromHeaders(ctx),
	)
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrdersBoard handles GET /api/v1/orders.
func (s *Server) GetOrdersBoard(ctx echo.Context) error {
	board, err := s.getOrdersBoardHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersBoardQuery())
	if err != nil {
		return httpError(ctx, err)
	}

	type boardRow struct {
		ID               string `json:"id"`
		Code             string `json:"code"`
		CustomerName     string `json:"customer_name"`
		SneakerModel     string `json:"sneaker_model"`
		Priority         int    `json:"priority"`
		Status           string `json:"status"`
		CurrentSector    string `json:"current_sector"`
		CurrentStaffName string `json:"current_staff_name"`
		ExpectedDelivery string `json:"expected_delivery"`
		CreatedAt        string `json:"created_at"`
	}

	response := make([]boardRow, len(board))
	for i, row := range board {
		response[i] = boardRow{
			ID:               row.ID.String(),
			Code:             row.Code,
			CustomerName:     row.CustomerName,
			SneakerModel:     row.SneakerModel,
			Priority:         row.Priority,
			Status:           row.Status,
			CurrentSector:    row.CurrentSector,
			CurrentStaffName: row.CurrentStaffName,
			ExpectedDelivery: row.ExpectedDelivery,
			CreatedAt:        row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status, actorFromHeaders(ctx))
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MoveOrderRequest is the body of POST /api/v1/orders/:id/move.
type MoveOrderRequest struct {
	SectorID  string `json:"sector_id"`
	Status    string `json:"status"`
	StaffName string `json:"staff_name"`
	Note      string `json:"note"`
}

// MoveOrderToSector handles POST /api/v1/orders/:id/move.
func (s *Server) MoveOrderToSector(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req MoveOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewMoveOrderToSectorCommand(
		orderID, req.SectorID, req.Status, req.StaffName, req.Note, actorFromHeaders(ctx))
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.moveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAdjacentSectors handles GET /api/v1/orders/:id/adjacent-sectors.
func (s *Server) GetAdjacentSectors(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetAdjacentSectorsQuery(orderID)
	if err != nil {
		return httpError(ctx, err)
	}

	response, err := s.getAdjacentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return httpError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSectors handles GET /api/v1/sectors.
func (s *Server) GetSectors(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.catalog.ListActive())
}

// GetSectorStatistics handles GET /api/v1/sectors/statistics.
func (s *Server) GetSectorStatistics(ctx echo.Context) error {
	stats, err := s.getSectorStatsHandler.Handle(ctx.Request().Context(), queries.NewGetSectorStatisticsQuery())
	if err != nil {
		return httpError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

// GetStatusColumns handles GET /api/v1/status-columns.
func (s *Server) GetStatusColumns(ctx echo.Context) error {
	query := queries.NewGetStatusColumnsQuery(ctx.QueryParam("role"))

	response, err := s.getStatusColumnsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return httpError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllStaff handles GET /api/v1/staff.
func (s *Server) GetAllStaff(ctx echo.Context) error {
	query := queries.NewGetAllStaffQuery(ctx.QueryParam("sector_id"))

	members, err := s.getAllStaffHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return httpError(ctx, err)
	}

	type staffRow struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		SectorID string `json:"sector_id"`
	}

	response := make([]staffRow, len(members))
	for i, member := range members {
		response[i] = staffRow{
			ID:       member.ID.String(),
			Name:     member.Name,
			Email:    member.Email,
			Role:     member.Role,
			SectorID: member.SectorID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStaffRequest is the body of POST /api/v1/staff.
type CreateStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	SectorID string `json:"sector_id"`
}

// CreateStaff handles POST /api/v1/staff.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var req CreateStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	staffID := kernel.NewUUID()
	cmd, err := commands.NewCreateStaffCommand(staffID, req.Name, req.Email, req.Role, req.SectorID)
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.createStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": staffID.String()})
}
