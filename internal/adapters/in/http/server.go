// Package http exposes the order lifecycle engine as a JSON API. Handlers
// parse and validate the wire format, dispatch to command/query handlers,
// and map domain errors onto HTTP status codes. Mutations read the record
// back through the query side so every success response carries the same
// shape.
package http

import (
	"errors"
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// dataResponse wraps every successful payload-bearing response.
type dataResponse struct {
	Data any `json:"data"`
}

// errorResponse carries a human-readable failure description.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse acknowledges payload-less operations.
type successResponse struct {
	Success bool `json:"success"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler

	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		changePaymentStatusHandler: changePaymentStatusHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
	}
}

// RegisterRoutes mounts the order resource on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.UpdateOrder)
	e.PUT("/orders/:id/status", s.ChangeOrderStatus)
	e.PUT("/orders/:id/payment-status", s.ChangePaymentStatus)
	e.DELETE("/orders/:id", s.DeleteOrder)
}

// ListOrders handles GET /orders.
//
//	@Summary		List orders
//	@Description	Returns a filtered page of orders, newest first.
//	@Tags			orders
//	@Produce		json
//	@Param			status				query	string	false	"Fulfillment status"
//	@Param			estado_pago			query	string	false	"Payment status"
//	@Param			cliente_persona_id	query	string	false	"Person customer id"
//	@Param			cliente_org_id		query	string	false	"Organization customer id"
//	@Param			fecha_desde			query	string	false	"Created from (YYYY-MM-DD)"
//	@Param			fecha_hasta			query	string	false	"Created to (YYYY-MM-DD)"
//	@Param			search				query	string	false	"Order number fragment"
//	@Param			limit				query	int		false	"Page size (default 50, max 200)"
//	@Param			offset				query	int		false	"Page offset"
//	@Success		200	{object}	dataResponse
//	@Failure		400	{object}	errorResponse
//	@Router			/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	params, err := parseListParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	query, err := queries.NewListOrdersQuery(params)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dataResponse{Data: orders})
}

// GetOrder handles GET /orders/{id}.
//
//	@Summary	Get one order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	dataResponse
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

// CreateOrder handles POST /orders.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		createOrderRequest	true	"Order input"
//	@Success	201		{object}	dataResponse
//	@Failure	400		{object}	errorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	orderID := kernel.NewUUID()
	params, err := req.toCommandParams(orderID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.mapError(c, err)
	}

	return s.respondWithOrder(c, http.StatusCreated, orderID)
}

// UpdateOrder handles PUT /orders/{id}.
//
//	@Summary	Update an order's mutable fields
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Order id"
//	@Param		order	body		updateOrderRequest	true	"Fields to change"
//	@Success	200		{object}	dataResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Failure	409		{object}	errorResponse
//	@Router		/orders/{id} [put]
func (s *Server) UpdateOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	var req updateOrderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	params, err := req.toCommandParams(orderID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewUpdateOrderCommand(params)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.updateOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.mapError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// ChangeOrderStatus handles PUT /orders/{id}/status.
//
//	@Summary	Move an order to a new fulfillment status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Order id"
//	@Param		status	body		statusRequest	true	"Target status"
//	@Success	200		{object}	dataResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/orders/{id}/status [put]
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	var req statusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	newStatus, err := order.StatusFromString(req.NewStatus)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.mapError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// ChangePaymentStatus handles PUT /orders/{id}/payment-status.
//
//	@Summary	Set an order's payment status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Order id"
//	@Param		status	body		paymentStatusRequest	true	"Target payment status"
//	@Success	200		{object}	dataResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/orders/{id}/payment-status [put]
func (s *Server) ChangePaymentStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	var req paymentStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	paymentStatus, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewChangePaymentStatusCommand(orderID, paymentStatus)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.changePaymentStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.mapError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// DeleteOrder handles DELETE /orders/{id}. Deleting an id that is already
// gone is still a success.
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	successResponse
//	@Failure	400	{object}	errorResponse
//	@Router		/orders/{id} [delete]
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// respondWithOrder reads the order back and returns it wrapped in the data
// envelope, so mutation responses match GET responses exactly.
func (s *Server) respondWithOrder(c echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.mapError(c, err)
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(status, dataResponse{Data: resp})
}

// mapError translates application errors onto HTTP status codes: domain
// validation and illegal transitions are client errors, missing records are
// 404, lost concurrency races are 409, everything else is a store failure.
func (s *Server) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrItemsRequired),
		errors.Is(err, order.ErrCustomerRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
