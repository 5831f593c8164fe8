package http

import (
	"fmt"
	"strconv"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// lineItemRequest is the wire form of one order line in create/update
// bodies. Monetary figures travel as fixed-point strings.
type lineItemRequest struct {
	ProductID    *string `json:"productId"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	UnitPrice    string  `json:"unitPrice"`
	LineSubtotal *string `json:"lineSubtotal"`
}

// createOrderRequest is the POST /orders body.
type createOrderRequest struct {
	OrderNumber      string            `json:"orderNumber"`
	Status           string            `json:"status"`
	PaymentStatus    string            `json:"paymentStatus"`
	ClientePersonaID *string           `json:"clientePersonaId"`
	ClienteOrgID     *string           `json:"clienteOrgId"`
	Items            []lineItemRequest `json:"items"`
	Discount         *string           `json:"discount"`
	Tax              *string           `json:"tax"`
	Subtotal         *string           `json:"subtotal"`
	Total            *string           `json:"total"`
	PaymentMethodID  *string           `json:"paymentMethodId"`
	ShippingMethodID *string           `json:"shippingMethodId"`
	Notes            string            `json:"notes"`
}

// updateOrderRequest is the PUT /orders/{id} body. Absent fields keep their
// stored values.
type updateOrderRequest struct {
	Items            *[]lineItemRequest `json:"items"`
	Discount         *string            `json:"discount"`
	Tax              *string            `json:"tax"`
	ClientePersonaID *string            `json:"clientePersonaId"`
	ClienteOrgID     *string            `json:"clienteOrgId"`
	PaymentMethodID  *string            `json:"paymentMethodId"`
	ShippingMethodID *string            `json:"shippingMethodId"`
	Notes            *string            `json:"notes"`
}

// statusRequest is the PUT /orders/{id}/status body.
type statusRequest struct {
	NewStatus string `json:"newStatus"`
}

// paymentStatusRequest is the PUT /orders/{id}/payment-status body.
type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

func parseLineItems(reqs []lineItemRequest) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(reqs))
	for i, req := range reqs {
		var productID *kernel.UUID
		if req.ProductID != nil {
			id, err := kernel.UUIDFromString(*req.ProductID)
			if err != nil {
				return nil, fmt.Errorf("items[%d].productId: %w", i, err)
			}
			productID = &id
		}

		unitPrice, err := kernel.NewMoneyFromString(req.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("items[%d].unitPrice: %w", i, err)
		}

		var lineSubtotal *kernel.Money
		if req.LineSubtotal != nil {
			m, msErr := kernel.NewMoneyFromString(*req.LineSubtotal)
			if msErr != nil {
				return nil, fmt.Errorf("items[%d].lineSubtotal: %w", i, msErr)
			}
			lineSubtotal = &m
		}

		li, err := order.NewLineItem(productID, req.Description, req.Quantity, unitPrice, lineSubtotal)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, li)
	}
	return items, nil
}

func parseOptionalMoney(s *string, field string) (*kernel.Money, error) {
	if s == nil {
		return nil, nil
	}
	m, err := kernel.NewMoneyFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &m, nil
}

func parseOptionalUUID(s *string, field string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &id, nil
}

func parseOptionalStatus(s string) (order.Status, error) {
	if s == "" {
		return order.StatusUnknown, nil
	}
	return order.StatusFromString(s)
}

func parseOptionalPaymentStatus(s string) (order.PaymentStatus, error) {
	if s == "" {
		return order.PaymentUnknown, nil
	}
	return order.PaymentStatusFromString(s)
}

// toCommandParams validates and converts the create body. The generated
// order id comes from the caller so the created record can be read back.
func (r createOrderRequest) toCommandParams(orderID kernel.UUID) (commands.CreateOrderCommandParams, error) {
	var params commands.CreateOrderCommandParams

	status, err := parseOptionalStatus(r.Status)
	if err != nil {
		return params, err
	}

	paymentStatus, err := parseOptionalPaymentStatus(r.PaymentStatus)
	if err != nil {
		return params, err
	}

	clientePersonaID, err := parseOptionalUUID(r.ClientePersonaID, "clientePersonaId")
	if err != nil {
		return params, err
	}

	clienteOrgID, err := parseOptionalUUID(r.ClienteOrgID, "clienteOrgId")
	if err != nil {
		return params, err
	}

	items, err := parseLineItems(r.Items)
	if err != nil {
		return params, err
	}

	discount, err := parseOptionalMoney(r.Discount, "discount")
	if err != nil {
		return params, err
	}

	tax, err := parseOptionalMoney(r.Tax, "tax")
	if err != nil {
		return params, err
	}

	subtotalOverride, err := parseOptionalMoney(r.Subtotal, "subtotal")
	if err != nil {
		return params, err
	}

	totalOverride, err := parseOptionalMoney(r.Total, "total")
	if err != nil {
		return params, err
	}

	paymentMethodID, err := parseOptionalUUID(r.PaymentMethodID, "paymentMethodId")
	if err != nil {
		return params, err
	}

	shippingMethodID, err := parseOptionalUUID(r.ShippingMethodID, "shippingMethodId")
	if err != nil {
		return params, err
	}

	params = commands.CreateOrderCommandParams{
		OrderID:          orderID,
		OrderNumber:      r.OrderNumber,
		Status:           status,
		PaymentStatus:    paymentStatus,
		ClientePersonaID: clientePersonaID,
		ClienteOrgID:     clienteOrgID,
		Items:            items,
		SubtotalOverride: subtotalOverride,
		TotalOverride:    totalOverride,
		PaymentMethodID:  paymentMethodID,
		ShippingMethodID: shippingMethodID,
		Notes:            r.Notes,
	}
	if discount != nil {
		params.Discount = *discount
	}
	if tax != nil {
		params.Tax = *tax
	}

	return params, nil
}

// toCommandParams validates and converts the update body.
func (r updateOrderRequest) toCommandParams(orderID kernel.UUID) (commands.UpdateOrderCommandParams, error) {
	var params commands.UpdateOrderCommandParams

	var items []order.LineItem
	if r.Items != nil {
		parsed, err := parseLineItems(*r.Items)
		if err != nil {
			return params, err
		}
		items = parsed
	}

	discount, err := parseOptionalMoney(r.Discount, "discount")
	if err != nil {
		return params, err
	}

	tax, err := parseOptionalMoney(r.Tax, "tax")
	if err != nil {
		return params, err
	}

	clientePersonaID, err := parseOptionalUUID(r.ClientePersonaID, "clientePersonaId")
	if err != nil {
		return params, err
	}

	clienteOrgID, err := parseOptionalUUID(r.ClienteOrgID, "clienteOrgId")
	if err != nil {
		return params, err
	}

	paymentMethodID, err := parseOptionalUUID(r.PaymentMethodID, "paymentMethodId")
	if err != nil {
		return params, err
	}

	shippingMethodID, err := parseOptionalUUID(r.ShippingMethodID, "shippingMethodId")
	if err != nil {
		return params, err
	}

	return commands.UpdateOrderCommandParams{
		OrderID:          orderID,
		Items:            items,
		Discount:         discount,
		Tax:              tax,
		ClientePersonaID: clientePersonaID,
		ClienteOrgID:     clienteOrgID,
		PaymentMethodID:  paymentMethodID,
		ShippingMethodID: shippingMethodID,
		Notes:            r.Notes,
	}, nil
}

// parseListParams maps the listing query string onto query params.
// fecha_desde/fecha_hasta are calendar dates; the upper bound is pushed to
// end of day so a single-day range covers the whole day.
func parseListParams(c echo.Context) (queries.ListOrdersQueryParams, error) {
	var params queries.ListOrdersQueryParams

	if s := c.QueryParam("status"); s != "" {
		status, err := order.StatusFromString(s)
		if err != nil {
			return params, err
		}
		params.Status = &status
	}

	if s := c.QueryParam("estado_pago"); s != "" {
		paymentStatus, err := order.PaymentStatusFromString(s)
		if err != nil {
			return params, err
		}
		params.PaymentStatus = &paymentStatus
	}

	if s := c.QueryParam("cliente_persona_id"); s != "" {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return params, fmt.Errorf("cliente_persona_id: %w", err)
		}
		params.ClientePersonaID = &id
	}

	if s := c.QueryParam("cliente_org_id"); s != "" {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return params, fmt.Errorf("cliente_org_id: %w", err)
		}
		params.ClienteOrgID = &id
	}

	if s := c.QueryParam("fecha_desde"); s != "" {
		from, err := time.Parse("2006-01-02", s)
		if err != nil {
			return params, fmt.Errorf("fecha_desde: %w", err)
		}
		params.CreatedFrom = &from
	}

	if s := c.QueryParam("fecha_hasta"); s != "" {
		to, err := time.Parse("2006-01-02", s)
		if err != nil {
			return params, fmt.Errorf("fecha_hasta: %w", err)
		}
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		params.CreatedTo = &endOfDay
	}

	params.Search = c.QueryParam("search")

	if s := c.QueryParam("limit"); s != "" {
		limit, err := parsePositiveInt(s, "limit")
		if err != nil {
			return params, err
		}
		params.Limit = limit
	}

	if s := c.QueryParam("offset"); s != "" {
		offset, err := parsePositiveInt(s, "offset")
		if err != nil {
			return params, err
		}
		params.Offset = offset
	}

	return params, nil
}

func parsePositiveInt(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return n, nil
}
