// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read the orders table directly and map rows onto response
// structs, deliberately bypassing the aggregate and its invariants: a read
// never needs them and the write model stays free to evolve separately.
package queries

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineItemResponse is the wire form of one order line. Monetary
// figures are fixed-point strings end to end.
type OrderLineItemResponse struct {
	ProductID    *string `json:"productId,omitempty"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	UnitPrice    string  `json:"unitPrice"`
	LineSubtotal *string `json:"lineSubtotal,omitempty"`
}

// OrderResponse is the wire form of a full order record.
type OrderResponse struct {
	ID               string                  `json:"id"`
	OrderNumber      string                  `json:"orderNumber"`
	Status           string                  `json:"status"`
	PaymentStatus    string                  `json:"paymentStatus"`
	ClientePersonaID *string                 `json:"clientePersonaId,omitempty"`
	ClienteOrgID     *string                 `json:"clienteOrgId,omitempty"`
	Items            []OrderLineItemResponse `json:"items"`
	Subtotal         string                  `json:"subtotal"`
	Discount         string                  `json:"discount"`
	Tax              string                  `json:"tax"`
	Total            string                  `json:"total"`
	PaymentMethodID  *string                 `json:"paymentMethodId,omitempty"`
	ShippingMethodID *string                 `json:"shippingMethodId,omitempty"`
	Notes            string                  `json:"notes,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
	Version          int                     `json:"version"`
}

// orderColumns is the column list every order read selects, in the order
// scanOrderResponse expects.
const orderColumns = `
	id,
	order_number,
	status,
	payment_status,
	cliente_persona_id,
	cliente_org_id,
	line_items,
	subtotal,
	discount,
	tax,
	total,
	payment_method_id,
	shipping_method_id,
	notes,
	created_at,
	updated_at,
	version
`

// storedLineItem mirrors the jsonb document shape of one order line.
type storedLineItem struct {
	ProductID    *string `json:"product_id,omitempty"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	UnitPrice    string  `json:"unit_price"`
	LineSubtotal *string `json:"line_subtotal,omitempty"`
}

// scanOrderResponse maps the current row of an orderColumns select onto an
// OrderResponse.
func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var (
		id               uuid.UUID
		orderNumber      string
		status           string
		paymentStatus    string
		clientePersonaID uuid.NullUUID
		clienteOrgID     uuid.NullUUID
		lineItemsRaw     []byte
		subtotal         decimal.Decimal
		discount         decimal.Decimal
		tax              decimal.Decimal
		total            decimal.Decimal
		paymentMethodID  uuid.NullUUID
		shippingMethodID uuid.NullUUID
		notes            string
		createdAt        time.Time
		updatedAt        time.Time
		version          int
	)

	err := rows.Scan(
		&id,
		&orderNumber,
		&status,
		&paymentStatus,
		&clientePersonaID,
		&clienteOrgID,
		&lineItemsRaw,
		&subtotal,
		&discount,
		&tax,
		&total,
		&paymentMethodID,
		&shippingMethodID,
		&notes,
		&createdAt,
		&updatedAt,
		&version,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	var stored []storedLineItem
	if len(lineItemsRaw) > 0 {
		if err = json.Unmarshal(lineItemsRaw, &stored); err != nil {
			return OrderResponse{}, fmt.Errorf("decode line items for order %s: %w", id, err)
		}
	}

	items := make([]OrderLineItemResponse, 0, len(stored))
	for _, li := range stored {
		items = append(items, OrderLineItemResponse{
			ProductID:    li.ProductID,
			Description:  li.Description,
			Quantity:     li.Quantity,
			UnitPrice:    li.UnitPrice,
			LineSubtotal: li.LineSubtotal,
		})
	}

	return OrderResponse{
		ID:               id.String(),
		OrderNumber:      orderNumber,
		Status:           status,
		PaymentStatus:    paymentStatus,
		ClientePersonaID: nullUUIDToString(clientePersonaID),
		ClienteOrgID:     nullUUIDToString(clienteOrgID),
		Items:            items,
		Subtotal:         subtotal.StringFixed(2),
		Discount:         discount.StringFixed(2),
		Tax:              tax.StringFixed(2),
		Total:            total.StringFixed(2),
		PaymentMethodID:  nullUUIDToString(paymentMethodID),
		ShippingMethodID: nullUUIDToString(shippingMethodID),
		Notes:            notes,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		Version:          version,
	}, nil
}

func nullUUIDToString(v uuid.NullUUID) *string {
	if !v.Valid {
		return nil
	}
	s := v.UUID.String()
	return &s
}
