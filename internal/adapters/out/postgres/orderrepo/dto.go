// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It converts between the order domain aggregate and its
// relational representation: scalar columns for everything queryable, one
// jsonb column for the line items.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Statuses are stored as their string form so rows stay readable
// in psql; monetary figures as numeric(12,2); line items as a jsonb
// document. The version column is the optimistic-concurrency token.
type OrderDTO struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderNumber      string        `gorm:"type:varchar(17);uniqueIndex"`
	Status           string        `gorm:"type:varchar(20);index"`
	PaymentStatus    string        `gorm:"type:varchar(20);index"`
	ClientePersonaID *uuid.UUID    `gorm:"type:uuid;index"`
	ClienteOrgID     *uuid.UUID    `gorm:"type:uuid;index"`
	LineItems        LineItemsJSON `gorm:"type:jsonb"`

	Subtotal decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total    decimal.Decimal `gorm:"type:numeric(12,2)"`

	PaymentMethodID  *uuid.UUID `gorm:"type:uuid"`
	ShippingMethodID *uuid.UUID `gorm:"type:uuid"`
	Notes            string

	// Timestamps come from the aggregate, not from GORM hooks.
	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemJSON is the stored form of one order line. Monetary figures are
// kept as fixed-point strings so the jsonb round-trip never goes through
// floating point.
type LineItemJSON struct {
	ProductID    *string `json:"product_id,omitempty"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	UnitPrice    string  `json:"unit_price"`
	LineSubtotal *string `json:"line_subtotal,omitempty"`
}

// LineItemsJSON maps a line item slice onto a single jsonb column.
type LineItemsJSON []LineItemJSON

// Value implements driver.Valuer for jsonb storage.
func (l LineItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (l *LineItemsJSON) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into LineItemsJSON", value)
	}
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(LineItemsJSON, 0, len(aggregate.Items()))
	for _, li := range aggregate.Items() {
		var productID *string
		if li.ProductID() != nil {
			s := li.ProductID().String()
			productID = &s
		}

		var lineSubtotal *string
		if li.LineSubtotal() != nil {
			s := li.LineSubtotal().String()
			lineSubtotal = &s
		}

		items = append(items, LineItemJSON{
			ProductID:    productID,
			Description:  li.Description(),
			Quantity:     li.Quantity(),
			UnitPrice:    li.UnitPrice().String(),
			LineSubtotal: lineSubtotal,
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OrderNumber:      aggregate.OrderNumber(),
		Status:           aggregate.Status().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		ClientePersonaID: uuidRefToRaw(aggregate.ClientePersonaID()),
		ClienteOrgID:     uuidRefToRaw(aggregate.ClienteOrgID()),
		LineItems:        items,
		Subtotal:         aggregate.Subtotal().Decimal(),
		Discount:         aggregate.Discount().Decimal(),
		Tax:              aggregate.Tax().Decimal(),
		Total:            aggregate.Total().Decimal(),
		PaymentMethodID:  uuidRefToRaw(aggregate.PaymentMethodID()),
		ShippingMethodID: uuidRefToRaw(aggregate.ShippingMethodID()),
		Notes:            aggregate.Notes(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so the stored totals are taken as authoritative.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	clientePersonaID, err := rawToUUIDRef(dto.ClientePersonaID)
	if err != nil {
		return nil, err
	}

	clienteOrgID, err := rawToUUIDRef(dto.ClienteOrgID)
	if err != nil {
		return nil, err
	}

	paymentMethodID, err := rawToUUIDRef(dto.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	shippingMethodID, err := rawToUUIDRef(dto.ShippingMethodID)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, stored := range dto.LineItems {
		li, liErr := lineItemToDomain(stored)
		if liErr != nil {
			return nil, liErr
		}
		items = append(items, li)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		OrderNumber:      dto.OrderNumber,
		Status:           status,
		PaymentStatus:    paymentStatus,
		ClientePersonaID: clientePersonaID,
		ClienteOrgID:     clienteOrgID,
		Items:            items,
		Subtotal:         kernel.NewMoney(dto.Subtotal),
		Discount:         kernel.NewMoney(dto.Discount),
		Tax:              kernel.NewMoney(dto.Tax),
		Total:            kernel.NewMoney(dto.Total),
		PaymentMethodID:  paymentMethodID,
		ShippingMethodID: shippingMethodID,
		Notes:            dto.Notes,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
		Version:          dto.Version,
	})
}

func lineItemToDomain(stored LineItemJSON) (order.LineItem, error) {
	var productID *kernel.UUID
	if stored.ProductID != nil {
		id, err := kernel.UUIDFromString(*stored.ProductID)
		if err != nil {
			return order.LineItem{}, err
		}
		productID = &id
	}

	unitPrice, err := kernel.NewMoneyFromString(stored.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	var lineSubtotal *kernel.Money
	if stored.LineSubtotal != nil {
		m, msErr := kernel.NewMoneyFromString(*stored.LineSubtotal)
		if msErr != nil {
			return order.LineItem{}, msErr
		}
		lineSubtotal = &m
	}

	return order.NewLineItem(productID, stored.Description, stored.Quantity, unitPrice, lineSubtotal)
}

func uuidRefToRaw(ref *kernel.UUID) *uuid.UUID {
	if ref == nil {
		return nil
	}
	raw := ref.Bytes()
	return &raw
}

func rawToUUIDRef(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
