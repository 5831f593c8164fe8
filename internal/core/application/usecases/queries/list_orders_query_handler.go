package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves filtered order listings from the
// database. Filters compose with AND semantics; results come back newest
// first so the admin listing shows recent activity on page one.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. An empty result is an empty slice, never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p := query.Params()
	tx := h.db.WithContext(ctx).Table("orders").Select(orderColumns)

	if p.Status != nil {
		tx = tx.Where("status = ?", p.Status.String())
	}
	if p.PaymentStatus != nil {
		tx = tx.Where("payment_status = ?", p.PaymentStatus.String())
	}
	if p.ClientePersonaID != nil {
		tx = tx.Where("cliente_persona_id = ?", p.ClientePersonaID.Bytes())
	}
	if p.ClienteOrgID != nil {
		tx = tx.Where("cliente_org_id = ?", p.ClienteOrgID.Bytes())
	}
	if p.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", *p.CreatedFrom)
	}
	if p.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", *p.CreatedTo)
	}
	if p.Search != "" {
		tx = tx.Where("order_number ILIKE ?", "%"+p.Search+"%")
	}

	rows, err := tx.
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
