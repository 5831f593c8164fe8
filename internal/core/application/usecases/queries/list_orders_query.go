package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	// DefaultListLimit applies when the caller supplies no page size.
	DefaultListLimit = 50

	// MaxListLimit caps the page size a caller may request.
	MaxListLimit = 200
)

// ListOrdersQueryParams carries the optional filters for an order listing.
// Nil or zero values mean "no filter".
type ListOrdersQueryParams struct {
	Status           *order.Status
	PaymentStatus    *order.PaymentStatus
	ClientePersonaID *kernel.UUID
	ClienteOrgID     *kernel.UUID

	// CreatedFrom and CreatedTo bound the creation timestamp inclusively.
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	// Search matches order numbers and notes, case-insensitively.
	Search string

	Limit  int
	Offset int
}

// ListOrdersQuery retrieves a filtered page of order records, newest first.
type ListOrdersQuery struct {
	params ListOrdersQueryParams

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. Status filters are checked for
// membership, a zero limit falls back to DefaultListLimit, and limits beyond
// MaxListLimit or negative paging values are rejected.
func NewListOrdersQuery(params ListOrdersQueryParams) (ListOrdersQuery, error) {
	if params.Status != nil {
		if err := params.Status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if params.PaymentStatus != nil {
		if err := params.PaymentStatus.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if params.ClientePersonaID != nil {
		if err := params.ClientePersonaID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if params.ClienteOrgID != nil {
		if err := params.ClienteOrgID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if params.Limit < 0 || params.Limit > MaxListLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", params.Limit, 0, MaxListLimit)
	}
	if params.Limit == 0 {
		params.Limit = DefaultListLimit
	}

	if params.Offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return ListOrdersQuery{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Params returns the listing filters with paging defaults applied.
func (q ListOrdersQuery) Params() ListOrdersQueryParams {
	return q.params
}
