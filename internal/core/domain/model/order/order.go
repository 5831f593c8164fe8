package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsRequired is returned when an order has no line items.
	ErrItemsRequired = errors.New("order requires at least one line item")

	// ErrCustomerRequired is returned when an order references neither a
	// person nor an organization.
	ErrCustomerRequired = errors.New("order requires a customer (persona or organizacion)")
)

// Order is the aggregate root of the order lifecycle engine: a customer
// purchase record with line items, derived monetary totals, and two
// independent status tracks.
//
// Invariants:
//   - at least one line item
//   - at least one customer reference (person and/or organization)
//   - status changes only through the TransitionTo whitelist; terminal
//     statuses (cancelled, returned) are immutable
//   - totals are derived from items/discount/tax unless the caller
//     explicitly overrides them at creation (trusted verbatim)
//   - updatedAt is refreshed on every successful mutation
//
// The version field is an optimistic-concurrency token: the store rejects a
// write when the stored version no longer matches the one that was read, so
// two racing read-modify-write sequences cannot silently overwrite each
// other.
type Order struct {
	id            kernel.UUID
	orderNumber   string
	status        Status
	paymentStatus PaymentStatus

	// customer references; external records, kept as opaque ids
	clientePersonaID *kernel.UUID
	clienteOrgID     *kernel.UUID

	items    []LineItem
	subtotal kernel.Money
	discount kernel.Money
	tax      kernel.Money
	total    kernel.Money

	// external catalog references, never validated here
	paymentMethodID  *kernel.UUID
	shippingMethodID *kernel.UUID

	notes string

	createdAt time.Time
	updatedAt time.Time
	version   int

	isConstructed bool
}

// NewOrderParams carries the caller-supplied fields for NewOrder.
// Zero values mean "not supplied" and fall back to the documented defaults.
type NewOrderParams struct {
	ID kernel.UUID

	// OrderNumber is generated in ORD-<YYYYMMDD>-<4-char> form when empty.
	OrderNumber string

	// Status defaults to pending. A non-zero value is an explicit override:
	// it is checked for membership in the known set but never against the
	// transition graph.
	Status Status

	// PaymentStatus defaults to pending.
	PaymentStatus PaymentStatus

	ClientePersonaID *kernel.UUID
	ClienteOrgID     *kernel.UUID

	Items    []LineItem
	Discount kernel.Money
	Tax      kernel.Money

	// SubtotalOverride and TotalOverride bypass derivation entirely when
	// set; the supplied figures are trusted verbatim.
	SubtotalOverride *kernel.Money
	TotalOverride    *kernel.Money

	PaymentMethodID  *kernel.UUID
	ShippingMethodID *kernel.UUID

	Notes string
}

// NewOrder creates a new Order, enforcing every creation invariant and
// deriving the monetary totals. This is the only way to create an order that
// did not come from persistence.
func NewOrder(p NewOrderParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}

	if len(p.Items) == 0 {
		return nil, ErrItemsRequired
	}

	if err := validateCustomerRefs(p.ClientePersonaID, p.ClienteOrgID); err != nil {
		return nil, err
	}

	status := p.Status
	if status == StatusUnknown {
		status = StatusPending
	} else if err := status.Validate(); err != nil {
		return nil, err
	}

	paymentStatus := p.PaymentStatus
	if paymentStatus == PaymentUnknown {
		paymentStatus = PaymentPending
	} else if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}

	if err := errors.Join(
		p.Discount.ValidateNonNegative("discount"),
		p.Tax.ValidateNonNegative("tax"),
		validateOptionalRef(p.PaymentMethodID),
		validateOptionalRef(p.ShippingMethodID),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	orderNumber := p.OrderNumber
	if orderNumber == "" {
		orderNumber = GenerateOrderNumber(now)
	}

	o := &Order{
		id:               p.ID,
		orderNumber:      orderNumber,
		status:           status,
		paymentStatus:    paymentStatus,
		clientePersonaID: p.ClientePersonaID,
		clienteOrgID:     p.ClienteOrgID,
		items:            append([]LineItem(nil), p.Items...),
		discount:         p.Discount,
		tax:              p.Tax,
		paymentMethodID:  p.PaymentMethodID,
		shippingMethodID: p.ShippingMethodID,
		notes:            p.Notes,
		createdAt:        now,
		updatedAt:        now,
		version:          1,
		isConstructed:    true,
	}

	o.subtotal, o.total = CalculateTotals(o.items, o.discount, o.tax)
	o.overrideTotals(p.SubtotalOverride, p.TotalOverride)

	return o, nil
}

// RestoreOrderParams carries a persisted order's full state for rehydration.
type RestoreOrderParams struct {
	ID               kernel.UUID
	OrderNumber      string
	Status           Status
	PaymentStatus    PaymentStatus
	ClientePersonaID *kernel.UUID
	ClienteOrgID     *kernel.UUID
	Items            []LineItem
	Subtotal         kernel.Money
	Discount         kernel.Money
	Tax              kernel.Money
	Total            kernel.Money
	PaymentMethodID  *kernel.UUID
	ShippingMethodID *kernel.UUID
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int
}

// RestoreOrder reconstructs an Order from persistence without re-deriving
// totals: the stored figures are authoritative. Statuses are still checked
// for membership so a corrupted row surfaces as an error instead of an
// aggregate in an impossible state.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.Status.Validate(),
		p.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if err := validateCustomerRefs(p.ClientePersonaID, p.ClienteOrgID); err != nil {
		return nil, err
	}

	return &Order{
		id:               p.ID,
		orderNumber:      p.OrderNumber,
		status:           p.Status,
		paymentStatus:    p.PaymentStatus,
		clientePersonaID: p.ClientePersonaID,
		clienteOrgID:     p.ClienteOrgID,
		items:            append([]LineItem(nil), p.Items...),
		subtotal:         p.Subtotal,
		discount:         p.Discount,
		tax:              p.Tax,
		total:            p.Total,
		paymentMethodID:  p.PaymentMethodID,
		shippingMethodID: p.ShippingMethodID,
		notes:            p.Notes,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
		version:          p.Version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
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

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable business identifier.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current billing status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ClientePersonaID returns the person customer reference, or nil.
func (o *Order) ClientePersonaID() *kernel.UUID {
	return o.clientePersonaID
}

// ClienteOrgID returns the organization customer reference, or nil.
func (o *Order) ClienteOrgID() *kernel.UUID {
	return o.clienteOrgID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Subtotal returns the sum of all line contributions.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Discount returns the order-level discount.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Tax returns the order-level tax.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns subtotal − discount + tax (or the trusted override).
func (o *Order) Total() kernel.Money {
	return o.total
}

// PaymentMethodID returns the payment-method catalog reference, or nil.
func (o *Order) PaymentMethodID() *kernel.UUID {
	return o.paymentMethodID
}

// ShippingMethodID returns the shipping-method catalog reference, or nil.
func (o *Order) ShippingMethodID() *kernel.UUID {
	return o.shippingMethodID
}

// Notes returns the free-form back-office notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency token read from the store.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order to the requested fulfillment status.
// The change is validated against the transition whitelist; an illegal pair
// yields an IllegalTransitionError and leaves the order untouched.
// No other field changes besides the status and updatedAt.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// SetPaymentStatus writes the billing status unconditionally after a
// membership check. There is no payment transition graph: paid -> pending is
// as legal as pending -> paid.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.paymentStatus = status
	o.touch()
	return nil
}

// ChangeItems replaces the line items and re-derives the totals. A nil
// discount or tax keeps the stored value; supplied ones replace it. Any
// previous totals override is discarded: changed items always go through
// derivation.
func (o *Order) ChangeItems(items []LineItem, discount, tax *kernel.Money) error {
	if len(items) == 0 {
		return ErrItemsRequired
	}

	newDiscount := o.discount
	if discount != nil {
		if err := discount.ValidateNonNegative("discount"); err != nil {
			return err
		}
		newDiscount = *discount
	}

	newTax := o.tax
	if tax != nil {
		if err := tax.ValidateNonNegative("tax"); err != nil {
			return err
		}
		newTax = *tax
	}

	o.items = append([]LineItem(nil), items...)
	o.discount = newDiscount
	o.tax = newTax
	o.subtotal, o.total = CalculateTotals(o.items, o.discount, o.tax)
	o.touch()
	return nil
}

// SetClientePersona points the order at a person customer record.
func (o *Order) SetClientePersona(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.clientePersonaID = &id
	o.touch()
	return nil
}

// SetClienteOrg points the order at an organization customer record.
func (o *Order) SetClienteOrg(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.clienteOrgID = &id
	o.touch()
	return nil
}

// SetPaymentMethod points the order at a payment-method catalog entry.
// The reference is opaque; no catalog lookup happens here.
func (o *Order) SetPaymentMethod(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.paymentMethodID = &id
	o.touch()
	return nil
}

// SetShippingMethod points the order at a shipping-method catalog entry.
func (o *Order) SetShippingMethod(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.shippingMethodID = &id
	o.touch()
	return nil
}

// SetNotes replaces the free-form notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
	o.touch()
}

// overrideTotals applies the caller-supplied figures verbatim. This is the
// single trusted-override code path called out in the design notes: keeping
// it isolated lets it be audited or disabled without touching derivation.
func (o *Order) overrideTotals(subtotal, total *kernel.Money) {
	if subtotal != nil {
		o.subtotal = *subtotal
	}
	if total != nil {
		o.total = *total
	}
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func validateCustomerRefs(personaID, orgID *kernel.UUID) error {
	if personaID == nil && orgID == nil {
		return ErrCustomerRequired
	}
	if personaID != nil {
		if err := personaID.Validate(); err != nil {
			return err
		}
	}
	if orgID != nil {
		if err := orgID.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateOptionalRef(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}
