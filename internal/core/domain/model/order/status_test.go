package order_test

import (
	"fmt"
	"testing"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusInPreparation,
		order.StatusShipped,
		order.StatusDelivered,
		order.StatusCancelled,
		order.StatusReturned,
	}
}

// legalTransitions mirrors the business transition table. The test keeps its
// own copy so a change to the production whitelist must be made twice,
// deliberately.
func legalTransitions() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.StatusPending:       {order.StatusConfirmed, order.StatusCancelled},
		order.StatusConfirmed:     {order.StatusInPreparation, order.StatusCancelled},
		order.StatusInPreparation: {order.StatusShipped, order.StatusCancelled},
		order.StatusShipped:       {order.StatusDelivered, order.StatusCancelled},
		order.StatusDelivered:     {order.StatusReturned},
		order.StatusCancelled:     {},
		order.StatusReturned:      {},
	}
}

func isLegal(from, to order.Status) bool {
	for _, allowed := range legalTransitions()[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all seven known statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(8), order.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusPending, "pending"},
		{order.StatusConfirmed, "confirmed"},
		{order.StatusInPreparation, "in_preparation"},
		{order.StatusShipped, "shipped"},
		{order.StatusDelivered, "delivered"},
		{order.StatusCancelled, "cancelled"},
		{order.StatusReturned, "returned"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.StatusUnknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "PENDING", "done"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err, "name %q", name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow every pair in the transition table", func(t *testing.T) {
		for from, targets := range legalTransitions() {
			for _, to := range targets {
				t.Run(fmt.Sprintf("%s_to_%s", from, to), func(t *testing.T) {
					newStatus, err := from.TransitionTo(to)
					require.NoError(t, err)
					assert.Equal(t, to, newStatus)
				})
			}
		}
	})

	t.Run("should reject every pair not in the table", func(t *testing.T) {
		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				if isLegal(from, to) {
					continue
				}
				t.Run(fmt.Sprintf("%s_to_%s", from, to), func(t *testing.T) {
					_, err := from.TransitionTo(to)

					require.Error(t, err)
					assert.ErrorIs(t, err, order.ErrIllegalTransition)
				})
			}
		}
	})

	t.Run("should reject self transitions", func(t *testing.T) {
		_, err := order.StatusPending.TransitionTo(order.StatusPending)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrIllegalTransition)
	})

	t.Run("should reject a malformed target before consulting the table", func(t *testing.T) {
		_, err := order.StatusPending.TransitionTo(order.Status(99))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("error message names the denied pair and the allowed targets", func(t *testing.T) {
		_, err := order.StatusPending.TransitionTo(order.StatusShipped)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pending -> shipped")
		assert.Contains(t, err.Error(), "confirmed, cancelled")
	})

	t.Run("error message renders an empty allowed list as none", func(t *testing.T) {
		_, err := order.StatusCancelled.TransitionTo(order.StatusConfirmed)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "allowed: none")
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.True(t, order.StatusReturned.IsTerminal())

	for _, status := range []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusInPreparation,
		order.StatusShipped,
		order.StatusDelivered,
	} {
		assert.False(t, status.IsTerminal(), "status %s", status)
	}
}
