package order_test

import (
	"regexp"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-[0-9A-Z]{4}$`)

	t.Run("matches the ORD-YYYYMMDD-XXXX format", func(t *testing.T) {
		for range 50 {
			number := order.GenerateOrderNumber(time.Now())
			assert.Regexp(t, pattern, number)
		}
	})

	t.Run("embeds the UTC date", func(t *testing.T) {
		at := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)
		number := order.GenerateOrderNumber(at)
		assert.Equal(t, "ORD-20260901-", number[:13])
	})

	t.Run("suffixes differ across generations", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			seen[order.GenerateOrderNumber(time.Now())] = true
		}
		// 36^4 combinations; 100 draws colliding down to a single value
		// would mean the generator is broken.
		assert.Greater(t, len(seen), 1)
	})
}
