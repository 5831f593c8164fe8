package order

import (
	"math/rand/v2"
	"strings"
	"time"
)

// orderNumberAlphabet is the character set for the random suffix: digits and
// uppercase letters, matching the ORD-<YYYYMMDD>-<XXXX> business format.
const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const orderNumberSuffixLength = 4

// GenerateOrderNumber produces a human-readable business identifier of the
// form ORD-<YYYYMMDD>-<4-char-random>, e.g. "ORD-20260901-7XK2". The random
// suffix makes collisions unlikely; uniqueness is ultimately enforced by the
// store's unique index, not here.
func GenerateOrderNumber(now time.Time) string {
	var suffix strings.Builder
	suffix.Grow(orderNumberSuffixLength)
	for range orderNumberSuffixLength {
		suffix.WriteByte(orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))])
	}

	return "ORD-" + now.UTC().Format("20060102") + "-" + suffix.String()
}
