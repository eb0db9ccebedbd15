package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultBillPrefix is the human-readable bill number prefix used when the
// deployment does not configure its own.
const DefaultBillPrefix = "RB-"

// NextBillNo derives the next sequential bill number from the bill numbers
// already persisted. Entries that do not carry the prefix, or whose suffix is
// not a plain integer, are ignored rather than treated as errors. The suffix
// is zero-padded to a minimum width of two digits; larger numbers render at
// their natural width.
//
// Callers must recompute this against the current persisted set right before
// creating a record, never cache it as an in-memory counter. Concurrent
// writers can still race to the same number; see DESIGN.md.
func NextBillNo(prefix string, existing []string) string {
	if prefix == "" {
		prefix = DefaultBillPrefix
	}

	highest := 0
	seen := false
	for _, billNo := range existing {
		if !strings.HasPrefix(billNo, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(billNo, prefix))
		if err != nil {
			continue
		}
		if !seen || n > highest {
			highest = n
			seen = true
		}
	}

	if !seen {
		return prefix + "01"
	}
	return fmt.Sprintf("%s%02d", prefix, highest+1)
}
