package application

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/ports"
)

// cartFingerprint derives a stable digest of the checkout request. Two
// requests with the same customer and the same cart contents produce the
// same fingerprint regardless of line order, so a retried PlaceOrder is
// recognized even after the repository reordered the lines.
func cartFingerprint(customerID int64, lines []ports.CartLine) string {
	parts := make([]string, 0, len(lines)+1)
	parts = append(parts, fmt.Sprintf("customer=%d", customerID))
	sorted := append([]ports.CartLine{}, lines...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })
	for _, line := range sorted {
		parts = append(parts, fmt.Sprintf("%d:%d", line.ProductID, line.Quantity))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
