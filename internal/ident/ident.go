// Package ident generates the human-facing identifiers used across screens.
//
// Record ids keep the original short format (entity letter + 4 digits) but are
// collision-checked against the live collection: a drawn id that already exists
// is rejected and redrawn, and after repeated collisions the numeric space
// widens so generation always terminates.
package ident

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Prefixes for record ids, one letter per entity type.
const (
	ClientPrefix  = "c"
	ProductPrefix = "p"
	InvoicePrefix = "i"
)

const (
	idDigits    = 4
	maxAttempts = 25
)

// NewID returns an id of the form <prefix><4 digits> that the taken set does
// not contain. The numeric space widens by a digit whenever maxAttempts draws
// in a row collide.
func NewID(prefix string, taken func(string) bool) string {
	digits := idDigits
	for {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			limit := pow10(digits)
			id := fmt.Sprintf("%s%0*d", prefix, digits, rand.Intn(limit))
			if taken == nil || !taken(id) {
				return id
			}
		}
		digits++
	}
}

// NewInvoiceNumber returns INV-<year>-<4 digits>, collision-checked the same
// way as record ids.
func NewInvoiceNumber(year int, taken func(string) bool) string {
	digits := idDigits
	for {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			n := fmt.Sprintf("INV-%d-%0*d", year, digits, rand.Intn(pow10(digits)))
			if taken == nil || !taken(n) {
				return n
			}
		}
		digits++
	}
}

// NewItemID returns an opaque line-item id. Line items never surface their ids
// to users, so a UUID is fine here.
func NewItemID() string { return uuid.NewString() }

// NewSKU builds NAME3-CAT3-NNN from the product name and category, falling
// back to OTH when no meaningful category is set. Not guaranteed unique; SKUs
// are unique by convention only.
func NewSKU(name, category string) string {
	namePrefix := strings.ToUpper(firstN(name, 3))
	catPrefix := "OTH"
	if category != "" && !strings.EqualFold(category, "Other") {
		catPrefix = strings.ToUpper(firstN(category, 3))
	}
	return fmt.Sprintf("%s-%s-%03d", namePrefix, catPrefix, rand.Intn(1000))
}

func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
