// Package ids generates short random identifiers for stored entities.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// Length is the number of characters in a generated identifier.
const Length = 12

// New returns a short random identifier made of lowercase hex characters.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:Length]
}

// NewUnique returns an identifier for which taken reports false.
// A nil taken function behaves like New.
func NewUnique(taken func(string) bool) string {
	for {
		id := New()
		if taken == nil || !taken(id) {
			return id
		}
	}
}
