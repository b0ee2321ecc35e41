package orders

import (
	"strings"

	"github.com/google/uuid"
)

// NewOrderID returns a short customer-facing order token: the first 8 hex
// characters of a v4 UUID, uppercased. Uniqueness is probabilistic; at this
// scale collisions are not worth a reservation scheme.
func NewOrderID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
