package orders

// Status is the final outcome of a checkout submission. Orders are written
// with their terminal status; there are no transitions.
type Status string

const (
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
	StatusError    Status = "error"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApproved, StatusDeclined, StatusError:
		return true
	}
	return false
}
