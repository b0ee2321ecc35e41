package checkout

// ValidationError is a client-input problem: missing fields, empty product
// list, too-large quantity. Maps to HTTP 400 with a message/details pair.
type ValidationError struct {
	Message string
	Details string
}

func (e *ValidationError) Error() string { return e.Message + ": " + e.Details }

// NotFoundError is a referential problem: the request names a product or
// variant that does not exist. Maps to HTTP 404 and aborts the whole request.
type NotFoundError struct {
	Message string
	Details string
}

func (e *NotFoundError) Error() string { return e.Message + ": " + e.Details }
