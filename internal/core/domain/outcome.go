package domain

// Category labels a failure for programmatic handling, independent of its
// human-readable message.
type Category string

// Credential reset categories.
const (
	CategoryInvalidCode    Category = "invalid_code"
	CategoryWeakCredential Category = "weak_credential"
)

// Retrieval categories.
const (
	CategoryNotFound            Category = "not_found"
	CategoryForbidden           Category = "forbidden"
	CategoryServerError         Category = "server_error"
	CategoryHTTPError           Category = "http_error"
	CategoryTimeout             Category = "timeout"
	CategoryDNSError            Category = "dns_error"
	CategoryConnectionError     Category = "connection_error"
	CategoryUnknownNetworkError Category = "unknown_network_error"
)

// Orchestration categories.
const (
	// CategoryUnexpected covers anything that escaped classification,
	// such as a document that could not be parsed.
	CategoryUnexpected Category = "unexpected_error"

	// CategoryInvalidTarget is reported when no URL or identifier was given.
	CategoryInvalidTarget Category = "invalid_target"
)

// IsNetwork returns true for categories produced by the retrieval step.
func (c Category) IsNetwork() bool {
	switch c {
	case CategoryNotFound, CategoryForbidden, CategoryServerError, CategoryHTTPError,
		CategoryTimeout, CategoryDNSError, CategoryConnectionError, CategoryUnknownNetworkError:
		return true
	default:
		return false
	}
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}

// Outcome is the result of a core operation: either a success carrying a
// message, or a failure carrying a category and a message.
type Outcome struct {
	OK       bool     `json:"ok"`
	Category Category `json:"category,omitempty"`
	Message  string   `json:"message"`
}

// Success builds a successful outcome.
func Success(message string) Outcome {
	return Outcome{OK: true, Message: message}
}

// Failure builds a failed outcome.
func Failure(category Category, message string) Outcome {
	return Outcome{OK: false, Category: category, Message: message}
}

// Label returns the short status tag used by text front ends.
func (o Outcome) Label() string {
	if o.OK {
		return "SUCCESS"
	}
	return "FAILURE"
}
