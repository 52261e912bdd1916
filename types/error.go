package types

import "fmt"

// Common status codes returned in APIError.Status.
const (
	StatusInvalidArgument    = "INVALID_ARGUMENT"
	StatusFailedPrecondition = "FAILED_PRECONDITION"
	StatusPermissionDenied   = "PERMISSION_DENIED"
	StatusNotFound           = "NOT_FOUND"
	StatusResourceExhausted  = "RESOURCE_EXHAUSTED"
	StatusInternal           = "INTERNAL"
	StatusUnavailable        = "UNAVAILABLE"
	StatusDeadlineExceeded   = "DEADLINE_EXCEEDED"
)

// APIError is a well-formed error response from the service, decoded from the
// {"error": {...}} envelope. It is distinct from transport errors so callers
// can branch on API semantics (rate limiting, invalid key) versus
// connectivity:
//
//	var apiErr *types.APIError
//	if errors.As(err, &apiErr) && apiErr.Status == types.StatusResourceExhausted { ... }
type APIError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail is one structured detail entry attached to an APIError.
type ErrorDetail struct {
	Type     string            `json:"@type"`
	Reason   string            `json:"reason,omitempty"`
	Domain   string            `json:"domain,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (apiError *APIError) Error() string {
	return fmt.Sprintf("gemini: %s (code %d, status %s)", apiError.Message, apiError.Code, apiError.Status)
}

// ErrorEnvelope is the wire wrapper the service uses for error bodies.
type ErrorEnvelope struct {
	Error *APIError `json:"error"`
}
