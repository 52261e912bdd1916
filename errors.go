package gemini

import "errors"

// ErrEmptyHistory is returned when a generation request is constructed with
// no content turns. It is the only request validation performed client-side;
// everything else is deferred to the service's own error response.
var ErrEmptyHistory = errors.New("gemini: request requires at least one content turn")

// DecodeError reports a response body or stream element that could not be
// decoded as the expected JSON shape. It is terminal for the call or stream
// that produced it, and distinct from transport failures and from service
// errors (*types.APIError).
type DecodeError struct {
	Err error
}

func (decodeError *DecodeError) Error() string {
	return "gemini: failed to decode response: " + decodeError.Err.Error()
}

func (decodeError *DecodeError) Unwrap() error {
	return decodeError.Err
}

// ProjectionError reports a response that was well-formed on the wire but did
// not match the output shape the caller requested, such as structured output
// whose text is not valid JSON for the target type.
type ProjectionError struct {
	Err error
}

func (projectionError *ProjectionError) Error() string {
	return "gemini: response does not match requested shape: " + projectionError.Err.Error()
}

func (projectionError *ProjectionError) Unwrap() error {
	return projectionError.Err
}
