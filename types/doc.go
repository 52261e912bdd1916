// Package types contains the wire types exchanged with the Gemini API:
// conversation contents and parts, generation configuration, structured-output
// schemas, tool declarations, safety settings, and the response and error
// envelopes. Field names and omission semantics follow the documented API
// contract exactly: an unset optional field is omitted from the encoded
// request, never sent as null or a zero placeholder.
package types
