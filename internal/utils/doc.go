// Package utils provides shared low-level helpers used throughout the
// library internals. It covers HTTP request helpers for both synchronous and
// streaming communication with the API, incremental decoding of streamed
// JSON arrays, and string/parse utilities.
//
// Key entry points: [DoPost] and [DoGet] for synchronous JSON round-trips,
// [DoPostStream] together with [ArrayScanner] for incremental streaming, and
// [ParseStringAs] for converting model output into Go values.
package utils
