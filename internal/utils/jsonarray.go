package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// SyntaxError reports malformed stream syntax or a stream that ended
// mid-element, as opposed to a failure reading from the underlying reader.
type SyntaxError struct {
	msg string
}

func (syntaxError *SyntaxError) Error() string {
	return syntaxError.msg
}

// readChunkSize is the size of each read from the underlying stream.
const readChunkSize = 4 * 1024

// compactThreshold is how many consumed bytes may accumulate at the front of
// the buffer before it is compacted.
const compactThreshold = 2048

// ArrayScanner incrementally extracts complete top-level elements from a
// JSON array delivered over a reader in arbitrary chunks. Network reads need
// not align with element or even token boundaries: partial bytes are buffered
// until the element they belong to is structurally complete, and each element
// is returned as soon as its closing byte arrives, without waiting for the
// outer array to close.
//
// The scan is quote- and escape-aware, so a ']' or ',' inside a string
// literal is never mistaken for an element boundary.
//
// A scanner is single-pass: after Next reports io.EOF or an error it stays in
// that state. The outer array's closing bracket or a clean end of the
// underlying reader both signal end-of-stream; an end mid-element is an
// error.
type ArrayScanner struct {
	reader   io.Reader
	buffer   []byte
	pos      int
	started  bool // consumed the opening '['
	finished bool // consumed the closing ']'
	readBuf  []byte
	err      error // terminal error, sticky
}

// NewArrayScanner creates an ArrayScanner reading from the given reader.
func NewArrayScanner(reader io.Reader) *ArrayScanner {
	return &ArrayScanner{
		reader:  reader,
		readBuf: make([]byte, readChunkSize),
	}
}

// Next returns the raw bytes of the next complete array element. It returns
// io.EOF once the array closes or the stream ends cleanly, and a non-nil
// error for malformed syntax or a stream that ends mid-element. Any error is
// terminal for the whole scanner; no element is ever returned in a partial
// state.
func (scanner *ArrayScanner) Next() (json.RawMessage, error) {
	if scanner.err != nil {
		return nil, scanner.err
	}
	if scanner.finished {
		return nil, io.EOF
	}

	for {
		element, complete, err := scanner.scan()
		if err != nil {
			scanner.err = err
			return nil, err
		}
		if complete {
			if element == nil {
				// Outer array closed.
				scanner.finished = true
				return nil, io.EOF
			}
			// Copy out: the backing buffer is reused across reads.
			out := make(json.RawMessage, len(element))
			copy(out, element)
			return out, nil
		}

		if fillErr := scanner.fill(); fillErr != nil {
			if fillErr == io.EOF {
				if scanner.hasPendingData() {
					scanner.err = &SyntaxError{msg: fmt.Sprintf("stream ended with unparsed data: %s",
						TruncateString(string(scanner.buffer[scanner.pos:]), 200))}
					return nil, scanner.err
				}
				scanner.finished = true
				return nil, io.EOF
			}
			scanner.err = fmt.Errorf("error reading stream: %w", fillErr)
			return nil, scanner.err
		}
	}
}

// scan attempts to extract the next element from the buffered bytes. It
// returns (nil, true, nil) when the outer array closed, (element, true, nil)
// when a complete element was consumed, and (nil, false, nil) when more bytes
// are needed. The returned slice aliases the internal buffer.
func (scanner *ArrayScanner) scan() ([]byte, bool, error) {
	if scanner.pos > compactThreshold {
		scanner.buffer = append([]byte(nil), scanner.buffer[scanner.pos:]...)
		scanner.pos = 0
	}

	for {
		scanner.skipWhitespace()
		if scanner.pos >= len(scanner.buffer) {
			return nil, false, nil
		}

		if !scanner.started {
			if scanner.buffer[scanner.pos] != '[' {
				return nil, false, &SyntaxError{msg: fmt.Sprintf("expected '[' at start of stream, got %q", scanner.buffer[scanner.pos])}
			}
			scanner.started = true
			scanner.pos++
			continue
		}

		switch scanner.buffer[scanner.pos] {
		case ',':
			// Bridge between elements.
			scanner.pos++
			continue
		case ']':
			scanner.pos++
			return nil, true, nil
		}

		end, complete := scanValue(scanner.buffer, scanner.pos)
		if !complete {
			return nil, false, nil
		}
		element := scanner.buffer[scanner.pos:end]
		scanner.pos = end
		return element, true, nil
	}
}

// scanValue walks one JSON value starting at start, tracking nesting depth
// and string state so structural bytes inside string literals are ignored.
// It returns the index one past the value's end, or complete=false when the
// buffer ends before the value does.
func scanValue(buffer []byte, start int) (end int, complete bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(buffer); i++ {
		c := buffer[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
				if depth == 0 {
					return i + 1, true
				}
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			if depth == 0 {
				// Bare scalar terminated by the array's closing bracket.
				return i, true
			}
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case ',':
			if depth == 0 {
				// Bare scalar terminated by the next element.
				return i, true
			}
		}
	}

	return len(buffer), false
}

func (scanner *ArrayScanner) skipWhitespace() {
	for scanner.pos < len(scanner.buffer) {
		switch scanner.buffer[scanner.pos] {
		case ' ', '\t', '\n', '\r':
			scanner.pos++
		default:
			return
		}
	}
}

// hasPendingData reports whether unconsumed non-whitespace bytes remain.
func (scanner *ArrayScanner) hasPendingData() bool {
	for i := scanner.pos; i < len(scanner.buffer); i++ {
		switch scanner.buffer[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return true
		}
	}
	return false
}

// fill reads the next chunk from the underlying reader into the buffer.
func (scanner *ArrayScanner) fill() error {
	n, err := scanner.reader.Read(scanner.readBuf)
	if n > 0 {
		scanner.buffer = append(scanner.buffer, scanner.readBuf[:n]...)
		return nil
	}
	if err != nil {
		return err
	}
	return nil
}
