//go:build linux

package process_linux

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"d4log/process"
)

// stringChunkSize bounds the worst-case overread past the terminator when
// scanning a string of unknown length. Probing in small steps also keeps a
// read from crossing into an unmapped page and failing the whole call.
const stringChunkSize = 256

// ReadString reconstructs a null-terminated UTF-8 string located somewhere
// inside rng, without knowing its length in advance. The range is scanned
// forward in stringChunkSize steps; the scan has three exits:
//
//   - a chunk contains a zero byte: the accumulated bytes before it are the
//     string, returned as a clean success
//   - a chunk comes back short, or the cursor reaches rng.End, with no
//     terminator seen: ReadPartialError carrying the decoded prefix
//   - the accumulated bytes do not decode as UTF-8: ReadFailedError at
//     rng.Start
func (m *Memory) ReadString(rng process.AddressRange) (string, error) {
	if !rng.Valid() {
		return "", fmt.Errorf("invalid address range %s", rng)
	}

	var acc []byte
	terminated := false

	for cursor := rng.Start; cursor < rng.End; {
		size := process.ProcessMemorySize(stringChunkSize)
		if remaining := process.ProcessMemorySize(rng.End - cursor); remaining < size {
			size = remaining
		}

		chunk, err := m.ReadBytes(cursor, size)
		if err != nil {
			var partial *process.ReadPartialError
			if !errors.As(err, &partial) {
				return "", err
			}
			// Short chunk. A terminator inside it still counts; otherwise
			// keep what arrived and stop as truncated.
			if i := bytes.IndexByte(partial.Data, 0); i >= 0 {
				acc = append(acc, partial.Data[:i]...)
				terminated = true
			} else {
				acc = append(acc, partial.Data...)
			}
			break
		}

		if i := bytes.IndexByte(chunk, 0); i >= 0 {
			acc = append(acc, chunk[:i]...)
			terminated = true
			break
		}

		acc = append(acc, chunk...)
		cursor += process.ProcessMemoryAddress(size)
	}

	if !utf8.Valid(acc) {
		return "", &process.ReadFailedError{Addr: rng.Start}
	}

	if !terminated {
		// Well-formed but no terminator before the range ran out; the
		// decoded prefix rides along in the error payload.
		return "", &process.ReadPartialError{Addr: rng.Start, Data: acc}
	}

	return string(acc), nil
}
