package process

import (
	"fmt"
)

// ProcessNotFoundError is returned when no entry of the process enumeration
// matches the requested name.
type ProcessNotFoundError struct {
	Name string
}

func (e *ProcessNotFoundError) Error() string {
	return fmt.Sprintf("process '%s' not found", e.Name)
}

// ReadFailedError is returned when a cross-process read fails at the syscall
// level: no such process, permission denied, or an address outside any live
// mapping. For string reads it also covers accumulated bytes that do not
// decode as UTF-8.
type ReadFailedError struct {
	Addr ProcessMemoryAddress
}

func (e *ReadFailedError) Error() string {
	return fmt.Sprintf("failed to read memory at address %s", e.Addr)
}

// ReadPartialError is returned when the kernel transferred fewer bytes than
// requested. Data holds exactly what was transferred, so the caller decides
// whether the prefix is usable. A zero-byte transfer is still a partial
// result, not a failure.
type ReadPartialError struct {
	Addr ProcessMemoryAddress
	Data []byte
}

func (e *ReadPartialError) Error() string {
	return fmt.Sprintf("partial read at address %s: %d bytes", e.Addr, len(e.Data))
}

// Transferred returns the number of bytes actually read.
func (e *ReadPartialError) Transferred() int {
	return len(e.Data)
}

// WriteFailedError is returned when a cross-process write fails at the
// syscall level.
type WriteFailedError struct {
	Addr ProcessMemoryAddress
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("failed to write memory at address %s", e.Addr)
}

// WritePartialError is returned when the kernel accepted fewer bytes than
// were supplied. Written carries the exact transfer count.
type WritePartialError struct {
	Addr    ProcessMemoryAddress
	Written int
}

func (e *WritePartialError) Error() string {
	return fmt.Sprintf("partial write at address %s: %d bytes", e.Addr, e.Written)
}
