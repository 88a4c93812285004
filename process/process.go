// Package process provides the shared types and interfaces for locating a
// running game client and accessing its memory.
package process

import (
	"io"
)

// Memory is the read/write surface over one target process's address space.
// Implementations hold only the process identifier and keep no descriptor
// open; every operation is a self-contained syscall, so a single value is
// safe to share across goroutines. Once the target exits, all operations
// fail at the syscall rather than silently no-op.
type Memory interface {
	// PID returns the process ID of the target
	PID() ProcessID

	// ReadBytes reads exactly size bytes starting at addr
	ReadBytes(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)

	// WriteBytes writes data starting at addr
	WriteBytes(addr ProcessMemoryAddress, data []byte) error

	// ReadString reconstructs a null-terminated UTF-8 string inside rng
	ReadString(rng AddressRange) (string, error)

	// Typed reads used by the combat-log decoder
	ReadUint32(addr ProcessMemoryAddress) (uint32, error)
	ReadUint64(addr ProcessMemoryAddress) (uint64, error)
	ReadFloat32(addr ProcessMemoryAddress) (float32, error)
	ReadPointer(addr ProcessMemoryAddress) (ProcessMemoryAddress, error)
}

// Lister enumerates live processes, one line per process with the process ID
// as the first whitespace-delimited token. The production implementation
// spawns an elevated ps; tests substitute a fixed table so no subprocess is
// required.
type Lister interface {
	List() (io.ReadCloser, error)
}
