package process

import (
	"fmt"
)

// ProcessID represents a unique identifier for a process
type ProcessID int

// ProcessMemoryAddress represents a memory address within a process
type ProcessMemoryAddress uint64

func (pma ProcessMemoryAddress) String() string {
	return fmt.Sprintf("0x%X", uint64(pma))
}

// ProcessMemorySize represents a size of a memory region
type ProcessMemorySize uint

// AddressRange is a half-open interval [Start, End) of addresses inside a
// target process. Interpretation of the addresses is entirely the caller's
// responsibility; nothing is validated beyond what the syscall enforces.
type AddressRange struct {
	Start ProcessMemoryAddress
	End   ProcessMemoryAddress
}

// Valid reports whether Start <= End.
func (r AddressRange) Valid() bool {
	return r.Start <= r.End
}

// Len returns the number of bytes covered by the range.
func (r AddressRange) Len() ProcessMemorySize {
	return ProcessMemorySize(r.End - r.Start)
}

func (r AddressRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
