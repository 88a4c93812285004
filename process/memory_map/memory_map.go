package memory_map

import (
	"fmt"
	"sort"
)

// Region represents one mapped region in a process's address space
type Region struct {
	Start uint64 // The starting address of the region
	Size  uint   // The size of the region in bytes
	Perms string // Permissions (e.g., "rw-p")
	Path  string // Backing path, "[heap]", "[stack]" or empty for anonymous
}

// End returns the first address past the region.
func (r Region) End() uint64 {
	return r.Start + uint64(r.Size)
}

func (r Region) String() string {
	return fmt.Sprintf("%x-%x %s %s", r.Start, r.End(), r.Perms, r.Path)
}

func (r Region) IsReadable() bool {
	return len(r.Perms) > 0 && r.Perms[0] == 'r'
}

func (r Region) IsWritable() bool {
	return len(r.Perms) > 1 && r.Perms[1] == 'w'
}

func (r Region) IsExecutable() bool {
	return len(r.Perms) > 2 && r.Perms[2] == 'x'
}

// Contains reports whether addr falls inside the region.
func (r Region) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End()
}

// Find returns the region containing addr, or nil. regions must be sorted
// by Start, which Read guarantees.
func Find(regions []Region, addr uint64) *Region {
	i := sort.Search(len(regions), func(i int) bool {
		return regions[i].End() > addr
	})
	if i < len(regions) && regions[i].Start <= addr {
		return &regions[i]
	}
	return nil
}
