//go:build linux

package memory_map

import (
	"os"
	"strings"
	"testing"
)

const sampleMaps = `7f5c60000000-7f5c60021000 rw-p 00000000 00:00 0
00400000-0040b000 r-xp 00000000 fd:01 1835043                            /usr/bin/cat
7ffd1a2e4000-7ffd1a305000 rw-p 00000000 00:00 0                          [stack]
0060a000-0060b000 r--p 0000a000 fd:01 1835043                            /usr/bin/cat
ffffffffff600000-ffffffffff601000 --xp 00000000 00:00 0                  [vsyscall]
`

func TestParseRegions(t *testing.T) {
	regions, err := parse(strings.NewReader(sampleMaps))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(regions) != 5 {
		t.Fatalf("parsed %d regions, want 5", len(regions))
	}

	// Sorted by start address
	for i := 1; i < len(regions); i++ {
		if regions[i-1].Start >= regions[i].Start {
			t.Fatalf("regions not sorted: %x before %x", regions[i-1].Start, regions[i].Start)
		}
	}

	first := regions[0]
	if first.Start != 0x400000 || first.Size != 0xb000 {
		t.Fatalf("first region %x size %x", first.Start, first.Size)
	}
	if !first.IsReadable() || first.IsWritable() || !first.IsExecutable() {
		t.Fatalf("first region perms parsed wrong: %s", first.Perms)
	}
	if first.Path != "/usr/bin/cat" {
		t.Fatalf("first region path %q", first.Path)
	}

	stack := regions[3]
	if stack.Path != "[stack]" || !stack.IsWritable() {
		t.Fatalf("stack region parsed wrong: %v", stack)
	}
}

func TestFind(t *testing.T) {
	regions, err := parse(strings.NewReader(sampleMaps))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if r := Find(regions, 0x400000); r == nil || r.Path != "/usr/bin/cat" {
		t.Fatalf("Find(start) = %v", r)
	}
	if r := Find(regions, 0x40afff); r == nil {
		t.Fatal("Find(last byte) missed the region")
	}
	if r := Find(regions, 0x40b000); r != nil {
		t.Fatalf("Find(end) should miss the half-open region, got %v", r)
	}
	if r := Find(regions, 0x123); r != nil {
		t.Fatalf("Find(unmapped) = %v", r)
	}
}

func TestReadSelf(t *testing.T) {
	regions, err := Read(os.Getpid())
	if err != nil {
		t.Fatalf("Read(self): %v", err)
	}
	if len(regions) == 0 {
		t.Fatal("no regions for our own process")
	}

	var writable bool
	for _, r := range regions {
		if r.IsWritable() {
			writable = true
			break
		}
	}
	if !writable {
		t.Fatal("no writable region found in our own maps")
	}
}
