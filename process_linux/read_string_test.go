//go:build linux

package process_linux

import (
	"errors"
	"runtime"
	"testing"

	"d4log/process"
)

func rangeOver(buf []byte) process.AddressRange {
	start := addrOf(buf)
	return process.AddressRange{Start: start, End: start + process.ProcessMemoryAddress(len(buf))}
}

func TestReadStringTerminated(t *testing.T) {
	m := openSelf(t)

	buf := []byte("AB\x00XYZ garbage after the terminator")
	s, err := m.ReadString(rangeOver(buf))
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if s != "AB" {
		t.Fatalf("ReadString = %q, want %q", s, "AB")
	}
	runtime.KeepAlive(buf)
}

func TestReadStringEmpty(t *testing.T) {
	m := openSelf(t)

	buf := []byte{0x00, 'A', 'B'}
	s, err := m.ReadString(rangeOver(buf))
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if s != "" {
		t.Fatalf("ReadString = %q, want empty", s)
	}
	runtime.KeepAlive(buf)
}

func TestReadStringUnterminated(t *testing.T) {
	m := openSelf(t)

	buf := make([]byte, 100)
	for i := range buf {
		buf[i] = 'a' + byte(i%26)
	}

	_, err := m.ReadString(rangeOver(buf))
	var partial *process.ReadPartialError
	if !errors.As(err, &partial) {
		t.Fatalf("expected ReadPartialError, got %v", err)
	}
	if string(partial.Data) != string(buf) {
		t.Fatalf("partial payload %q does not match region", partial.Data)
	}
	if partial.Addr != addrOf(buf) {
		t.Fatalf("partial error carries %s, want range start", partial.Addr)
	}
	runtime.KeepAlive(buf)
}

func TestReadStringSpansChunks(t *testing.T) {
	m := openSelf(t)

	// String longer than one chunk, terminator in the second chunk
	buf := make([]byte, 600)
	for i := 0; i < 400; i++ {
		buf[i] = 'x'
	}
	buf[400] = 0

	s, err := m.ReadString(rangeOver(buf))
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if len(s) != 400 {
		t.Fatalf("ReadString returned %d bytes, want 400", len(s))
	}
	runtime.KeepAlive(buf)
}

func TestReadStringTerminatorAtChunkBoundary(t *testing.T) {
	m := openSelf(t)

	for _, pos := range []int{stringChunkSize - 1, stringChunkSize, stringChunkSize + 1} {
		buf := make([]byte, 2*stringChunkSize)
		for i := range buf {
			buf[i] = 'y'
		}
		buf[pos] = 0

		s, err := m.ReadString(rangeOver(buf))
		if err != nil {
			t.Fatalf("terminator at %d: %v", pos, err)
		}
		if len(s) != pos {
			t.Fatalf("terminator at %d: got %d bytes", pos, len(s))
		}
		runtime.KeepAlive(buf)
	}
}

func TestReadStringInvalidUTF8(t *testing.T) {
	m := openSelf(t)

	buf := []byte{0xff, 0xfe, 0xfd, 0x00}
	_, err := m.ReadString(rangeOver(buf))
	var failed *process.ReadFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected ReadFailedError for invalid UTF-8, got %v", err)
	}
	if failed.Addr != addrOf(buf) {
		t.Fatalf("error carries %s, want range start", failed.Addr)
	}
	runtime.KeepAlive(buf)
}

func TestReadStringEmptyRange(t *testing.T) {
	m := openSelf(t)

	buf := []byte{'A'}
	start := addrOf(buf)
	_, err := m.ReadString(process.AddressRange{Start: start, End: start})
	var partial *process.ReadPartialError
	if !errors.As(err, &partial) {
		t.Fatalf("expected ReadPartialError for empty range, got %v", err)
	}
	if partial.Transferred() != 0 {
		t.Fatalf("empty range transferred %d bytes", partial.Transferred())
	}
	runtime.KeepAlive(buf)
}

func TestReadStringInvalidRange(t *testing.T) {
	m := openSelf(t)

	if _, err := m.ReadString(process.AddressRange{Start: 0x2000, End: 0x1000}); err == nil {
		t.Fatal("ReadString accepted an inverted range")
	}
}
