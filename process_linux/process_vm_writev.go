//go:build linux

package process_linux

import (
	"unsafe"

	"d4log/process"

	"golang.org/x/sys/unix"
)

// processVMWritev performs one vectored write of len(buf) bytes to
// remoteAddr in pid's address space. Returns the transfer count reported by
// the kernel.
func processVMWritev(pid process.ProcessID, buf []byte, remoteAddr process.ProcessMemoryAddress) (int, unix.Errno) {
	// Create iovec for the local buffer
	localIov := unix.Iovec{
		Base: &buf[0],
		Len:  uint64(len(buf)),
	}

	// Create iovec for the remote range
	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  len(buf),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_WRITEV,
		uintptr(pid),                        // Remote process PID
		uintptr(unsafe.Pointer(&localIov)),  // Local iovec
		uintptr(1),                          // Number of local iovecs
		uintptr(unsafe.Pointer(&remoteIov)), // Remote iovec
		uintptr(1),                          // Number of remote iovecs
		uintptr(0),                          // Flags (reserved for future use)
	)

	if errno != 0 {
		return 0, errno
	}

	return int(n), 0
}

// WriteBytes writes data starting at addr with a single process_vm_writev
// call. A syscall error maps to WriteFailedError; a transfer of fewer than
// len(data) bytes maps to WritePartialError carrying the exact count. The
// write is not synchronized with the target's own threads, so no atomicity
// is guaranteed across the range.
func (m *Memory) WriteBytes(addr process.ProcessMemoryAddress, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	// Copy so a concurrent mutation of the caller's slice cannot tear the
	// buffer mid-syscall.
	buf := make([]byte, len(data))
	copy(buf, data)

	n, errno := processVMWritev(m.pid, buf, addr)
	if errno != 0 {
		return &process.WriteFailedError{Addr: addr}
	}

	if n != len(data) {
		return &process.WritePartialError{Addr: addr, Written: n}
	}

	return nil
}
