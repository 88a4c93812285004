//go:build linux

package process_linux

import (
	"unsafe"

	"d4log/process"

	"golang.org/x/sys/unix"
)

// processVMReadv performs one vectored read of len(buf) bytes at remoteAddr
// in pid's address space. Returns the transfer count reported by the kernel.
func processVMReadv(pid process.ProcessID, buf []byte, remoteAddr process.ProcessMemoryAddress) (int, unix.Errno) {
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
		unix.SYS_PROCESS_VM_READV,
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

// ReadBytes reads exactly size bytes starting at addr with a single
// process_vm_readv call. A syscall error maps to ReadFailedError; a
// transfer of fewer than size bytes maps to ReadPartialError carrying
// exactly what the kernel moved, zero bytes included. Nothing is retried
// here; the caller owns retry policy.
func (m *Memory) ReadBytes(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	n, errno := processVMReadv(m.pid, buf, addr)
	if errno != 0 {
		return nil, &process.ReadFailedError{Addr: addr}
	}

	if n != int(size) {
		return nil, &process.ReadPartialError{Addr: addr, Data: buf[:n]}
	}

	return buf, nil
}
