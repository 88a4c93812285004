//go:build linux

package process_linux

import (
	"fmt"
	"os"

	"d4log/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// Memory accesses one target process's address space. It stores only the
// PID; each read and write is a self-contained syscall, so there is nothing
// to close and a single value can be shared across goroutines. The kernel
// serializes concurrent access to the target's memory.
type Memory struct {
	pid process.ProcessID
	log *logger.Logger
}

var _ process.Memory = (*Memory)(nil)

// Open wraps pid for memory access. The PID must name a live process at
// construction time and is not revalidated afterwards; once the target
// exits, reads and writes fail at the syscall with ESRCH.
func Open(pid process.ProcessID) (*Memory, error) {
	procPath := fmt.Sprintf("/proc/%d", pid)
	if _, err := os.Stat(procPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("process with PID %d does not exist", pid)
	}

	m := &Memory{
		pid: pid,
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("memory-%d", pid))),
	}

	m.log.Infoln("Process opened")

	return m, nil
}

// OpenByName locates name with the elevated ps lister and opens the first
// match.
func OpenByName(name string) (*Memory, error) {
	pid, err := FindProcess(name)
	if err != nil {
		return nil, err
	}
	return Open(pid)
}

// PID returns the process ID of the target
func (m *Memory) PID() process.ProcessID {
	return m.pid
}
