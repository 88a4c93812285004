//go:build linux

package process_linux

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"d4log/process"
)

// PSLister enumerates processes by spawning `sudo ps -e`. The game client
// usually runs in a different session than the logger, so the listing has
// to be elevated to see it. One spawn per call, nothing held open.
type PSLister struct{}

var _ process.Lister = PSLister{}

func (PSLister) List() (io.ReadCloser, error) {
	cmd := exec.Command("sudo", "ps", "-e")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open ps stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to spawn ps: %w", err)
	}
	return &psOutput{ReadCloser: stdout, cmd: cmd}, nil
}

// psOutput reaps the ps process when the caller is done with its output.
type psOutput struct {
	io.ReadCloser
	cmd *exec.Cmd
}

func (o *psOutput) Close() error {
	o.ReadCloser.Close()
	return o.cmd.Wait()
}

// Locate resolves a process name to its process ID using the supplied
// lister. The name is matched as a single whitespace-bounded token, so a
// name with embedded spaces ("Diablo IV.exe") stays one token instead of
// splitting into several filter words. The first matching line wins, in
// enumeration order.
func Locate(lister process.Lister, name string) (process.ProcessID, error) {
	out, err := lister.List()
	if err != nil {
		return 0, err
	}
	defer out.Close()

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		line := scanner.Text()
		if !containsToken(line, name) {
			continue
		}

		// The first whitespace-separated field of a matching line is the PID
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("failed to parse pid from %q: %w", fields[0], err)
		}
		return process.ProcessID(pid), nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read process list: %w", err)
	}

	return 0, &process.ProcessNotFoundError{Name: name}
}

// FindProcess resolves name with the default elevated ps lister.
func FindProcess(name string) (process.ProcessID, error) {
	return Locate(PSLister{}, name)
}

// containsToken reports whether line contains name bounded by whitespace or
// the line edges on both sides. "notepad" does not match "notepad2".
func containsToken(line, name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i+len(name) <= len(line); i++ {
		if line[i:i+len(name)] != name {
			continue
		}
		if i > 0 && !isSpace(line[i-1]) {
			continue
		}
		if end := i + len(name); end < len(line) && !isSpace(line[end]) {
			continue
		}
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
