//go:build linux

package process_linux

import (
	"encoding/binary"
	"math"

	"d4log/process"
)

// Typed helpers over ReadBytes for the field widths the combat-log decoder
// pulls out of game structures. The game client is x86-64, so everything is
// little-endian and pointers are 8 bytes.

// ReadUint32 reads an unsigned 32-bit integer from the specified address
func (m *Memory) ReadUint32(addr process.ProcessMemoryAddress) (uint32, error) {
	data, err := m.ReadBytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// ReadUint64 reads an unsigned 64-bit integer from the specified address
func (m *Memory) ReadUint64(addr process.ProcessMemoryAddress) (uint64, error) {
	data, err := m.ReadBytes(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// ReadFloat32 reads a 32-bit floating point number from the specified address
func (m *Memory) ReadFloat32(addr process.ProcessMemoryAddress) (float32, error) {
	bits, err := m.ReadUint32(addr)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadPointer reads a pointer value from the specified address
func (m *Memory) ReadPointer(addr process.ProcessMemoryAddress) (process.ProcessMemoryAddress, error) {
	value, err := m.ReadUint64(addr)
	if err != nil {
		return 0, err
	}
	return process.ProcessMemoryAddress(value), nil
}
