// Package lc2k simulates an LC2K processor whose instruction fetches and
// data accesses all go through a cache.
package lc2k

import (
	"errors"
	"fmt"
	"io"
)

// Machine limits.
const (
	MemorySize = 65536
	NumRegs    = 8
)

var (
	// ErrAddressOutOfRange is returned when an instruction fetch or a data
	// access falls outside of the memory.
	ErrAddressOutOfRange = errors.New("address out of range")

	// ErrStepLimit is returned when a run does not halt within the allowed
	// number of instructions.
	ErrStepLimit = errors.New("step limit reached")

	// ErrProgramTooLarge is returned when a program does not fit in memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// An Accessor serves the memory accesses of the processor, usually a cache.
type Accessor interface {
	Access(addr uint64, isWrite bool, data int32) int32
}

// A Memory exposes the backing memory for printing the machine state.
type Memory interface {
	Extent() uint64
	Peek(addr uint64) (int32, error)
}

// A Machine is an LC2K processor.
type Machine struct {
	PC  int32
	Reg [NumRegs]int32

	accessor Accessor
	memory   Memory
	out      io.Writer

	numInstructions int
	halted          bool
}

// NewMachine creates a machine that accesses memory through accessor and
// writes its reports to out.
func NewMachine(accessor Accessor, memory Memory, out io.Writer) *Machine {
	return &Machine{
		accessor: accessor,
		memory:   memory,
		out:      out,
	}
}

// NumInstructions returns the number of instructions executed so far,
// including the halt.
func (m *Machine) NumInstructions() int {
	return m.numInstructions
}

// Halted returns true once a halt instruction has been executed.
func (m *Machine) Halted() bool {
	return m.halted
}

// Step executes one instruction. It returns true if the instruction was a
// halt.
func (m *Machine) Step() (bool, error) {
	if m.halted {
		return true, nil
	}

	pc, err := checkAddress(m.PC)
	if err != nil {
		return false, fmt.Errorf("fetch at pc %d: %w", m.PC, err)
	}

	m.numInstructions++
	inst := Decode(m.accessor.Access(pc, false, 0))

	switch inst.Opcode {
	case OpAdd:
		m.Reg[inst.Dest] = m.Reg[inst.RegA] + m.Reg[inst.RegB]
	case OpNor:
		m.Reg[inst.Dest] = ^(m.Reg[inst.RegA] | m.Reg[inst.RegB])
	case OpLw:
		addr, err := m.dataAddress(inst)
		if err != nil {
			return false, err
		}

		m.Reg[inst.RegB] = m.accessor.Access(addr, false, m.Reg[inst.RegB])
	case OpSw:
		addr, err := m.dataAddress(inst)
		if err != nil {
			return false, err
		}

		m.accessor.Access(addr, true, m.Reg[inst.RegB])
	case OpBeq:
		if m.Reg[inst.RegA] == m.Reg[inst.RegB] {
			m.PC += 1 + inst.Offset
			return false, nil
		}
	case OpJalr:
		m.Reg[inst.RegB] = m.PC + 1
		m.PC = m.Reg[inst.RegA]

		return false, nil
	case OpHalt:
		m.halted = true
	case OpNoop:
	}

	m.PC++

	return m.halted, nil
}

func (m *Machine) dataAddress(inst Instruction) (uint64, error) {
	addr, err := checkAddress(m.Reg[inst.RegA] + inst.Offset)
	if err != nil {
		return 0, fmt.Errorf("data access at pc %d: %w", m.PC, err)
	}

	return addr, nil
}

func checkAddress(addr int32) (uint64, error) {
	if addr < 0 || addr >= MemorySize {
		return 0, fmt.Errorf("%w: %d", ErrAddressOutOfRange, addr)
	}

	return uint64(addr), nil
}

// Run executes instructions until the machine halts, then reports the final
// state. A positive maxSteps bounds the number of instructions executed.
func (m *Machine) Run(maxSteps int) error {
	for !m.halted {
		if maxSteps > 0 && m.numInstructions >= maxSteps {
			return fmt.Errorf("%w: %d instructions", ErrStepLimit, maxSteps)
		}

		if _, err := m.Step(); err != nil {
			return err
		}
	}

	fmt.Fprintf(m.out, "machine halted\n")
	fmt.Fprintf(m.out, "total of %d instructions executed\n", m.numInstructions)
	fmt.Fprintf(m.out, "final state of machine:\n")

	return m.PrintState()
}

// PrintState writes the program counter, the backing memory, and the
// registers.
func (m *Machine) PrintState() error {
	fmt.Fprintf(m.out, "\n@@@\nstate:\n")
	fmt.Fprintf(m.out, "\tpc %d\n", m.PC)
	fmt.Fprintf(m.out, "\tmemory:\n")

	for addr := uint64(0); addr < m.memory.Extent(); addr++ {
		word, err := m.memory.Peek(addr)
		if err != nil {
			return err
		}

		fmt.Fprintf(m.out, "\t\tmem[ %d ] %d\n", addr, word)
	}

	fmt.Fprintf(m.out, "\tregisters:\n")

	for i, r := range m.Reg {
		fmt.Fprintf(m.out, "\t\treg[ %d ] %d\n", i, r)
	}

	fmt.Fprintf(m.out, "end state\n")

	return nil
}
