// m68k_cpu.go - aggregate M68K CPU

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░░ ░░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
m68k_cpu.go - M68KCPU

Thin owner tying the bus manager, instruction unit and address space
together behind a single Cycle() the system driver calls once per
clock. Mirrors the original engine's own CPU wrapper: the interesting
work lives in the bus manager and instruction unit, this just sequences
them and exposes the interrupt/reset surface system.go needs.
*/

package main

type M68KCPU struct {
	Bus   *BusManager
	Unit  *InstructionUnit
	space *AddressSpace
}

func NewM68KCPU(space *AddressSpace) *M68KCPU {
	bus := NewBusManager(space)
	unit := NewInstructionUnit(bus, space)
	return &M68KCPU{Bus: bus, Unit: unit, space: space}
}

// Reset runs the power-on/reset-instruction sequence: any ops still
// queued on the scheduler are discarded, then the standard SSP/PC vector
// fetch sequence starts.
func (cpu *M68KCPU) Reset() {
	cpu.Unit.Scheduler.Reset()
	cpu.Unit.Reset()
}

// Cycle advances the CPU by one clock: pending bus activity (prefetch,
// operand reads/writes scheduled by the previous instruction) drains
// first, and only once the scheduler empties does the instruction unit
// commit/decode/dispatch the next opcode.
func (cpu *M68KCPU) Cycle() {
	cpu.Unit.Scheduler.Cycle()
	if cpu.Unit.Scheduler.IsEmpty() {
		cpu.Unit.Step()
	}
}

// RaiseInterrupt sets the external IPL lines; the exception unit
// observes IPL versus the current SR mask when Step() next runs.
func (cpu *M68KCPU) RaiseInterrupt(level uint8) {
	if level == 0 {
		return
	}
	if level > uint8(cpu.Unit.Regs.IPL()) || level == 7 {
		cpu.Unit.Exceptions.Raise(pendingException{kind: excInterrupt, vector: vecAutovectorBase + level, interruptLevel: level})
	}
}

// OnInterruptAccepted registers a callback invoked once an external
// interrupt has been accepted and its prologue scheduled, carrying the
// serviced level. system.go wires this to the VDP so VINT/HINT/EXTINT
// pending flags clear the way real interrupt-acknowledge would.
func (cpu *M68KCPU) OnInterruptAccepted(fn func(level uint8)) {
	cpu.Unit.excUnit.OnInterrupt = fn
}
