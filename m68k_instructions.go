// m68k_instructions.go - Fetch/decode/execute pipeline

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
m68k_instructions.go - InstructionUnit

Owns the register file and the three machines that feed it: the
prefetch queue (m68k_prefetch.go), the bus scheduler (m68k_busscheduler.go)
and the EA decoder (m68k_eadecoder.go). Step() runs one iteration of the
classic fetch-decode-execute loop: if an exception is pending, service
it instead of fetching; otherwise commit the prefetched opcode, look it
up in the opcode table, and dispatch to the matching operation in
m68k_ops_*.go, which schedules whatever EA resolution and bus activity
it needs and returns once that's queued (the scheduler drains the
actual bus cycles over subsequent clocks).
*/

package main

// InstructionUnit is the M68K's execute stage.
type InstructionUnit struct {
	Regs      *M68KRegisters
	Prefetch  *PrefetchQueue
	Scheduler *BusScheduler
	EA        *EADecoder
	Exceptions *ExceptionManager
	excUnit   *ExceptionUnit

	ops map[instType]func(word uint16)

	stopped     bool // set by STOP until the next interrupt wakes it
	OnResetLine func() // hook for RESET instruction; nil unless a caller sets it (system.go does not)
}

func NewInstructionUnit(bus *BusManager, space *AddressSpace) *InstructionUnit {
	regs := NewM68KRegisters()
	prefetch := NewPrefetchQueue()
	sched := NewBusScheduler(bus, prefetch)
	ea := NewEADecoder(regs, sched)
	exc := NewExceptionManager()

	u := &InstructionUnit{
		Regs:       regs,
		Prefetch:   prefetch,
		Scheduler:  sched,
		EA:         ea,
		Exceptions: exc,
	}
	u.excUnit = NewExceptionUnit(exc, regs, sched)
	u.ops = u.buildOpTable()
	return u
}

// Reset performs the M68K reset sequence: fetch the initial SSP from
// vector 0 and the initial PC from vector 1, both from supervisor space,
// clear the trace bit and set the interrupt mask to 7.
func (u *InstructionUnit) Reset() {
	u.Regs.SR = srSupervisor | srIPLMask
	u.Scheduler.ScheduleRead(0, true, fcSuperData, func(hi uint16) {
		u.Scheduler.ScheduleRead(2, true, fcSuperData, func(lo uint16) {
			u.Regs.A[7] = uint32(hi)<<16 | uint32(lo)
			u.Scheduler.ScheduleRead(4, true, fcSuperData, func(hi2 uint16) {
				u.Scheduler.ScheduleRead(6, true, fcSuperData, func(lo2 uint16) {
					u.Regs.PC = uint32(hi2)<<16 | uint32(lo2)
					u.Prefetch.Flush(u.Regs.PC)
					u.Scheduler.SchedulePrefetchIRC(u.Regs.PC, fcSuperData)
				})
			})
		})
	})
}

// Step advances the instruction unit. It should be called once the bus
// scheduler has drained (IsEmpty()); it either services a pending
// exception or commits and executes the next prefetched opcode.
func (u *InstructionUnit) Step() {
	if !u.Scheduler.IsEmpty() {
		return
	}
	if u.Exceptions.HasPending() {
		u.stopped = false
		u.excUnit.Service(u.Prefetch)
		return
	}
	if u.stopped {
		return
	}

	// Trace riser: evaluated exactly once per completed instruction,
	// right at the boundary before the next opcode is fetched. Service()
	// clears SR.T on entry to the prologue, so this fires again only if
	// the traced code (or its handler's RTE) leaves T set.
	if u.Regs.SR&srTrace != 0 {
		u.Exceptions.Raise(pendingException{kind: excTrace, vector: vecTrace})
		return
	}

	u.Prefetch.Advance()
	word := u.Prefetch.IR()
	pcForNext := u.Prefetch.PC()
	u.Regs.PC = pcForNext
	u.Scheduler.SchedulePrefetchIRC(pcForNext, fcSuperData)

	typ, ok := Decode(word)
	if !ok {
		u.Exceptions.Raise(pendingException{kind: excIllegal, vector: vecIllegal})
		return
	}
	fn, ok := u.ops[typ]
	if !ok {
		u.Exceptions.Raise(pendingException{kind: excIllegal, vector: vecIllegal})
		return
	}
	fn(word)
}

// condTrue evaluates one of the 16 68000 branch conditions against the
// current CCR, shared by Bcc/DBcc/Scc.
func condTrue(cond uint16, sr uint16) bool {
	c := sr&srCarry != 0
	v := sr&srOverflow != 0
	z := sr&srZero != 0
	n := sr&srNegative != 0
	switch cond {
	case 0x0: // T
		return true
	case 0x1: // F
		return false
	case 0x2: // HI
		return !c && !z
	case 0x3: // LS
		return c || z
	case 0x4: // CC
		return !c
	case 0x5: // CS
		return c
	case 0x6: // NE
		return !z
	case 0x7: // EQ
		return z
	case 0x8: // VC
		return !v
	case 0x9: // VS
		return v
	case 0xA: // PL
		return !n
	case 0xB: // MI
		return n
	case 0xC: // GE
		return n == v
	case 0xD: // LT
		return n != v
	case 0xE: // GT
		return n == v && !z
	case 0xF: // LE
		return z || n != v
	}
	return false
}
