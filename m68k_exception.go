// m68k_exception.go - Exception tracking and prologue scheduling

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
m68k_exception.go - ExceptionManager / ExceptionUnit

Exceptions are never Go errors: they are bus-level events the CPU must
service before its next instruction fetch, tracked here as a pending list so
several can be pending at once (e.g. a trace trap pending alongside an
external interrupt) and resolved in the M68K's documented priority
order. Three groups, highest priority first:

  group 0 - reset, address error, bus error
  group 2 - TRAP/TRAPV/CHK/divide-by-zero (instruction-synchronous traps)
  group 1 - trace, interrupt, illegal instruction, line-A/line-F, privilege

group0 is always serviced before group2, which is always serviced before
group1, regardless of set order - matching the documented instruction
interrupt model rather than a simple priority-number scheme.
*/

package main

type exceptionKind int

const (
	excReset exceptionKind = iota
	excAddressError
	excBusError

	excTrap // TRAP #n, vector carries n
	excTrapV
	excCHK
	excDivideByZero

	excTrace
	excInterrupt // external, level carried separately
	excIllegal
	excLineA
	excLineF
	excPrivilegeViolation
)

const (
	vecReset            = 0
	vecBusError         = 2
	vecAddressError     = 3
	vecIllegal          = 4
	vecDivideByZero     = 5
	vecCHK              = 6
	vecTrapV             = 7
	vecPrivilegeViolation = 8
	vecTrace            = 9
	vecLineA            = 10
	vecLineF            = 11
	vecSpuriousInterrupt = 24
	vecTrapBase         = 32 // TRAP #0..15 -> vectors 32..47
	vecAutovectorBase   = 24 // level 1..7 -> vectors 25..31
)

// pendingException records one queued exception and the data its
// prologue needs (fault address for address error, trap number, etc).
type pendingException struct {
	kind       exceptionKind
	vector     uint8
	faultAddr  uint32
	interruptLevel uint8
}

// ExceptionManager tracks which exceptions are currently pending and
// resolves the next one to service by group priority.
type ExceptionManager struct {
	pending []pendingException
}

func NewExceptionManager() *ExceptionManager {
	return &ExceptionManager{}
}

func (m *ExceptionManager) Raise(e pendingException) {
	m.pending = append(m.pending, e)
}

func (m *ExceptionManager) HasPending() bool {
	return len(m.pending) > 0
}

func (m *ExceptionManager) group(k exceptionKind) int {
	switch k {
	case excReset, excAddressError, excBusError:
		return 0
	case excTrap, excTrapV, excCHK, excDivideByZero:
		return 2
	default:
		return 1
	}
}

// Next pops the highest-priority pending exception (group 0 over group 2
// over group 1; FIFO within a group).
func (m *ExceptionManager) Next() (pendingException, bool) {
	if len(m.pending) == 0 {
		return pendingException{}, false
	}
	rank := func(k exceptionKind) int {
		switch m.group(k) {
		case 0:
			return 0
		case 2:
			return 1
		}
		return 2
	}
	bestIdx := 0
	bestRank := rank(m.pending[0].kind)
	for i := 1; i < len(m.pending); i++ {
		r := rank(m.pending[i].kind)
		if r < bestRank {
			bestRank = r
			bestIdx = i
		}
	}
	e := m.pending[bestIdx]
	m.pending = append(m.pending[:bestIdx], m.pending[bestIdx+1:]...)
	return e, true
}

// ExceptionUnit drives the stack-frame push + vector fetch sequence for
// whichever exception ExceptionManager hands it, via the bus scheduler.
type ExceptionUnit struct {
	mgr  *ExceptionManager
	regs *M68KRegisters
	sched *BusScheduler

	// OnInterrupt fires once an external interrupt is accepted (vector
	// chosen, prologue scheduled), carrying the serviced level so the
	// raising device (VDP HV unit) can clear its pending flag. Wired by
	// system.go; nil for address-error/trap/etc paths.
	OnInterrupt func(level uint8)
}

func NewExceptionUnit(mgr *ExceptionManager, regs *M68KRegisters, sched *BusScheduler) *ExceptionUnit {
	return &ExceptionUnit{mgr: mgr, regs: regs, sched: sched}
}

// Service schedules the prologue for the next pending exception: switch
// to supervisor mode, push PC (at SSP-4) and then SR (at SSP-6), then
// fetch the vector and refill the prefetch queue at the handler address.
// Every kind gets the same three-word frame; for an address error the
// fault address and instruction register are not pushed.
func (u *ExceptionUnit) Service(prefetch *PrefetchQueue) {
	e, ok := u.mgr.Next()
	if !ok {
		return
	}
	if e.kind == excInterrupt && u.OnInterrupt != nil {
		u.OnInterrupt(e.interruptLevel)
	}

	savedSR := u.regs.SR
	u.regs.SwitchToSupervisor()
	u.regs.SR &^= srTrace

	sp := u.regs.SSP()
	sp -= 4
	u.sched.SchedulePush(sp, uint16(u.regs.PC>>16), fcSuperData)
	u.sched.SchedulePush(sp+2, uint16(u.regs.PC), fcSuperData)
	sp -= 2
	u.sched.SchedulePush(sp, savedSR, fcSuperData)
	u.regs.SetSSP(sp)

	vectorAddr := uint32(e.vector) * 4
	u.sched.ScheduleRead(vectorAddr, true, fcSuperData, func(hi uint16) {
		u.sched.ScheduleRead(vectorAddr+2, true, fcSuperData, func(lo uint16) {
			handler := uint32(hi)<<16 | uint32(lo)
			prefetch.Flush(handler)
			u.regs.PC = handler
		})
	})
}
