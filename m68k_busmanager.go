// m68k_busmanager.go - M68K 4-state microcycle engine and bus arbitration

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
m68k_busmanager.go - BusManager

Runs one bus cycle at a time as a 4-state sequence (read, write,
read-modify-write, interrupt-acknowledge families; m68k_bus.go names
the states). Each call to Cycle() advances the in-progress cycle by one
clock; a cycle completes by invoking its onComplete callback and
returning to idle. External bus mastership (Z80 /BR, VDP DMA /BR) is
arbitrated here: an asserted busRequest causes the manager to finish
its current cycle, then assert busGrant and stay parked until the
external master drops /BR, at which point busGrantAck is cleared and
the M68K resumes issuing cycles.

onComplete callbacks intentionally close over only small values (an
index, a latched word) - never a whole CPU or memory struct - keeping
them cheap to allocate per cycle, mirroring the size-bounded
std::function contract of the component this is ported from.
*/

package main

// busCompletion is invoked once a bus cycle finishes, carrying the data
// latched for a read (ignored for writes).
type busCompletion func(data uint16)

// BusManager drives busSignals through the one active bus cycle at a time.
type BusManager struct {
	space *AddressSpace

	state    busCycleState
	signals  busSignals
	onDone   busCompletion
	pending  bool // a bus cycle is currently in flight

	writeData uint16
	rmwData   uint16
	rmwModify func(read uint16) uint16

	// bus arbitration: asserted by RequestBus, honored between cycles
	extRequest bool
}

func NewBusManager(space *AddressSpace) *BusManager {
	return &BusManager{space: space}
}

// IsBusGranted reports whether an external master currently owns the bus.
func (b *BusManager) IsBusGranted() bool {
	return b.signals.busGrantAck
}

// RequestBus is called by an external master (Z80 control registers,
// VDP DMA engine) wanting the M68K bus. Grant is only given between bus
// cycles, never mid-cycle.
func (b *BusManager) RequestBus() {
	b.extRequest = true
	b.signals.busRequest = true
}

// ReleaseBus drops a prior RequestBus.
func (b *BusManager) ReleaseBus() {
	b.extRequest = false
	b.signals.busRequest = false
	b.signals.busGrant = false
	b.signals.busGrantAck = false
}

// IsIdle reports whether the manager can accept a new cycle.
func (b *BusManager) IsIdle() bool {
	return b.state == busIdle && !b.signals.busGrantAck
}

// BeginRead starts a 4-state read cycle at addr (word access if word is
// true, else byte). onDone receives the latched value.
func (b *BusManager) BeginRead(addr uint32, word bool, fc uint8, onDone busCompletion) {
	b.signals.address = addr
	b.signals.readNotWrite = true
	b.signals.fc = fc
	b.signals.upperDS = word || addr%2 != 0
	b.signals.lowerDS = word || addr%2 == 0
	b.onDone = onDone
	b.pending = true
	b.state = busRead0
}

// BeginWrite starts a 4-state write cycle.
func (b *BusManager) BeginWrite(addr uint32, data uint16, word bool, fc uint8, onDone busCompletion) {
	b.signals.address = addr
	b.signals.readNotWrite = false
	b.signals.fc = fc
	b.signals.upperDS = word || addr%2 != 0
	b.signals.lowerDS = word || addr%2 == 0
	b.writeData = data
	b.onDone = onDone
	b.pending = true
	b.state = busWrite0
}

// BeginRMW starts a locked read-modify-write cycle (TAS). modify is run
// once the read half latches, and its result is written back without the
// bus ever being released to another master in between.
func (b *BusManager) BeginRMW(addr uint32, fc uint8, modify func(read uint16) uint16, onDone busCompletion) {
	b.signals.address = addr
	b.signals.readNotWrite = true
	b.signals.fc = fc
	b.signals.upperDS = true
	b.signals.lowerDS = true
	b.onDone = onDone
	b.rmwModify = modify
	b.pending = true
	b.state = busRMWRead0
}

// BeginIAC starts an interrupt-acknowledge cycle for the given priority
// level (1-7), placing the level on the low address lines per the M68K
// convention (A1-A3 = level).
func (b *BusManager) BeginIAC(level uint8, onDone busCompletion) {
	b.signals.address = 0xFFFFF0 | uint32(level)<<1
	b.signals.readNotWrite = true
	b.signals.fc = fcInterruptAck
	b.onDone = onDone
	b.pending = true
	b.state = busIAC0
}

// Cycle advances the bus manager by one clock state.
func (b *BusManager) Cycle() {
	if b.state == busIdle {
		b.arbitrate()
		return
	}

	switch b.state {
	case busRead0:
		b.state = busRead1
	case busRead1:
		b.space.InitReadWord(b.signals.address)
		b.state = busRead2
	case busRead2:
		if !b.space.IsIdle(b.signals.address) {
			return // wait state: device not ready
		}
		b.state = busRead3
	case busRead3:
		data := b.space.LatchedWord(b.signals.address)
		b.complete(data)

	case busWrite0:
		b.state = busWrite1
	case busWrite1:
		b.space.InitWrite(b.signals.address, b.writeData)
		b.state = busWrite2
	case busWrite2:
		if !b.space.IsIdle(b.signals.address) {
			return
		}
		b.state = busWrite3
	case busWrite3:
		b.complete(0)

	case busRMWRead0:
		b.state = busRMWRead1
	case busRMWRead1:
		b.space.InitReadByte(b.signals.address)
		b.state = busRMWRead2
	case busRMWRead2:
		if !b.space.IsIdle(b.signals.address) {
			return
		}
		b.state = busRMWRead3
	case busRMWRead3:
		b.rmwData = uint16(b.space.LatchedByte(b.signals.address))
		b.state = busRMWModify0
	case busRMWModify0:
		if b.rmwModify != nil {
			b.rmwData = b.rmwModify(b.rmwData)
		}
		b.state = busRMWModify1
	case busRMWModify1:
		b.state = busRMWWrite0
	case busRMWWrite0:
		b.state = busRMWWrite1
	case busRMWWrite1:
		b.space.InitWrite(b.signals.address, byte(b.rmwData))
		b.state = busRMWWrite2
	case busRMWWrite2:
		if !b.space.IsIdle(b.signals.address) {
			return
		}
		b.state = busRMWWrite3
	case busRMWWrite3:
		b.complete(b.rmwData)

	case busIAC0:
		b.state = busIAC1
	case busIAC1:
		b.state = busIAC2
	case busIAC2:
		if !b.signals.vpa && !b.signals.dtack {
			return // wait for VPA (autovector) or DTACK (vectored) or spurious timeout
		}
		b.state = busIAC3
	case busIAC3:
		b.complete(uint16(b.signals.data))
	}
}

func (b *BusManager) complete(data uint16) {
	b.state = busIdle
	b.pending = false
	b.signals.vpa = false
	b.signals.dtack = false
	cb := b.onDone
	b.onDone = nil
	if cb != nil {
		cb(data)
	}
}

// arbitrate runs between bus cycles: grants the bus to an external
// master if one is requesting it, or reclaims it once the request drops.
func (b *BusManager) arbitrate() {
	if b.extRequest && !b.signals.busGrantAck {
		b.signals.busGrant = true
		b.signals.busGrantAck = true
		return
	}
	if !b.extRequest && b.signals.busGrantAck {
		b.signals.busGrant = false
		b.signals.busGrantAck = false
	}
}

// SetVPA is driven by an interrupt-acknowledging device that wants an
// autovector rather than supplying its own vector on the data bus.
func (b *BusManager) SetVPA(v bool) { b.signals.vpa = v }

// SetDTACK is driven by a device that has placed a byte on the data bus
// in response to an interrupt-acknowledge or normal bus cycle.
func (b *BusManager) SetDTACK(v bool) { b.signals.dtack = v }

// SetInterruptData supplies the vector number for a vectored interrupt
// acknowledge cycle.
func (b *BusManager) SetInterruptData(v uint8) { b.signals.data = uint16(v) }
