// m68k_bus.go - M68K bus signal lines and microcycle state names

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
m68k_bus.go - bus cycle states and signal lines

Names the four families of microcycle the bus manager runs: plain READ,
plain WRITE, read-modify-write (used by TAS and the locked bus-test
instructions), and interrupt-acknowledge. Each family is four clock
states; a cycle exits the family's final state back to IDLE unless a
wait condition (/DTACK not yet asserted, or external bus request) holds
it there.
*/

package main

// busCycleState is one clock state of an in-progress M68K bus cycle.
type busCycleState int

const (
	busIdle busCycleState = iota

	busRead0
	busRead1
	busRead2
	busRead3

	busWrite0
	busWrite1
	busWrite2
	busWrite3

	busRMWRead0
	busRMWRead1
	busRMWRead2
	busRMWRead3
	busRMWModify0
	busRMWModify1
	busRMWWrite0
	busRMWWrite1
	busRMWWrite2
	busRMWWrite3

	busIAC0
	busIAC1
	busIAC2
	busIAC3
)

// busSignals mirrors the M68K pin interface the bus manager drives and
// samples each clock: address/data strobes, R/W, function codes, and the
// external arbitration pair (BR/BG/BGACK).
type busSignals struct {
	address uint32
	data    uint16
	upperDS bool // UDS asserted (odd byte lane)
	lowerDS bool // LDS asserted (even byte lane)
	readNotWrite bool
	fc      uint8 // function code (address space: user/super, data/program)

	asserted bool // AS line
	dtack    bool // external device has latched/supplied data

	busRequest bool // BR asserted by an external bus master (Z80/VDP DMA)
	busGrant   bool // BG asserted back, master may take the bus
	busGrantAck bool // BGACK asserted, bus now owned by the external master

	vpa bool // valid peripheral address (autovector request)
	ipl uint8 // interrupt priority level sampled from external sources
}

// functionCode values, per the M68K's three FC lines.
const (
	fcUserData      = 0b001
	fcUserProgram   = 0b010
	fcSuperData     = 0b101
	fcSuperProgram  = 0b110
	fcInterruptAck  = 0b111
)
