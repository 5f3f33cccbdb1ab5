// m68k_prefetch.go - M68K three-slot instruction prefetch pipeline

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
m68k_prefetch.go - PrefetchQueue

Models the 68000 family's three-register instruction pipeline: IR (the
opcode currently executing), IRD (the decode latch, holding the word
that the next Advance moves into IR) and IRC (the next word already fetched
from memory, one step ahead of execution). Advancing the pipeline
shifts IRC into IRD and (when the executing instruction finishes)
IRD into IR, then schedules a fetch of the new IRC via the bus
scheduler. This is what makes branch instructions discard a
already-fetched-but-wrong IRC, and why PC as observed by an instruction
is generally two words ahead of the opcode being executed.
*/

package main

// PrefetchQueue holds the IR/IRD/IRC pipeline registers and the address
// IRC was last fetched from (pc), so a refill after a branch/exception
// knows where to restart.
type PrefetchQueue struct {
	ir  uint16
	ird uint16
	irc uint16
	pc  uint32
}

func NewPrefetchQueue() *PrefetchQueue {
	return &PrefetchQueue{}
}

// IR returns the opcode word currently being executed.
func (q *PrefetchQueue) IR() uint16 { return q.ir }

// IRD returns the decode latch: the word the next Advance moves into IR.
func (q *PrefetchQueue) IRD() uint16 { return q.ird }

// IRC returns the next word, already fetched one step ahead.
func (q *PrefetchQueue) IRC() uint16 { return q.irc }

// PC returns the address just past the word last fetched into IRC; the
// executing instruction's own address is PC-4 for a one-word opcode.
func (q *PrefetchQueue) PC() uint32 { return q.pc }

// FillIRC records a completed IRC fetch and the address it came from.
func (q *PrefetchQueue) FillIRC(word uint16, fetchedFrom uint32) {
	q.irc = word
	q.pc = fetchedFrom + 2
}

// AdvanceIRD copies IRC into IRD, making it the next instruction to
// decode, without yet committing to IR (used when extension words are
// being fetched ahead of the opcode that will consume them).
func (q *PrefetchQueue) AdvanceIRD() {
	q.ird = q.irc
}

// Advance completes one fetch step: IRD becomes IR (the opcode decode
// now commits to execution) and IRC's prior value is replaced once the
// caller supplies the next fetched word via FillIRC.
func (q *PrefetchQueue) Advance() {
	q.ir = q.ird
	q.ird = q.irc
}

// Flush discards IRD/IRC, used on branch taken, RESET, or exception
// entry, so refill restarts cleanly at the new PC.
func (q *PrefetchQueue) Flush(newPC uint32) {
	q.ird = 0
	q.irc = 0
	q.pc = newPC
}
