// controller.go - Genesis controller data/control port protocol

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
controller.go - ControllerPort / DisabledPort

ControllerPort models the 8-byte data/control window the M68K sees at
0xA10002-0xA10009 for pad 1; system.go maps pad 2's range
(0xA1000A-0xA1000D) to a DisabledPort. Per the documented two-phase
protocol, writing 0x40 to the control register selects the "first
byte" read (direction pad + B/C in bits 0-5), writing 0x00 selects
"second byte" (direction pad + A/START in bits 4-5); any other control
value reads back 0xFF ("unknown phase"). Button state itself is
supplied by the display frontend (video_backend_ebiten.go) through
SetButtons, keeping this file free of any input-library dependency.
*/

package main

// ControllerButtons is a snapshot of the eight digital button states,
// true meaning "held".
type ControllerButtons struct {
	Up, Down, Left, Right bool
	A, B, C, Start        bool
}

type controllerPhase int

const (
	phaseUnknown controllerPhase = iota
	phaseFirst
	phaseSecond
)

// ControllerPort is the Addressable unit backing one pad's 8-byte
// region. Only offset 0 is decoded: a write there selects the read phase
// and a read returns that phase's button byte; every other offset reads
// 0x40 and ignores writes.
type ControllerPort struct {
	latchState

	buttons ControllerButtons
	phase   controllerPhase
}

func NewControllerPort() *ControllerPort { return &ControllerPort{phase: phaseFirst} }

func (p *ControllerPort) MaxAddress() uint32 { return 7 }

func (p *ControllerPort) SetButtons(b ControllerButtons) { p.buttons = b }

func (p *ControllerPort) InitWrite(addr uint32, data any) {
	if addr != 0 {
		return // control register (TH/TR direction bits); data register ignores writes
	}
	var v byte
	switch d := data.(type) {
	case byte:
		v = d
	case uint16:
		v = byte(d)
	}
	switch v {
	case 0x40:
		p.phase = phaseFirst
	case 0x00:
		p.phase = phaseSecond
	default:
		p.phase = phaseUnknown
	}
}

func (p *ControllerPort) InitReadByte(addr uint32) {
	if addr != 0 {
		p.byteVal = 0x40 // every offset other than 0 reads a fixed 0x40
		return
	}
	b := p.buttons
	bit := func(pressed bool) byte {
		if pressed {
			return 0
		}
		return 1
	}
	switch p.phase {
	case phaseFirst:
		p.byteVal = bit(b.Up) | bit(b.Down)<<1 | bit(b.Left)<<2 | bit(b.Right)<<3 | bit(b.B)<<4 | bit(b.C)<<5
	case phaseSecond:
		p.byteVal = bit(b.Up) | bit(b.Down)<<1 | bit(b.A)<<4 | bit(b.Start)<<5
	default:
		p.byteVal = 0xFF
	}
}

func (p *ControllerPort) InitReadWord(addr uint32) {
	p.InitReadByte(addr)
	p.wordVal = uint16(p.byteVal)<<8 | uint16(p.byteVal)
}

// DisabledPort models controller 2 / expansion port when nothing is
// plugged in: reads return 0xFF for data and 0x00 for control, writes
// are dropped, per spec.md §6.
type DisabledPort struct {
	latchState
}

func NewDisabledPort() *DisabledPort { return &DisabledPort{} }

func (p *DisabledPort) MaxAddress() uint32      { return 3 }
func (p *DisabledPort) InitWrite(uint32, any)   {}
func (p *DisabledPort) InitReadByte(addr uint32) {
	if addr%2 == 0 {
		p.byteVal = 0xFF
	} else {
		p.byteVal = 0x00
	}
}
func (p *DisabledPort) InitReadWord(addr uint32) {
	p.InitReadByte(addr)
	p.wordVal = uint16(p.byteVal)<<8 | uint16(p.byteVal)
}
