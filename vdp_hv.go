// vdp_hv.go - H/V counters, blank flags, interrupt unit

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
vdp_hv.go

The raw H counter increments every VDP clock and skips two documented
ranges per display width; the V counter advances off one fixed raw-H
value and skips per (mode, height). Kept as two small named skip
tables rather than union'd bitfields, per the design note banning
bitfield punning for register-like state.
*/

package main

type VDPHVState struct {
	H, V uint8

	widthH40 bool
	v30      bool
	pal      bool

	hintCounter byte

	statusOddFrame bool
}

func (v *VDP) SetMode(h40, v30, pal bool) {
	v.hv.widthH40 = h40
	v.hv.v30 = v30
	v.hv.pal = pal
}

func (v *VDP) vblankFlag() bool {
	if v.hv.v30 {
		return v.hv.V >= 0xE0 || v.hv.V <= 0x02
	}
	return v.hv.V >= 0xE0
}

func (v *VDP) hblankFlag() bool {
	if v.hv.widthH40 {
		return v.hv.H >= 0xB6 && int(v.hv.H) < 0xE4+0x22
	}
	return v.hv.H >= 0x93 && int(v.hv.H) < 0xE9+0x22
}

// CycleHV advances the H counter by one VDP pixel clock, rolling the V
// counter and raising VINT/HINT as documented skip/latch points are
// crossed.
func (v *VDP) CycleHV() {
	hAdvance := v.hv.widthH40
	vTrigger := false

	if hAdvance {
		if v.hv.H == 0xB6 {
			v.hv.H = 0xE4
		} else {
			v.hv.H++
		}
		if v.hv.H == 0xA5 {
			vTrigger = true
		}
	} else {
		if v.hv.H == 0x93 {
			v.hv.H = 0xE9
		} else {
			v.hv.H++
		}
		if v.hv.H == 0x85 {
			vTrigger = true
		}
	}

	if vTrigger {
		v.advanceV()
		if v.RenderRow != nil && int(v.hv.V) < v.activeLines() {
			row := make([]uint16, v.lineWidth())
			v.RenderLine(int(v.hv.V), row)
			v.RenderRow(int(v.hv.V), row)
		}
	}

	if v.vblankFlag() {
		v.status |= vdpStatusVBlankFlag
	} else {
		v.status &^= vdpStatusVBlankFlag
	}
	if v.hblankFlag() {
		v.status |= vdpStatusHBlankFlag
	} else {
		v.status &^= vdpStatusHBlankFlag
	}

	v.checkInterrupts(vTrigger)
}

func (v *VDP) advanceV() {
	if v.hv.pal {
		if v.hv.v30 {
			if v.hv.V == 0x0A {
				v.hv.V = 0xD2
				return
			}
		} else {
			if v.hv.V == 0x02 {
				v.hv.V = 0xCA
				return
			}
		}
	} else {
		if !v.hv.v30 && v.hv.V == 0xEA {
			v.hv.V = 0xE5
			return
		}
		// NTSC V30 wraps naturally (no documented skip)
	}
	v.hv.V++
}

// checkInterrupts runs after every counter update: VINT latches once
// per frame at (V==0xE0||0xF0, H==0x02); HINT's line counter reloads
// from R10 at (V==0x00, H==0x02) and decrements once per active line.
func (v *VDP) checkInterrupts(vJustAdvanced bool) {
	if (v.hv.V == 0xE0 || v.hv.V == 0xF0) && v.hv.H == 0x02 {
		v.vintPending = true
		v.status |= vdpStatusVInterrupt
	}
	if v.hv.V == 0x00 && v.hv.H == 0x02 {
		v.hv.hintCounter = v.Regs.HInterruptLine()
	} else if vJustAdvanced && !v.vblankFlag() {
		if v.hv.hintCounter == 0 {
			v.hintPending = true
			v.hv.hintCounter = v.Regs.HInterruptLine()
		} else {
			v.hv.hintCounter--
		}
	}

	if v.RaiseM68KInterrupt == nil {
		return
	}
	if v.vintPending && v.Regs.VBlankIE() {
		v.RaiseM68KInterrupt(6)
	} else if v.hintPending && v.Regs.HBlankIE() {
		v.RaiseM68KInterrupt(4)
	} else if v.extintPending {
		v.RaiseM68KInterrupt(2)
	}
}

// activeLines reports the number of visible scanlines for the current
// V mode (224 for V28/NTSC, 240 for V30), used to gate the renderer so
// it only runs during the active display, not the blanking tail.
func (v *VDP) activeLines() int {
	if v.hv.v30 {
		return 240
	}
	return 224
}

// lineWidth reports the pixel width of one scanline for the current H
// mode, matching H32/H40's documented 256/320 column counts.
func (v *VDP) lineWidth() int {
	if v.hv.widthH40 {
		return 320
	}
	return 256
}

// AcknowledgeInterrupt clears the pending flag matching the level the
// M68K's interrupt-acknowledge cycle reports servicing.
func (v *VDP) AcknowledgeInterrupt(level uint8) {
	switch level {
	case 6:
		v.vintPending = false
		v.status &^= vdpStatusVInterrupt
	case 4:
		v.hintPending = false
	case 2:
		v.extintPending = false
	}
}
