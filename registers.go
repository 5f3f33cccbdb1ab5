// registers.go - Centralized address map constants for the Genesis core

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
registers.go - Master Address Map Reference

Centralizes every memory-mapped region of the M68K 24-bit address space
and the Z80 16-bit address space described in spec.md §6. Individual
components still own their detailed bit-field accessors (vdp_ports.go,
z80_control.go, controller.go); this file is the map, not the behavior.

M68K ADDRESS MAP (24-bit, mirrored where noted)
================================================

0x000000-0x3FFFFF  ROM (read-only), up to 4MiB
0xA00000-0xA0FFFF  Z80 address space (guarded by Z80 bus request)
0xA10000-0xA10001  Version register
0xA10002-0xA10009  Controller 1 data/control
0xA1000A-0xA1000D  Controller 2 and expansion (disabled, stub reads)
0xA11100-0xA11101  Z80 bus request
0xA11200-0xA11201  Z80 reset
0xA14000-0xA14003  TMSS
0xC00000-0xC00007  VDP data/control/HV/status, mirrored across next 8 bytes
0xE00000-0xE0FFFF  64KiB RAM, mirrored 32 times to the top of the space

Z80 ADDRESS MAP (16-bit)
========================

0x0000-0x1FFF  RAM, mirrored to 0x2000-0x3FFF
0x4000-0x4003  YM2612 (stub)
0x6000         Bank register (8 single-bit writes build a 9-bit bank index)
0x7F11         PSG (stub)
0x8000-0xFFFF  32KiB window into the M68K address space at (bank<<15)|(addr&0x7FFF)
*/

package main

// ------------------------------------------------------------------------------
// M68K address map boundaries
// ------------------------------------------------------------------------------
const (
	M68KAddressMask = 0x00FFFFFF // 24-bit external address bus

	ROMBase  = 0x000000
	ROMLimit = 0x3FFFFF

	Z80SpaceBase  = 0xA00000
	Z80SpaceLimit = 0xA0FFFF

	VersionRegBase  = 0xA10000
	VersionRegLimit = 0xA10001

	Controller1Base  = 0xA10002
	Controller1Limit = 0xA10009

	Controller2Base  = 0xA1000A
	Controller2Limit = 0xA1000D

	Z80BusReqBase  = 0xA11100
	Z80BusReqLimit = 0xA11101

	Z80ResetBase  = 0xA11200
	Z80ResetLimit = 0xA11201

	TMSSBase  = 0xA14000
	TMSSLimit = 0xA14003

	VDPPortBase  = 0xC00000
	VDPPortLimit = 0xC00007
	VDPMirrorEnd = 0xC0000F // ports mirrored across the next 8 bytes

	WorkRAMBase = 0xE00000
	WorkRAMSize = 0x010000 // 64KiB
	WorkRAMEnd  = 0xFFFFFF // mirrored 32 times to the top of the space
)

// ------------------------------------------------------------------------------
// Z80 address map boundaries
// ------------------------------------------------------------------------------
const (
	Z80AddressMask = 0xFFFF

	Z80RAMBase    = 0x0000
	Z80RAMSize    = 0x2000 // 8KiB
	Z80RAMMirror  = 0x2000 // mirrored to 0x2000-0x3FFF
	Z80RAMEnd     = 0x3FFF
	Z80YM2612Base = 0x4000
	Z80YM2612End  = 0x4003
	Z80BankReg    = 0x6000
	Z80PSGPort    = 0x7F11
	Z80BankBase   = 0x8000
	Z80BankEnd    = 0xFFFF
	Z80BankWindow = 0x8000 // 32KiB window size
)

// ------------------------------------------------------------------------------
// ROM header layout (spec.md §6)
// ------------------------------------------------------------------------------
const (
	ROMVectorTableStart = 0x000
	ROMVectorTableEnd   = 0x0FF
	ROMHeaderStart      = 0x100
	ROMHeaderEnd        = 0x1FF
	ROMBodyStart        = 0x200
	ROMMaxSize          = 4 * 1024 * 1024

	ROMHdrSystemTypeOff = 0x100
	ROMHdrSystemTypeLen = 16
	ROMHdrCopyrightOff  = 0x110
	ROMHdrCopyrightLen  = 16
	ROMHdrDomesticOff   = 0x120
	ROMHdrDomesticLen   = 48
	ROMHdrOverseasOff   = 0x150
	ROMHdrOverseasLen   = 48
	ROMHdrSerialOff     = 0x180
	ROMHdrSerialLen     = 14
	ROMHdrChecksumOff   = 0x18E
	ROMHdrROMRangeOff   = 0x1A0
	ROMHdrROMRangeLen   = 8
	ROMHdrRAMRangeOff   = 0x1A8
	ROMHdrRAMRangeLen   = 8
	ROMHdrRegionOff     = 0x1F0
	ROMHdrRegionLen     = 3
)
