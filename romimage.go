// romimage.go - ROM byte buffer, header parsing, checksum

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
romimage.go - ROMImage

An external collaborator, not part of the cycle-accurate C1-C14 core
(spec.md §1 places ROM file parsing out of scope as a component, but §6
documents its byte layout in enough detail that a complete repository
needs the parser feeding the memory map). Construction is the one place
in this core that returns a category-3 (ROM-ingest) error: missing file,
under/oversized body, matching the teacher's fmt.Errorf("%s: %w",...)
wrapping style (see config.go, main.go).
*/

package main

import (
	"fmt"
	"os"
)

// ROMHeader is the parsed 0x100-0x1FF metadata block, per spec.md §6.
type ROMHeader struct {
	SystemType    string
	Copyright     string
	DomesticTitle string
	OverseasTitle string
	Serial        string
	Checksum      uint16
	ROMRange      [8]byte
	RAMRange      [8]byte
	Region        string
}

// ROMImage is the raw cartridge byte buffer plus its parsed header.
type ROMImage struct {
	Data   []byte
	Header ROMHeader
}

// LoadROMImage reads filename and parses it as a Genesis cartridge image.
func LoadROMImage(filename string) (*ROMImage, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("romimage: load %s: %w", filename, err)
	}
	return NewROMImage(data)
}

// NewROMImage parses an already-loaded byte buffer.
func NewROMImage(data []byte) (*ROMImage, error) {
	if len(data) < ROMBodyStart {
		return nil, fmt.Errorf("romimage: image too small: %d bytes, need at least %d for vectors+header", len(data), ROMBodyStart)
	}
	if len(data) > ROMMaxSize {
		return nil, fmt.Errorf("romimage: image too large: %d bytes, max %d", len(data), ROMMaxSize)
	}

	r := &ROMImage{Data: data}
	r.Header = parseHeader(data)
	return r, nil
}

func trimField(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == ' ' || b[end-1] == 0) {
		end--
	}
	return string(b[:end])
}

func parseHeader(data []byte) ROMHeader {
	field := func(off, length int) []byte {
		if off+length > len(data) {
			return nil
		}
		return data[off : off+length]
	}
	var rom, ram [8]byte
	copy(rom[:], field(ROMHdrROMRangeOff, ROMHdrROMRangeLen))
	copy(ram[:], field(ROMHdrRAMRangeOff, ROMHdrRAMRangeLen))

	h := ROMHeader{
		SystemType:    trimField(field(ROMHdrSystemTypeOff, ROMHdrSystemTypeLen)),
		Copyright:     trimField(field(ROMHdrCopyrightOff, ROMHdrCopyrightLen)),
		DomesticTitle: trimField(field(ROMHdrDomesticOff, ROMHdrDomesticLen)),
		OverseasTitle: trimField(field(ROMHdrOverseasOff, ROMHdrOverseasLen)),
		Serial:        trimField(field(ROMHdrSerialOff, ROMHdrSerialLen)),
		ROMRange:      rom,
		RAMRange:      ram,
		Region:        trimField(field(ROMHdrRegionOff, ROMHdrRegionLen)),
	}
	if ROMHdrChecksumOff+1 < len(data) {
		h.Checksum = uint16(data[ROMHdrChecksumOff])<<8 | uint16(data[ROMHdrChecksumOff+1])
	}
	return h
}

// ComputeChecksum sums body bytes (from ROMBodyStart) two at a time as
// big-endian words, per spec.md §6, ignoring a trailing odd byte.
func (r *ROMImage) ComputeChecksum() uint16 {
	var sum uint16
	body := r.Data
	if ROMBodyStart >= len(body) {
		return 0
	}
	body = body[ROMBodyStart:]
	n := len(body) &^ 1
	for i := 0; i < n; i += 2 {
		sum += uint16(body[i])<<8 | uint16(body[i+1])
	}
	return sum
}

// VerifyChecksum reports whether the header's stored checksum matches
// ComputeChecksum. Mismatches are not fatal (real cartridges ship with
// bad checksums); callers log and continue.
func (r *ROMImage) VerifyChecksum() bool {
	return r.Header.Checksum == r.ComputeChecksum()
}

// InitialSP/InitialPC read the two reset vector longs from 0x000000 and
// 0x000004, big-endian, before the memory map exists to service them.
func (r *ROMImage) InitialSP() uint32 { return r.vectorLong(0) }
func (r *ROMImage) InitialPC() uint32 { return r.vectorLong(4) }

func (r *ROMImage) vectorLong(off int) uint32 {
	if off+4 > len(r.Data) {
		return 0
	}
	return uint32(r.Data[off])<<24 | uint32(r.Data[off+1])<<16 | uint32(r.Data[off+2])<<8 | uint32(r.Data[off+3])
}
