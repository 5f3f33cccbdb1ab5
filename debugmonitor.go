// debugmonitor.go - Raw-stdin register/state inspector

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
debugmonitor.go - DebugMonitor

Reads single-key commands from raw stdin in a background goroutine,
same nonblocking-read/raw-mode shape as the teacher's terminal input
path: 'r' dumps both CPUs' registers, 'p' toggles the run/pause flag
main.go's loop reads through Paused(), 'q' stops the monitor. Only instantiated from main.go
when -debug is passed; never wired into tests.
*/

package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/term"
)

// DebugMonitor inspects a System from the terminal while it runs.
type DebugMonitor struct {
	sys *System

	fd           int
	nonblockSet  bool
	oldTermState *term.State

	paused atomic.Bool

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once
}

func NewDebugMonitor(sys *System) *DebugMonitor {
	return &DebugMonitor{sys: sys, stopCh: make(chan struct{}), done: make(chan struct{})}
}

// Paused reports whether a 'p' keypress has frozen the emulation loop.
func (d *DebugMonitor) Paused() bool { return d.paused.Load() }

// Start puts stdin in raw, nonblocking mode and begins the read loop.
func (d *DebugMonitor) Start() {
	d.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(d.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debugmonitor: failed to set raw mode: %v\n", err)
		close(d.done)
		return
	}
	d.oldTermState = oldState

	if err := syscall.SetNonblock(d.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "debugmonitor: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(d.fd, d.oldTermState)
		d.oldTermState = nil
		close(d.done)
		return
	}
	d.nonblockSet = true

	go d.run()
}

func (d *DebugMonitor) run() {
	defer close(d.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-d.stopCh:
			return
		default:
		}

		n, err := syscall.Read(d.fd, buf)
		if n > 0 {
			d.handle(buf[0])
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func (d *DebugMonitor) handle(b byte) {
	switch b {
	case 'r':
		d.dumpRegisters()
	case 'p':
		d.paused.Store(!d.paused.Load())
	case 'q':
		d.paused.Store(false)
		d.stopped.Do(func() { close(d.stopCh) })
	}
}

func (d *DebugMonitor) dumpRegisters() {
	regs := d.sys.M68K.Unit.Regs
	fmt.Printf("\r\nM68K  PC=%08X SR=%04X D=%08X A=%08X\r\n", regs.PC, regs.SR, regs.D, regs.A)

	z := d.sys.Z80.Regs
	fmt.Printf("Z80   PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X IFF1=%v IM=%d\r\n",
		z.PC, z.SP, z.AF(), z.BC(), z.DE(), z.HL(), z.IFF1, z.IM)
}

// Stop restores stdin and waits for the read goroutine to exit.
func (d *DebugMonitor) Stop() {
	d.stopped.Do(func() {
		close(d.stopCh)
	})
	<-d.done
	if d.nonblockSet {
		_ = syscall.SetNonblock(d.fd, false)
		d.nonblockSet = false
	}
	if d.oldTermState != nil {
		_ = term.Restore(d.fd, d.oldTermState)
		d.oldTermState = nil
	}
}
