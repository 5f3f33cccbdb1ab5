//go:build headless

// audio_backend_headless.go - No-op audio backend for automated runs

package main

// AudioStubChip is the headless stand-in for audiostub.go's chip; it
// always produces silence.
type AudioStubChip struct{}

func (c *AudioStubChip) ReadSampleFromRing() float32 { return 0 }

type OtoPlayer struct {
	started bool
	chip    *AudioStubChip
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(chip *AudioStubChip) {
	op.chip = chip
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.started = true
}

func (op *OtoPlayer) Stop() {
	op.started = false
}

func (op *OtoPlayer) Close() {
	op.started = false
}

func (op *OtoPlayer) IsStarted() bool {
	return op.started
}
