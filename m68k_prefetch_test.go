package main

import "testing"

func TestPrefetchQueueAdvanceShiftsPipeline(t *testing.T) {
	q := NewPrefetchQueue()
	q.FillIRC(0x1111, 0x1000) // pc becomes 0x1002
	q.AdvanceIRD()            // ird = 0x1111
	q.FillIRC(0x2222, 0x1002) // pc becomes 0x1004, irc = 0x2222

	q.Advance() // ir = ird (0x1111), ird = irc (0x2222)
	if q.IR() != 0x1111 {
		t.Fatalf("IR() after Advance: got 0x%04X, want 0x1111", q.IR())
	}
	if q.IRD() != 0x2222 {
		t.Fatalf("IRD() after Advance: got 0x%04X, want 0x2222", q.IRD())
	}
	if q.PC() != 0x1004 {
		t.Fatalf("PC() after two fills: got 0x%X, want 0x1004", q.PC())
	}
}

func TestPrefetchQueueFlushResetsIRDandIRC(t *testing.T) {
	q := NewPrefetchQueue()
	q.FillIRC(0xBEEF, 0x2000)
	q.AdvanceIRD()

	q.Flush(0x3000)
	if q.IRD() != 0 || q.IRC() != 0 {
		t.Fatalf("Flush should zero IRD/IRC: IRD=0x%04X IRC=0x%04X", q.IRD(), q.IRC())
	}
	if q.PC() != 0x3000 {
		t.Fatalf("Flush should set PC to the new fetch address: got 0x%X, want 0x3000", q.PC())
	}
}
