// displayfrontend.go - VDP row callback -> VideoOutput frame buffer

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
displayfrontend.go - DisplayFrontend

Bridges vdp_renderer.go's per-scanline 9-bit CRAM callback to the
VideoOutput.UpdateFrame([]byte) contract video_backend_ebiten.go and
video_backend_headless.go both implement, the same producer/consumer
split the teacher keeps between its chip and backend types.
*/

package main

// DisplayFrontend accumulates RenderRow callbacks into one RGBA frame
// buffer and hands completed frames to a VideoOutput.
type DisplayFrontend struct {
	out    VideoOutput
	width  int
	height int
	buf    []byte
}

// NewDisplayFrontend sizes buf for width x height RGBA pixels and wires
// out's display config to match.
func NewDisplayFrontend(out VideoOutput, scale int, fullscreen bool, width, height int) (*DisplayFrontend, error) {
	df := &DisplayFrontend{out: out, width: width, height: height, buf: make([]byte, width*height*4)}
	err := out.SetDisplayConfig(DisplayConfig{
		Width:       width,
		Height:      height,
		Scale:       scale,
		RefreshRate: 60,
		PixelFormat: PixelFormatRGBA,
		VSync:       true,
		Fullscreen:  fullscreen,
	})
	if err != nil {
		return nil, err
	}
	return df, nil
}

// RenderRow matches VDP.RenderRow's signature: it converts one 9-bit
// CRAM scanline to RGBA in place, and pushes the full frame to out
// once the last active line of the current mode lands.
func (df *DisplayFrontend) RenderRow(line int, pixels []uint16) {
	if line < 0 || line >= df.height {
		return
	}
	off := line * df.width * 4
	for x, c := range pixels {
		if x >= df.width {
			break
		}
		r, g, b := decodeCRAM(c)
		i := off + x*4
		df.buf[i] = r
		df.buf[i+1] = g
		df.buf[i+2] = b
		df.buf[i+3] = 0xFF
	}
	if line == df.height-1 {
		_ = df.out.UpdateFrame(df.buf)
	}
}

// decodeCRAM expands the VDP's 0000 BBB0 GGG0 RRR0 word into 8-bit
// RGB by replicating each 3-bit channel across the byte.
func decodeCRAM(c uint16) (r, g, b byte) {
	expand := func(v uint16) byte {
		v &= 0x7
		return byte(v<<5 | v<<2 | v>>1)
	}
	r = expand(c >> 1)
	g = expand(c >> 5)
	b = expand(c >> 9)
	return
}
