// config.go - Command-line configuration

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
config.go - Config

Replaces the teacher's hand-rolled os.Args[1]/os.Args[2] positional
parsing in main.go with a flag.FlagSet, since this core takes a wider
set of optional switches (scale, fullscreen, debug; headless is a build
tag, not a switch) than the
two-mode "-ie32|-m68k filename" switch it grew from.
*/

package main

import (
	"flag"
	"fmt"
)

// Config holds everything main needs to bring a System and its
// frontends up.
type Config struct {
	ROMPath    string
	Scale      int
	Fullscreen bool
	Debug      bool
}

// ParseConfig builds a Config from args (os.Args[1:] in production,
// a literal slice in tests). The -headless build tag, not a flag,
// decides whether video_backend_ebiten.go or video_backend_headless.go
// (and the audio equivalents) are compiled in.
func ParseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("intuition-engine", flag.ContinueOnError)

	scale := fs.Int("scale", 2, "integer window scale factor (1-4)")
	fullscreen := fs.Bool("fullscreen", false, "start in fullscreen")
	debug := fs.Bool("debug", false, "enable the raw-stdin register/state inspector")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, fmt.Errorf("config: usage: intuition-engine [flags] rom-file")
	}

	return &Config{
		ROMPath:    rest[0],
		Scale:      ClampScale(*scale),
		Fullscreen: *fullscreen,
		Debug:      *debug,
	}, nil
}
