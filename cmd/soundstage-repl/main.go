// Command soundstage-repl is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Command soundstage-repl is a minimal line-mode interactive host: the
// concrete stand-in for "the scripting/host bindings" spec.md §1 describes
// as out of scope to build a full VM integration for. It reads raw
// keystrokes from the controlling terminal (github.com/pkg/term, the way
// the teacher's easyterm wraps pkg/term/termios for its debugger), echoes
// and line-edits them itself, and dispatches whole lines against
// package host's public surface.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/term"

	"github.com/loopstack/soundstage/config"
	"github.com/loopstack/soundstage/device"
	"github.com/loopstack/soundstage/engine"
	"github.com/loopstack/soundstage/host"
	"github.com/loopstack/soundstage/logger"
	"github.com/loopstack/soundstage/monitor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()

	eng, err := engine.New(device.Open, cfg)
	if err != nil {
		return err
	}
	defer eng.Free()

	h := host.New(eng, cfg)

	mon := monitor.Start("localhost:18081", time.Second, func() monitor.Snapshot {
		return monitor.Snapshot{
			PlayingChannels: eng.PlayingCount(),
			PendingChannels: eng.PendingCount(),
		}
	})
	defer mon.Stop()

	t, err := term.Open("/dev/tty")
	if err != nil {
		return err
	}
	defer t.Restore()
	defer t.Close()
	if err := t.SetRaw(); err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, "soundstage> ")

	refs := make(map[int]engine.Ref)
	nextRefID := 0

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := t.Read(buf)
		if err != nil || n == 0 {
			return err
		}

		switch buf[0] {
		case '\r', '\n':
			fmt.Fprint(os.Stdout, "\r\n")
			cmd := string(line)
			line = line[:0]
			if strings.TrimSpace(cmd) == "quit" {
				return nil
			}
			dispatch(h, cmd, refs, &nextRefID)
			fmt.Fprint(os.Stdout, "soundstage> ")
		case 127, '\b': // backspace
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(os.Stdout, "\b \b")
			}
		case 3: // ctrl-c
			return nil
		default:
			line = append(line, buf[0])
			os.Stdout.Write(buf)
		}
	}
}

// dispatch parses and executes a single command line against h, logging
// anything it can't apply rather than crashing the REPL over a typo.
func dispatch(h *host.Host, line string, refs map[int]engine.Ref, nextRefID *int) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "load":
		if len(fields) != 3 {
			fmt.Println("usage: load <name> <path>")
			return
		}
		if err := h.Load(fields[1], fields[2]); err != nil {
			fmt.Println(err)
		}

	case "play":
		if len(fields) < 2 {
			fmt.Println("usage: play <name> [volume] [pan]")
			return
		}
		volume, pan := float32(1.0), float32(0.0)
		if len(fields) > 2 {
			volume = parseFloat(fields[2], volume)
		}
		if len(fields) > 3 {
			pan = parseFloat(fields[3], pan)
		}
		ref, err := h.PlayVolumePan(fields[1], volume, pan, false)
		if err != nil {
			fmt.Println(err)
			return
		}
		id := *nextRefID
		*nextRefID++
		refs[id] = ref
		fmt.Printf("channel %d\n", id)

	case "stop":
		ref, ok := refFromArg(fields, refs)
		if !ok {
			return
		}
		if err := h.StopChannel(ref); err != nil {
			fmt.Println(err)
		}

	case "stopall":
		h.StopAllChannels()

	case "volume":
		if len(fields) != 3 {
			fmt.Println("usage: volume <channel> <value>")
			return
		}
		ref, ok := refFromArg(fields, refs)
		if !ok {
			return
		}
		if err := h.SetChannelVolume(ref, parseFloat(fields[2], 1.0)); err != nil {
			fmt.Println(err)
		}

	case "pan":
		if len(fields) != 3 {
			fmt.Println("usage: pan <channel> <value>")
			return
		}
		ref, ok := refFromArg(fields, refs)
		if !ok {
			return
		}
		if err := h.SetChannelPan(ref, parseFloat(fields[2], 0.0)); err != nil {
			fmt.Println(err)
		}

	case "update":
		h.Update(nil)

	default:
		logger.Logf(logger.Allow, "repl", "unrecognised command: %q", line)
		fmt.Printf("unrecognised command: %q\n", fields[0])
	}
}

func refFromArg(fields []string, refs map[int]engine.Ref) (engine.Ref, bool) {
	if len(fields) < 2 {
		fmt.Println("missing channel id")
		return engine.Ref{}, false
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Println("invalid channel id")
		return engine.Ref{}, false
	}
	ref, ok := refs[id]
	if !ok {
		fmt.Println("unknown channel id")
	}
	return ref, ok
}

func parseFloat(s string, fallback float32) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fallback
	}
	return float32(v)
}
