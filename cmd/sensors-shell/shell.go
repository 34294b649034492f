//go:build linux && cgo

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lmsensors-go/lmsensors/pkg/sensors"
)

// shell holds the interactive session state: the live handle and the
// currently selected chip, if any.
type shell struct {
	h  *sensors.Sensors
	rl *readline.Instance

	chip *sensors.Chip
}

func newShell(h *sensors.Sensors, historyFile string) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sensors> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &shell{h: h, rl: rl}, nil
}

// Run starts the interactive command loop and blocks until the user
// exits or the context is cancelled.
func (s *shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "chips", "c":
			s.cmdChips(args)

		case "use", "u":
			s.cmdUse(args)

		case "features", "f":
			s.cmdFeatures()

		case "read", "r":
			s.cmdRead(args)

		case "set", "w":
			s.cmdSet(args)

		case "sets":
			s.cmdSets()

		case "version", "v":
			fmt.Fprintf(s.rl.Stdout(), "libsensors %s\n", s.h.Version())

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
Sensor Shell Commands:
  Browsing:
    chips [pattern]      - List detected chips (optionally matching a pattern)
    use <chip>           - Select a chip by name or pattern
    features             - List features of the selected chip

  Values:
    read [feature]       - Read all sub-features (of one feature, or all)
    set <sub> <value>    - Write a value to a writable sub-feature
    sets                 - Apply the configuration's set statements to the chip

  General:
    version              - Show the native library version
    help                 - Show this help
    quit                 - Exit`)
}

// cmdChips lists detected chips, optionally filtered by a name
// pattern such as 'k10temp-*'.
func (s *shell) cmdChips(args []string) {
	match, cleanup, err := s.parseMatch(args)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid pattern: %v\n", err)
		return
	}
	defer cleanup()

	n := 0
	it := s.h.Chips(match)
	for it.Next() {
		chip := it.Chip()
		name, err := chip.Name()
		if err != nil {
			fmt.Fprintf(s.rl.Stdout(), "  (unnameable chip: %v)\n", err)
			continue
		}
		line := "  " + name
		if adapter, err := chip.Bus().AdapterName(); err == nil {
			line += "  [" + adapter + "]"
		}
		fmt.Fprintln(s.rl.Stdout(), line)
		n++
	}
	if err := it.Err(); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Enumeration failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%d chip(s)\n", n)
}

// cmdUse selects the first chip matching the given name or pattern
// and switches the prompt to it.
func (s *shell) cmdUse(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: use <chip-name-or-pattern>")
		return
	}

	pattern, err := s.h.ParseChipName(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid chip name: %v\n", err)
		return
	}
	defer pattern.Close()

	it := s.h.Chips(pattern)
	if !it.Next() {
		if err := it.Err(); err != nil {
			fmt.Fprintf(s.rl.Stdout(), "Enumeration failed: %v\n", err)
			return
		}
		fmt.Fprintf(s.rl.Stdout(), "No chip matches %q\n", args[0])
		return
	}

	chip := it.Chip()
	name, err := chip.Name()
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Chip has no usable name: %v\n", err)
		return
	}

	s.chip = &chip
	s.rl.SetPrompt(name + "> ")
	fmt.Fprintf(s.rl.Stdout(), "Using %s\n", name)
}

func (s *shell) cmdFeatures() {
	if s.chip == nil {
		fmt.Fprintln(s.rl.Stdout(), "No chip selected (use 'use <chip>' first)")
		return
	}

	it := s.chip.Features()
	for it.Next() {
		f := it.Feature()
		name, err := f.Name()
		if err != nil {
			continue
		}
		line := fmt.Sprintf("  %-12s %s", name, f.Kind())
		if label, err := f.Label(); err == nil && label != name {
			line += "  (" + label + ")"
		}
		fmt.Fprintln(s.rl.Stdout(), line)
	}
	if err := it.Err(); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Enumeration failed: %v\n", err)
	}
}

// cmdRead prints current values, either for every feature of the
// selected chip or for one named feature.
func (s *shell) cmdRead(args []string) {
	if s.chip == nil {
		fmt.Fprintln(s.rl.Stdout(), "No chip selected (use 'use <chip>' first)")
		return
	}
	var only string
	if len(args) > 0 {
		only = args[0]
	}

	found := false
	it := s.chip.Features()
	for it.Next() {
		f := it.Feature()
		name, err := f.Name()
		if err != nil {
			continue
		}
		if only != "" && name != only {
			continue
		}
		found = true
		s.printFeature(f, name)
	}
	if err := it.Err(); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Enumeration failed: %v\n", err)
		return
	}
	if only != "" && !found {
		fmt.Fprintf(s.rl.Stdout(), "No feature named %q\n", only)
	}
}

func (s *shell) printFeature(f sensors.Feature, name string) {
	header := name
	if label, err := f.Label(); err == nil && label != name {
		header += " (" + label + ")"
	}
	fmt.Fprintf(s.rl.Stdout(), "%s:\n", header)

	subs := f.Subfeatures()
	for subs.Next() {
		sf := subs.Subfeature()
		sfName, err := sf.Name()
		if err != nil {
			sfName = sf.Kind().String()
		}

		if !sf.Access().CanRead() {
			fmt.Fprintf(s.rl.Stdout(), "  %-24s (not readable, %s)\n", sfName+":", sf.Access())
			continue
		}
		v, err := sf.Value()
		if err != nil {
			fmt.Fprintf(s.rl.Stdout(), "  %-24s ERROR: %v\n", sfName+":", err)
			continue
		}
		fmt.Fprintf(s.rl.Stdout(), "  %-24s %s\n", sfName+":", v)
	}
	if err := subs.Err(); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Enumeration failed: %v\n", err)
	}
}

// cmdSet writes a value to a writable sub-feature of the selected
// chip, addressed by its sysfs-style name such as temp1_max.
func (s *shell) cmdSet(args []string) {
	if s.chip == nil {
		fmt.Fprintln(s.rl.Stdout(), "No chip selected (use 'use <chip>' first)")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: set <sub-feature> <value>")
		return
	}

	val, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid value %q: %v\n", args[1], err)
		return
	}

	sf, ok := s.findSubfeature(args[0])
	if !ok {
		fmt.Fprintf(s.rl.Stdout(), "No sub-feature named %q\n", args[0])
		return
	}

	if err := sf.SetRaw(val); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Write failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%s = %g\n", args[0], val)
}

func (s *shell) cmdSets() {
	if s.chip == nil {
		fmt.Fprintln(s.rl.Stdout(), "No chip selected (use 'use <chip>' first)")
		return
	}
	if err := s.chip.DoChipSets(); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Failed: %v\n", err)
		return
	}
	fmt.Fprintln(s.rl.Stdout(), "Configuration set statements applied")
}

func (s *shell) findSubfeature(name string) (sensors.Subfeature, bool) {
	features := s.chip.Features()
	for features.Next() {
		subs := features.Feature().Subfeatures()
		for subs.Next() {
			sf := subs.Subfeature()
			if sfName, err := sf.Name(); err == nil && sfName == name {
				return sf, true
			}
		}
	}
	return sensors.Subfeature{}, false
}

func (s *shell) parseMatch(args []string) (*sensors.Chip, func(), error) {
	if len(args) == 0 {
		return nil, func() {}, nil
	}
	pattern, err := s.h.ParseChipName(args[0])
	if err != nil {
		return nil, nil, err
	}
	return pattern, func() { _ = pattern.Close() }, nil
}
