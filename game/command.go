package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/gridstorm/core"
)

// Verb is the action requested by an input line
type Verb int

const (
	VerbNone Verb = iota
	VerbSpawn
	VerbKill
	VerbClear
	VerbQuit
)

// Command is one parsed input line. Input text is opaque to the core;
// this interpretation lives entirely in the driver.
type Command struct {
	Verb  Verb
	Count int         // VerbSpawn
	ID    core.Entity // VerbKill
}

// ParseCommand interprets one line of user input.
// Grammar:
//
//	spawn [n]   spawn n drifting glyphs (default 1)
//	kill <id>   kill the entity with that id
//	clear       kill every entity
//	quit | q    stop the driver
//
// Blank lines parse to VerbNone without error.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return Command{Verb: VerbNone}, nil
	}

	switch fields[0] {
	case "spawn":
		n := 1
		if len(fields) > 1 {
			v, err := strconv.Atoi(fields[1])
			if err != nil || v < 1 {
				return Command{}, fmt.Errorf("spawn: bad count %q", fields[1])
			}
			n = v
		}
		return Command{Verb: VerbSpawn, Count: n}, nil

	case "kill":
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("kill: missing entity id")
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return Command{}, fmt.Errorf("kill: bad entity id %q", fields[1])
		}
		return Command{Verb: VerbKill, ID: core.Entity(v)}, nil

	case "clear":
		return Command{Verb: VerbClear}, nil

	case "quit", "q":
		return Command{Verb: VerbQuit}, nil

	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}
