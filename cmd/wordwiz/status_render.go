package main

import (
	"fmt"
	"io"
	"strings"
)

// checkState is the outcome shown in front of a report line.
type checkState int

const (
	checkNote checkState = iota
	checkPass
	checkWarn
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const checkNameWidth = 10

var checkMarks = [...]struct {
	mark  string
	color string
}{
	checkNote: {"·", ansiBlue},
	checkPass: {"✓", ansiGreen},
	checkWarn: {"!", ansiYellow},
}

// check is one line of a report such as `config validate` or the notice
// printed after --out:
//
//	✓ keyword    set
//	! config     not found; defaults were used
type check struct {
	state  checkState
	name   string
	detail string
}

func (c check) render(colorize bool) string {
	m := checkMarks[c.state]
	line := strings.TrimRight(fmt.Sprintf("%s %-*s %s", m.mark, checkNameWidth, c.name, c.detail), " ")
	if colorize {
		return m.color + line + ansiReset
	}
	return line
}

func writeChecks(w io.Writer, colorize bool, checks ...check) {
	for _, c := range checks {
		fmt.Fprintln(w, c.render(colorize))
	}
}
