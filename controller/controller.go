// Package controller runs the line dispatch loop around the G-code
// interpreter: it feeds text lines to the interpreter one block at a
// time and surfaces statuses, operator messages, and machine state.
package controller

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/mastercactapus/rs274/gcode"
	"github.com/mastercactapus/rs274/vm"
)

type Controller struct {
	it *gcode.Interpreter
	m  *vm.Machine

	mx sync.Mutex

	state    chan vm.State
	messages chan string
}

func New(m *vm.Machine) *Controller {
	c := &Controller{
		m:        m,
		state:    make(chan vm.State),
		messages: make(chan string, 16),
	}
	c.it = gcode.New(m)
	c.it.SetMessageSink(c)
	return c
}

// Message implements gcode.MessageSink. Operator messages go to the
// machine's message log and, best effort, to the Messages channel.
func (c *Controller) Message(text string) {
	c.m.Message(text)
	select {
	case c.messages <- text:
	default:
	}
}

// State emits a machine snapshot after every dispatched block. Sends
// never block; a slow consumer just misses snapshots.
func (c *Controller) State() chan vm.State { return c.state }

// Messages emits operator messages from (MSG ...) comments.
func (c *Controller) Messages() chan string { return c.messages }

func (c *Controller) CurrentState() vm.State { return c.m.State() }

// RunLine dispatches a single block. Blank input returns StatusNoop
// without touching the interpreter. Blocks never overlap: a line runs
// to completion before the next may begin.
func (c *Controller) RunLine(line string) gcode.Status {
	if strings.TrimSpace(line) == "" {
		return gcode.StatusNoop
	}

	c.mx.Lock()
	stat := c.it.Run(line)
	c.mx.Unlock()

	select {
	case c.state <- c.m.State():
	default:
	}
	return stat
}

// Run dispatches every line of r in order, stopping at the first error
// status, which is reported together with the offending block text. A
// quit line ends the run cleanly.
func (c *Controller) Run(r io.Reader) error {
	scan := bufio.NewScanner(r)
	n := 0
	for scan.Scan() {
		n++
		line := scan.Text()
		switch stat := c.RunLine(line); stat {
		case gcode.StatusOK, gcode.StatusNoop:
		case gcode.StatusQuit:
			return nil
		default:
			return fmt.Errorf("line %d: %s: %q", n, stat, line)
		}
	}
	return scan.Err()
}

// Serve is Run for interactive sources like a serial console: bad lines
// are logged and the loop keeps going until quit or the source fails.
func (c *Controller) Serve(r io.Reader) error {
	scan := bufio.NewScanner(r)
	n := 0
	for scan.Scan() {
		n++
		line := scan.Text()
		stat := c.RunLine(line)
		if stat == gcode.StatusQuit {
			return nil
		}
		if stat != gcode.StatusOK && stat != gcode.StatusNoop {
			log.Printf("ERROR: line %d: %s: %q", n, stat, line)
		}
	}
	return scan.Err()
}
