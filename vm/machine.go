// Package vm provides an in-process canonical machine: it owns the
// persistent G-code model the interpreter seeds each block from, applies
// unit conversion, and tracks position without driving any hardware.
package vm

import (
	"sync"

	"github.com/mastercactapus/rs274/coord"
	"github.com/mastercactapus/rs274/gcode"
)

const mmPerInch = 25.4

// Machine implements gcode.Machine. Internal units are millimeters and
// machine coordinates; values cross the boundary in the block's units
// and work coordinates, like the canonical interface requires.
//
// Canonical targets are absolute work coordinates: distance mode is
// tracked as modal state but the interpreter's caller is expected to
// have resolved relative targets before they reach the canon layer.
type Machine struct {
	mx sync.Mutex

	pos coord.Point // machine position, mm
	wco coord.Point // work coordinate offset, mm

	nextAction gcode.Action
	motionMode gcode.Motion

	feed        float64
	inverseFeed bool
	speed       float64
	selected    int
	tool        int
	spindle     gcode.Spindle
	plane       gcode.Plane
	inches      bool
	absolute    bool
	dwelled     float64

	msgs []string
}

var _ gcode.Machine = &Machine{}
var _ gcode.MessageSink = &Machine{}

// State is a snapshot of the machine, shaped for JSON consumers.
type State struct {
	Status string
	MPos   coord.Point
	WPos   coord.Point
	WCO    coord.Point

	Feed    float64
	Speed   float64
	Tool    int
	Spindle string
	Inches  bool
	Dwelled float64
}

// NewMachine returns a Machine with grbl-style power-on defaults:
// millimeters, absolute distance, XY plane, traverse motion mode.
func NewMachine() *Machine {
	return &Machine{
		motionMode: gcode.MotionTraverse,
		plane:      gcode.PlaneXY,
		absolute:   true,
	}
}

// toMM converts a block-units value to millimeters.
func (c *Machine) toMM(v float64) float64 {
	if c.inches {
		return v * mmPerInch
	}
	return v
}

func (c *Machine) fromMM(v float64) float64 {
	if c.inches {
		return v / mmPerInch
	}
	return v
}

func (c *Machine) NextAction() gcode.Action {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.nextAction
}

func (c *Machine) MotionMode() gcode.Motion {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.motionMode
}

// Position returns the work-coordinate position of a in current length
// units, as the interpreter seeds block targets with it.
func (c *Machine) Position(a coord.Axis) float64 {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.fromMM(c.pos.Sub(c.wco).Get(a))
}

func (c *Machine) SetInverseFeedRate(on bool) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.inverseFeed = on
	return gcode.StatusOK
}

func (c *Machine) SetFeedRate(rate float64) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	if rate < 0 {
		return gcode.StatusInvalidFeedRate
	}
	if c.inverseFeed {
		// inverse time mode: rate is 1/min, no length conversion
		c.feed = rate
	} else {
		c.feed = c.toMM(rate)
	}
	return gcode.StatusOK
}

func (c *Machine) SetSpindleSpeed(rpm float64) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.speed = rpm
	return gcode.StatusOK
}

func (c *Machine) SelectTool(id int) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.selected = id
	return gcode.StatusOK
}

// ChangeTool loads tool id, or the selected tool when id is zero.
func (c *Machine) ChangeTool(id int) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	if id == 0 {
		id = c.selected
	}
	c.tool = id
	return gcode.StatusOK
}

func (c *Machine) StartSpindleCW() gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.spindle = gcode.SpindleCW
	return gcode.StatusOK
}

func (c *Machine) StartSpindleCCW() gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.spindle = gcode.SpindleCCW
	return gcode.StatusOK
}

func (c *Machine) StopSpindle() gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.spindle = gcode.SpindleOff
	return gcode.StatusOK
}

func (c *Machine) Dwell(seconds float64) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	if seconds < 0 {
		return gcode.StatusInvalidDwell
	}
	c.dwelled += seconds
	c.nextAction = gcode.ActionNone
	return gcode.StatusOK
}

func (c *Machine) SelectPlane(p gcode.Plane) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.plane = p
	return gcode.StatusOK
}

func (c *Machine) SetInches(on bool) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.inches = on
	return gcode.StatusOK
}

func (c *Machine) SetAbsolute(on bool) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.absolute = on
	return gcode.StatusOK
}

func (c *Machine) ReturnToHome() gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.pos = coord.Point{}
	c.nextAction = gcode.ActionNone
	return gcode.StatusOK
}

// SetOriginOffsets shifts the work coordinate system so the current
// position reads as (x, y, z). All three axes apply together.
func (c *Machine) SetOriginOffsets(x, y, z float64) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	given := coord.Point{X: c.toMM(x), Y: c.toMM(y), Z: c.toMM(z)}
	c.wco = c.pos.Sub(given)
	c.nextAction = gcode.ActionNone
	return gcode.StatusOK
}

func (c *Machine) moveTo(x, y, z float64, mode gcode.Motion) {
	w := coord.Point{X: c.toMM(x), Y: c.toMM(y), Z: c.toMM(z)}
	c.pos = c.wco.Add(w)
	c.motionMode = mode
	c.nextAction = gcode.ActionMotion
}

func (c *Machine) StraightTraverse(x, y, z float64) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.moveTo(x, y, z, gcode.MotionTraverse)
	return gcode.StatusOK
}

func (c *Machine) StraightFeed(x, y, z float64) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.moveTo(x, y, z, gcode.MotionFeed)
	return gcode.StatusOK
}

// ArcFeed moves to the target along an arc. A nonzero radius selects
// radius mode; otherwise the I/J/K offsets locate the center, and at
// least one of them must be nonzero.
func (c *Machine) ArcFeed(x, y, z, i, j, k, radius float64, dir gcode.Motion) gcode.Status {
	c.mx.Lock()
	defer c.mx.Unlock()
	if dir != gcode.MotionCWArc && dir != gcode.MotionCCWArc {
		return gcode.StatusInvalidArc
	}
	if radius == 0 && i == 0 && j == 0 && k == 0 {
		return gcode.StatusInvalidArc
	}
	c.moveTo(x, y, z, dir)
	return gcode.StatusOK
}

func (c *Machine) Message(text string) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.msgs = append(c.msgs, text)
}

// Messages returns the operator messages received so far.
func (c *Machine) Messages() []string {
	c.mx.Lock()
	defer c.mx.Unlock()
	return append([]string(nil), c.msgs...)
}

func spindleName(s gcode.Spindle) string {
	switch s {
	case gcode.SpindleCW:
		return "CW"
	case gcode.SpindleCCW:
		return "CCW"
	}
	return "Off"
}

// State returns a snapshot of the machine.
func (c *Machine) State() State {
	c.mx.Lock()
	defer c.mx.Unlock()
	return State{
		Status:  "Idle",
		MPos:    c.pos,
		WPos:    c.pos.Sub(c.wco),
		WCO:     c.wco,
		Feed:    c.feed,
		Speed:   c.speed,
		Tool:    c.tool,
		Spindle: spindleName(c.spindle),
		Inches:  c.inches,
		Dwelled: c.dwelled,
	}
}
