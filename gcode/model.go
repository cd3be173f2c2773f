package gcode

import "github.com/mastercactapus/rs274/coord"

// Action selects the terminal operation class of a block.
type Action uint8

const (
	ActionNone Action = iota
	ActionMotion
	ActionDwell
	ActionHome
	ActionSetOrigin
)

// Motion is the RS274 modal group 1 motion mode.
type Motion uint8

const (
	MotionCancel Motion = iota
	MotionTraverse
	MotionFeed
	MotionCWArc
	MotionCCWArc
)

// Plane is the active arc plane, modal group 2.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// Spindle is the requested spindle rotation state.
type Spindle uint8

const (
	SpindleOff Spindle = iota
	SpindleCW
	SpindleCCW
)

// Flow is the program-flow request of a block (M0/M1/M2/M30/M60).
type Flow uint8

const (
	FlowStop Flow = iota
	FlowEnd
)

// opt is a field that is either unset or explicitly set by the current
// block. A zero value written by the block still counts as set: F0 is a
// legitimate explicit feed rate.
type opt[T any] struct {
	val T
	set bool
}

func (o *opt[T]) assign(v T) {
	o.val = v
	o.set = true
}

// or returns the value if set, def otherwise.
func (o opt[T]) or(def T) T {
	if o.set {
		return o.val
	}
	return def
}

// block is the proposed next machine state assembled from one command
// string. Every opt field starts unset; nextAction, motionMode, and
// target are seeded from the current machine state, so a block that
// omits an axis word implicitly targets the current position.
//
// offset and radius are passed to the machine as written, zero when
// omitted; a nonzero radius selects radius-mode arcs.
type block struct {
	nextAction Action
	motionMode Motion

	inverseFeed  opt[bool]
	feedRate     opt[float64]
	spindleSpeed opt[float64]
	tool         opt[int]
	changeTool   opt[bool]
	spindle      opt[Spindle]
	dwellTime    opt[float64]
	plane        opt[Plane]
	inches       opt[bool]
	absolute     opt[bool]
	absOverride  opt[bool]
	setOrigin    opt[bool]
	flow         opt[Flow]

	target coord.Point
	offset coord.Point
	radius float64
}
