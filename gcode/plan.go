package gcode

// op identifies one canonical-machine call in a block's execution plan.
type op uint8

const (
	opInverseFeedRate op = iota
	opFeedRate
	opSpindleSpeed
	opSelectTool
	opChangeTool
	opSpindleCW
	opSpindleCCW
	opSpindleStop
	opDwell
	opSelectPlane
	opLengthUnits
	opDistanceMode
	opHome
	opOriginOffsets
	opTraverse
	opFeed
	opArc
)

// step is one planned canonical call with its arguments already bound.
type step struct {
	op   op
	call func(Machine) Status
}

// plan lays out the canonical calls for b in order of execution per
// RS274NGC_3 table 8. Planning is pure: nothing is invoked until apply
// walks the result.
//
// The motion dispatch, when present, is always the final step of a
// block. Coolant, overrides, cutter and length compensation, coordinate
// system selection, path control mode, and retract mode keep their slots
// in the ordering below but plan no calls until the canonical machine
// grows support for them.
func plan(b *block) []step {
	var steps []step
	add := func(o op, call func(Machine) Status) {
		steps = append(steps, step{op: o, call: call})
	}

	if b.inverseFeed.set {
		on := b.inverseFeed.val
		add(opInverseFeedRate, func(m Machine) Status { return m.SetInverseFeedRate(on) })
	}
	if b.feedRate.set {
		rate := b.feedRate.val
		add(opFeedRate, func(m Machine) Status { return m.SetFeedRate(rate) })
	}
	if b.spindleSpeed.set {
		rpm := b.spindleSpeed.val
		add(opSpindleSpeed, func(m Machine) Status { return m.SetSpindleSpeed(rpm) })
	}
	if b.tool.set {
		id := b.tool.val
		add(opSelectTool, func(m Machine) Status { return m.SelectTool(id) })
	}
	if b.changeTool.set {
		id := b.tool.or(0)
		add(opChangeTool, func(m Machine) Status { return m.ChangeTool(id) })
	}
	if b.spindle.set {
		switch b.spindle.val {
		case SpindleCW:
			add(opSpindleCW, Machine.StartSpindleCW)
		case SpindleCCW:
			add(opSpindleCCW, Machine.StartSpindleCCW)
		default:
			// fail-safe: anything unrecognized stops the spindle
			add(opSpindleStop, Machine.StopSpindle)
		}
	}

	// coolant on or off goes here
	// enable or disable overrides goes here

	if b.nextAction == ActionDwell {
		seconds := b.dwellTime.or(0)
		add(opDwell, func(m Machine) Status { return m.Dwell(seconds) })
	}
	if b.plane.set {
		p := b.plane.val
		add(opSelectPlane, func(m Machine) Status { return m.SelectPlane(p) })
	}
	if b.inches.set {
		on := b.inches.val
		add(opLengthUnits, func(m Machine) Status { return m.SetInches(on) })
	}

	// cutter radius compensation goes here
	// cutter length compensation goes here
	// coordinate system selection goes here
	// path control mode goes here

	if b.absolute.set {
		on := b.absolute.val
		add(opDistanceMode, func(m Machine) Status { return m.SetAbsolute(on) })
	}

	// retract mode goes here

	if b.nextAction == ActionHome {
		add(opHome, Machine.ReturnToHome)
	}
	if b.nextAction == ActionSetOrigin {
		x, y, z := b.target.X, b.target.Y, b.target.Z
		add(opOriginOffsets, func(m Machine) Status { return m.SetOriginOffsets(x, y, z) })
	}

	if b.nextAction == ActionMotion {
		x, y, z := b.target.X, b.target.Y, b.target.Z
		switch b.motionMode {
		case MotionTraverse:
			add(opTraverse, func(m Machine) Status { return m.StraightTraverse(x, y, z) })
		case MotionFeed:
			add(opFeed, func(m Machine) Status { return m.StraightFeed(x, y, z) })
		case MotionCWArc, MotionCCWArc:
			i, j, k := b.offset.X, b.offset.Y, b.offset.Z
			r, dir := b.radius, b.motionMode
			add(opArc, func(m Machine) Status { return m.ArcFeed(x, y, z, i, j, k, r, dir) })
		}
	}

	return steps
}

// apply drives m through the plan in order, stopping at the first
// non-OK status. Calls already made stay made.
func apply(m Machine, steps []step) Status {
	for _, s := range steps {
		if stat := s.call(m); !stat.OK() {
			return stat
		}
	}
	return StatusOK
}
