package gcode

import "github.com/mastercactapus/rs274/coord"

// Interpreter parses RS274/NGC blocks and drives a canonical Machine.
// It holds no state of its own between blocks, so a single Interpreter
// may be reused for any number of lines.
type Interpreter struct {
	m   Machine
	msg MessageSink
}

// New creates an Interpreter for m. If m implements MessageSink it also
// receives operator messages.
func New(m Machine) *Interpreter {
	it := &Interpreter{m: m}
	if s, ok := m.(MessageSink); ok {
		it.msg = s
	}
	return it
}

// SetMessageSink redirects operator messages to s.
func (it *Interpreter) SetMessageSink(s MessageSink) { it.msg = s }

// Run interprets one line of G-code: normalize, parse, then apply the
// planned canonical calls in execution order. A line starting with the
// block-delete slash, or containing only comments, is a successful no-op.
// A leading Q ends G-code mode and returns StatusQuit.
//
// Parsing always completes (or fails) before the first canonical call,
// so a malformed block never partially mutates the machine. Once
// execution begins, calls already made are not rolled back.
func (it *Interpreter) Run(line string) Status {
	cmd, msg, hasMsg := normalize(line)
	if hasMsg && it.msg != nil {
		it.msg.Message(msg)
	}
	if cmd == "" {
		return StatusOK
	}
	if cmd[0] == 'Q' {
		return StatusQuit
	}

	b, stat := it.parse(cmd)
	if !stat.OK() {
		return stat
	}
	return apply(it.m, plan(b))
}

// parse builds the proposed next block state from a normalized command
// string. The first bad statement aborts the block; whatever was written
// before the error is discarded with the block.
func (it *Interpreter) parse(cmd string) (*block, Status) {
	b := &block{
		nextAction: it.m.NextAction(),
		motionMode: it.m.MotionMode(),
	}
	for _, a := range coord.Axes {
		b.target.Set(a, it.m.Position(a))
	}

	r := statementReader{buf: cmd}
	for {
		st, ok, stat := r.next()
		if !stat.OK() {
			return nil, stat
		}
		if !ok {
			return b, StatusOK
		}
		if stat = b.dispatch(st); !stat.OK() {
			return nil, stat
		}
	}
}

// dispatch applies one statement to the block. Within a block, last
// write wins for every field, including the modal groups.
func (b *block) dispatch(st statement) Status {
	switch st.letter {
	case 'G':
		return b.gCode(int(st.value))
	case 'M':
		return b.mCode(int(st.value))
	case 'T':
		b.tool.assign(int(st.value))
	case 'F':
		b.feedRate.assign(st.value)
	case 'P':
		b.dwellTime.assign(st.value)
	case 'S':
		b.spindleSpeed.assign(st.value)
	case 'X':
		b.target.X = st.value
	case 'Y':
		b.target.Y = st.value
	case 'Z':
		b.target.Z = st.value
	case 'I':
		b.offset.X = st.value
	case 'J':
		b.offset.Y = st.value
	case 'K':
		b.offset.Z = st.value
	case 'R':
		b.radius = st.value
	case 'N':
		// line numbers are ignored
	default:
		return StatusUnsupportedStatement
	}
	return StatusOK
}

func (b *block) setMotion(m Motion) {
	b.motionMode = m
	b.nextAction = ActionMotion
}

func (b *block) gCode(code int) Status {
	switch code {
	case 0:
		b.setMotion(MotionTraverse)
	case 1:
		b.setMotion(MotionFeed)
	case 2:
		b.setMotion(MotionCWArc)
	case 3:
		b.setMotion(MotionCCWArc)
	case 4:
		b.nextAction = ActionDwell
	case 17:
		b.plane.assign(PlaneXY)
	case 18:
		b.plane.assign(PlaneXZ)
	case 19:
		b.plane.assign(PlaneYZ)
	case 20:
		b.inches.assign(true)
	case 21:
		b.inches.assign(false)
	case 28, 30:
		b.nextAction = ActionHome
	case 40, 49, 61:
		// cutter comp cancel, tool length comp cancel, exact path:
		// accepted without effect
	case 53:
		b.absOverride.assign(true)
	case 80:
		b.motionMode = MotionCancel
	case 90:
		b.absolute.assign(true)
	case 91:
		b.absolute.assign(false)
	case 92:
		b.nextAction = ActionSetOrigin
		b.setOrigin.assign(true)
	case 93:
		b.inverseFeed.assign(true)
	case 94:
		b.inverseFeed.assign(false)
	default:
		return StatusUnsupportedStatement
	}
	return StatusOK
}

func (b *block) mCode(code int) Status {
	switch code {
	case 0, 1:
		b.flow.assign(FlowStop)
	case 2, 30, 60:
		b.flow.assign(FlowEnd)
	case 3:
		b.spindle.assign(SpindleCW)
	case 4:
		b.spindle.assign(SpindleCCW)
	case 5:
		b.spindle.assign(SpindleOff)
	case 6:
		b.changeTool.assign(true)
	case 7, 8, 9:
		// coolant control: accepted without effect
	case 48, 49:
		// feed and speed overrides: accepted without effect
	default:
		return StatusUnsupportedStatement
	}
	return StatusOK
}
