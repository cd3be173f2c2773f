package gcode

import "github.com/mastercactapus/rs274/coord"

// Machine is the canonical-machine surface the interpreter drives. The
// machine owns all persistent G-code state: the interpreter reads the
// queries to seed each new block and invokes the mutators in RS274NGC
// table-8 order.
//
// Every mutator returns a Status; the first non-OK value aborts the
// remainder of the block's calls. Whether a call blocks until the
// operation completes or merely enqueues it is the machine's business —
// the interpreter assumes neither.
//
// Values are passed exactly as written in the block; the machine is
// responsible for unit conversion and distance-mode resolution.
type Machine interface {
	NextAction() Action
	MotionMode() Motion
	Position(coord.Axis) float64

	SetInverseFeedRate(on bool) Status
	SetFeedRate(rate float64) Status
	SetSpindleSpeed(rpm float64) Status
	SelectTool(id int) Status
	ChangeTool(id int) Status
	StartSpindleCW() Status
	StartSpindleCCW() Status
	StopSpindle() Status
	Dwell(seconds float64) Status
	SelectPlane(p Plane) Status
	SetInches(on bool) Status
	SetAbsolute(on bool) Status
	ReturnToHome() Status
	SetOriginOffsets(x, y, z float64) Status
	StraightTraverse(x, y, z float64) Status
	StraightFeed(x, y, z float64) Status
	ArcFeed(x, y, z, i, j, k, radius float64, dir Motion) Status
}

// MessageSink receives operator messages embedded in (MSG ...) comments.
// Machines that also implement MessageSink receive messages directly;
// otherwise messages go to the sink given to the Interpreter, or nowhere.
type MessageSink interface {
	Message(text string)
}
