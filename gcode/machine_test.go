package gcode

import "github.com/mastercactapus/rs274/coord"

// recorder is a canonical machine that records every mutator call in
// order. Queries are served from plain fields and are not recorded.
type recorder struct {
	nextAction Action
	motionMode Motion
	pos        coord.Point

	calls []call
	fail  map[string]Status
	msgs  []string
}

type call struct {
	name string
	args []float64
}

var _ Machine = &recorder{}
var _ MessageSink = &recorder{}

func (r *recorder) rec(name string, args ...float64) Status {
	r.calls = append(r.calls, call{name: name, args: args})
	if stat, ok := r.fail[name]; ok {
		return stat
	}
	return StatusOK
}

func (r *recorder) names() []string {
	n := make([]string, len(r.calls))
	for i, c := range r.calls {
		n[i] = c.name
	}
	return n
}

func (r *recorder) NextAction() Action            { return r.nextAction }
func (r *recorder) MotionMode() Motion            { return r.motionMode }
func (r *recorder) Position(a coord.Axis) float64 { return r.pos.Get(a) }
func (r *recorder) Message(text string)           { r.msgs = append(r.msgs, text) }

func (r *recorder) SetInverseFeedRate(on bool) Status {
	return r.rec("setInverseFeedRate", b2f(on))
}
func (r *recorder) SetFeedRate(rate float64) Status    { return r.rec("setFeedRate", rate) }
func (r *recorder) SetSpindleSpeed(rpm float64) Status { return r.rec("setSpindleSpeed", rpm) }
func (r *recorder) SelectTool(id int) Status           { return r.rec("selectTool", float64(id)) }
func (r *recorder) ChangeTool(id int) Status           { return r.rec("changeTool", float64(id)) }
func (r *recorder) StartSpindleCW() Status             { return r.rec("startSpindleCW") }
func (r *recorder) StartSpindleCCW() Status            { return r.rec("startSpindleCCW") }
func (r *recorder) StopSpindle() Status                { return r.rec("stopSpindle") }
func (r *recorder) Dwell(seconds float64) Status       { return r.rec("dwell", seconds) }
func (r *recorder) SelectPlane(p Plane) Status         { return r.rec("selectPlane", float64(p)) }
func (r *recorder) SetInches(on bool) Status           { return r.rec("setInches", b2f(on)) }
func (r *recorder) SetAbsolute(on bool) Status         { return r.rec("setAbsolute", b2f(on)) }
func (r *recorder) ReturnToHome() Status               { return r.rec("returnToHome") }
func (r *recorder) SetOriginOffsets(x, y, z float64) Status {
	return r.rec("setOriginOffsets", x, y, z)
}
func (r *recorder) StraightTraverse(x, y, z float64) Status {
	return r.rec("straightTraverse", x, y, z)
}
func (r *recorder) StraightFeed(x, y, z float64) Status {
	return r.rec("straightFeed", x, y, z)
}
func (r *recorder) ArcFeed(x, y, z, i, j, k, radius float64, dir Motion) Status {
	return r.rec("arcFeed", x, y, z, i, j, k, radius, float64(dir))
}

func b2f(on bool) float64 {
	if on {
		return 1
	}
	return 0
}
