package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseBlock(t *testing.T, m *recorder, cmd string) *block {
	t.Helper()
	b, stat := New(m).parse(cmd)
	assert.Equal(t, StatusOK, stat)
	return b
}

func TestParse_Seeding(t *testing.T) {
	m := &recorder{
		nextAction: ActionMotion,
		motionMode: MotionFeed,
	}
	m.pos.X, m.pos.Y, m.pos.Z = 1, 2, 3

	b := parseBlock(t, m, "X10")

	assert.Equal(t, ActionMotion, b.nextAction)
	assert.Equal(t, MotionFeed, b.motionMode)
	assert.Equal(t, 10.0, b.target.X)
	assert.Equal(t, 2.0, b.target.Y)
	assert.Equal(t, 3.0, b.target.Z)
	assert.Empty(t, m.calls)
}

func TestParse_GCodes(t *testing.T) {
	data := []struct {
		cmd   string
		check func(t *testing.T, b *block)
	}{
		{"G0", func(t *testing.T, b *block) {
			assert.Equal(t, ActionMotion, b.nextAction)
			assert.Equal(t, MotionTraverse, b.motionMode)
		}},
		{"G1", func(t *testing.T, b *block) {
			assert.Equal(t, ActionMotion, b.nextAction)
			assert.Equal(t, MotionFeed, b.motionMode)
		}},
		{"G2", func(t *testing.T, b *block) { assert.Equal(t, MotionCWArc, b.motionMode) }},
		{"G3", func(t *testing.T, b *block) { assert.Equal(t, MotionCCWArc, b.motionMode) }},
		{"G4P2.5", func(t *testing.T, b *block) {
			assert.Equal(t, ActionDwell, b.nextAction)
			assert.Equal(t, opt[float64]{val: 2.5, set: true}, b.dwellTime)
		}},
		{"G17", func(t *testing.T, b *block) { assert.Equal(t, opt[Plane]{val: PlaneXY, set: true}, b.plane) }},
		{"G18", func(t *testing.T, b *block) { assert.Equal(t, opt[Plane]{val: PlaneXZ, set: true}, b.plane) }},
		{"G19", func(t *testing.T, b *block) { assert.Equal(t, opt[Plane]{val: PlaneYZ, set: true}, b.plane) }},
		{"G20", func(t *testing.T, b *block) { assert.Equal(t, opt[bool]{val: true, set: true}, b.inches) }},
		{"G21", func(t *testing.T, b *block) { assert.Equal(t, opt[bool]{val: false, set: true}, b.inches) }},
		{"G28", func(t *testing.T, b *block) { assert.Equal(t, ActionHome, b.nextAction) }},
		{"G30", func(t *testing.T, b *block) { assert.Equal(t, ActionHome, b.nextAction) }},
		{"G53", func(t *testing.T, b *block) { assert.True(t, b.absOverride.set) }},
		{"G80", func(t *testing.T, b *block) { assert.Equal(t, MotionCancel, b.motionMode) }},
		{"G90", func(t *testing.T, b *block) { assert.Equal(t, opt[bool]{val: true, set: true}, b.absolute) }},
		{"G91", func(t *testing.T, b *block) { assert.Equal(t, opt[bool]{val: false, set: true}, b.absolute) }},
		{"G92X1Y2Z3", func(t *testing.T, b *block) {
			assert.Equal(t, ActionSetOrigin, b.nextAction)
			assert.True(t, b.setOrigin.set)
		}},
		{"G93", func(t *testing.T, b *block) { assert.Equal(t, opt[bool]{val: true, set: true}, b.inverseFeed) }},
		{"G94", func(t *testing.T, b *block) { assert.Equal(t, opt[bool]{val: false, set: true}, b.inverseFeed) }},
		// accepted no-ops leave the block untouched
		{"G40", func(t *testing.T, b *block) { assert.Equal(t, &block{}, b) }},
		{"G49", func(t *testing.T, b *block) { assert.Equal(t, &block{}, b) }},
		{"G61", func(t *testing.T, b *block) { assert.Equal(t, &block{}, b) }},
	}

	for _, d := range data {
		t.Run(d.cmd, func(t *testing.T) {
			d.check(t, parseBlock(t, &recorder{}, d.cmd))
		})
	}
}

func TestParse_MCodes(t *testing.T) {
	data := []struct {
		cmd   string
		check func(t *testing.T, b *block)
	}{
		{"M0", func(t *testing.T, b *block) { assert.Equal(t, opt[Flow]{val: FlowStop, set: true}, b.flow) }},
		{"M1", func(t *testing.T, b *block) { assert.Equal(t, opt[Flow]{val: FlowStop, set: true}, b.flow) }},
		{"M2", func(t *testing.T, b *block) { assert.Equal(t, opt[Flow]{val: FlowEnd, set: true}, b.flow) }},
		{"M30", func(t *testing.T, b *block) { assert.Equal(t, opt[Flow]{val: FlowEnd, set: true}, b.flow) }},
		{"M60", func(t *testing.T, b *block) { assert.Equal(t, opt[Flow]{val: FlowEnd, set: true}, b.flow) }},
		{"M3", func(t *testing.T, b *block) { assert.Equal(t, opt[Spindle]{val: SpindleCW, set: true}, b.spindle) }},
		{"M4", func(t *testing.T, b *block) { assert.Equal(t, opt[Spindle]{val: SpindleCCW, set: true}, b.spindle) }},
		{"M5", func(t *testing.T, b *block) { assert.Equal(t, opt[Spindle]{val: SpindleOff, set: true}, b.spindle) }},
		{"M6", func(t *testing.T, b *block) { assert.Equal(t, opt[bool]{val: true, set: true}, b.changeTool) }},
		{"M7", func(t *testing.T, b *block) { assert.Equal(t, &block{}, b) }},
		{"M8", func(t *testing.T, b *block) { assert.Equal(t, &block{}, b) }},
		{"M9", func(t *testing.T, b *block) { assert.Equal(t, &block{}, b) }},
		{"M48", func(t *testing.T, b *block) { assert.Equal(t, &block{}, b) }},
		{"M49", func(t *testing.T, b *block) { assert.Equal(t, &block{}, b) }},
	}

	for _, d := range data {
		t.Run(d.cmd, func(t *testing.T) {
			d.check(t, parseBlock(t, &recorder{}, d.cmd))
		})
	}
}

func TestParse_ValueWords(t *testing.T) {
	m := &recorder{}
	b := parseBlock(t, m, "T3F120.5P1.5S9000X1Y2Z3I4J5K6R7N100")

	assert.Equal(t, opt[int]{val: 3, set: true}, b.tool)
	assert.Equal(t, opt[float64]{val: 120.5, set: true}, b.feedRate)
	assert.Equal(t, opt[float64]{val: 1.5, set: true}, b.dwellTime)
	assert.Equal(t, opt[float64]{val: 9000, set: true}, b.spindleSpeed)
	assert.Equal(t, 1.0, b.target.X)
	assert.Equal(t, 2.0, b.target.Y)
	assert.Equal(t, 3.0, b.target.Z)
	assert.Equal(t, 4.0, b.offset.X)
	assert.Equal(t, 5.0, b.offset.Y)
	assert.Equal(t, 6.0, b.offset.Z)
	assert.Equal(t, 7.0, b.radius)
}

func TestParse_ToolTruncates(t *testing.T) {
	b := parseBlock(t, &recorder{}, "T2.9")
	assert.Equal(t, opt[int]{val: 2, set: true}, b.tool)
}

func TestParse_LastWriteWins(t *testing.T) {
	b := parseBlock(t, &recorder{}, "X1X2F100F200")
	assert.Equal(t, 2.0, b.target.X)
	assert.Equal(t, opt[float64]{val: 200, set: true}, b.feedRate)
}

func TestParse_Unsupported(t *testing.T) {
	it := New(&recorder{})

	_, stat := it.parse("G999")
	assert.Equal(t, StatusUnsupportedStatement, stat)

	_, stat = it.parse("M99")
	assert.Equal(t, StatusUnsupportedStatement, stat)

	_, stat = it.parse("E5")
	assert.Equal(t, StatusUnsupportedStatement, stat)
}

func TestParse_StopsAtError(t *testing.T) {
	m := &recorder{}
	it := New(m)

	// F is never reached once the bad G code aborts the loop
	_, stat := it.parse("G1G999F100")
	assert.Equal(t, StatusUnsupportedStatement, stat)
	assert.Empty(t, m.calls)
}
