// Package actuate holds the small stateful end-effector drivers: the
// D-pad latched arm servo, the trigger-stepped wrist servo, and the
// electromagnet. Each Update runs once per consumer tick.
package actuate

import (
	"golang.org/x/exp/constraints"

	"github.com/HudsonReynolds2/mapper/firmware/hal"
)

// Servo angle and pulse limits.
const (
	AngleMin = 0
	AngleMax = 180

	pulseMinUS = 500
	pulseMaxUS = 2500
)

// Wrist stepping parameters: one step per tick while exactly one
// trigger is held past the threshold.
const (
	TriggerThreshold = 300
	WristStepDeg     = 2
)

// pulseFor converts a commanded angle to a pulse width in microseconds.
func pulseFor(angle int16) uint16 {
	return uint16(pulseMinUS + int32(angle)*(pulseMaxUS-pulseMinUS)/AngleMax)
}

// Target is the latched command for the arm servo.
type Target uint8

const (
	Hold Target = iota
	TargetMin
	TargetMax
)

// Arm is the D-pad latched servo. A lone "up" press latches TargetMax,
// a lone "down" press latches TargetMin, and the latch survives any
// number of ticks with neither (or both) pressed. Boot position is 0°.
type Arm struct {
	board  hal.Board
	target Target
	angle  int16
}

func NewArm(board hal.Board) *Arm {
	a := &Arm{board: board, target: Hold, angle: AngleMin}
	a.board.SetServoPulse(hal.ArmServo, pulseFor(a.angle))
	return a
}

// Update latches a new target on the D-pad bits and drives the servo.
// With both or neither bit pressed no transition fires and the last
// written angle stands.
func (a *Arm) Update(up, down bool) {
	switch {
	case up && !down:
		if a.target != TargetMax {
			a.target = TargetMax
			println("arm: target 180")
		}
	case down && !up:
		if a.target != TargetMin {
			a.target = TargetMin
			println("arm: target 0")
		}
	}

	switch a.target {
	case TargetMax:
		a.angle = AngleMax
	case TargetMin:
		a.angle = AngleMin
	}
	a.board.SetServoPulse(hal.ArmServo, pulseFor(a.angle))
}

// Angle returns the last written angle.
func (a *Arm) Angle() int16 { return a.angle }

// Wrist is the trigger-stepped servo. Throttle past the threshold steps
// it up, brake past the threshold steps it down; both or neither leaves
// it in place. Boot position is 90° (center).
type Wrist struct {
	board hal.Board
	angle int16
}

func NewWrist(board hal.Board) *Wrist {
	w := &Wrist{board: board, angle: (AngleMin + AngleMax) / 2}
	w.board.SetServoPulse(hal.WristServo, pulseFor(w.angle))
	return w
}

// Update steps the wrist for this tick's trigger values.
func (w *Wrist) Update(throttle, brake uint16) {
	overThrottle := throttle > TriggerThreshold
	overBrake := brake > TriggerThreshold
	switch {
	case overThrottle && !overBrake:
		w.angle = clamp(w.angle+WristStepDeg, AngleMin, AngleMax)
	case overBrake && !overThrottle:
		w.angle = clamp(w.angle-WristStepDeg, AngleMin, AngleMax)
	}
	w.board.SetServoPulse(hal.WristServo, pulseFor(w.angle))
}

// Angle returns the current wrist angle.
func (w *Wrist) Angle() int16 { return w.angle }

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
