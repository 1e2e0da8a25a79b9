//go:build !tinygo

package main

// Host simulator build: runs the real control loops against a logging
// board and a scripted controller, so the firmware behavior can be
// exercised on a workstation without the robot.

import (
	"fmt"

	"github.com/HudsonReynolds2/mapper/firmware/actuate"
	"github.com/HudsonReynolds2/mapper/firmware/control"
	"github.com/HudsonReynolds2/mapper/firmware/drive"
	"github.com/HudsonReynolds2/mapper/firmware/hal"
	"github.com/HudsonReynolds2/mapper/firmware/pad"
)

func main() {
	fmt.Println("mapper drive firmware", Version, "(host simulator)")

	board := &simBoard{}
	robot := &control.Robot{
		Pad:         pad.NewAdapter(&scriptedLink{}),
		Drive:       drive.NewDrivetrain(board, wheelsReversed),
		Arm:         actuate.NewArm(board),
		Wrist:       actuate.NewWrist(board),
		Magnet:      actuate.NewMagnet(board),
		HoldTimeout: holdTimeout,
	}
	robot.Run(tickPeriod)
}

// simBoard logs output changes instead of driving hardware.
type simBoard struct {
	duty   [hal.NumWheels]uint8
	dirs   byte
	pulse  [hal.NumServos]uint16
	magnet uint8
	level  bool
}

func (b *simBoard) SetMotorDuty(w hal.Wheel, duty uint8) {
	if b.duty[w] != duty {
		b.duty[w] = duty
		fmt.Printf("motor %d duty %d\n", w, duty)
	}
}

func (b *simBoard) WriteDirections(v byte) {
	if b.dirs != v {
		b.dirs = v
		fmt.Printf("directions %08b\n", v)
	}
}

func (b *simBoard) SetServoPulse(s hal.ServoChannel, micros uint16) {
	if b.pulse[s] != micros {
		b.pulse[s] = micros
		fmt.Printf("servo %d pulse %dus\n", s, micros)
	}
}

func (b *simBoard) SetMagnet(duty uint8, level bool) {
	if b.magnet != duty || b.level != level {
		b.magnet = duty
		b.level = level
		fmt.Printf("magnet duty %d level %v\n", duty, level)
	}
}

// scriptedLink replays a fixed maneuver sequence on slot 0.
type scriptedLink struct {
	tick int
}

func (l *scriptedLink) Service() { l.tick++ }

func (l *scriptedLink) Slots() int { return 1 }

func (l *scriptedLink) Connected(int) bool { return true }

func (l *scriptedLink) Latest(int) (pad.Report, bool) {
	var r pad.Report
	switch {
	case l.tick < 50: // forward
		r.AxisY = -400
	case l.tick < 100: // strafe right
		r.AxisX = 400
	case l.tick < 150: // rotate, precision cap
		r.AxisRX = 400
		r.Buttons = pad.ButtonPrecision
	case l.tick < 175: // raise the arm
		r.Dpad = pad.DpadUp
	case l.tick < 225: // extend the wrist
		r.Throttle = 600
	case l.tick < 250: // grab
		r.Dpad = pad.DpadLeft
	case l.tick < 275: // drop
		r.Dpad = pad.DpadRight
	}
	return r, true
}
