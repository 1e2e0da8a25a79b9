package drive

import "github.com/HudsonReynolds2/mapper/firmware/hal"

// Direction codes for one motor's bit pair in the shared register.
type dirCode byte

const (
	dirOff dirCode = 0b00
	dirFwd dirCode = 0b01
	dirRev dirCode = 0b10
)

// bitPair holds the two register bit positions wired to one motor's
// H-bridge inputs. The shield routes the 74HC595 outputs to the bridges
// non-contiguously, so the pairs do not sit next to each other.
type bitPair struct {
	a, b uint8
}

var wheelBits = [hal.NumWheels]bitPair{
	hal.FrontLeft:  {2, 3},
	hal.FrontRight: {1, 4},
	hal.BackLeft:   {5, 7},
	hal.BackRight:  {0, 6},
}

// Drivetrain drives the four wheel motors: per-wheel PWM duty plus the
// shared direction register, with a shadow byte so each update touches
// only its own motor's bits.
type Drivetrain struct {
	board    hal.Board
	reversed [hal.NumWheels]bool
	dirs     byte
}

// NewDrivetrain returns a drivetrain for the board. A true reversed
// flag compensates for a motor wired with swapped leads by inverting
// its direction code before packing.
func NewDrivetrain(board hal.Board, reversed [hal.NumWheels]bool) *Drivetrain {
	return &Drivetrain{board: board, reversed: reversed}
}

// Apply writes all four wheel commands for this tick. The direction
// byte accumulates in place, so per-wheel updates within the tick never
// disturb the other motors' bits.
func (d *Drivetrain) Apply(speeds WheelSpeeds) {
	for w := hal.Wheel(0); w < hal.NumWheels; w++ {
		d.setWheel(w, speeds[w])
	}
}

func (d *Drivetrain) setWheel(w hal.Wheel, speed int16) {
	code := dirOff
	switch {
	case speed > 0:
		code = dirFwd
	case speed < 0:
		code = dirRev
	}
	if d.reversed[w] {
		code ^= 0b11
	}

	d.dirs = packDir(d.dirs, wheelBits[w], code)
	d.board.WriteDirections(d.dirs)

	duty := abs(speed)
	if duty > hal.MotorDutyMax {
		duty = hal.MotorDutyMax
	}
	d.board.SetMotorDuty(w, uint8(duty))
}

// Directions returns the current shadow of the direction register.
func (d *Drivetrain) Directions() byte {
	return d.dirs
}

// packDir clears one motor's two register bits and ORs in its new code,
// leaving every other motor's bits untouched.
func packDir(reg byte, bits bitPair, code dirCode) byte {
	reg &^= 1<<bits.a | 1<<bits.b
	if code&0b01 != 0 {
		reg |= 1 << bits.a
	}
	if code&0b10 != 0 {
		reg |= 1 << bits.b
	}
	return reg
}
