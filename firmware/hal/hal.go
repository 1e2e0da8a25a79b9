// Package hal abstracts the drive electronics so the control logic can
// run against real hardware or a test double. Platform code constructs
// the Board; everything above it only sees duty cycles, pulse widths
// and the packed motor-direction register.
package hal

// Wheel identifies one drive motor position on the chassis.
type Wheel uint8

const (
	FrontLeft Wheel = iota
	FrontRight
	BackLeft
	BackRight

	NumWheels = 4
)

// ServoChannel identifies one of the servo outputs.
type ServoChannel uint8

const (
	ArmServo ServoChannel = iota
	WristServo

	NumServos = 2
)

// MotorDutyMax is the full-scale duty for the 8-bit wheel PWM channels.
// Wheel speed commands are expressed directly in this domain.
const MotorDutyMax = 255

// Board is the complete output surface of the drive electronics: four
// wheel PWM channels, the shared direction register broadcast to all
// four motor H-bridges, two servo channels and the electromagnet.
//
// Writes have no failure path; the hardware register and PWM compare
// writes always succeed once the board is configured.
type Board interface {
	// SetMotorDuty sets the PWM duty for one wheel, 0..MotorDutyMax.
	SetMotorDuty(w Wheel, duty uint8)

	// WriteDirections replaces the packed motor-direction byte. The
	// register holds all four motors' direction lines and is shifted
	// out as one unit.
	WriteDirections(b byte)

	// SetServoPulse sets a servo channel's pulse width in microseconds.
	SetServoPulse(s ServoChannel, micros uint16)

	// SetMagnet drives the electromagnet PWM duty and its direction
	// level together.
	SetMagnet(duty uint8, level bool)
}
