//go:build tinygo

package main

import (
	"machine"

	"tinygo.org/x/drivers/servo"

	"github.com/HudsonReynolds2/mapper/firmware/hal"
)

// --- Receiver link ---
const linkBaudRate = 115200

var (
	linkUART = machine.UART0
	linkTX   = machine.UART0_TX_PIN
	linkRX   = machine.UART0_RX_PIN
)

// --- Drive shield ---
// Wheels pair up on PWM slices 6 and 7; each servo gets its own slice
// so the 50 Hz servo period never collides with the 1 kHz motor PWM.
var boardConfig = hal.BoardConfig{
	MotorPWM: [hal.NumWheels]servo.PWM{
		hal.FrontLeft:  machine.PWM6,
		hal.FrontRight: machine.PWM6,
		hal.BackLeft:   machine.PWM7,
		hal.BackRight:  machine.PWM7,
	},
	MotorPin: [hal.NumWheels]machine.Pin{
		hal.FrontLeft:  machine.GP12,
		hal.FrontRight: machine.GP13,
		hal.BackLeft:   machine.GP14,
		hal.BackRight:  machine.GP15,
	},

	ServoPWM: [hal.NumServos]servo.PWM{
		hal.ArmServo:   machine.PWM0,
		hal.WristServo: machine.PWM1,
	},
	ServoPin: [hal.NumServos]machine.Pin{
		hal.ArmServo:   machine.GP16,
		hal.WristServo: machine.GP18,
	},

	MagnetPWM: machine.PWM2,
	MagnetPin: machine.GP20,
	MagnetDir: machine.GP21,

	SRData:  machine.GP2,
	SRClock: machine.GP3,
	SRLatch: machine.GP4,
}
