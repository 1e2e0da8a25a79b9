package main

import (
	"time"

	"github.com/HudsonReynolds2/mapper/firmware/hal"
)

// Version of the drive firmware.
const Version = "0.4.0"

// --- Loop timing ---
// Both the input loop and the drive loop tick at this period.
const tickPeriod = 20 * time.Millisecond

// --- Controller-loss policy ---
// Zero holds the last wheel command indefinitely when the link drops;
// a positive duration zeroes the wheel commands after that much
// silence.
const holdTimeout time.Duration = 0

// --- Chassis wiring ---
// The right-side motors are mirror mounted, so their direction codes
// are inverted before packing.
var wheelsReversed = [hal.NumWheels]bool{
	hal.FrontLeft:  false,
	hal.FrontRight: true,
	hal.BackLeft:   false,
	hal.BackRight:  true,
}
