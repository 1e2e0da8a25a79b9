//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/HudsonReynolds2/mapper/firmware/actuate"
	"github.com/HudsonReynolds2/mapper/firmware/control"
	"github.com/HudsonReynolds2/mapper/firmware/drive"
	"github.com/HudsonReynolds2/mapper/firmware/hal"
	"github.com/HudsonReynolds2/mapper/firmware/pad"
)

func main() {
	// We boot before the USB serial link is up; wait so the banner and
	// bring-up messages are visible.
	time.Sleep(2 * time.Second)
	println("mapper drive firmware", Version)

	// --- Hardware Setup ---
	err := linkUART.Configure(machine.UARTConfig{
		BaudRate: linkBaudRate,
		TX:       linkTX,
		RX:       linkRX,
	})
	if err != nil {
		haltWith("could not configure receiver UART:", err)
	}
	println("UART configured for receiver link.")

	board, err := hal.NewBoard(boardConfig)
	if err != nil {
		haltWith("could not configure drive outputs:", err)
	}
	println("PWM channels and direction register configured.")
	// --- End Hardware Setup ---

	robot := &control.Robot{
		Pad:         pad.NewAdapter(pad.NewReceiver(linkUART)),
		Drive:       drive.NewDrivetrain(board, wheelsReversed),
		Arm:         actuate.NewArm(board),
		Wrist:       actuate.NewWrist(board),
		Magnet:      actuate.NewMagnet(board),
		HoldTimeout: holdTimeout,
	}

	println("Entering control loops...")
	robot.Run(tickPeriod)
}

// haltWith parks the firmware while repeating the bring-up failure, so
// it stays readable on the serial console.
func haltWith(msg string, err error) {
	for {
		println(msg, err.Error())
		time.Sleep(time.Second)
	}
}
