package control

import (
	"time"

	"github.com/HudsonReynolds2/mapper/firmware/actuate"
	"github.com/HudsonReynolds2/mapper/firmware/drive"
	"github.com/HudsonReynolds2/mapper/firmware/pad"
)

// Robot wires the input side to the actuators through the Store.
//
// HoldTimeout is the controller-loss policy: zero keeps the last wheel
// command forever when the link drops; a positive value zeroes the
// wheel commands after that much link silence. The servo latch and the
// magnet keep holding either way — only drive motion is a runaway
// hazard.
type Robot struct {
	Pad    *pad.Adapter
	Drive  *drive.Drivetrain
	Arm    *actuate.Arm
	Wrist  *actuate.Wrist
	Magnet *actuate.Magnet

	HoldTimeout time.Duration

	store    Store
	lastSeen time.Time
}

// PollTick runs one producer iteration: poll the controller and, on a
// fresh snapshot, recompute and store the full command set. Without a
// fresh snapshot the stored set stands and the consumer repeats it.
func (r *Robot) PollTick() {
	snap, ok := r.Pad.Poll()
	if !ok {
		if r.HoldTimeout > 0 && time.Since(r.lastSeen) > r.HoldTimeout {
			r.store.Put(Command{})
		}
		return
	}
	r.lastSeen = time.Now()

	r.store.Put(Command{
		Wheels:   drive.Mix(snap.Forward, snap.Strafe, snap.Rotate, snap.Precision()),
		Dpad:     snap.Dpad,
		Throttle: snap.Throttle,
		Brake:    snap.Brake,
	})
}

// DriveTick runs one consumer iteration: read the latest stored command
// set and drive every actuator, fresh snapshot or not.
func (r *Robot) DriveTick() {
	c := r.store.Get()

	r.Drive.Apply(c.Wheels)
	r.Arm.Update(c.Dpad&pad.DpadUp != 0, c.Dpad&pad.DpadDown != 0)
	r.Wrist.Update(c.Throttle, c.Brake)
	r.Magnet.Update(c.Dpad&pad.DpadLeft != 0, c.Dpad&pad.DpadRight != 0)
}

// Run starts both loops at the given period and never returns. The
// loops are independent: the consumer never waits on the producer, it
// always acts on the most recently stored command set.
func (r *Robot) Run(period time.Duration) {
	go runLoop(period, r.PollTick)
	runLoop(period, r.DriveTick)
}

func runLoop(period time.Duration, tick func()) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for range ticker.C {
		tick()
	}
}
