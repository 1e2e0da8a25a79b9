// Package pad reads the wireless game controller. The Adapter turns raw
// per-slot reports from the receiver into dead-zone filtered snapshots;
// at most one controller is acted on per tick even when several are
// paired.
package pad

// Report value ranges, matching the receiver's report format.
const (
	AxisMin    = -511
	AxisMax    = 512
	TriggerMax = 1023

	// DeadZone clamps axis values below this magnitude to exactly zero
	// so stick centering drift never commands motion.
	DeadZone = 200
)

// D-pad bits as reported by the controller.
const (
	DpadUp byte = 1 << iota
	DpadDown
	DpadRight
	DpadLeft
)

// Button bits. ButtonPrecision selects the reduced speed cap while held.
const (
	ButtonA uint16 = 1 << iota
	ButtonB
	ButtonX
	ButtonY
	ButtonL1
	ButtonR1
	ButtonStickL
	ButtonStickR
)

const ButtonPrecision = ButtonR1

// Report is one raw controller state as delivered by the link.
type Report struct {
	AxisX  int16 // left stick, right positive
	AxisY  int16 // left stick, down positive
	AxisRX int16 // right stick, right positive

	Throttle uint16
	Brake    uint16

	Dpad    byte
	Buttons uint16
}

// Snapshot is the filtered controller state consumed by the control
// loops. It is rebuilt wholesale from each fresh report.
type Snapshot struct {
	Forward int16
	Strafe  int16
	Rotate  int16

	Throttle uint16
	Brake    uint16

	Dpad    byte
	Buttons uint16
}

// Precision reports whether the reduced speed cap is selected.
func (s Snapshot) Precision() bool {
	return s.Buttons&ButtonPrecision != 0
}

// Link is the wireless receiver: a fixed number of pairing slots, each
// holding the latest report from its controller.
type Link interface {
	// Service ingests pending link traffic. Called once per poll.
	Service()

	// Connected reports whether a controller is paired on the slot.
	Connected(slot int) bool

	// Latest returns the slot's most recent report and whether it is
	// new since the previous Latest call for that slot.
	Latest(slot int) (Report, bool)

	// Slots returns the number of pairing slots.
	Slots() int
}

// Adapter polls the link and produces snapshots from a single stable
// slot. While the chosen controller stays connected other slots are
// ignored, so two paired controllers never alternate tick-to-tick.
type Adapter struct {
	link Link
	slot int
}

func NewAdapter(link Link) *Adapter {
	return &Adapter{link: link, slot: -1}
}

// Poll services the link and returns the next snapshot. It returns
// false when no controller is connected or the active controller has
// produced no new report; callers keep their last command in that case.
func (a *Adapter) Poll() (Snapshot, bool) {
	a.link.Service()

	if a.slot < 0 || !a.link.Connected(a.slot) {
		if a.slot >= 0 {
			println("pad: controller lost, slot", a.slot)
		}
		a.slot = a.pickSlot()
		if a.slot < 0 {
			return Snapshot{}, false
		}
		println("pad: controller active, slot", a.slot)
	}

	r, fresh := a.link.Latest(a.slot)
	if !fresh {
		return Snapshot{}, false
	}

	return Snapshot{
		// Stick up reports a negative Y; forward is positive here.
		Forward:  applyDeadZone(-r.AxisY),
		Strafe:   applyDeadZone(r.AxisX),
		Rotate:   applyDeadZone(r.AxisRX),
		Throttle: r.Throttle,
		Brake:    r.Brake,
		Dpad:     r.Dpad,
		Buttons:  r.Buttons,
	}, true
}

func (a *Adapter) pickSlot() int {
	for slot := 0; slot < a.link.Slots(); slot++ {
		if a.link.Connected(slot) {
			return slot
		}
	}
	return -1
}

func applyDeadZone(v int16) int16 {
	if v > -DeadZone && v < DeadZone {
		return 0
	}
	return v
}
