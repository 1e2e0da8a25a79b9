package actuate

import "github.com/HudsonReynolds2/mapper/firmware/hal"

// MagnetDuty is the fixed coil PWM duty while the magnet is engaged.
const MagnetDuty = 200

// Magnet drives the pickup electromagnet from D-pad levels: left held
// engages, right held releases, anything else keeps the previous state.
type Magnet struct {
	board   hal.Board
	engaged bool
}

func NewMagnet(board hal.Board) *Magnet {
	m := &Magnet{board: board}
	m.board.SetMagnet(0, false)
	return m
}

// Update applies this tick's D-pad levels and rewrites the coil output.
func (m *Magnet) Update(engage, release bool) {
	switch {
	case engage && !release:
		if !m.engaged {
			println("magnet: engaged")
		}
		m.engaged = true
	case release && !engage:
		if m.engaged {
			println("magnet: released")
		}
		m.engaged = false
	}

	if m.engaged {
		m.board.SetMagnet(MagnetDuty, true)
	} else {
		m.board.SetMagnet(0, false)
	}
}

// Engaged reports the current coil state.
func (m *Magnet) Engaged() bool { return m.engaged }
