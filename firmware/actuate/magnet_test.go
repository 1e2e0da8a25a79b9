package actuate

import "testing"

func TestMagnet(t *testing.T) {
	board := &fakeBoard{}
	m := NewMagnet(board)

	if m.Engaged() || board.magnetOn {
		t.Fatal("magnet engaged at boot")
	}

	m.Update(true, false)
	if !m.Engaged() || board.magnetDuty != MagnetDuty || !board.magnetOn {
		t.Errorf("engage: duty %d on %v", board.magnetDuty, board.magnetOn)
	}

	// Neither bit held: the coil keeps its last state.
	for i := 0; i < 10; i++ {
		m.Update(false, false)
	}
	if !m.Engaged() || board.magnetDuty != MagnetDuty {
		t.Error("magnet dropped out without a release command")
	}

	// Both bits held: no transition fires.
	m.Update(true, true)
	if !m.Engaged() {
		t.Error("conflicting bits released the magnet")
	}

	m.Update(false, true)
	if m.Engaged() || board.magnetDuty != 0 || board.magnetOn {
		t.Errorf("release: duty %d on %v", board.magnetDuty, board.magnetOn)
	}
}
