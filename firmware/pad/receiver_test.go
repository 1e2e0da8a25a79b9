package pad

import (
	"testing"
	"time"
)

// byteQueue feeds scripted bytes to the receiver like a buffered UART.
type byteQueue struct {
	data []byte
}

func (q *byteQueue) Buffered() int { return len(q.data) }

func (q *byteQueue) ReadByte() (byte, error) {
	b := q.data[0]
	q.data = q.data[1:]
	return b, nil
}

func (q *byteQueue) push(bs []byte) { q.data = append(q.data, bs...) }

func u16bytes(v uint16) (byte, byte) { return byte(v), byte(v >> 8) }

// frame assembles one wire frame for a report, checksum included.
func frame(slot, flags byte, r Report) []byte {
	p := make([]byte, 0, frameSize)
	p = append(p, frameHeader1, frameHeader2, slot, flags, r.Dpad)
	for _, v := range []uint16{r.Buttons, uint16(r.AxisX), uint16(r.AxisY), uint16(r.AxisRX), r.Throttle, r.Brake} {
		lo, hi := u16bytes(v)
		p = append(p, lo, hi)
	}
	var sum uint16
	for _, b := range p {
		sum += uint16(b)
	}
	lo, hi := u16bytes(0xFFFF - sum)
	return append(p, lo, hi)
}

func TestReceiverParsesFrame(t *testing.T) {
	q := &byteQueue{}
	rx := NewReceiver(q)

	want := Report{
		AxisX:    -200,
		AxisY:    511,
		AxisRX:   -12,
		Throttle: 1000,
		Brake:    3,
		Dpad:     DpadUp | DpadLeft,
		Buttons:  ButtonPrecision | ButtonA,
	}
	q.push(frame(0, flagPaired, want))
	rx.Service()

	if !rx.Connected(0) {
		t.Fatal("slot 0 not connected after a paired frame")
	}
	got, fresh := rx.Latest(0)
	if !fresh {
		t.Fatal("report not fresh after a new frame")
	}
	if got != want {
		t.Errorf("report %+v, want %+v", got, want)
	}
	if _, fresh := rx.Latest(0); fresh {
		t.Error("report still fresh after it was consumed")
	}
}

func TestReceiverHandlesSplitFrames(t *testing.T) {
	q := &byteQueue{}
	rx := NewReceiver(q)

	full := frame(1, flagPaired, Report{AxisX: 321})
	q.push(full[:7])
	rx.Service()
	if rx.Connected(1) {
		t.Fatal("slot connected on a partial frame")
	}
	q.push(full[7:])
	rx.Service()

	got, fresh := rx.Latest(1)
	if !fresh || got.AxisX != 321 {
		t.Errorf("split frame not reassembled: %+v fresh=%v", got, fresh)
	}
}

func TestReceiverRejectsBadChecksum(t *testing.T) {
	q := &byteQueue{}
	rx := NewReceiver(q)

	bad := frame(0, flagPaired, Report{AxisX: 100})
	bad[5] ^= 0xFF // corrupt the payload, keep the old checksum
	q.push(bad)
	rx.Service()

	if rx.Connected(0) {
		t.Error("corrupted frame was accepted")
	}

	// The stream recovers on the next valid frame.
	q.push(frame(0, flagPaired, Report{AxisX: 100}))
	rx.Service()
	if !rx.Connected(0) {
		t.Error("receiver did not recover after a corrupted frame")
	}
}

func TestReceiverResyncsOnStrayHeaderByte(t *testing.T) {
	q := &byteQueue{}
	rx := NewReceiver(q)

	// Line noise emits a lone 0xA5 right before a real frame. The
	// frame's own header must still be recognized.
	q.push([]byte{frameHeader1})
	q.push(frame(0, flagPaired, Report{AxisX: 321}))
	rx.Service()

	got, fresh := rx.Latest(0)
	if !fresh || got.AxisX != 321 {
		t.Errorf("frame after a stray header byte was lost: %+v fresh=%v", got, fresh)
	}
}

func TestReceiverSlotGoesStale(t *testing.T) {
	q := &byteQueue{}
	rx := NewReceiver(q)
	clock := time.Now()
	rx.now = func() time.Time { return clock }

	q.push(frame(0, flagPaired, Report{AxisX: 100}))
	rx.Service()
	if !rx.Connected(0) {
		t.Fatal("slot 0 not connected after a paired frame")
	}

	clock = clock.Add(staleAfter - time.Millisecond)
	if !rx.Connected(0) {
		t.Error("slot went stale before the cutoff")
	}

	clock = clock.Add(2 * time.Millisecond)
	if rx.Connected(0) {
		t.Error("silent slot still connected past the cutoff")
	}

	// A new frame revives the link.
	q.push(frame(0, flagPaired, Report{AxisX: 100}))
	rx.Service()
	if !rx.Connected(0) {
		t.Error("slot did not reconnect on a fresh frame")
	}
}

func TestReceiverClampsAxesToRange(t *testing.T) {
	q := &byteQueue{}
	rx := NewReceiver(q)

	q.push(frame(0, flagPaired, Report{AxisX: -32768, AxisY: 32767, AxisRX: -600}))
	rx.Service()

	got, fresh := rx.Latest(0)
	if !fresh {
		t.Fatal("report not fresh after a new frame")
	}
	if got.AxisX != AxisMin || got.AxisY != AxisMax || got.AxisRX != AxisMin {
		t.Errorf("out-of-range axes not clamped: %+v", got)
	}
}

func TestReceiverDropsUnknownSlot(t *testing.T) {
	q := &byteQueue{}
	rx := NewReceiver(q)

	q.push(frame(MaxSlots+1, flagPaired, Report{}))
	rx.Service()
	for s := 0; s < MaxSlots; s++ {
		if rx.Connected(s) {
			t.Errorf("out-of-range slot report leaked into slot %d", s)
		}
	}
}

func TestReceiverUnpairFrame(t *testing.T) {
	q := &byteQueue{}
	rx := NewReceiver(q)

	q.push(frame(0, flagPaired, Report{AxisX: 50}))
	rx.Service()
	if !rx.Connected(0) {
		t.Fatal("slot 0 not connected")
	}

	q.push(frame(0, 0, Report{}))
	rx.Service()
	if rx.Connected(0) {
		t.Error("slot 0 still connected after an unpair frame")
	}
	if _, fresh := rx.Latest(0); fresh {
		t.Error("unpair frame left a fresh report behind")
	}
}
