package pad

import "time"

// Receiver frame format. The wireless module streams one frame per
// controller report over UART:
//
//	0xA5 0x5A | slot flags dpad buttons[2] axX[2] axY[2] axRX[2] thr[2] brk[2] | ck[2]
//
// Multi-byte fields are little-endian. The checksum is 0xFFFF minus the
// sum of every preceding byte, iBus style. Flags bit 0 is the pairing
// state; a frame with it clear announces that the slot's controller
// unpaired.
const (
	frameHeader1 = 0xA5
	frameHeader2 = 0x5A

	framePayloadSize = 15
	frameSize        = 2 + framePayloadSize + 2

	flagPaired = 1 << 0
)

// MaxSlots is the number of pairing slots the receiver manages.
const MaxSlots = 4

// staleAfter is how long a silent slot stays connected. The module
// normally reports every 10 ms, so half a second of silence means the
// link is gone even without an unpair frame.
const staleAfter = 500 * time.Millisecond

// uart is the subset of machine.UART the receiver reads through.
type uart interface {
	Buffered() int
	ReadByte() (byte, error)
}

type rxState int

const (
	waitHeader1 rxState = iota
	waitHeader2
	readPayload
	readChecksumLow
	readChecksumHigh
)

type slotState struct {
	report   Report
	paired   bool
	fresh    bool
	lastSeen time.Time
}

// Receiver parses receiver frames from the UART byte stream and tracks
// per-slot controller state. It implements Link.
type Receiver struct {
	port uart
	now  func() time.Time

	state   rxState
	payload [framePayloadSize]byte
	index   int
	ckLow   byte

	slots [MaxSlots]slotState
}

func NewReceiver(port uart) *Receiver {
	return &Receiver{port: port, now: time.Now}
}

// Service drains all buffered UART bytes through the frame state
// machine. It never blocks: with nothing buffered it returns at once
// and the previous slot states stand.
func (r *Receiver) Service() {
	for r.port.Buffered() > 0 {
		b, err := r.port.ReadByte()
		if err != nil {
			return
		}
		r.feed(b)
	}
}

func (r *Receiver) Slots() int { return MaxSlots }

func (r *Receiver) Connected(slot int) bool {
	s := &r.slots[slot]
	return s.paired && r.now().Sub(s.lastSeen) < staleAfter
}

func (r *Receiver) Latest(slot int) (Report, bool) {
	s := &r.slots[slot]
	fresh := s.fresh
	s.fresh = false
	return s.report, fresh
}

func (r *Receiver) feed(b byte) {
	switch r.state {
	case waitHeader1:
		if b == frameHeader1 {
			r.state = waitHeader2
		}
	case waitHeader2:
		switch b {
		case frameHeader2:
			r.index = 0
			r.state = readPayload
		case frameHeader1:
			// A stray first-header byte ahead of a real frame; this
			// byte may itself start the frame, so keep waiting.
		default:
			r.state = waitHeader1
		}
	case readPayload:
		r.payload[r.index] = b
		r.index++
		if r.index == framePayloadSize {
			r.state = readChecksumLow
		}
	case readChecksumLow:
		r.ckLow = b
		r.state = readChecksumHigh
	case readChecksumHigh:
		want := uint16(r.ckLow) | uint16(b)<<8
		if want == r.checksum() {
			r.accept()
		} else {
			println("pad: frame checksum mismatch, dropped")
		}
		r.state = waitHeader1
	}
}

func (r *Receiver) checksum() uint16 {
	sum := uint16(frameHeader1) + uint16(frameHeader2)
	for _, b := range r.payload {
		sum += uint16(b)
	}
	return 0xFFFF - sum
}

func (r *Receiver) accept() {
	slot := int(r.payload[0])
	if slot >= MaxSlots {
		// Pairing request beyond the supported slots: drop it.
		println("pad: no free controller slot, dropped report for slot", slot)
		return
	}

	s := &r.slots[slot]
	if r.payload[1]&flagPaired == 0 {
		if s.paired {
			println("pad: controller unpaired, slot", slot)
		}
		s.paired = false
		s.fresh = false
		return
	}

	if !s.paired {
		println("pad: controller paired, slot", slot)
	}
	// Axes are clamped onto the documented range so a malformed frame
	// never reaches the mixer with an out-of-range magnitude.
	s.report = Report{
		Dpad:     r.payload[2],
		Buttons:  u16(r.payload[3], r.payload[4]),
		AxisX:    clampAxis(int16(u16(r.payload[5], r.payload[6]))),
		AxisY:    clampAxis(int16(u16(r.payload[7], r.payload[8]))),
		AxisRX:   clampAxis(int16(u16(r.payload[9], r.payload[10]))),
		Throttle: u16(r.payload[11], r.payload[12]),
		Brake:    u16(r.payload[13], r.payload[14]),
	}
	s.paired = true
	s.fresh = true
	s.lastSeen = r.now()
}

func u16(lo, hi byte) uint16 {
	return uint16(lo) | uint16(hi)<<8
}

func clampAxis(v int16) int16 {
	if v < AxisMin {
		return AxisMin
	}
	if v > AxisMax {
		return AxisMax
	}
	return v
}
