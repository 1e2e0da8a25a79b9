//go:build tinygo

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/servo"
)

// Wheel and electromagnet PWM frequency. The servo channels run at the
// standard 50 Hz set by the servo driver.
const motorPWMPeriod = uint64(time.Millisecond) // 1 kHz

// BoardConfig names the pins and PWM groups wired to the drive shield.
// Wheels sharing a PWM group must sit on different channels of it.
type BoardConfig struct {
	MotorPWM [NumWheels]servo.PWM
	MotorPin [NumWheels]machine.Pin

	ServoPWM [NumServos]servo.PWM
	ServoPin [NumServos]machine.Pin

	MagnetPWM servo.PWM
	MagnetPin machine.Pin
	MagnetDir machine.Pin

	// 74HC595 shift register carrying the motor-direction lines.
	SRData  machine.Pin
	SRClock machine.Pin
	SRLatch machine.Pin
}

type board struct {
	motorPWM [NumWheels]servo.PWM
	motorCh  [NumWheels]uint8

	servos [NumServos]servo.Servo

	magnetPWM servo.PWM
	magnetCh  uint8
	magnetDir machine.Pin

	sr shiftRegister
}

// NewBoard configures all output hardware and returns the live Board.
func NewBoard(cfg BoardConfig) (Board, error) {
	b := &board{magnetDir: cfg.MagnetDir}

	var configured []servo.PWM
	for w := range cfg.MotorPin {
		group := cfg.MotorPWM[w]
		if !pwmConfigured(configured, group) {
			if err := group.Configure(machine.PWMConfig{Period: motorPWMPeriod}); err != nil {
				return nil, err
			}
			configured = append(configured, group)
		}
		ch, err := group.Channel(cfg.MotorPin[w])
		if err != nil {
			return nil, err
		}
		b.motorPWM[w] = group
		b.motorCh[w] = ch
	}

	for i := range cfg.ServoPin {
		s, err := servo.New(cfg.ServoPWM[i], cfg.ServoPin[i])
		if err != nil {
			return nil, err
		}
		b.servos[i] = s
	}

	if err := cfg.MagnetPWM.Configure(machine.PWMConfig{Period: motorPWMPeriod}); err != nil {
		return nil, err
	}
	magnetCh, err := cfg.MagnetPWM.Channel(cfg.MagnetPin)
	if err != nil {
		return nil, err
	}
	b.magnetPWM = cfg.MagnetPWM
	b.magnetCh = magnetCh
	b.magnetDir.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.magnetDir.Low()

	b.sr = shiftRegister{data: cfg.SRData, clock: cfg.SRClock, latch: cfg.SRLatch}
	b.sr.configure()
	b.sr.write(0)

	return b, nil
}

func (b *board) SetMotorDuty(w Wheel, duty uint8) {
	top := b.motorPWM[w].Top()
	b.motorPWM[w].Set(b.motorCh[w], uint32(uint64(top)*uint64(duty)/MotorDutyMax))
}

func (b *board) WriteDirections(v byte) {
	b.sr.write(v)
}

func (b *board) SetServoPulse(s ServoChannel, micros uint16) {
	b.servos[s].SetMicroseconds(int16(micros))
}

func (b *board) SetMagnet(duty uint8, level bool) {
	top := b.magnetPWM.Top()
	b.magnetPWM.Set(b.magnetCh, uint32(uint64(top)*uint64(duty)/MotorDutyMax))
	b.magnetDir.Set(level)
}

func pwmConfigured(groups []servo.PWM, g servo.PWM) bool {
	for _, have := range groups {
		if have == g {
			return true
		}
	}
	return false
}

// shiftRegister bit-bangs one byte out to a 74HC595, MSB first. The
// outputs only change on the rising latch edge, so the register always
// presents a complete byte to the H-bridges.
type shiftRegister struct {
	data  machine.Pin
	clock machine.Pin
	latch machine.Pin
}

func (sr shiftRegister) configure() {
	sr.data.Configure(machine.PinConfig{Mode: machine.PinOutput})
	sr.clock.Configure(machine.PinConfig{Mode: machine.PinOutput})
	sr.latch.Configure(machine.PinConfig{Mode: machine.PinOutput})
	sr.clock.Low()
	sr.latch.High()
}

func (sr shiftRegister) write(v byte) {
	sr.latch.Low()
	for i := 7; i >= 0; i-- {
		sr.data.Set(v&(1<<uint(i)) != 0)
		sr.clock.High()
		sr.clock.Low()
	}
	sr.latch.High()
}
