// Package drive turns filtered stick axes into the four mecanum wheel
// outputs: the kinematic mix, the speed caps, and the per-wheel PWM and
// direction-register writes.
package drive

import (
	"golang.org/x/exp/constraints"

	"github.com/HudsonReynolds2/mapper/firmware/hal"
)

// Speed caps in PWM duty counts. Precision mode trades top speed for
// finer stick resolution.
const (
	NormalSpeed    = 220
	PrecisionSpeed = 110
)

// WheelSpeeds is one signed speed command per wheel, indexed by
// hal.Wheel. Magnitudes never exceed the selected cap.
type WheelSpeeds [hal.NumWheels]int16

// Mix maps the three chassis axes onto the four wheels using standard
// mecanum kinematics. When any raw wheel value exceeds the cap, all
// four are scaled down uniformly so the commanded motion ratios are
// preserved exactly while the largest magnitude lands on the cap.
func Mix(forward, strafe, rotate int16, precision bool) WheelSpeeds {
	f, s, t := int32(forward), int32(strafe), int32(rotate)

	fl := f + s + t
	fr := f - s - t
	bl := f - s + t
	br := f + s - t

	limit := int32(NormalSpeed)
	if precision {
		limit = PrecisionSpeed
	}

	peak := maxAbs(fl, fr, bl, br)
	if peak > limit {
		fl = fl * limit / peak
		fr = fr * limit / peak
		bl = bl * limit / peak
		br = br * limit / peak
	}

	return WheelSpeeds{
		hal.FrontLeft:  int16(fl),
		hal.FrontRight: int16(fr),
		hal.BackLeft:   int16(bl),
		hal.BackRight:  int16(br),
	}
}

func maxAbs(vs ...int32) int32 {
	var peak int32
	for _, v := range vs {
		if a := abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
