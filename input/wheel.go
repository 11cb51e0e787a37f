package input

import (
	"time"
)

const (
	binaryDetectCnt = 4
	initialMaxDelta = 10
	maxInterval     = 100 * time.Millisecond

	// WheelUnit is the normalized delta of one wheel notch.
	WheelUnit = 1
)

type wheelType int

const (
	wheelTypeNone wheelType = iota
	wheelTypeBinary
	wheelTypeContinuous
)

// WheelNormalizer maps wheel deltas from notched mice and high resolution
// touch pads onto a common scale. Notched wheels, which repeat the same
// absolute delta, are reduced to ±WheelUnit per event. Continuous deltas are
// scaled by the recent peak rate.
type WheelNormalizer struct {
	ready    bool
	eventCnt int

	wheelType wheelType
	maxDelta  float64

	binaryCnt int
	binaryAbs float64

	timePrev time.Time
	dSum     float64
}

// Normalize returns the normalized delta of the wheel event at t and whether
// enough events were observed to classify the device.
func (n *WheelNormalizer) Normalize(d float64, t time.Time) (float64, bool) {
	if n.eventCnt > binaryDetectCnt {
		n.ready = true
	} else {
		n.eventCnt++
	}

	dAbs := abs(d)
	if dAbs == 0 {
		return 0, n.ready
	}

	if n.binaryAbs == dAbs {
		n.binaryCnt++
	} else {
		n.binaryCnt = 0
	}
	n.binaryAbs = dAbs

	typePrev := n.wheelType
	if n.binaryCnt > binaryDetectCnt {
		n.wheelType = wheelTypeBinary
	} else {
		n.wheelType = wheelTypeContinuous
	}
	if n.wheelType != typePrev {
		n.maxDelta = initialMaxDelta
	}

	n.dSum += d
	if dt := t.Sub(n.timePrev); dt > 0 {
		if dt > maxInterval {
			dt = maxInterval
		}
		dpsAbs := abs(n.dSum / dt.Seconds())
		n.dSum = 0
		n.timePrev = t

		if n.maxDelta < dpsAbs {
			// LPF to suppress spikes
			n.maxDelta = n.maxDelta*0.5 + dpsAbs*0.5
		}
		n.maxDelta *= 0.95
	}
	if n.maxDelta < 1 {
		n.maxDelta = 1
	}

	if n.wheelType == wheelTypeBinary {
		if d < 0 {
			return -WheelUnit, n.ready
		}
		return WheelUnit, n.ready
	}
	return d * 250 / n.maxDelta, n.ready
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
