// This file is part of glmodes.
//
// glmodes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glmodes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glmodes.  If not, see <https://www.gnu.org/licenses/>.
// Package limiter caps the number of frames rendered per second and measures
// the actual frame rate.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter should be checked once per frame with CheckFrame().
type Limiter struct {
	// whether to wait for the fps limiter each frame
	Active bool

	// the requested number of frames per second
	RequestedFPS atomic.Value // float32

	// pulse that performs the limiting
	pulse *time.Ticker

	// waiting on the pulse every frame is expensive at high frame rates so
	// the limiter waits once every pulseCtLimit frames instead
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Millisecond * 1000),
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.SetLimit(fps)
	return lmtr
}

// SetLimit changes the number of frames per second. A value of zero or less
// deactivates the limiter.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.RequestedFPS.Store(fps)

	// restart actual FPS rate measurement values. the measurement continues
	// when the limiter is not active
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
	lmtr.measuringPulse.Reset(time.Millisecond * 1000)

	if fps <= 0.0 {
		lmtr.Active = false
		return
	}
	lmtr.Active = true

	// set scale and duration to wait according to requested FPS rate
	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))
}

// CheckFrame should be called every frame. It will wait as long as required to
// maintain the requested frame rate.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual updates the Measured field if enough time has passed since the
// previous measurement.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter. The limiter should not be used after it has been stopped.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
