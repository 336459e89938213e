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
package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/glmodes/limiter"
	"github.com/jetsetilly/glmodes/test"
)

// tolerance of measurement
const measurementTolerance = 0.05
const numSecondsPerTest = 2

func TestLimiter(t *testing.T) {
	lmtr := limiter.NewLimiter(60)
	defer lmtr.Stop()

	for _, fps := range []float32{60.0, 30.0} {
		lmtr.SetLimit(fps)
		for range int(fps * numSecondsPerTest) {
			lmtr.CheckFrame()
			lmtr.MeasureActual()
		}
		rate := lmtr.Measured.Load().(float32)
		test.ExpectApproximate(t, rate, fps, measurementTolerance, fps)
	}
}

func TestInactive(t *testing.T) {
	lmtr := limiter.NewLimiter(0)
	defer lmtr.Stop()
	test.ExpectFailure(t, lmtr.Active)

	lmtr.SetLimit(50)
	test.ExpectSuccess(t, lmtr.Active)
	test.ExpectEquality(t, lmtr.RequestedFPS.Load().(float32), float32(50))
}

func TestMeasureWhenInactive(t *testing.T) {
	lmtr := limiter.NewLimiter(0)
	defer lmtr.Stop()

	// roughly 100 frames per second for just over a second
	end := time.Now().Add(1100 * time.Millisecond)
	for time.Now().Before(end) {
		lmtr.CheckFrame()
		lmtr.MeasureActual()
		time.Sleep(10 * time.Millisecond)
	}

	// the measurement is taken over the time since the limiter was created
	rate := lmtr.Measured.Load().(float32)
	test.ExpectSuccess(t, rate > 10, rate)
	test.ExpectSuccess(t, rate < 200, rate)
}
