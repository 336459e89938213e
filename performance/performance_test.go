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
package performance_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/glmodes/performance"
	"github.com/jetsetilly/glmodes/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(300, 5, 60)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, accuracy, 100.0)

	fps, accuracy = performance.CalcFPS(150, 5, 60)
	test.ExpectEquality(t, fps, 30.0)
	test.ExpectEquality(t, accuracy, 50.0)

	_, accuracy = performance.CalcFPS(150, 5, 0)
	test.ExpectEquality(t, accuracy, 0.0)

	fps, _ = performance.CalcFPS(150, 0, 60)
	test.ExpectEquality(t, fps, 0.0)
}

func TestRunProfilerWithoutProfile(t *testing.T) {
	ran := false
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	e := errors.New("run error")
	err = performance.RunProfiler(performance.ProfileNone, "test", func() error {
		return e
	})
	test.ExpectSuccess(t, errors.Is(err, e))
}
