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
package main

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/glmodes/logger"
	"github.com/jetsetilly/glmodes/test"
	"github.com/jetsetilly/glmodes/userinput"
)

func TestHelpExitValue(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"-help"}), exitOK)
	test.ExpectEquality(t, launch([]string{"RUN", "-help"}), exitOK)
	test.ExpectEquality(t, launch([]string{"VERIFY", "-help"}), exitOK)
}

func TestVersion(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"VERSION"}), exitOK)
	test.ExpectEquality(t, launch([]string{"version", "-revision"}), exitOK)
}

func TestVerify(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"VERIFY"}), exitOK)
	test.ExpectEquality(t, launch([]string{"VERIFY", "-width", "64", "-height", "64"}), exitOK)
	test.ExpectEquality(t, launch([]string{"VERIFY", "-width", "0"}), exitModeError)
}

func TestParseErrors(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"VERIFY", "-nonsense"}), exitParseError)
	test.ExpectEquality(t, launch([]string{"-nonsense"}), exitParseError)
	test.ExpectEquality(t, launch([]string{"RUN", "-width", "wide"}), exitParseError)
}

func TestRunErrorsBeforeWindow(t *testing.T) {
	// none of these arguments reach the point where a window is created
	test.ExpectEquality(t, launch([]string{"RUN", "-mode", "7"}), exitModeError)
	test.ExpectEquality(t, launch([]string{"RUN", "-width", "-1"}), exitModeError)
	test.ExpectEquality(t, launch([]string{"RUN", "extra"}), exitModeError)
}

func TestPlatformFailure(t *testing.T) {
	created := 0
	newPlatform = func(name string, width, height int32) (platform, error) {
		created++
		test.ExpectEquality(t, name, "GLFW")
		test.ExpectEquality(t, width, int32(640))
		test.ExpectEquality(t, height, int32(360))
		return nil, errors.New("no display")
	}
	defer func() {
		newPlatform = createPlatform
	}()

	logger.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", "-platform", "glfw", "-width", "640", "-height", "360"}), exitModeError)
	test.ExpectEquality(t, created, 1)

	// the controller was never created so there are no notices and no
	// resources were allocated or released
	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectFailure(t, strings.Contains(w.String(), "controller: "))
}

func TestUnknownPlatform(t *testing.T) {
	test.ExpectEquality(t, launch([]string{"RUN", "-platform", "vulkan"}), exitModeError)
}

func TestInterruptStop(t *testing.T) {
	aux := make(chan userinput.Event, 1)
	stop := quitOnInterrupt(aux)

	// stop returns once the forwarding goroutine has ended
	stop()
	test.ExpectEquality(t, len(aux), 0)
}

func TestInterruptQuits(t *testing.T) {
	aux := make(chan userinput.Event, 1)
	stop := quitOnInterrupt(aux)
	defer stop()

	p, err := os.FindProcess(os.Getpid())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Signal(os.Interrupt))

	select {
	case ev := <-aux:
		test.ExpectEquality[userinput.Event](t, ev, userinput.EventQuit{})
	case <-time.After(5 * time.Second):
		t.Fatal("no quit event after interrupt")
	}
}
