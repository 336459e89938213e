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
// Package terminput reads key presses from the controlling terminal and
// forwards them as userinput events. This allows the drawing mode to be
// changed from the terminal that launched the program.
//
// The terminal is put into cbreak mode for as long as the Reader is running.
package terminput

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/glmodes/logger"
	"github.com/jetsetilly/glmodes/userinput"
	"github.com/pkg/term"
)

// the device that is opened by NewReader()
const controllingTerminal = "/dev/tty"

// how long a read waits before checking whether the reader has been stopped
const readTimeout = 100 * time.Millisecond

// Reader forwards key presses from the terminal to the Events channel.
type Reader struct {
	tty *term.Term

	// events are sent on this channel. the channel is closed when the reader
	// stops
	Events chan userinput.Event

	quit chan bool
	done chan bool
}

// NewReader opens the controlling terminal and starts the reading goroutine.
func NewReader() (*Reader, error) {
	tty, err := term.Open(controllingTerminal, term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("terminput: %w", err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, fmt.Errorf("terminput: %w", err)
	}

	rdr := &Reader{
		tty:    tty,
		Events: make(chan userinput.Event, 16),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	go rdr.read()

	return rdr, nil
}

func (rdr *Reader) read() {
	defer close(rdr.done)
	defer close(rdr.Events)

	buf := make([]byte, 16)

	for {
		select {
		case <-rdr.quit:
			return
		default:
		}

		n, err := rdr.tty.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Log(logger.Allow, "terminput", err)
			return
		}

		for _, ev := range Translate(buf[:n]) {
			select {
			case rdr.Events <- ev:
			case <-rdr.quit:
				return
			}
		}
	}
}

// Stop the reader and restore the terminal to its previous state. The Events
// channel will be closed.
func (rdr *Reader) Stop() error {
	close(rdr.quit)
	<-rdr.done

	err := rdr.tty.Restore()
	if err != nil {
		_ = rdr.tty.Close()
		return fmt.Errorf("terminput: %w", err)
	}
	err = rdr.tty.Close()
	if err != nil {
		return fmt.Errorf("terminput: %w", err)
	}
	return nil
}
