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
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/glmodes/controller"
	"github.com/jetsetilly/glmodes/drawmode"
	"github.com/jetsetilly/glmodes/frameloop"
	"github.com/jetsetilly/glmodes/gfx"
	"github.com/jetsetilly/glmodes/gfx/gl21"
	"github.com/jetsetilly/glmodes/limiter"
	"github.com/jetsetilly/glmodes/logger"
	"github.com/jetsetilly/glmodes/modalflag"
	"github.com/jetsetilly/glmodes/overlay"
	"github.com/jetsetilly/glmodes/performance"
	"github.com/jetsetilly/glmodes/platform/glfwplatform"
	"github.com/jetsetilly/glmodes/platform/sdlplatform"
	"github.com/jetsetilly/glmodes/statsview"
	"github.com/jetsetilly/glmodes/terminput"
	"github.com/jetsetilly/glmodes/userinput"
	"github.com/jetsetilly/glmodes/verify"
	"github.com/jetsetilly/glmodes/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func init() {
	// the OpenGL context and the windowing layers must be used from the main
	// thread. main() runs on the main thread for as long as it is locked
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch the mode selected by the arguments and return the exit value.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "VERIFY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "VERIFY":
		err = verification(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if errors.Is(err, errParse) {
			return exitParseError
		}
		return exitModeError
	}

	return exitOK
}

// errParse wraps flag errors found by a mode.
var errParse = errors.New("argument error")

// the platform is the windowing layer. it must satisfy the needs of the frame
// loop and the overlay.
type platform interface {
	frameloop.Platform
	overlay.Platform
	Destroy() error
}

// runOptions are the flags for the RUN mode.
type runOptions struct {
	width    int
	height   int
	fps      float64
	platform string
	mode     drawmode.Mode
	overlay  bool
	termkeys bool
	digest   bool
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", 1280, "width of window")
	height := md.AddInt("height", 720, "height of window")
	fps := md.AddFloat64("fps", 60, "frame rate limit. zero or less for no limit")
	plt := md.AddString("platform", "SDL", "windowing layer: SDL or GLFW")
	mode := md.AddString("mode", drawmode.Immediate.Key(), "initial drawing mode: 1 to 4")
	ovl := md.AddBool("overlay", false, "show the drawing mode overlay")
	termkeys := md.AddBool("termkeys", false, "accept drawing mode keys from the terminal")
	dig := md.AddBool("digest", false, "log a digest of the first frame in every drawing mode")
	echo := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return fmt.Errorf("%w: %w", errParse, err)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("window dimensions must be positive (%dx%d)", *width, *height)
	}

	opts := runOptions{
		width:    *width,
		height:   *height,
		fps:      *fps,
		platform: strings.ToUpper(*plt),
		overlay:  *ovl,
		termkeys: *termkeys,
		digest:   *dig,
	}

	var ok bool
	opts.mode, ok = drawmode.FromKey(*mode)
	if !ok {
		return fmt.Errorf("unrecognised drawing mode (%s)", *mode)
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	prf := performance.ProfileNone
	if *profile {
		prf = performance.ProfileCPU | performance.ProfileMem
	}

	return performance.RunProfiler(prf, "glmodes", func() error {
		return display(opts)
	})
}

// newPlatform creates the windowing layer named by the -platform flag.
var newPlatform = createPlatform

func createPlatform(name string, width, height int32) (platform, error) {
	switch name {
	case "SDL":
		return sdlplatform.NewPlatform(width, height)
	case "GLFW":
		return glfwplatform.NewPlatform(width, height)
	}
	return nil, fmt.Errorf("unrecognised platform (%s)", name)
}

// display the triangle until the user quits.
func display(opts runOptions) error {
	plt, err := newPlatform(opts.platform, int32(opts.width), int32(opts.height))
	if err != nil {
		return err
	}
	defer func() {
		err := plt.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "glmodes", err)
		}
	}()

	gl := gl21.NewContext()
	err = gl.Init()
	if err != nil {
		return err
	}

	fb := plt.FramebufferSize()
	gl.SetViewport(int32(fb[0]), int32(fb[1]))
	gl.SetProjection(gfx.Perspective(gfx.FieldOfView, float32(opts.width)/float32(opts.height), gfx.NearPlane, gfx.FarPlane))

	ctrl := controller.NewController(gl, os.Stdout)
	defer ctrl.Shutdown()

	err = ctrl.Initialize()
	if err != nil {
		return err
	}
	ctrl.SetMode(opts.mode)

	lmtr := limiter.NewLimiter(float32(opts.fps))
	defer lmtr.Stop()

	loop := frameloop.NewLoop(ctrl, plt, lmtr)

	aux := make(chan userinput.Event, 16)
	loop.Aux = aux

	// ctrl-c ends the program in the same way as the escape key
	stopInterrupt := quitOnInterrupt(aux)
	defer stopInterrupt()

	if opts.termkeys {
		rdr, err := terminput.NewReader()
		if err != nil {
			return err
		}
		defer func() {
			err := rdr.Stop()
			if err != nil {
				logger.Log(logger.Allow, "glmodes", err)
			}
		}()
		go func() {
			for ev := range rdr.Events {
				forward(aux, ev)
			}
		}()
	}

	if opts.overlay {
		ovl, err := overlay.NewOverlay(plt)
		if err != nil {
			return err
		}
		defer ovl.Destroy()
		loop.Overlay = ovl
	}

	if opts.digest {
		loop.Snapshot = gl
	}

	start := time.Now()
	loop.Run()

	fps, accuracy := performance.CalcFPS(loop.Frames, time.Since(start).Seconds(), opts.fps)
	logger.Logf(logger.Allow, "glmodes", "%.2f fps (%d frames) %.1f%%", fps, loop.Frames, accuracy)

	return nil
}

// quitOnInterrupt forwards a quit event to the auxiliary channel when the
// interrupt signal is received. The returned function stops the signal
// handling and waits for the forwarding goroutine to end.
func quitOnInterrupt(aux chan userinput.Event) func() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan bool)
	go func() {
		defer close(done)
		if _, ok := <-intChan; ok {
			forward(aux, userinput.EventQuit{})
		}
	}()

	return func() {
		// no signals are sent on the channel after Stop() returns
		signal.Stop(intChan)
		close(intChan)
		<-done
	}
}

// forward an event to the auxiliary channel. the event is dropped if the
// channel is full.
func forward(aux chan userinput.Event, ev userinput.Event) {
	select {
	case aux <- ev:
	default:
		logger.Log(logger.Allow, "glmodes", "dropped auxiliary event")
	}
}

var errNotEquivalent = errors.New("drawing modes are not equivalent")

func verification(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", 320, "width of framebuffer")
	height := md.AddInt("height", 180, "height of framebuffer")
	echo := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return fmt.Errorf("%w: %w", errParse, err)
	}

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("framebuffer dimensions must be positive (%dx%d)", *width, *height)
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	}

	rep, err := verify.Run(*width, *height)
	if err != nil {
		return err
	}
	rep.Write(os.Stdout)

	if !rep.Equivalent() {
		return errNotEquivalent
	}
	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return fmt.Errorf("%w: %w", errParse, err)
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Printf("%s %s %s\n", version.ApplicationName, v, r)
	} else {
		fmt.Println(version.String())
	}

	return nil
}
