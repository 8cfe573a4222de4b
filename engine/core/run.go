package core

import (
	"time"

	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
	"github.com/hubastard/poliosis/engine/logging"
)

// Run drives the layers against win until the window closes or the sink
// fails fatally. Updates run at a fixed tick; each frame renders once with
// the interpolation factor left over.
func Run(cfg Config, win Window, sink renderer2d.Sink, layers *LayerStack) error {
	w, h := win.FramebufferSize()
	rd := renderer2d.New(sink, w, h)
	in := NewInput()
	eng := &Engine{Window: win, Renderer: rd, Input: in, Config: cfg, start: time.Now()}

	tick := time.Second / 60
	if cfg.TickRate > 0 {
		tick = time.Second / time.Duration(cfg.TickRate)
	}
	const maxSteps = 10 // prevent spiral of death
	var (
		accum time.Duration
		prev  = time.Now()
	)

	loop := NewLoop(rd, in, func(*renderer2d.Renderer2D, *Input) {
		now := time.Now()
		eng.frameTime = now.Sub(prev)
		prev = now
		accum += eng.frameTime

		steps := 0
		for accum >= tick && steps < maxSteps {
			layers.update(eng, tick.Seconds())
			accum -= tick
			steps++
		}
		if steps == maxSteps {
			accum = 0
		}
		layers.render(eng, float64(accum)/float64(tick))
	})
	loop.KeepStaleHitRegions(cfg.KeepStaleHitRegions)
	loop.SetObserver(func(ev Event) { layers.event(eng, ev) })
	eng.loop = loop

	win.SetEventCallback(loop.Dispatch)
	rd.Resize(w, h)

	layers.attach(eng)
	logging.Logger().Info("engine start", "width", w, "height", h, "layers", layers.Len())

	for !loop.Closed() {
		// a minimized window has no framebuffer; sleep until it changes
		fw, fh := win.FramebufferSize()
		minimized := fw == 0 || fh == 0
		if minimized {
			win.WaitEvents()
		} else {
			win.PollEvents()
		}
		if win.ShouldClose() {
			loop.Dispatch(EventCloseRequested{})
			break
		}
		if minimized {
			continue
		}
		loop.Dispatch(EventFrameTick{})
	}

	layers.detach(eng)
	logging.Logger().Info("engine exit", "uptime", eng.Uptime(), "frames", rd.FrameStats().Frame)
	return loop.Err()
}
