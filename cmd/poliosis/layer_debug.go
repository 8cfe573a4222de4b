package main

import (
	"errors"

	"github.com/hubastard/poliosis/engine/colors"
	"github.com/hubastard/poliosis/engine/core"
	"github.com/hubastard/poliosis/engine/geom"
	"github.com/hubastard/poliosis/engine/logging"
	"github.com/hubastard/poliosis/engine/profiler"
	"github.com/hubastard/poliosis/engine/scratch"
	"github.com/hubastard/poliosis/engine/ui"
)

// memEvery is how often the overlay re-reads runtime memory stats.
const memEvery = 0.5

// LayerDebug is a toggleable overlay with frame, renderer and memory stats.
// F1 shows it, F2 dumps the profile.
type LayerDebug struct {
	visible bool
	buf     *scratch.Buffer
	mem     profiler.MemStats
	top     []profiler.ScopeTotal
	memAge  float64
	tick    int

	frame, frameMs                 *ui.UILabel
	verts, inds, tris, texts, skip *ui.UILabel
	alloc, mallocs, gc, routines   *ui.UILabel
	scopes                         [3]*ui.UILabel
	menu                           *ui.UIMenu
}

func newDebugLayer() *LayerDebug {
	l := &LayerDebug{buf: scratch.New(2048), memAge: memEvery}
	label := func() *ui.UILabel { return ui.Label("").Scale(0.04) }
	heading := func(s string) *ui.UILabel { return ui.Label(s).Scale(0.04).Color(colors.Yellow) }

	l.frame, l.frameMs = label(), label()
	l.verts, l.inds, l.tris, l.texts, l.skip = label(), label(), label(), label(), label()
	l.alloc, l.mallocs, l.gc, l.routines = label(), label(), label(), label()

	bottom := float32(0.2)
	if profiler.Enabled {
		bottom = 0
	}
	l.menu = ui.Menu(geom.R(-1, 0.85, -0.45, bottom)).
		BgColor(colors.Black.WithAlpha(0.6)).
		Add(
			l.frame, l.frameMs,
			heading("2D Renderer"), l.verts, l.inds, l.tris, l.texts, l.skip,
			heading("Memory"), l.alloc, l.mallocs, l.gc, l.routines,
		)
	if profiler.Enabled {
		l.menu.Add(heading("Scopes"))
		for i := range l.scopes {
			l.scopes[i] = label()
			l.menu.Add(l.scopes[i])
		}
		l.menu.Add(ui.Button("Dump profile", l.dump).
			Mouse(core.MouseMiddle).
			Scale(0.04).
			FitText().
			BgColor(colors.DarkGray))
	}
	return l
}

func (l *LayerDebug) dump() {
	path, err := profiler.OpenGraph()
	switch {
	case errors.Is(err, profiler.ErrDisabled):
		logging.Logger().Info("profiling disabled, build with -tags profile")
		return
	case err != nil:
		logging.Logger().Error("profile dump", "err", err)
		return
	}
	logging.Logger().Info("profile written", "path", path)
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	e.Input.AddKeyCallback(core.KeyF1, func(a core.Action) {
		if a == core.ActionPress {
			l.visible = !l.visible
		}
	})
	e.Input.AddKeyCallback(core.KeyF2, func(a core.Action) {
		if a == core.ActionPress {
			l.dump()
		}
	})
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	l.tick++
	l.memAge += dt
	if l.visible && l.memAge >= memEvery {
		l.mem = profiler.ReadMemStats()
		l.top = profiler.Totals()
		l.memAge = 0
	}
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if !l.visible {
		return
	}
	end := profiler.Start("LayerDebug.OnRender")
	defer end()

	st := e.Renderer.Stats()
	ft := e.FrameTime()
	fps := 0.0
	if ft > 0 {
		fps = 1 / ft.Seconds()
	}

	b := l.buf
	b.Reset()
	l.frame.SetText(b.Begin().S("Frame: ").I(int(st.Frame)).S("  Tick: ").I(l.tick).End())
	l.frameMs.SetText(b.Begin().Pad(2, ' ').Ms(ft).S(" (").F(fps, 1).S(" FPS)").End())
	l.verts.SetText(b.Begin().Pad(2, ' ').S("Vertices: ").I(st.Vertices).End())
	l.inds.SetText(b.Begin().Pad(2, ' ').S("Indices: ").I(st.Indices).End())
	l.tris.SetText(b.Begin().Pad(2, ' ').S("Triangles: ").I(st.Triangles()).End())
	l.texts.SetText(b.Begin().Pad(2, ' ').S("Texts: ").I(st.Texts).End())
	l.skip.SetText(b.Begin().Pad(2, ' ').S("Skipped: ").I(st.Skipped).End())
	l.alloc.SetText(b.Begin().Pad(2, ' ').S("Usage: ").MB(l.mem.Alloc).End())
	l.mallocs.SetText(b.Begin().Pad(2, ' ').S("Allocs: ").I(int(l.mem.Mallocs)).End())
	l.gc.SetText(b.Begin().Pad(2, ' ').S("GC cycles: ").I(int(l.mem.NumGC)).End())
	l.routines.SetText(b.Begin().Pad(2, ' ').S("Goroutines: ").I(l.mem.Goroutines).End())

	for i, lbl := range l.scopes {
		switch {
		case lbl == nil:
		case i < len(l.top):
			st := l.top[i]
			lbl.SetText(b.Begin().Pad(2, ' ').S(st.Name).S(": ").Ms(st.Avg()).S(" x").I(st.Count).End())
		default:
			lbl.SetText("")
		}
	}

	l.menu.Draw(e.Renderer, e.Input)
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool { return false }
