package city

import (
	"github.com/hubastard/poliosis/engine/core"
	"github.com/hubastard/poliosis/engine/logging"
	"github.com/hubastard/poliosis/engine/profiler"
	"github.com/hubastard/poliosis/engine/scene"
	"github.com/hubastard/poliosis/engine/settings"
)

// Settings keys read by NewLayer.
const (
	SettingTileRatio   = "tile_ratio"
	SettingStartMoney  = "start_money"
	SettingRent        = "rent"
	SettingWorldWidth  = "world_half_width"
	SettingWorldDepth  = "world_depth"
	SettingWorldHeight = "world_height"
	SettingStartPaused = "start_paused"
)

// DefaultSettings holds the values used for keys missing from a settings
// file.
func DefaultSettings() *settings.Store {
	s := settings.New()
	s.SetFloat(SettingTileRatio, 15)
	s.SetFloat(SettingStartMoney, 50000)
	s.SetFloat(SettingRent, 1.2)
	s.SetFloat(SettingWorldWidth, 50)
	s.SetFloat(SettingWorldDepth, 5)
	s.SetFloat(SettingWorldHeight, 40)
	s.SetBool(SettingStartPaused, false)
	return s
}

// Layer runs the city: one simulation step per fixed update, the grid and
// HUD every frame.
type Layer struct {
	City   *City
	Camera *scene.TileCamera
	HUD    *HUD

	ctrl  *scene.TileController
	title string
}

func NewLayer(s *settings.Store) *Layer {
	cfg := DefaultSettings()
	if s != nil {
		cfg.Merge(s)
	}
	num := func(key string) int { return int(settings.GetOr(cfg, key, 0.0)) }

	g := Generate(num(SettingWorldWidth), num(SettingWorldDepth), num(SettingWorldHeight))
	c := New(g, num(SettingStartMoney))
	c.Rent = settings.GetOr(cfg, SettingRent, 1.2)
	c.Paused = settings.GetOr(cfg, SettingStartPaused, false)
	c.Selected = C(0, 1)

	ratio := num(SettingTileRatio)
	cam := scene.NewTileCamera(ratio, ratio)
	cam.Y = ratio / 4

	l := &Layer{City: c, Camera: cam, ctrl: scene.NewTileController(cam)}
	l.HUD = NewHUD(l.place)
	return l
}

func (l *Layer) place(tier int) {
	if err := l.City.PlaceBuilding(tier); err != nil {
		logging.Logger().Debug("build rejected", "tier", tier, "err", err)
		return
	}
	logging.Logger().Info("building placed", "tier", tier, "at", l.City.Selected, "money", l.City.Money)
}

// Bind registers the game's keys on in.
func (l *Layer) Bind(in *core.Input, quit func()) {
	l.ctrl.Bind(in)

	pressed := func(f func()) core.Callback {
		return func(a core.Action) {
			if a == core.ActionPress {
				f()
			}
		}
	}
	held := func(f func()) core.Callback {
		return func(a core.Action) {
			if a.Down() {
				f()
			}
		}
	}
	in.AddKeyCallback(core.KeyUp, held(func() { l.City.MoveSelection(0, 1) }))
	in.AddKeyCallback(core.KeyDown, held(func() { l.City.MoveSelection(0, -1) }))
	in.AddKeyCallback(core.KeyLeft, held(func() { l.City.MoveSelection(-1, 0) }))
	in.AddKeyCallback(core.KeyRight, held(func() { l.City.MoveSelection(1, 0) }))
	in.AddKeyCallback(core.KeyZ, pressed(l.City.TogglePause))
	in.AddKeyCallback(core.KeyX, pressed(l.City.Quake))
	in.AddKeyCallback(core.KeyEnter, pressed(func() { l.HUD.PlacingOpen = !l.HUD.PlacingOpen }))
	in.AddKeyCallback(core.KeyEscape, pressed(quit))
	for tier := MinTier; tier <= MaxTier; tier++ {
		tier := tier
		in.AddKeyCallback(core.Key0+core.Key(tier), pressed(func() {
			if l.HUD.PlacingOpen {
				l.place(tier)
			}
		}))
	}
}

func (l *Layer) OnAttach(e *core.Engine) {
	l.Bind(e.Input, e.Close)
	logging.Logger().Info("city ready",
		"tiles", l.City.Grid.Len(), "money", l.City.Money, "view", l.Camera.Cols)
}

func (l *Layer) OnDetach(e *core.Engine) {}

func (l *Layer) OnUpdate(e *core.Engine, dt float64) {
	end := profiler.Start("city.Step")
	l.City.Step()
	end()
	l.syncTitle(e)
}

// syncTitle marks the window title while the simulation is paused.
func (l *Layer) syncTitle(e *core.Engine) {
	if e.Window == nil {
		return
	}
	t := e.Config.Title
	if l.City.Paused {
		t += " (paused)"
	}
	if t != l.title {
		e.Window.SetTitle(t)
		l.title = t
	}
}

func (l *Layer) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("city.Render")
	defer end()

	rd, in := e.Renderer, e.Input
	l.City.DrawGrid(rd, l.Camera)
	l.City.DrawSelectionArrow(rd, l.Camera)
	l.HUD.Update(l.City)
	l.HUD.Draw(rd, in)

	// Right click selects the tile under the cursor.
	in.AddMouseClickCallback(core.MouseRight, nil, func(a core.Action) {
		if a == core.ActionPress {
			x, y := l.Camera.Pick(in.Cursor())
			l.City.Selected = C(x, y)
		}
	})
}

func (l *Layer) OnEvent(e *core.Engine, ev core.Event) bool { return false }
