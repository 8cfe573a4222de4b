package city

import (
	"errors"
	"math"
	"testing"

	"github.com/hubastard/poliosis/engine/colors"
	"github.com/hubastard/poliosis/engine/core"
	"github.com/hubastard/poliosis/engine/geom"
	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
	"github.com/hubastard/poliosis/engine/scene"
	"github.com/hubastard/poliosis/engine/settings"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-3 }

func TestCoordOrder(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{C(0, 0), C(0, 0), 0},
		{C(-1, 5), C(0, -5), -1},
		{C(2, 1), C(2, 3), -1},
		{C(3, 0), C(2, 9), 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if !C(0, 1).Less(C(1, 0)) {
		t.Error("x must dominate the order")
	}
}

func TestGridOps(t *testing.T) {
	g := Generate(1, 1, 2)
	if g.Len() != 12 {
		t.Fatalf("generated %d tiles, want 12", g.Len())
	}
	if tl, ok := g.Get(C(0, 0)); !ok || tl.Kind != Ground {
		t.Errorf("(0,0) = %v, %v", tl, ok)
	}
	if tl, _ := g.Get(C(1, 2)); tl.Kind != Air {
		t.Errorf("(1,2) = %v", tl)
	}
	if _, ok := g.Get(C(2, 0)); ok {
		t.Error("tile outside the world")
	}

	cells := g.Flatten()
	for i := 1; i < len(cells); i++ {
		if !cells[i-1].Coord.Less(cells[i].Coord) {
			t.Fatalf("flatten out of order at %d: %v then %v", i, cells[i-1].Coord, cells[i].Coord)
		}
	}
	if cells[0].Coord != C(-1, -1) {
		t.Errorf("first cell = %v", cells[0].Coord)
	}

	g.Set(C(0, 1), NewBuilding(2))
	var seen []Coord
	g.Each(func(c Coord, tl Tile) {
		if tl.IsBuilding() {
			seen = append(seen, c)
		}
	})
	if len(seen) != 1 || seen[0] != C(0, 1) {
		t.Errorf("buildings seen = %v", seen)
	}
	if b := g.Buildings(); len(b) != 1 {
		t.Errorf("Buildings() = %v", b)
	}
}

func TestPlaceBuilding(t *testing.T) {
	c := New(Generate(2, 1, 5), 25000)
	c.Selected = C(0, 1)
	if err := c.PlaceBuilding(2); err != nil {
		t.Fatalf("place on ground: %v", err)
	}
	if c.Money != 5000 {
		t.Errorf("money = %d, want 5000", c.Money)
	}
	b, _ := c.Grid.Get(C(0, 1))
	if !b.IsBuilding() || b.Tier != 2 || b.Health != 200 || b.Pressure != 0 {
		t.Errorf("placed = %+v", b)
	}

	tests := []struct {
		at   Coord
		tier int
		want error
	}{
		{C(0, 1), 1, ErrOccupied},
		{C(0, 0), 1, ErrOccupied},
		{C(0, 3), 1, ErrNoSupport},
		{C(0, 2), 1, ErrInsufficient},
		{C(99, 1), 1, ErrOutOfWorld},
		{C(1, 1), 0, ErrInvalidTier},
		{C(1, 1), 6, ErrInvalidTier},
	}
	for _, tt := range tests {
		c.Selected = tt.at
		if err := c.PlaceBuilding(tt.tier); !errors.Is(err, tt.want) {
			t.Errorf("place tier %d at %v: err = %v, want %v", tt.tier, tt.at, err, tt.want)
		}
	}
	if c.Money != 5000 {
		t.Errorf("rejected builds charged money: %d", c.Money)
	}

	c.Money = 10000
	c.Selected = C(0, 2)
	if err := c.PlaceBuilding(1); err != nil {
		t.Errorf("place on building: %v", err)
	}
}

func TestGravity(t *testing.T) {
	c := New(Generate(0, 0, 5), 0)
	c.Grid.Set(C(0, 3), NewBuilding(1))
	c.Grid.Set(C(0, 4), NewBuilding(2))

	c.Gravity()
	for _, tt := range []struct {
		at   Coord
		kind Kind
	}{{C(0, 2), Building}, {C(0, 3), Building}, {C(0, 4), Air}} {
		if tl, _ := c.Grid.Get(tt.at); tl.Kind != tt.kind {
			t.Errorf("after fall %v = %v, want %v", tt.at, tl.Kind, tt.kind)
		}
	}
	b, _ := c.Grid.Get(C(0, 2))
	if !near(b.Health, 100-10/0.3) {
		t.Errorf("fall damage: health = %v", b.Health)
	}

	c.Gravity()
	c.Gravity()
	if tl, _ := c.Grid.Get(C(0, 1)); !tl.IsBuilding() {
		t.Error("stack did not reach the ground")
	}
	c.Gravity()
	if tl, _ := c.Grid.Get(C(0, 1)); tl.Tier != 1 {
		t.Error("building fell into the ground")
	}
}

func TestDistributeWeight(t *testing.T) {
	c := New(Generate(0, 0, 4), 0)
	for y, tier := range []int{1, 2, 3} {
		c.Grid.Set(C(0, y+1), NewBuilding(tier))
	}
	c.DistributeWeight()
	want := map[Coord]float32{C(0, 3): 300, C(0, 2): 500, C(0, 1): 600}
	for at, p := range want {
		if tl, _ := c.Grid.Get(at); tl.Pressure != p {
			t.Errorf("pressure at %v = %v, want %v", at, tl.Pressure, p)
		}
	}
}

func TestDecay(t *testing.T) {
	c := New(Generate(1, 0, 2), 0)
	c.Grid.Set(C(0, 1), Tile{Kind: Building, Health: 100, Tier: 1, Pressure: 600})
	c.Grid.Set(C(1, 1), Tile{Kind: Building, Health: 0.01, Tier: 1, Pressure: 1000})
	c.Decay()
	if tl, _ := c.Grid.Get(C(0, 1)); !near(tl.Health, 99.94) {
		t.Errorf("health = %v, want 99.94", tl.Health)
	}
	if tl, _ := c.Grid.Get(C(1, 1)); tl.Kind != Air {
		t.Errorf("worn out building = %v, want air", tl)
	}
}

func TestRentAndPause(t *testing.T) {
	c := New(Generate(1, 0, 2), 0)
	c.Grid.Set(C(0, 1), NewBuilding(1))
	c.Grid.Set(C(1, 1), NewBuilding(5))
	c.CollectRent()
	if c.Money != 12 {
		t.Errorf("rent = %d, want 2+10", c.Money)
	}

	c.Money = 0
	c.TogglePause()
	c.Step()
	b, _ := c.Grid.Get(C(0, 1))
	if c.Money != 0 || b.Health != 100 {
		t.Errorf("paused step changed money %d / health %v", c.Money, b.Health)
	}
	if b.Pressure != 100 {
		t.Errorf("paused step skipped pressure: %v", b.Pressure)
	}
	c.Quake()
	if b, _ := c.Grid.Get(C(0, 1)); b.Health != 100 {
		t.Error("quake hit while paused")
	}

	c.TogglePause()
	c.Step()
	if c.Money != 12 {
		t.Errorf("money after step = %d, want 12", c.Money)
	}
	c.Quake()
	if b, _ := c.Grid.Get(C(1, 1)); !near(b.Health, (500-0.05)*0.1) {
		t.Errorf("quake health = %v", b.Health)
	}
}

func TestTileColor(t *testing.T) {
	if c := BuildingColor(NewBuilding(3)); c != colors.FromRGB(0.3, 0.3, 0.3) {
		t.Errorf("full health color = %v", c)
	}
	worn := Tile{Kind: Building, Tier: 1, Health: 50}
	if c := BuildingColor(worn); !near(c.R(), 0.8) || !near(c.G(), 0.05) {
		t.Errorf("worn color = %v", c)
	}
	if TileColor(GroundTile(), true) != colors.Yellow || TileColor(NewBuilding(1), true) != colors.Yellow {
		t.Error("selection must be yellow")
	}
	if TileColor(AirTile(), false) != airColor {
		t.Error("air color")
	}
}

func TestDrawGrid(t *testing.T) {
	rd := renderer2d.New(nil, 800, 600)
	c := New(Generate(1, 0, 1), 100000)
	cam := scene.NewTileCamera(3, 3)

	c.DrawGrid(rd, cam)
	// 3 ground crossed boxes (32/60) and 3 air boxes (8/24); row -1 is outside the world
	st := rd.FrameStats()
	if st.Vertices != 120 || st.Indices != 252 {
		t.Errorf("grid = %d/%d, want 120/252", st.Vertices, st.Indices)
	}
	for _, i := range rd.Indices() {
		if int(i) >= len(rd.Vertices()) {
			t.Fatalf("index %d out of range", i)
		}
	}
	if err := rd.Render(); err != nil {
		t.Fatal(err)
	}

	c.Selected = C(0, 1)
	if err := c.PlaceBuilding(2); err != nil {
		t.Fatal(err)
	}
	c.DrawGrid(rd, cam)
	st = rd.FrameStats()
	if st.Vertices != 128 || st.Indices != 264 {
		t.Errorf("with building = %d/%d, want 128/264", st.Vertices, st.Indices)
	}
	var yellow int
	for _, v := range rd.Vertices() {
		if v.Color == colors.Yellow.Array4() {
			yellow++
		}
	}
	if yellow != 16 {
		t.Errorf("selected vertices = %d, want 16", yellow)
	}
}

func TestSelectionArrow(t *testing.T) {
	rd := renderer2d.New(nil, 800, 600)
	c := New(Generate(1, 0, 1), 0)
	cam := scene.NewTileCamera(3, 3)

	c.Selected = C(1, 1)
	c.DrawSelectionArrow(rd, cam)
	if n := len(rd.Vertices()); n != 0 {
		t.Errorf("arrow drawn for a visible selection: %d vertices", n)
	}

	c.Selected = C(40, 0)
	c.DrawSelectionArrow(rd, cam)
	vs := rd.Vertices()
	if len(vs) != 4 {
		t.Fatalf("arrow vertices = %d, want 4", len(vs))
	}
	if tip := vs[0].Position; !near(tip[0], 0.91) || !near(tip[1], 0) {
		t.Errorf("arrow tip = %v, want (0.91, 0)", tip)
	}
	if rd.FrameStats().Skipped != 0 {
		t.Errorf("arrow skipped: %v", rd.Err())
	}
}

func TestHUD(t *testing.T) {
	var placed []int
	h := NewHUD(func(tier int) { placed = append(placed, tier) })
	c := New(Generate(1, 0, 1), 1234)
	c.Selected = C(0, 0)
	h.Update(c)
	if h.money.Text() != "Money: 1234" || h.filling.Text() != "filling: Ground" {
		t.Errorf("labels = %q, %q", h.money.Text(), h.filling.Text())
	}
	c.Paused = true
	c.Selected = C(5, 5)
	h.Update(c)
	if h.money.Text() != "Money: 1234 (paused)" || h.filling.Text() != "filling: none" {
		t.Errorf("labels = %q, %q", h.money.Text(), h.filling.Text())
	}

	rd := renderer2d.New(nil, 800, 600)
	h.Draw(rd, nil)
	closed := len(rd.Texts())
	rd.Render()
	h.PlacingOpen = true
	h.Draw(rd, nil)
	if got := len(rd.Texts()); got != closed+5 {
		t.Errorf("open menu texts = %d, want %d", got, closed+5)
	}

	for _, tt := range []struct {
		x, y float32
		tier int
		ok   bool
	}{
		{0.8, 0.68, 1, true},
		{0.8, 0.56, 3, true},
		{0.8, 0.45, 5, true},
		{0.8, 0.4, 0, false},
		{0.5, 0.56, 0, false},
	} {
		tier, ok := h.TierAt(geom.Pt(tt.x, tt.y))
		if tier != tt.tier || ok != tt.ok {
			t.Errorf("TierAt(%v,%v) = %d,%v want %d,%v", tt.x, tt.y, tier, ok, tt.tier, tt.ok)
		}
	}
}

func TestLayerInput(t *testing.T) {
	l := NewLayer(nil)
	if l.City.Money != 50000 || l.Camera.Cols != 15 {
		t.Fatalf("defaults: money %d, view %d", l.City.Money, l.Camera.Cols)
	}

	rd := renderer2d.New(nil, 800, 600)
	in := core.NewInput()
	e := &core.Engine{Renderer: rd, Input: in}
	loop := core.NewLoop(rd, in, func(*renderer2d.Renderer2D, *core.Input) { l.OnRender(e, 0) })
	quit := false
	l.Bind(in, func() { quit = true })

	press := func(k core.Key) {
		loop.Dispatch(core.EventKey{Key: k, Action: core.ActionPress})
		loop.Dispatch(core.EventKey{Key: k, Action: core.ActionRelease})
	}

	press(core.Key3)
	if l.City.Money != 50000 {
		t.Error("built with the menu closed")
	}
	press(core.KeyEnter)
	press(core.Key3)
	if l.City.Money != 20000 {
		t.Errorf("money after tier 3 = %d", l.City.Money)
	}
	press(core.KeyUp)
	press(core.Key1)
	if tl, _ := l.City.Grid.Get(C(0, 2)); !tl.IsBuilding() || l.City.Money != 10000 {
		t.Errorf("stacked build: %v, money %d", tl, l.City.Money)
	}

	// click the "1) Tier 1" row on an empty lot
	l.City.Selected = C(3, 1)
	loop.Dispatch(core.EventFrameTick{})
	loop.Dispatch(core.EventCursorMoved{X: 720, Y: 96})
	loop.Dispatch(core.EventMouseButton{Button: core.MouseLeft, Action: core.ActionPress})
	if tl, _ := l.City.Grid.Get(C(3, 1)); !tl.IsBuilding() || l.City.Money != 0 {
		t.Errorf("clicked build: %v, money %d", tl, l.City.Money)
	}

	loop.Dispatch(core.EventCursorMoved{X: 400, Y: 300})
	loop.Dispatch(core.EventMouseButton{Button: core.MouseRight, Action: core.ActionPress})
	if l.City.Selected != C(l.Camera.X, l.Camera.Y) {
		t.Errorf("right click selected %v", l.City.Selected)
	}

	press(core.KeyZ)
	if !l.City.Paused {
		t.Error("Z did not pause")
	}
	press(core.KeyEscape)
	if !quit {
		t.Error("escape did not quit")
	}
}

func TestLayerSettings(t *testing.T) {
	s := settings.New()
	s.SetFloat(SettingStartMoney, 7)
	s.SetFloat(SettingTileRatio, 8)
	s.SetBool(SettingStartPaused, true)
	l := NewLayer(s)
	if l.City.Money != 7 || !l.City.Paused || l.Camera.Cols != 9 {
		t.Errorf("money %d paused %v view %d", l.City.Money, l.City.Paused, l.Camera.Cols)
	}
	if l.City.Grid.Len() != 101*46 {
		t.Errorf("world tiles = %d", l.City.Grid.Len())
	}
}

type titleWindow struct {
	core.Window
	titles []string
}

func (w *titleWindow) SetTitle(t string) { w.titles = append(w.titles, t) }

func TestLayerTitle(t *testing.T) {
	l := NewLayer(nil)
	win := &titleWindow{}
	cfg := core.DefaultConfig()
	e := &core.Engine{Window: win, Config: cfg}

	l.OnUpdate(e, 1.0/60)
	l.OnUpdate(e, 1.0/60)
	l.City.TogglePause()
	l.OnUpdate(e, 1.0/60)
	l.City.TogglePause()
	l.OnUpdate(e, 1.0/60)

	want := []string{cfg.Title, cfg.Title + " (paused)", cfg.Title}
	if len(win.titles) != len(want) {
		t.Fatalf("titles = %q, want %q", win.titles, want)
	}
	for i := range want {
		if win.titles[i] != want[i] {
			t.Errorf("title %d = %q, want %q", i, win.titles[i], want[i])
		}
	}
}
