package city

import (
	"errors"
	"fmt"
)

const (
	MinTier = 1
	MaxTier = 5

	// TierCost is the price of one tier of building.
	TierCost = 10000
)

var (
	ErrInvalidTier  = errors.New("city: invalid tier")
	ErrOutOfWorld   = errors.New("city: outside the world")
	ErrOccupied     = errors.New("city: tile occupied")
	ErrNoSupport    = errors.New("city: nothing to build on")
	ErrInsufficient = errors.New("city: not enough money")
)

// City is the simulation state.
type City struct {
	Grid     *Grid
	Money    int
	Selected Coord
	Paused   bool

	// Rent multiplies each building's income; 1.2 by default.
	Rent float64
}

func New(g *Grid, money int) *City {
	return &City{Grid: g, Money: money, Rent: 1.2}
}

// Step advances one tick. Pressure is recomputed even while paused so the
// HUD stays current.
func (c *City) Step() {
	c.DistributeWeight()
	if c.Paused {
		return
	}
	c.Gravity()
	c.Decay()
	c.CollectRent()
}

// Gravity drops every building with air below it by one tile. Each fall
// costs 10*tier/(0.3*tier) health. Buildings move bottom-up, so a falling
// stack stays together.
func (c *City) Gravity() {
	g := c.Grid
	for _, at := range g.Buildings() {
		b, _ := g.Get(at)
		below, ok := g.Get(at.Below())
		if !ok || below.Kind != Air {
			continue
		}
		b.Health -= b.Tier * 10 / (b.Tier * 0.3)
		g.Set(at.Below(), b)
		g.Set(at, AirTile())
	}
}

// DistributeWeight sets each building's pressure to its own weight
// (tier*100) plus the pressure of the building resting on it.
func (c *City) DistributeWeight() {
	g := c.Grid
	bs := g.Buildings()
	for i := len(bs) - 1; i >= 0; i-- {
		at := bs[i]
		b, _ := g.Get(at)
		var above float32
		if t, ok := g.Get(at.Above()); ok && t.IsBuilding() {
			above = t.Pressure
		}
		b.Pressure = b.Tier*100 + above
		g.Set(at, b)
	}
}

// Decay wears buildings down by pressure/10000. A building at zero health
// collapses into air.
func (c *City) Decay() {
	g := c.Grid
	for _, at := range g.Buildings() {
		b, _ := g.Get(at)
		b.Health -= b.Pressure / 10000
		if b.Health <= 0 {
			g.Set(at, AirTile())
			continue
		}
		g.Set(at, b)
	}
}

// CollectRent pays tier*100*Rent/60 per building, truncated.
func (c *City) CollectRent() {
	for _, at := range c.Grid.Buildings() {
		b, _ := c.Grid.Get(at)
		c.Money += int(float64(b.Tier) * 100 * c.Rent / 60)
	}
}

// PlaceBuilding builds a tier building on the selected tile. The tile must
// be air resting on ground or another building, and tier*TierCost must be
// affordable.
func (c *City) PlaceBuilding(tier int) error {
	if tier < MinTier || tier > MaxTier {
		return fmt.Errorf("%w: %d", ErrInvalidTier, tier)
	}
	at := c.Selected
	t, ok := c.Grid.Get(at)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfWorld, at)
	}
	if t.Kind != Air {
		return fmt.Errorf("%w: %v is %v", ErrOccupied, at, t.Kind)
	}
	if below, ok := c.Grid.Get(at.Below()); !ok || below.Kind == Air {
		return fmt.Errorf("%w: %v", ErrNoSupport, at)
	}
	cost := tier * TierCost
	if c.Money < cost {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficient, c.Money, cost)
	}
	c.Money -= cost
	c.Grid.Set(at, NewBuilding(tier))
	return nil
}

// Quake cuts every building's health to a tenth. Ignored while paused.
func (c *City) Quake() {
	if c.Paused {
		return
	}
	for _, at := range c.Grid.Buildings() {
		b, _ := c.Grid.Get(at)
		b.Health *= 0.1
		c.Grid.Set(at, b)
	}
}

func (c *City) TogglePause() { c.Paused = !c.Paused }

func (c *City) MoveSelection(dx, dy int) {
	c.Selected.X += dx
	c.Selected.Y += dy
}

// SelectedTile returns the tile under the selection, if any.
func (c *City) SelectedTile() (Tile, bool) { return c.Grid.Get(c.Selected) }
