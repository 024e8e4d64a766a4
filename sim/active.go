package sim

import (
	"github.com/automoto/dino/shared/collision"
	"github.com/automoto/dino/shared/rules"
)

// ActiveSet is the live view of the level: every instance in the window plus
// the protect set, and the category lists derived from capability flags.
// Projectiles join Hazards directly without being instances.
type ActiveSet struct {
	Instances    []Entity
	Solids       []Entity
	Hazards      []Entity
	Enemies      []Entity
	Collectibles []Entity

	member map[Entity]bool
	hazard map[Entity]bool

	cols   int
	solids *collision.Index
	byID   map[int]Entity
}

// NewActiveSet creates an empty set for a grid.
func NewActiveSet(g *Grid) *ActiveSet {
	t := rules.World.TileSize
	return &ActiveSet{
		member: make(map[Entity]bool),
		hazard: make(map[Entity]bool),
		cols:   max(g.Cols(), 1),
		solids: collision.NewIndex(g.Width(), g.Height(), t*2),
		byID:   make(map[int]Entity),
	}
}

// Clear empties every list.
func (a *ActiveSet) Clear() {
	a.Instances = a.Instances[:0]
	a.Solids = a.Solids[:0]
	a.Hazards = a.Hazards[:0]
	a.Enemies = a.Enemies[:0]
	a.Collectibles = a.Collectibles[:0]
	clear(a.member)
	clear(a.hazard)
	clear(a.byID)
	a.solids.Clear()
}

// Add classifies e into Instances and every matching category. Adding an
// entity that is already present does nothing.
func (a *ActiveSet) Add(e Entity) {
	if a.member[e] {
		return
	}
	a.member[e] = true
	a.Instances = append(a.Instances, e)

	b := e.Base()
	if b.Has(FlagSolid) {
		a.Solids = append(a.Solids, e)
		id := a.solidID(b)
		a.byID[id] = e
		a.solids.Put(id, b.Rect())
	}
	if b.Has(FlagHazard) {
		a.AddHazard(e)
	}
	if b.Has(FlagEnemy) {
		a.Enemies = append(a.Enemies, e)
	}
	if b.Has(FlagCollectible) {
		a.Collectibles = append(a.Collectibles, e)
	}
}

// Contains reports whether e is an active instance.
func (a *ActiveSet) Contains(e Entity) bool {
	return a.member[e]
}

// Remove drops e from Instances and every category. Removing an absent
// entity does nothing.
func (a *ActiveSet) Remove(e Entity) {
	if !a.member[e] {
		return
	}
	delete(a.member, e)
	a.Instances = removeEntity(a.Instances, e)

	b := e.Base()
	if b.Has(FlagSolid) {
		a.Solids = removeEntity(a.Solids, e)
		id := a.solidID(b)
		delete(a.byID, id)
		a.solids.Remove(id)
	}
	a.RemoveHazard(e)
	if b.Has(FlagEnemy) {
		a.Enemies = removeEntity(a.Enemies, e)
	}
	if b.Has(FlagCollectible) {
		a.Collectibles = removeEntity(a.Collectibles, e)
	}
}

// AddHazard inserts e into Hazards unless it is already there.
func (a *ActiveSet) AddHazard(e Entity) {
	if a.hazard[e] {
		return
	}
	a.hazard[e] = true
	a.Hazards = append(a.Hazards, e)
}

// RemoveHazard removes e from Hazards if present.
func (a *ActiveSet) RemoveHazard(e Entity) {
	if !a.hazard[e] {
		return
	}
	delete(a.hazard, e)
	a.Hazards = removeEntity(a.Hazards, e)
}

// HasHazard reports whether e is in Hazards.
func (a *ActiveSet) HasHazard(e Entity) bool {
	return a.hazard[e]
}

// MoveSolid refreshes the broadphase entry of a solid whose rect changed.
func (a *ActiveSet) MoveSolid(e Entity) {
	b := e.Base()
	id := a.solidID(b)
	if _, ok := a.byID[id]; ok {
		a.solids.Put(id, b.Rect())
	}
}

// SolidsNear returns the active solids whose rects touch r, in the order
// they appear in Solids.
func (a *ActiveSet) SolidsNear(r collision.Rect) []Entity {
	ids := a.solids.Query(r, nil)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := a.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// solidID keys the broadphase by spawn tile. Row-major ids keep query
// results in window scan order.
func (a *ActiveSet) solidID(b *Body) int {
	row, col := b.Tile()
	return row*a.cols + col
}

func removeEntity(list []Entity, e Entity) []Entity {
	for i, x := range list {
		if x == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}
