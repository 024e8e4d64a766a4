package collision

import (
	"sort"

	"github.com/solarlune/resolv"
)

const tagSolid = "solid"

// Index is a broadphase over a changing set of solid rects keyed by caller
// ids. Query results are candidates only; callers still run Overlaps.
type Index struct {
	space   *resolv.Space
	probe   *resolv.Object
	objects map[int]*resolv.Object
}

// NewIndex creates an index covering a width x height pixel area.
func NewIndex(width, height, cell int) *Index {
	// resolv truncates the cell count, so round up to whole cells to keep
	// a partial last row or column.
	space := resolv.NewSpace(roundUp(width, cell), roundUp(height, cell), cell, cell)
	probe := resolv.NewObject(0, 0, 1, 1, "probe")
	space.Add(probe)
	return &Index{
		space:   space,
		probe:   probe,
		objects: make(map[int]*resolv.Object),
	}
}

func roundUp(v, cell int) int {
	return max((v+cell-1)/cell, 1) * cell
}

// Put inserts or moves the rect stored under id.
func (ix *Index) Put(id int, r Rect) {
	if obj, ok := ix.objects[id]; ok {
		obj.X, obj.Y = float64(r.X), float64(r.Y)
		obj.W, obj.H = float64(r.W), float64(r.H)
		obj.Update()
		return
	}
	obj := resolv.NewObject(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), tagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(r.W), float64(r.H)))
	obj.Data = id
	ix.space.Add(obj)
	ix.objects[id] = obj
}

// Remove drops id from the index. Unknown ids are ignored.
func (ix *Index) Remove(id int) {
	obj, ok := ix.objects[id]
	if !ok {
		return
	}
	ix.space.Remove(obj)
	delete(ix.objects, id)
}

// Clear removes every stored rect.
func (ix *Index) Clear() {
	for id := range ix.objects {
		ix.Remove(id)
	}
}

// Len returns the number of stored rects.
func (ix *Index) Len() int {
	return len(ix.objects)
}

// Query appends to dst the ids whose rects touch r, in ascending order.
func (ix *Index) Query(r Rect, dst []int) []int {
	// Grown by a pixel so rects that only share an edge land in the
	// probed cells.
	ix.probe.X, ix.probe.Y = float64(r.X-1), float64(r.Y-1)
	ix.probe.W, ix.probe.H = float64(r.W+2), float64(r.H+2)
	ix.probe.Update()

	start := len(dst)
	check := ix.probe.Check(0, 0, tagSolid)
	if check == nil {
		return dst
	}
	seen := make(map[int]bool, len(check.Objects))
	for _, obj := range check.Objects {
		id, ok := obj.Data.(int)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		or := Rect{X: int(obj.X), Y: int(obj.Y), W: int(obj.W), H: int(obj.H)}
		if or.Touches(r) {
			dst = append(dst, id)
		}
	}
	sort.Ints(dst[start:])
	return dst
}
