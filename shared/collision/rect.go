// Package collision implements the sampled rectangle overlap test used by
// every moving thing in the world, plus a broadphase index over solids.
package collision

import "github.com/automoto/dino/shared/rules"

// Rect is an axis-aligned box in integer pixels.
type Rect struct {
	X, Y, W, H int
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Touches reports whether the closed boxes share at least one point. Any
// sampled overlap implies Touches, so it is a safe broadphase filter.
func (r Rect) Touches(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W && r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

func (r Rect) containsStrict(px, py int) bool {
	return px > r.X && px < r.X+r.W && py > r.Y && py < r.Y+r.H
}

// nextSample advances a sample offset along an edge of length n. The far
// edge is always sampled, even when the stride does not land on it.
func nextSample(cur, n, stride int) int {
	if cur >= n {
		return n + 1
	}
	if cur+stride > n {
		return n
	}
	return cur + stride
}

// Overlaps samples points of a on a grid with the configured stride and
// reports whether any of them lies strictly inside b. Touching edges do not
// overlap.
func Overlaps(a, b Rect) bool {
	stride := rules.World.SampleStride
	for h := 0; h <= a.W; h = nextSample(h, a.W, stride) {
		for v := 0; v <= a.H; v = nextSample(v, a.H, stride) {
			if b.containsStrict(a.X+h, a.Y+v) {
				return true
			}
		}
	}
	return false
}

// AlignBack steps a backwards by (sx, sy) until it no longer overlaps b and
// reports whether any step was taken. A zero step never moves a. It takes at
// most the combined extent of a and b along each stepped axis.
func AlignBack(a *Rect, b Rect, sx, sy int) bool {
	if sx == 0 && sy == 0 {
		return false
	}
	limit := 0
	if sx != 0 {
		limit += a.W + b.W
	}
	if sy != 0 {
		limit += a.H + b.H
	}
	moved := false
	for i := 0; i < limit && Overlaps(*a, b); i++ {
		a.X -= sx
		a.Y -= sy
		moved = true
	}
	return moved
}
