package gamemath

import "math"

// ArcLaunch solves for the launch velocity that lands a projectile fired at
// the given speed under gravity g on a target at offset (dx, dy), where the
// offset is shooter minus target. The higher of the two arcs is chosen. ok
// is false when the target is out of range or directly above or below.
func ArcLaunch(dx, dy, speed, g float64) (vx, vy float64, ok bool) {
	if dx == 0 {
		return 0, 0, false
	}
	v2 := speed * speed
	disc := v2*v2 - g*(g*dx*dx+2*dy*v2)
	if disc < 0 {
		return 0, 0, false
	}
	dir := math.Atan((v2 + math.Sqrt(disc)) / (g * dx))
	if math.IsNaN(dir) {
		return 0, 0, false
	}
	s := -Sign(dx)
	return s * speed * math.Cos(dir), s * speed * math.Sin(dir), true
}

// AimAt returns a straight-line velocity of the given speed from (fromX,
// fromY) toward (toX, toY).
func AimAt(fromX, fromY, toX, toY, speed float64) (vx, vy float64) {
	dir := math.Atan2(fromY-toY, fromX-toX)
	return -speed * math.Cos(dir), -speed * math.Sin(dir)
}
