package gamemath

import "math"

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// SignInt returns the sign of v as an alignment step.
func SignInt(v float64) int {
	return int(Sign(v))
}

// TruncAdd adds a fractional velocity to an integer position, truncating
// toward zero the way integer pixel positions accumulate.
func TruncAdd(pos int, v float64) int {
	return int(float64(pos) + v)
}

// FloorDiv divides rounding toward negative infinity so positions left of
// or above the origin map to negative tiles.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Decelerate moves speed toward zero by amount and snaps it to zero once its
// magnitude falls below snap.
func Decelerate(speed, amount, snap float64) float64 {
	speed -= amount * Sign(speed)
	if math.Abs(speed) < snap {
		return 0
	}
	return speed
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Distance returns the euclidean length of (dx, dy).
func Distance(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}
