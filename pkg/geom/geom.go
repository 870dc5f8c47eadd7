// pkg/geom/geom.go
package geom

import "math"

// Point — точка на игровом поле в экранных координатах.
type Point struct {
	X, Y float64
}

// Distance возвращает евклидово расстояние между двумя точками.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle возвращает угол (в радианах) от точки a к точке b.
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// MoveToward moves a toward b by at most step and reports whether b was
// reached this step.
func MoveToward(a, b Point, step float64) (Point, bool) {
	dist := Distance(a, b)
	if dist <= step || dist == 0 {
		return b, true
	}
	t := step / dist
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}, false
}

// Clamp ограничивает значение v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp выполняет стандартную линейную интерполяцию.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
