// internal/component/status_effect.go
package component

// SlowEffect — замедление движения. Factor умножает базовую скорость,
// значения меньше единицы означают более сильное замедление.
type SlowEffect struct {
	Factor    float64
	Remaining float64
}
