// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// WeightedEntry — один кандидат взвешенного выбора.
type WeightedEntry struct {
	Value  string
	Weight float64
}

// ChooseWeighted выполняет взвешенный случайный выбор. Он суммирует все
// веса, выбирает случайное число в этом диапазоне, а затем находит элемент,
// которому соответствует это число. При пустой таблице или нулевой сумме
// весов возвращается пустая строка.
func (s *PRNGService) ChooseWeighted(entries []WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var total float64
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return ""
	}

	roll := s.rng.Float64() * total
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		if roll < e.Weight {
			return e.Value
		}
		roll -= e.Weight
	}
	// Числовая погрешность: отдаем последний валидный элемент.
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Weight > 0 {
			return entries[i].Value
		}
	}
	return ""
}
