// internal/utils/prng.go
package utils

import (
	"math/rand/v2"
	"time"
)

// PRNGService — единственный источник случайности симуляции: цвет, размер,
// вид и позиция фигур. С одинаковым сидом прогон повторяется.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создаёт генератор PCG. Сид 0 берётся из текущего времени.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Seed — фактический сид, чтобы прогон можно было воспроизвести.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn — целое в [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.IntN(n)
}

// Float64 — число в [0, 1).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range — равномерно в [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
