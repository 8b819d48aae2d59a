// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RoundTo округляет v до ближайшего кратного step.
// Нужен, чтобы шаг 0.1 не накапливал ошибку округления.
func RoundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// PulseScale — затухающая "пульсация" после клика, общая для всех кнопок UI.
func PulseScale(elapsedSeconds float64) float64 {
	return 1.0 + 0.3*math.Exp(-elapsedSeconds*8)
}
