// component/movement.go
package component

// Velocity — компонент скорости (пикселей за кадр)
type Velocity struct {
	X, Y float64
}
