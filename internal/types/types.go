// internal/types/types.go
package types

// EntityID — стабильный дескриптор фигуры, выдаётся при добавлении в менеджер
// и никогда не переиспользуется.
type EntityID uint64

// InvalidEntity никогда не выдаётся менеджером.
const InvalidEntity EntityID = 0
