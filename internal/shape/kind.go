package shape

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for a Kind outside the closed set below.
var ErrUnknownKind = errors.New("unknown shape kind")

// Kind selects one of the geometric generators.
type Kind int

const (
	Triangle Kind = iota
	Square
	Pentagon
	Hexagon
	Circle
	Ellipse
	Star
	Irregular

	kindCount
)

// RandomKinds is the pool for automatic spawns. Irregular is reachable only
// through click spawns.
var RandomKinds = []Kind{Triangle, Square, Pentagon, Hexagon, Circle, Ellipse, Star}

var kindNames = [...]string{
	Triangle:  "triangle",
	Square:    "square",
	Pentagon:  "pentagon",
	Hexagon:   "hexagon",
	Circle:    "circle",
	Ellipse:   "ellipse",
	Star:      "star",
	Irregular: "irregular",
}

// Side-count aliases for the polygon kinds.
var sideAliases = map[string]Kind{
	"3": Triangle,
	"4": Square,
	"5": Pentagon,
	"6": Hexagon,
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Sides returns the vertex count of the regular polygon kinds and 0 otherwise.
func (k Kind) Sides() int {
	switch k {
	case Triangle:
		return 3
	case Pentagon:
		return 5
	case Hexagon:
		return 6
	}
	return 0
}

// ParseKind accepts a kind name ("star") or a polygon side count ("5").
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if k, ok := sideAliases[key]; ok {
		return k, nil
	}
	for k, name := range kindNames {
		if name == key {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
