// internal/types/types.go
package types

// EntityID identifies an actor in the registry. Zero is never issued.
type EntityID uint64

// Kind is the category of an actor.
type Kind int

const (
	KindNone Kind = iota
	KindTower
	KindUnit
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindTower:
		return "tower"
	case KindUnit:
		return "unit"
	case KindProjectile:
		return "projectile"
	default:
		return "none"
	}
}
