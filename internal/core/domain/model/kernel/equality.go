package kernel

// Equatable is implemented by value objects and identifiers that compare
// by the equality of their components rather than by reference.
type Equatable[T any] interface {
	IsEqual(other T) bool
}

// Identifiable is implemented by entities that carry a typed identity.
type Identifiable[ID Equatable[ID]] interface {
	ID() ID
}

// SameIdentity reports whether two entities of the same type share an
// identity. Entities are equal if and only if their identifiers are equal,
// regardless of their other attributes.
func SameIdentity[ID Equatable[ID], E Identifiable[ID]](a, b E) bool {
	return a.ID().IsEqual(b.ID())
}
