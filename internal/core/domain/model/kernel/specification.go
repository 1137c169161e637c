package kernel

// Specification is a composable boolean rule over a domain object.
// Concrete specifications encapsulate one business predicate each; the
// And, Or and Not combinators build new predicates from existing ones
// without mutating the originals.
type Specification[T any] interface {
	// IsSatisfiedBy reports whether the entity satisfies the predicate.
	IsSatisfiedBy(entity T) bool
}

// And returns a specification satisfied when both operands are satisfied.
// Evaluation short-circuits left to right.
func And[T any](left, right Specification[T]) Specification[T] {
	return andSpecification[T]{left: left, right: right}
}

// Or returns a specification satisfied when either operand is satisfied.
// Evaluation short-circuits left to right.
func Or[T any](left, right Specification[T]) Specification[T] {
	return orSpecification[T]{left: left, right: right}
}

// Not returns a specification satisfied when the operand is not.
func Not[T any](spec Specification[T]) Specification[T] {
	return notSpecification[T]{spec: spec}
}

type andSpecification[T any] struct {
	left, right Specification[T]
}

func (s andSpecification[T]) IsSatisfiedBy(entity T) bool {
	return s.left.IsSatisfiedBy(entity) && s.right.IsSatisfiedBy(entity)
}

type orSpecification[T any] struct {
	left, right Specification[T]
}

func (s orSpecification[T]) IsSatisfiedBy(entity T) bool {
	return s.left.IsSatisfiedBy(entity) || s.right.IsSatisfiedBy(entity)
}

type notSpecification[T any] struct {
	spec Specification[T]
}

func (s notSpecification[T]) IsSatisfiedBy(entity T) bool {
	return !s.spec.IsSatisfiedBy(entity)
}
