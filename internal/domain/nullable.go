package domain

// Nullable is a tri-state patch value. The zero value means "absent, leave
// unchanged"; Null means "present and explicitly cleared"; otherwise Value
// replaces the stored value.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a Nullable holding v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Null returns a Nullable that clears the stored value.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// ApplyTo resolves the patch against the current value: absent keeps cur,
// null yields nil, and a value yields a pointer to it.
func (n Nullable[T]) ApplyTo(cur *T) *T {
	switch {
	case !n.Set:
		return cur
	case n.Null:
		return nil
	default:
		v := n.Value
		return &v
	}
}
