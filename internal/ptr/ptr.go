// Package ptr holds helpers for the optional, pointer-typed fields of the
// option structs. A nil pointer means "not set".
package ptr

// FromValue returns a pointer to a copy of v.
func FromValue[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *x, or nil.
func Clone[T any](x *T) *T {
	if x == nil {
		return nil
	}

	return FromValue(*x)
}

// CloneOr clones x, or fallback when x is not set.
func CloneOr[T any](x, fallback *T) *T {
	if x != nil {
		return Clone(x)
	}

	return Clone(fallback)
}

func CloneSlice[T any](x []T) []T {
	if x == nil {
		return nil
	}

	out := make([]T, len(x))
	copy(out, x)
	return out
}

func CloneSliceOr[T any](x, fallback []T) []T {
	if x != nil {
		return CloneSlice(x)
	}

	return CloneSlice(fallback)
}

// Deref returns *x, or the zero value of T.
func Deref[T any](x *T) T {
	var zero T
	return DerefOr(x, zero)
}

func DerefOr[T any](x *T, fallback T) T {
	if x == nil {
		return fallback
	}

	return *x
}
