// Package mapper holds small generic conversion helpers.
package mapper

// MapSlice converts every element with fn. A nil input yields an empty,
// non-nil slice so it serializes as [] rather than null.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// MapSliceWithError stops at the first conversion error.
func MapSliceWithError[T any, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))
	for _, item := range items {
		r, err := fn(item)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
