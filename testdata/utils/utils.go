package utils

// Ptr returns a pointer to v; handy for optional fixture fields.
func Ptr[T any](v T) *T {
	return &v
}
