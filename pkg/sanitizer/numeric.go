package sanitizer

// Numeric represents numeric types that support ordering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signed represents signed numeric types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ClampMax ensures a numeric value is not greater than max.
func ClampMax[T Numeric](value T, max T) T {
	if value > max {
		return max
	}
	return value
}

// ZeroIfNegative returns zero if the value is negative, otherwise returns the value.
func ZeroIfNegative[T Signed](value T) T {
	if value < 0 {
		return 0
	}
	return value
}
