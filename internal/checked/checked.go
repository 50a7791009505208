// Package checked provides unsigned integer arithmetic that reports
// overflow instead of wrapping around. The literal parsers never
// silently truncate a value, so every multiplication and addition on
// user input goes through here.
package checked

// Unsigned is the set of types the checked operations accept.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Mul returns a*b and whether the product fit without wrapping.
func Mul[T Unsigned](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/a != b {
		return 0, false
	}
	return p, true
}

// Add returns a+b and whether the sum fit without wrapping.
func Add[T Unsigned](a, b T) (T, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}
