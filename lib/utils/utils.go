package utils

import "math/rand"

// Equal reports plain == equality. It is the off-the-shelf compare strategy
// for lists of comparable payload types.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// BytesEqual reports byte-wise equality, treating nil and empty as distinct.
// It serves as the compare strategy for []byte payloads.
func BytesEqual(a, b []byte) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AlnumString returns a random alphanumeric string of length l.
func AlnumString(l int) string {
	a := make([]byte, l)
	for i := 0; i < l; i++ {
		index := rand.Intn(62)
		if index < 10 {
			a[i] = byte(48 + index)
		} else if index < 36 {
			a[i] = byte(55 + index)
		} else {
			a[i] = byte(61 + index)
		}
	}
	return string(a)
}
