package Go_DSA

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// GCD(a, 0) == a and GCD(0, 0) == 0. For negative inputs the sign of the result
// follows the remainders, same as the recursive definition gcd(b, a%b).
// Time: O(log(min(a, b)))
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b. LCM(0, x) == 0.
// Overflows only if the result does.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}
