package qshor

import (
	"fmt"
	"math/bits"
)

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mulMod computes a*b mod m through a 128-bit intermediate so the
// product never overflows.
func mulMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	// hi < m holds whenever a, b < m, which Div64 requires.
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// PowMod computes base^exp mod m by square and multiply.
func PowMod(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}

/*
MultiplicativeOrder returns the smallest positive e with g^e ≡ 1 (mod n)
by incrementing a trial exponent, the brute-force classical baseline.
For coprime g the loop terminates within n steps by Lagrange's theorem;
non-coprime g has no finite order, so that case is rejected up front
instead of spinning forever.
*/
func MultiplicativeOrder(g, n uint64) (uint64, error) {
	if n < 2 {
		return 0, fmt.Errorf("modulus %d: need n >= 2", n)
	}
	g %= n
	if GCD(g, n) != 1 {
		return 0, fmt.Errorf("base %d has no finite order modulo %d: gcd != 1", g, n)
	}

	acc := g
	e := uint64(1)
	for acc != 1 {
		acc = mulMod(acc, g, n)
		e++
	}
	return e, nil
}

// IsPrime reports whether n is prime by trial division up to sqrt(n),
// skipping multiples of 2 and 3.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
