// Package numtheory provides the integer primitives the curve arithmetic is
// built on: primality, factorization, gcd, modular powers and quadratic
// residues. All functions are naive and intended for small moduli.
package numtheory

// Factor is a prime power p^e in a factorization.
type Factor struct {
	Prime int64 `json:"prime"`
	Exp   int64 `json:"exp"`
}

// IsPrime reports whether n is prime by trial division.
// It returns ErrNotPositive if n <= 0.
func IsPrime(n int64) (bool, error) {
	if n <= 0 {
		return false, ErrNotPositive
	}
	if n == 1 {
		return false, nil
	}
	if n == 2 {
		return true, nil
	}
	if n%2 == 0 {
		return false, nil
	}
	for odd := int64(3); odd*odd <= n; odd += 2 {
		if n%odd == 0 {
			return false, nil
		}
	}
	return true, nil
}

// PrimeFactors returns the factorization of n in ascending prime order.
// The factorization of 1 is empty.
func PrimeFactors(n int64) ([]Factor, error) {
	prime, err := IsPrime(n)
	if err != nil {
		return nil, err
	}
	if prime {
		return []Factor{{Prime: n, Exp: 1}}, nil
	}
	if n == 1 {
		return []Factor{}, nil
	}

	var res []Factor
	m := n
	for p := int64(2); p*p <= n; p++ {
		if m%p != 0 {
			continue
		}
		var e int64
		for m%p == 0 {
			m /= p
			e++
		}
		res = append(res, Factor{Prime: p, Exp: e})
	}
	// whatever survives trial division is a single prime
	if m != 1 {
		res = append(res, Factor{Prime: m, Exp: 1})
	}
	return res, nil
}

// IsPrimePow reports whether n has exactly one distinct prime factor.
func IsPrimePow(n int64) (bool, error) {
	fs, err := PrimeFactors(n)
	if err != nil {
		return false, err
	}
	return len(fs) == 1, nil
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
