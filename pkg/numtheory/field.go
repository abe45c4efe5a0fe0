package numtheory

import "slices"

// Mod returns the floored remainder of a by m, always in [0, m).
// m must be positive.
func Mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ModPow computes base^exp mod modulo by repeated multiplication.
//
// It returns ErrNotPositive if modulo < 1 and ErrNotNonNegative if exp < 0.
// The cost is linear in exp.
func ModPow(base, exp, modulo int64) (int64, error) {
	if modulo < 1 {
		return 0, ErrNotPositive
	}
	if exp < 0 {
		return 0, ErrNotNonNegative
	}

	switch {
	case modulo == 1:
		return 0, nil
	case exp == 0:
		return 1, nil
	}

	b := Mod(base, modulo)
	if b == 0 {
		return 0, nil
	}
	res := b
	for i := int64(1); i < exp; i++ {
		res = res * b % modulo
	}
	return res, nil
}

// QRModPrime returns the quadratic residues modulo p in ascending order,
// 0 and 1 included. Membership of i >= 2 is decided by Euler's criterion.
// It returns ErrNotAPrime unless p is prime.
func QRModPrime(p int64) ([]int64, error) {
	prime, err := IsPrime(p)
	if err != nil {
		return nil, err
	}
	if !prime {
		return nil, ErrNotAPrime
	}

	qrs := []int64{0, 1}
	for i := int64(2); i < p; i++ {
		v, err := ModPow(i, (p-1)/2, p)
		if err != nil {
			return nil, err
		}
		if v == 1 {
			qrs = append(qrs, i)
		}
	}
	return qrs, nil
}

// Legendre returns the Legendre symbol (a | p): 0 when gcd(a, p) != 1,
// 1 when a is a quadratic residue modulo p and -1 otherwise.
func Legendre(a, p int64) (int64, error) {
	qrs, err := QRModPrime(p)
	if err != nil {
		return 0, err
	}
	if GCD(a, p) != 1 {
		return 0, nil
	}
	if _, found := slices.BinarySearch(qrs, Mod(a, p)); found {
		return 1, nil
	}
	return -1, nil
}
