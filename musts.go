package bigdec

import "fmt"

// MustFromString is like [FromString] but panics if s cannot be parsed.
func MustFromString[D Digits](s string) Int[D] {
	x, err := FromString[D](s)
	if err != nil {
		panic(fmt.Sprintf("MustFromString(%q) failed: %v", s, err))
	}
	return x
}

// MustAdd is like [Int.Add] but panics on overflow.
func (x Int[D]) MustAdd(y Int[D]) Int[D] {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSub is like [Int.Sub] but panics on overflow.
func (x Int[D]) MustSub(y Int[D]) Int[D] {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y, err))
	}
	return z
}

// MustMul is like [Int.Mul] but panics on overflow.
func (x Int[D]) MustMul(y Int[D]) Int[D] {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y, err))
	}
	return z
}

// MustQuo is like [Int.Quo] but panics if y is zero.
func (x Int[D]) MustQuo(y Int[D]) Int[D] {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}

// MustRem is like [Int.Rem] but panics if y is zero.
func (x Int[D]) MustRem(y Int[D]) Int[D] {
	z, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return z
}

// MustPow is like [Int.Pow] but panics on a negative exponent or overflow.
func (x Int[D]) MustPow(e Int[D]) Int[D] {
	z, err := x.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", e, err))
	}
	return z
}
