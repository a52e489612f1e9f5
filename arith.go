package bigdec

// The routines in this file work on magnitudes only; signs are resolved by
// the callers in int.go. Unless noted otherwise z may alias x or y: every
// routine reads digit i of its operands before it writes digit i of z.

// cmpAbs compares |x| and |y| and returns -1, 0 or +1.
func cmpAbs[D Digits](x, y *Int[D]) int {
	if x.top < y.top {
		return -1
	} else if x.top > y.top {
		return 1
	}
	for i := x.top; i >= 0; i-- {
		if x.digits[i] < y.digits[i] {
			return -1
		} else if x.digits[i] > y.digits[i] {
			return 1
		}
	}
	return 0
}

// addAbs sets z to |x| + |y|. It reports false if the sum needs more than
// len(D) digits, in which case z holds garbage.
func addAbs[D Digits](z, x, y *Int[D]) bool {
	xt, yt := x.top, y.top
	n := xt
	if yt > n {
		n = yt
	}

	var carry uint8
	for i := 0; i <= n; i++ {
		s := carry
		if i <= xt {
			s += x.digits[i]
		}
		if i <= yt {
			s += y.digits[i]
		}
		z.digits[i] = s % 10
		carry = s / 10
	}

	z.top, z.neg = n, false
	if carry != 0 {
		if n+1 >= len(z.digits) {
			return false
		}
		z.digits[n+1] = carry
		z.top = n + 1
	}
	return true
}

// subAbs sets z to |x| - |y|. |x| must be >= |y|.
func subAbs[D Digits](z, x, y *Int[D]) {
	xt, yt := x.top, y.top

	var borrow uint8
	for i := 0; i <= xt; i++ {
		sub := borrow
		if i <= yt {
			sub += y.digits[i]
		}
		d := x.digits[i]
		if sub > d {
			z.digits[i] = d + 10 - sub
			borrow = 1
		} else {
			z.digits[i] = d - sub
			borrow = 0
		}
	}

	z.top, z.neg = xt, false
	z.norm()
}

// mulDigit sets z to |x| * d for a single digit d. z must not alias x.
func mulDigit[D Digits](z, x *Int[D], d uint8) bool {
	*z = Int[D]{}
	if d == 0 {
		return true
	}

	var carry uint8
	for i := 0; i <= x.top; i++ {
		p := x.digits[i]*d + carry // at most 9*9 + 8
		z.digits[i] = p % 10
		carry = p / 10
	}

	z.top = x.top
	if carry != 0 {
		if x.top+1 >= len(z.digits) {
			return false
		}
		z.digits[x.top+1] = carry
		z.top = x.top + 1
	}
	return true
}

// mulAbs sets z to |x| * |y| using the schoolbook method, taking the digits
// of y from the most significant down. z must not alias x or y.
//
// The accumulator never exceeds |x*y| / 10^i at step i, so any overflow seen
// along the way means the product itself does not fit.
func mulAbs[D Digits](z, x, y *Int[D]) bool {
	var acc, part Int[D]
	last := len(acc.digits) - 1

	for i := y.top; i >= 0; i-- {
		if acc.top == last && !acc.IsZero() {
			return false
		}
		acc.lsh(1)
		if !mulDigit(&part, x, y.digits[i]) {
			return false
		}
		if !addAbs(&acc, &acc, &part) {
			return false
		}
	}

	*z = acc
	return true
}

// quoRemAbs sets q to |x| / |y| and r to |x| mod |y| by restoring long
// division. y must not be zero; q and r must not alias x or y.
//
// The divisor is first aligned so that its most significant digit sits
// under the dividend's. Every step leaves the partial remainder below ten
// times the next divisor, so each quotient digit takes at most 9
// subtractions.
func quoRemAbs[D Digits](q, r, x, y *Int[D]) {
	shift := 0
	if x.top > y.top {
		shift = x.top - y.top
	}

	den := *y
	den.neg = false
	den.lsh(uint(shift))

	num := *x
	num.neg = false

	var quo Int[D]
	for i := 0; i <= shift; i++ {
		var digit uint8
		for cmpAbs(&num, &den) >= 0 {
			subAbs(&num, &num, &den)
			digit++
		}
		quo.lsh(1)
		quo.digits[0] = digit
		den.rsh(1)
	}

	*q, *r = quo, num
}

// lsh multiplies z by 10^n in place. Digits pushed past the capacity are
// dropped; a shift of len(D) or more always yields zero.
func (z *Int[D]) lsh(n uint) {
	if n == 0 {
		return
	}
	k := len(z.digits)
	if n >= uint(k) {
		*z = Int[D]{}
		return
	}

	s := int(n)
	top := z.top + s
	if top > k-1 {
		top = k - 1
	}

	// Highest index first so no source digit is overwritten before it is
	// read.
	for i := top; i >= s; i-- {
		z.digits[i] = z.digits[i-s]
	}
	for i := 0; i < s; i++ {
		z.digits[i] = 0
	}
	z.top = top
	z.norm()
}

// rsh divides z by 10^n in place, truncating toward zero.
func (z *Int[D]) rsh(n uint) {
	if n == 0 {
		return
	}
	if n > uint(z.top) {
		*z = Int[D]{}
		return
	}

	s := int(n)
	keep := z.top - s
	for i := 0; i <= keep; i++ {
		z.digits[i] = z.digits[i+s]
	}
	for i := keep + 1; i <= z.top; i++ {
		z.digits[i] = 0
	}
	z.top = keep
	z.norm()
}

// norm drops leading zero digits and clears the sign of zero.
func (z *Int[D]) norm() {
	for z.top > 0 && z.digits[z.top] == 0 {
		z.top--
	}
	if z.top == 0 && z.digits[0] == 0 {
		z.neg = false
	}
}
