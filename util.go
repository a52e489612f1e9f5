package bigdec

type RandSource interface {
	Uint64() uint64
}

// Rand generates a non-negative Int with every one of its len(D) digits
// drawn from source. The result is shorter than len(D) only when the
// leading digits come out as zero.
func Rand[D Digits](source RandSource) (out Int[D]) {
	for i := 0; i < len(out.digits); i++ {
		out.digits[i] = uint8(source.Uint64() % 10)
	}
	out.top = len(out.digits) - 1
	out.norm()
	return out
}

func Abs[D Digits](x Int[D]) Int[D] { return x.Abs() }

// Min returns the smaller of a and b, or a if they are equal.
func Min[D Digits](a, b Int[D]) Int[D] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b, or a if they are equal.
func Max[D Digits](a, b Int[D]) Int[D] {
	if a.LessThan(b) {
		return b
	}
	return a
}

func IsEven[D Digits](x Int[D]) bool     { return x.IsEven() }
func IsOdd[D Digits](x Int[D]) bool      { return x.IsOdd() }
func IsPositive[D Digits](x Int[D]) bool { return x.IsPositive() }
func IsNegative[D Digits](x Int[D]) bool { return x.IsNegative() }

// Difference subtracts the smaller of a and b from the larger. It fails
// with CapacityExceeded if the distance has more than len(D) digits, which
// can only happen when a and b have opposite signs.
func Difference[D Digits](a, b Int[D]) (Int[D], error) {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}
