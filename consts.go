package bigdec

// Zero returns 0. It is the same as the zero value of Int[D].
func Zero[D Digits]() Int[D] { return Int[D]{} }

// One returns 1.
func One[D Digits]() Int[D] { return small[D](1) }

// MaxValue returns the largest Int[D], len(D) nines.
func MaxValue[D Digits]() (out Int[D]) {
	for i := 0; i < len(out.digits); i++ {
		out.digits[i] = 9
	}
	out.top = len(out.digits) - 1
	return out
}

// MinValue returns the smallest Int[D], the negation of MaxValue.
func MinValue[D Digits]() Int[D] {
	out := MaxValue[D]()
	out.neg = true
	return out
}

// small returns the single digit d, which must be in [0, 9].
func small[D Digits](d uint8) (out Int[D]) {
	out.digits[0] = d
	return out
}

const (
	maxUint64Digits = 20 // len("18446744073709551615")
	maxInt64Digits  = 19 // len("9223372036854775807")
)
