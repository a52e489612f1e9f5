package bigdec

import (
	"fmt"
	"hash/maphash"
	"math"
	"math/big"
	"strconv"
)

// Int is a signed decimal integer of at most len(D) digits.
//
// Int is a value type: assigning an Int copies its digits and the zero value
// is 0. Methods with a value receiver never modify their operands. The
// pointer-receiver *Assign methods update the receiver in place and leave it
// untouched when they return an error.
//
// Two Ints holding the same number are ==, so Int can be used as a map key
// unless the Raw escape hatch has been used to break the representation.
type Int[D Digits] struct {
	digits D   // least significant first, zero above top
	top    int // index of the most significant digit
	neg    bool
}

// FromString creates an Int from a decimal string with an optional leading
// '+' or '-'. The empty string and a lone sign are both 0. Leading zeros
// are not significant; if more than len(D) digits remain, a
// CapacityExceeded error is returned.
func FromString[D Digits](s string) (out Int[D], err error) {
	pos := 0
	neg := false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg, pos = true, 1
		case '+':
			pos = 1
		}
	}
	if pos == len(s) {
		return out, nil
	}

	for i := pos; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return out, errorf(InvalidSyntax, "unexpected %q in %q", s[i], s)
		}
	}
	for pos < len(s)-1 && s[pos] == '0' {
		pos++
	}

	n := len(s) - pos
	if n > len(out.digits) {
		return out, errorf(CapacityExceeded, "%q has %d digits, capacity is %d", s, n, len(out.digits))
	}
	for i := 0; i < n; i++ {
		out.digits[i] = s[len(s)-1-i] - '0'
	}
	out.top, out.neg = n-1, neg
	out.norm()
	return out, nil
}

func FromInt[D Digits](v int) (Int[D], error)    { return FromString[D](strconv.Itoa(v)) }
func From64[D Digits](v int64) (Int[D], error)   { return FromString[D](strconv.FormatInt(v, 10)) }
func From32[D Digits](v int32) (Int[D], error)   { return From64[D](int64(v)) }
func From16[D Digits](v int16) (Int[D], error)   { return From64[D](int64(v)) }
func From8[D Digits](v int8) (Int[D], error)     { return From64[D](int64(v)) }
func FromUint[D Digits](v uint) (Int[D], error)  { return FromU64[D](uint64(v)) }
func FromU64[D Digits](v uint64) (Int[D], error) { return FromString[D](strconv.FormatUint(v, 10)) }
func FromU32[D Digits](v uint32) (Int[D], error) { return FromU64[D](uint64(v)) }
func FromU16[D Digits](v uint16) (Int[D], error) { return FromU64[D](uint64(v)) }
func FromU8[D Digits](v uint8) (Int[D], error)   { return FromU64[D](uint64(v)) }

// FromBigInt creates an Int from a big.Int, failing with CapacityExceeded if
// v has more than len(D) digits.
func FromBigInt[D Digits](v *big.Int) (Int[D], error) {
	return FromString[D](v.Text(10))
}

// FromFloat64 creates an Int from f. Any fractional portion is truncated
// towards zero. NaN and infinities are rejected with InvalidSyntax.
func FromFloat64[D Digits](f float64) (Int[D], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int[D]{}, errorf(InvalidSyntax, "float %v is not an integer", f)
	}
	return FromString[D](strconv.FormatFloat(math.Trunc(f), 'f', 0, 64))
}

// Resize copies x into an Int with a different capacity. It fails with
// CapacityExceeded if x has more digits than len(E).
func Resize[E, D Digits](x Int[D]) (out Int[E], err error) {
	if x.top >= len(out.digits) {
		return out, errorf(CapacityExceeded, "%s has %d digits, capacity is %d", x, x.top+1, len(out.digits))
	}
	for i := 0; i <= x.top; i++ {
		out.digits[i] = x.digits[i]
	}
	out.top, out.neg = x.top, x.neg
	return out, nil
}

// Cap returns the maximum number of digits x can hold.
func (x Int[D]) Cap() int { return len(x.digits) }

// Len returns the number of significant digits in x. Len of 0 is 1.
func (x Int[D]) Len() int { return x.top + 1 }

func (x Int[D]) IsZero() bool { return x.top == 0 && x.digits[0] == 0 }

// IsPositive reports whether x >= 0. Zero counts as positive.
func (x Int[D]) IsPositive() bool { return !x.neg }

func (x Int[D]) IsNegative() bool { return x.neg }

func (x Int[D]) IsEven() bool { return x.digits[0]%2 == 0 }

func (x Int[D]) IsOdd() bool { return x.digits[0]%2 == 1 }

func (x Int[D]) Sign() int {
	if x.neg {
		return -1
	} else if x.IsZero() {
		return 0
	}
	return 1
}

// Digit returns the digit at index i, where 0 is the units digit. It fails
// with IndexOutOfRange unless 0 <= i < x.Len().
func (x Int[D]) Digit(i int) (uint8, error) {
	if i < 0 || i > x.top {
		return 0, errorf(IndexOutOfRange, "digit %d of %s, last index is %d", i, x, x.top)
	}
	return x.digits[i], nil
}

// SetDigit replaces the digit at index i with d. It fails with
// IndexOutOfRange unless 0 <= i < z.Len(), and with InvalidSyntax if d > 9.
// Setting the most significant digit to 0 shortens z.
func (z *Int[D]) SetDigit(i int, d uint8) error {
	if i < 0 || i > z.top {
		return errorf(IndexOutOfRange, "digit %d of %s, last index is %d", i, *z, z.top)
	}
	if d > 9 {
		return errorf(InvalidSyntax, "digit %d", d)
	}
	z.digits[i] = d
	z.norm()
	return nil
}

// Raw returns a pointer to the digit cell at index i, which may be anywhere
// in [0, len(D)). Nothing is validated: writing a value above 9, leaving a
// leading zero, or writing above Len() without it counting as significant
// are all the caller's problem and make later results undefined.
func (z *Int[D]) Raw(i int) *uint8 { return &z.digits[i] }

// Cmp compares x to y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int[D]) Cmp(y Int[D]) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		// Both negative: the larger magnitude is the smaller number.
		return cmpAbs(&y, &x)
	default:
		return cmpAbs(&x, &y)
	}
}

func (x Int[D]) Equal(y Int[D]) bool            { return x.Cmp(y) == 0 }
func (x Int[D]) LessThan(y Int[D]) bool         { return x.Cmp(y) < 0 }
func (x Int[D]) LessOrEqualTo(y Int[D]) bool    { return x.Cmp(y) <= 0 }
func (x Int[D]) GreaterThan(y Int[D]) bool      { return x.Cmp(y) > 0 }
func (x Int[D]) GreaterOrEqualTo(y Int[D]) bool { return x.Cmp(y) >= 0 }

// Neg returns -x. The negation of 0 is 0.
func (x Int[D]) Neg() Int[D] {
	if !x.IsZero() {
		x.neg = !x.neg
	}
	return x
}

func (x Int[D]) Abs() Int[D] {
	x.neg = false
	return x
}

// add sets z to x + y. z must not alias x or y.
func add[D Digits](z, x, y *Int[D]) bool {
	if x.neg == y.neg {
		if !addAbs(z, x, y) {
			return false
		}
		z.neg = x.neg && !z.IsZero()
		return true
	}

	// Differing signs: subtract the smaller magnitude from the larger and
	// take the sign of the larger.
	switch c := cmpAbs(x, y); {
	case c == 0:
		*z = Int[D]{}
	case c > 0:
		subAbs(z, x, y)
		z.neg = x.neg
	default:
		subAbs(z, y, x)
		z.neg = y.neg
	}
	return true
}

// AddAssign sets z to z + y.
func (z *Int[D]) AddAssign(y Int[D]) error {
	var r Int[D]
	if !add(&r, z, &y) {
		return z.overflow("+", y)
	}
	*z = r
	return nil
}

// SubAssign sets z to z - y.
func (z *Int[D]) SubAssign(y Int[D]) error {
	var r Int[D]
	ny := y.Neg()
	if !add(&r, z, &ny) {
		return z.overflow("-", y)
	}
	*z = r
	return nil
}

// MulAssign sets z to z * y.
func (z *Int[D]) MulAssign(y Int[D]) error {
	var r Int[D]
	if !mulAbs(&r, z, &y) {
		return z.overflow("*", y)
	}
	r.neg = z.neg != y.neg && !r.IsZero()
	*z = r
	return nil
}

// QuoAssign sets z to z / y, truncated toward zero. See QuoRem.
func (z *Int[D]) QuoAssign(y Int[D]) error {
	q, _, err := z.QuoRem(y)
	if err != nil {
		return err
	}
	*z = q
	return nil
}

// RemAssign sets z to z % y. See QuoRem.
func (z *Int[D]) RemAssign(y Int[D]) error {
	_, r, err := z.QuoRem(y)
	if err != nil {
		return err
	}
	*z = r
	return nil
}

// PowAssign sets z to z ^ e. e must not be negative; z ^ 0 is 1 for every z,
// including 0.
func (z *Int[D]) PowAssign(e Int[D]) error {
	if e.neg {
		return errorf(NegativeExponent, "%s ^ %s", *z, e)
	}
	r, ok := z.pow(e)
	if !ok {
		return z.overflow("^", e)
	}
	*z = r
	return nil
}

// pow computes x ^ e for e >= 0 by repeated squaring.
func (x Int[D]) pow(e Int[D]) (Int[D], bool) {
	if e.IsZero() {
		return One[D](), true
	}
	if e.top == 0 && e.digits[0] == 1 {
		return x, true
	}

	var half, rem Int[D]
	two := small[D](2)
	quoRemAbs(&half, &rem, &e, &two)

	r, ok := x.pow(half)
	if !ok {
		return r, false
	}
	if r.MulAssign(r) != nil {
		return r, false
	}
	if e.IsOdd() {
		if r.MulAssign(x) != nil {
			return r, false
		}
	} else {
		r.neg = false
	}
	return r, true
}

// LshAssign multiplies z by 10^n. Digits shifted past the capacity are
// discarded, so shifting by Cap() or more yields 0.
func (z *Int[D]) LshAssign(n uint) { z.lsh(n) }

// RshAssign divides z by 10^n, truncating toward zero.
func (z *Int[D]) RshAssign(n uint) { z.rsh(n) }

// IncAssign adds 1 to z.
func (z *Int[D]) IncAssign() error { return z.AddAssign(One[D]()) }

// DecAssign subtracts 1 from z.
func (z *Int[D]) DecAssign() error { return z.SubAssign(One[D]()) }

// PostInc adds 1 to z and returns the value z held before.
func (z *Int[D]) PostInc() (old Int[D], err error) {
	old = *z
	return old, z.IncAssign()
}

// PostDec subtracts 1 from z and returns the value z held before.
func (z *Int[D]) PostDec() (old Int[D], err error) {
	old = *z
	return old, z.DecAssign()
}

func (x Int[D]) Add(y Int[D]) (Int[D], error) {
	if err := x.AddAssign(y); err != nil {
		return Int[D]{}, err
	}
	return x, nil
}

func (x Int[D]) Sub(y Int[D]) (Int[D], error) {
	if err := x.SubAssign(y); err != nil {
		return Int[D]{}, err
	}
	return x, nil
}

// Mul returns the product of x and y, or CapacityExceeded if it has more
// than len(D) digits.
func (x Int[D]) Mul(y Int[D]) (Int[D], error) {
	if err := x.MulAssign(y); err != nil {
		return Int[D]{}, err
	}
	return x, nil
}

// QuoRem returns the quotient q and remainder r of x / y. A zero y is a
// DivideByZero error.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so r has the sign of x. Int does not support Euclidean division.
func (x Int[D]) QuoRem(y Int[D]) (q, r Int[D], err error) {
	if y.IsZero() {
		return q, r, errorf(DivideByZero, "%s / 0", x)
	}
	quoRemAbs(&q, &r, &x, &y)
	q.neg = x.neg != y.neg && !q.IsZero()
	r.neg = x.neg && !r.IsZero()
	return q, r, nil
}

// Quo returns x / y truncated toward zero; see QuoRem.
func (x Int[D]) Quo(y Int[D]) (Int[D], error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x % y; see QuoRem.
func (x Int[D]) Rem(y Int[D]) (Int[D], error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

func (x Int[D]) Pow(e Int[D]) (Int[D], error) {
	if err := x.PowAssign(e); err != nil {
		return Int[D]{}, err
	}
	return x, nil
}

// Lsh returns x * 10^n; see LshAssign.
func (x Int[D]) Lsh(n uint) Int[D] {
	x.lsh(n)
	return x
}

// Rsh returns x / 10^n truncated toward zero.
func (x Int[D]) Rsh(n uint) Int[D] {
	x.rsh(n)
	return x
}

func (x Int[D]) Inc() (Int[D], error) { return x.Add(One[D]()) }
func (x Int[D]) Dec() (Int[D], error) { return x.Sub(One[D]()) }

func (x Int[D]) overflow(op string, y Int[D]) error {
	return errorf(CapacityExceeded, "%s %s %s needs more than %d digits", x, op, y, len(x.digits))
}

// String returns the canonical decimal form of x: a '-' for negative
// numbers followed by the digits, with no leading zeros.
func (x Int[D]) String() string {
	buf := make([]byte, 0, x.top+2)
	if x.neg {
		buf = append(buf, '-')
	}
	for i := x.top; i >= 0; i-- {
		buf = append(buf, '0'+x.digits[i])
	}
	return string(buf)
}

// Format implements fmt.Formatter with the same verbs as big.Int.
func (x Int[D]) Format(s fmt.State, c rune) {
	x.AsBigInt().Format(s, c)
}

// Scan implements fmt.Scanner. It reads one space-delimited token and
// decodes it as FromString does.
func (z *Int[D]) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return errorf(InvalidSyntax, "unsupported scan verb %%%c", verb)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	v, err := FromString[D](string(tok))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// Hash returns a hash of x's canonical string. Ints that are Equal hash
// equally for a given seed.
func (x Int[D]) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, x.String())
}

// IntoBigInt copies x into b, allowing you to retain and recycle memory.
func (x Int[D]) IntoBigInt(b *big.Int) {
	b.SetString(x.String(), 10)
}

// AsBigInt allocates a new big.Int and copies x into it.
func (x Int[D]) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

// Int64 returns x as an int64 and reports whether it fit.
func (x Int[D]) Int64() (v int64, ok bool) {
	if x.top >= maxInt64Digits {
		return 0, false
	}
	v, err := strconv.ParseInt(x.String(), 10, 64)
	return v, err == nil
}

// Uint64 returns x as a uint64 and reports whether it fit.
func (x Int[D]) Uint64() (v uint64, ok bool) {
	if x.neg || x.top >= maxUint64Digits {
		return 0, false
	}
	v, err := strconv.ParseUint(x.String(), 10, 64)
	return v, err == nil
}

// AsFloat64 returns the float64 nearest to x. Values beyond the float64
// range become infinities.
func (x Int[D]) AsFloat64() float64 {
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f
}

func (x Int[D]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (z *Int[D]) UnmarshalText(bts []byte) (err error) {
	v, err := FromString[D](string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func (x Int[D]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a JSON string or a bare JSON number. A JSON null
// leaves z unchanged.
func (z *Int[D]) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errorf(InvalidSyntax, "invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString[D](string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
