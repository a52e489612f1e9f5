/*
Package bigdec provides Int, a signed decimal integer whose maximum number
of digits is fixed by its type parameter.

The digits live in an array embedded in the value, so an Int never grows and
arithmetic never allocates. The capacity is the length of the array type:

	type Int40 = bigdec.Int[[40]uint8]

	x := bigdec.MustFromString[[40]uint8]("99999999999999999999")
	y, err := x.Mul(x)
	fmt.Println(y, err)
	// Output: 9999999999999999999800000000000000000001 <nil>

Only the array lengths named by the Digits constraint can be used: 1 to 64
digits, then a fixed ladder of larger sizes up to 8192 (72, 80, 96, 100,
128 and so on). An in-between capacity such as 65 or 1001 is not available
without extending Digits.

Int is a value type; the value-receiver methods return new values and the
*Assign methods update in place:

	x.Add(y) (Int, error)
	x.Sub(y) (Int, error)
	x.Mul(y) (Int, error)
	x.Quo(y) (Int, error)
	x.Rem(y) (Int, error)
	x.Pow(e) (Int, error)
	x.Lsh(n) Int
	x.Rsh(n) Int

An operation whose result does not fit returns an *Error with Kind
CapacityExceeded; nothing is truncated silently. The decimal shifts are the
exception: they are defined to drop digits that leave the buffer.

Ints can be created from a variety of sources:

	FromString[D](s string) (Int[D], error)
	FromInt[D](v int) (Int[D], error)
	From64[D](v int64) (Int[D], error)
	FromU64[D](v uint64) (Int[D], error)
	FromBigInt[D](v *big.Int) (Int[D], error)
	FromFloat64[D](f float64) (Int[D], error)

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.Scanner
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bigdec
