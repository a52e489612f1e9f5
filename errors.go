package bigdec

import "fmt"

// ErrorKind identifies the precondition an operation rejected.
type ErrorKind int

const (
	// CapacityExceeded reports that a value needs more digits than the Int
	// can hold.
	CapacityExceeded ErrorKind = iota + 1

	// DivideByZero reports a zero divisor passed to Quo, Rem or QuoRem.
	DivideByZero

	// NegativeExponent reports a negative exponent passed to Pow.
	NegativeExponent

	// IndexOutOfRange reports a digit index outside [0, Len()).
	IndexOutOfRange

	// InvalidSyntax reports input that is not a decimal integer.
	InvalidSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case CapacityExceeded:
		return "capacity exceeded"
	case DivideByZero:
		return "division by zero"
	case NegativeExponent:
		return "negative exponent"
	case IndexOutOfRange:
		return "index out of range"
	case InvalidSyntax:
		return "invalid syntax"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every failing operation in this package. Use
// errors.As to inspect Kind, or errors.Is against one of the Err sentinels.
type Error struct {
	Kind ErrorKind
	Msg  string
}

var (
	ErrCapacityExceeded = &Error{Kind: CapacityExceeded}
	ErrDivideByZero     = &Error{Kind: DivideByZero}
	ErrNegativeExponent = &Error{Kind: NegativeExponent}
	ErrIndexOutOfRange  = &Error{Kind: IndexOutOfRange}
	ErrInvalidSyntax    = &Error{Kind: InvalidSyntax}
)

func (e *Error) Error() string {
	if e.Msg == "" {
		return "bigdec: " + e.Kind.String()
	}
	return "bigdec: " + e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, ErrDivideByZero) matches regardless of Msg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func errorf(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
