package bertlv

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

/*
Decoding error kinds. Every decoding failure returned by this package is a
*[ParseError] which unwraps to exactly one of these values, allowing use of
[errors.Is].
*/
var (
	ErrMalformedHeader  error = codecErr{mkerr("malformed identifier octets")}
	ErrIndefiniteLength error = codecErr{mkerr("indefinite length not supported")}
	ErrLengthOverflow   error = codecErr{mkerr("length octets overflow 64 bits")}
	ErrTruncatedInput   error = codecErr{mkerr("truncated input")}
	ErrMalformedLength  error = codecErr{mkerr("constructed content not consumed by its children")}
	ErrDepthExceeded    error = codecErr{mkerr("maximum nesting depth exceeded")}
)

/*
Encoding error kinds.
*/
var (
	ErrInvalidClass error = tLVErr{mkerr("class out of range")}
	ErrInvalidForm  error = tLVErr{mkerr("form out of range")}
	ErrNilValue     error = tLVErr{mkerr("nil value")}
)

/*
primitive and composite (reference type) errors.
*/
var (
	errorTagMismatch      = primitiveErr{mkerr("unexpected class, tag or form")}
	errorEmptyInteger     = primitiveErr{mkerr("INTEGER: empty content")}
	errorIntegerTooLarge  = primitiveErr{mkerr("INTEGER: content exceeds 64 bits")}
	errorIntegerNonMin    = primitiveErr{mkerr("INTEGER: non-minimal two's complement encoding")}
	errorIntegerOverflow  = primitiveErr{mkerr("INTEGER: value exceeds int64")}
	errorBadBoolean       = primitiveErr{mkerr("BOOLEAN: content length must be 1")}
	errorNullLength       = primitiveErr{mkerr("NULL: content length must be 0")}
	errorBadUTF8          = primitiveErr{mkerr("UTF8 STRING: invalid UTF-8")}
	errorNotUnmarshaler   = compositeErr{mkerr("element type does not implement Unmarshaler")}
	errorUnwrapChildCount = compositeErr{mkerr("explicit tag must wrap exactly one element")}
)

/*
adapter errors.
*/
var (
	errorNilPacket = adapterErr{mkerr("nil *ber.Packet")}
)

/*
types which implement the error interface.
*/
type (
	adapterErr   struct{ e error }
	codecErr     struct{ e error }
	compositeErr struct{ e error }
	primitiveErr struct{ e error }
	tLVErr       struct{ e error }
)

func (r adapterErr) Error() string   { return `ADAPTER ERROR: ` + r.e.Error() }
func (r codecErr) Error() string     { return `CODEC ERROR: ` + r.e.Error() }
func (r compositeErr) Error() string { return `COMPOSITE ERROR: ` + r.e.Error() }
func (r primitiveErr) Error() string { return `PRIMITIVE ERROR: ` + r.e.Error() }
func (r tLVErr) Error() string       { return `TLV ERROR: ` + r.e.Error() }

/*
TagMismatchError is returned by the reference types of this package
when a [TLV] handed to an UnmarshalTLV method does not bear the
expected header. It matches errorTagMismatch with [errors.Is].
*/
type TagMismatchError struct {
	Want Header
	Got  Header
}

/*
Error implements the error interface.
*/
func (r *TagMismatchError) Error() string {
	return errorTagMismatch.Error() + ": want " + r.Want.String() + ", got " + r.Got.String()
}

/*
Is allows *[TagMismatchError] to match the package tag mismatch error.
*/
func (r *TagMismatchError) Is(target error) bool { return target == errorTagMismatch }

func errorExpectHeader(want Header, got TLV) (err error) {
	if h := got.Header(); h != want {
		err = &TagMismatchError{Want: want, Got: h}
	}
	return
}

/*
ParseError describes a decoding failure. Offset is the absolute position,
within the buffer handed to the failing function, of the first octet of
the element that could not be decoded. Err is one of the decoding error
kinds (e.g.: [ErrTruncatedInput]).
*/
type ParseError struct {
	Offset int
	Err    error
	Msg    string
}

/*
Error implements the error interface.
*/
func (r *ParseError) Error() string {
	s := r.Err.Error() + " at offset " + itoa(r.Offset)
	if r.Msg != "" {
		s += ": " + r.Msg
	}
	return s
}

/*
Unwrap returns the underlying error kind.
*/
func (r *ParseError) Unwrap() error { return r.Err }

func parseErrorf(off int, kind error, m ...any) *ParseError {
	return &ParseError{Offset: off, Err: kind, Msg: fmtParts(m...)}
}

/*
rebase shifts the offset of a *ParseError produced against a sub-slice
so that it refers to the enclosing buffer.
*/
func rebase(err error, by int) error {
	if pe, ok := err.(*ParseError); ok && by != 0 {
		pe.Offset += by
	}
	return err
}

func fmtParts(parts ...any) string {
	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case uint64:
			b.WriteString(fmtUint(v, 10))
		case Class:
			b.WriteString(v.String())
		case Form:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}
	return b.String()
}
