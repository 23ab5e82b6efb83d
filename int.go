package bertlv

/*
int.go contains all types and methods pertaining to the ASN.1
INTEGER type.
*/

import (
	"math"

	"golang.org/x/exp/constraints"
)

/*
Integer implements the ASN.1 INTEGER type (tag 2) for any value within
the range of int64. Content octets are the minimal two's complement
expression of the value, most significant octet first.

	Integer(35148) => 02 03 00 89 4C

See [IntegerOf] for other Go integer types, including uint64.
*/
type Integer int64

/*
Tag returns the integer constant [TagInteger].
*/
func (r Integer) Tag() uint64 { return TagInteger }

/*
String returns the string representation of the receiver instance.
*/
func (r Integer) String() string { return fmtInt(int64(r), 10) }

/*
MarshalTLV returns the primitive UNIVERSAL INTEGER [TLV] expressing
the receiver instance.
*/
func (r Integer) MarshalTLV() TLV {
	return NewPrimitive(ClassUniversal, TagInteger, appendInt64(nil, int64(r)))
}

/*
UnmarshalTLV returns an error following an attempt to read tlv into the
receiver instance. tlv must be a primitive UNIVERSAL INTEGER whose
content is a minimal two's complement value of at most eight octets.
*/
func (r *Integer) UnmarshalTLV(tlv TLV) (err error) {
	debugEnter(newLItem(tlv, "tlv"))
	defer func() { debugExit(newLItem(err)) }()

	if r == nil {
		return ErrNilValue
	} else if err = errorExpectHeader(intHeader, tlv); err != nil {
		return
	} else if err = checkIntegerContent(tlv.Value, 8); err != nil {
		return
	}

	*r = Integer(readInt64(tlv.Value))
	debugPrim(newLItem(int64(*r), "INTEGER"))

	return
}

var intHeader = Header{Class: ClassUniversal, Form: Primitive, Tag: TagInteger}

/*
IntegerOf implements the ASN.1 INTEGER type (tag 2) for any Go integer
type. Values of unsigned 64-bit types above [math.MaxInt64] occupy nine
content octets, the first being zero.

Decoding into an IntegerOf fails if the encoded value cannot be held by
T without loss.
*/
type IntegerOf[T constraints.Integer] struct {
	V T
}

/*
Tag returns the integer constant [TagInteger].
*/
func (r IntegerOf[T]) Tag() uint64 { return TagInteger }

/*
String returns the string representation of the receiver instance.
*/
func (r IntegerOf[T]) String() string {
	if isSigned[T]() {
		return fmtInt(int64(r.V), 10)
	}
	return fmtUint(uint64(r.V), 10)
}

/*
MarshalTLV returns the primitive UNIVERSAL INTEGER [TLV] expressing
the receiver instance.
*/
func (r IntegerOf[T]) MarshalTLV() TLV {
	var content []byte
	if u := uint64(r.V); !isSigned[T]() && u > math.MaxInt64 {
		content = appendUintBE(append(make([]byte, 0, 9), 0x00), u, 8)
	} else {
		content = appendInt64(nil, int64(r.V))
	}
	return NewPrimitive(ClassUniversal, TagInteger, content)
}

/*
UnmarshalTLV returns an error following an attempt to read tlv into the
receiver instance.
*/
func (r *IntegerOf[T]) UnmarshalTLV(tlv TLV) (err error) {
	if r == nil {
		return ErrNilValue
	} else if err = errorExpectHeader(intHeader, tlv); err != nil {
		return
	} else if err = checkIntegerContent(tlv.Value, 9); err != nil {
		return
	}

	b := tlv.Value
	var out T
	if len(b) == 9 {
		// only an unsigned value above MaxInt64 needs a ninth octet
		if b[0] != 0x00 || isSigned[T]() {
			return errorIntegerOverflow
		}
		var u uint64
		for _, c := range b[1:] {
			u = u<<8 | uint64(c)
		}
		if out = T(u); uint64(out) != u {
			return errorIntegerOverflow
		}
	} else {
		v := readInt64(b)
		if out = T(v); int64(out) != v || (v < 0) != (out < 0) {
			return errorIntegerOverflow
		}
	}

	r.V = out
	debugPrim(newLItem(r.String(), "INTEGER"))

	return
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

/*
sizeInt64 returns the minimal number of two's complement octets needed
to express v.
*/
func sizeInt64(v int64) (n int) {
	n = 1
	for v > 127 || v < -128 {
		v >>= 8
		n++
	}
	return
}

func appendInt64(dst []byte, v int64) []byte {
	for i := sizeInt64(v) - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(uint(i)*8)))
	}
	return dst
}

/*
readInt64 returns the sign-extended value of at most eight two's
complement octets.
*/
func readInt64(b []byte) (v int64) {
	v = int64(int8(b[0]))
	for _, c := range b[1:] {
		v = v<<8 | int64(c)
	}
	return
}

/*
checkIntegerContent verifies that b is a non-empty, minimal two's
complement expression of no more than limit octets.
*/
func checkIntegerContent(b []byte, limit int) error {
	switch {
	case len(b) == 0:
		return errorEmptyInteger
	case len(b) > limit:
		return errorIntegerTooLarge
	case len(b) > 1 && (b[0] == 0x00 && b[1]&0x80 == 0 ||
		b[0] == 0xFF && b[1]&0x80 != 0):
		return errorIntegerNonMin
	}
	return nil
}
