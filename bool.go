package bertlv

/*
bool.go contains all types and methods pertaining to the ASN.1
BOOLEAN type.
*/

/*
Boolean implements the ASN.1 BOOLEAN type (tag 1).
*/
type Boolean bool

/*
Tag returns the integer constant one (1) for [TagBoolean].
*/
func (r Boolean) Tag() uint64 { return TagBoolean }

/*
Byte returns the verisimilitude of the receiver instance expressed
as a byte: 0x0 for false, 0xFF for true.
*/
func (r Boolean) Byte() byte {
	var b byte
	if bool(r) {
		b = 0xFF
	}

	return b
}

/*
String returns the string representation of the receiver instance.
*/
func (r Boolean) String() string { return bool2str(bool(r)) }

/*
MarshalTLV returns the primitive UNIVERSAL BOOLEAN [TLV] expressing
the receiver instance.
*/
func (r Boolean) MarshalTLV() TLV {
	return NewPrimitive(ClassUniversal, TagBoolean, []byte{r.Byte()})
}

/*
UnmarshalTLV returns an error following an attempt to read tlv into the
receiver instance. Any non-zero content octet is read as true.
*/
func (r *Boolean) UnmarshalTLV(tlv TLV) (err error) {
	if r == nil {
		return ErrNilValue
	}
	want := Header{Class: ClassUniversal, Form: Primitive, Tag: TagBoolean}
	if err = errorExpectHeader(want, tlv); err != nil {
		return
	}
	if len(tlv.Value) != 1 {
		return errorBadBoolean
	}

	*r = tlv.Value[0] != 0x00
	debugPrim(newLItem(bool(*r), "BOOLEAN"))

	return
}
