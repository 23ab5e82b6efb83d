package bertlv

/*
utf8.go contains all types and methods pertaining to the ASN.1
UTF8 STRING type.
*/

/*
UTF8String implements the ASN.1 UTF8 STRING type (tag 12).
*/
type UTF8String string

/*
Tag returns the integer constant [TagUTF8String].
*/
func (r UTF8String) Tag() uint64 { return TagUTF8String }

/*
String returns the string representation of the receiver instance.
*/
func (r UTF8String) String() string { return string(r) }

/*
Len returns the integer byte length of the receiver instance.
*/
func (r UTF8String) Len() int { return len(r) }

/*
MarshalTLV returns the primitive UNIVERSAL UTF8 STRING [TLV] holding
the octets of the receiver instance. The receiver is not validated.
*/
func (r UTF8String) MarshalTLV() TLV {
	return NewPrimitive(ClassUniversal, TagUTF8String, []byte(r))
}

/*
UnmarshalTLV returns an error following an attempt to read tlv into the
receiver instance. The content octets must be valid UTF-8.
*/
func (r *UTF8String) UnmarshalTLV(tlv TLV) (err error) {
	if r == nil {
		return ErrNilValue
	}
	want := Header{Class: ClassUniversal, Form: Primitive, Tag: TagUTF8String}
	if err = errorExpectHeader(want, tlv); err != nil {
		return
	}
	if !utf8OK(tlv.Value) {
		return errorBadUTF8
	}

	*r = UTF8String(tlv.Value)
	debugPrim(newLItem(string(*r), "UTF8 STRING"))

	return
}
