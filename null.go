package bertlv

/*
null.go contains all types and methods pertaining to the ASN.1
NULL type.
*/

/*
Null implements the ASN.1 NULL type (tag 5).

There is no constructor for instances of this type.
*/
type Null struct{}

/*
Tag returns the integer constant [TagNull].
*/
func (_ Null) Tag() uint64 { return TagNull }

/*
String returns the string NULL.
*/
func (_ Null) String() string { return "NULL" }

/*
MarshalTLV returns the primitive UNIVERSAL NULL [TLV], which bears no
content octets.
*/
func (_ Null) MarshalTLV() TLV { return NewPrimitive(ClassUniversal, TagNull, nil) }

/*
UnmarshalTLV returns an error if tlv is not a primitive UNIVERSAL NULL
free of content octets.
*/
func (r *Null) UnmarshalTLV(tlv TLV) error {
	if r == nil {
		return ErrNilValue
	}
	want := Header{Class: ClassUniversal, Form: Primitive, Tag: TagNull}
	if err := errorExpectHeader(want, tlv); err != nil {
		return err
	}
	if len(tlv.Value) != 0 {
		return errorNullLength
	}
	return nil
}
