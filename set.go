package bertlv

/*
set.go contains all types and methods pertaining to the ASN.1
SET OF type.
*/

/*
SetOf implements the ASN.1 SET OF type (tag 17). Elements are written
in the order held, as BER imposes no ordering on SET OF; no sorting is
performed. Decoding preserves the encoded order.

Decoding requires *T to implement [Unmarshaler].
*/
type SetOf[T Marshaler] []T

/*
Tag returns the integer constant [TagSet].
*/
func (r SetOf[T]) Tag() uint64 { return TagSet }

/*
MarshalTLV returns the constructed UNIVERSAL SET [TLV] holding the
elements of the receiver instance.
*/
func (r SetOf[T]) MarshalTLV() TLV {
	return NewConstructed(ClassUniversal, TagSet, marshalElements([]T(r))...)
}

/*
UnmarshalTLV returns an error following an attempt to read the elements
of tlv, which must be a constructed UNIVERSAL SET, into the receiver
instance.
*/
func (r *SetOf[T]) UnmarshalTLV(tlv TLV) error {
	if r == nil {
		return ErrNilValue
	}
	if err := errorExpectHeader(setHeader, tlv); err != nil {
		return err
	}

	elems, err := unmarshalElements[T](tlv.Children)
	if err == nil {
		*r = elems
	}
	return err
}
