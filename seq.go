package bertlv

/*
seq.go contains all types and methods pertaining to the ASN.1
SEQUENCE and SEQUENCE OF types.
*/

/*
Sequence implements a schema-less ASN.1 SEQUENCE (tag 16): an ordered
list of arbitrary [TLV] elements.
*/
type Sequence []TLV

/*
Tag returns the integer constant [TagSequence].
*/
func (r Sequence) Tag() uint64 { return TagSequence }

/*
Len returns the number of elements within the receiver instance.
*/
func (r Sequence) Len() int { return len(r) }

/*
MarshalTLV returns the constructed UNIVERSAL SEQUENCE [TLV] holding the
elements of the receiver instance in order.
*/
func (r Sequence) MarshalTLV() TLV {
	return NewConstructed(ClassUniversal, TagSequence, r...)
}

/*
UnmarshalTLV returns an error following an attempt to read the elements
of tlv, which must be a constructed UNIVERSAL SEQUENCE, into the
receiver instance. Elements are not copied.
*/
func (r *Sequence) UnmarshalTLV(tlv TLV) error {
	if r == nil {
		return ErrNilValue
	}
	if err := errorExpectHeader(seqHeader, tlv); err != nil {
		return err
	}
	*r = Sequence(tlv.Children)
	debugComposite(newLItem(len(*r), "SEQUENCE elements"))
	return nil
}

var (
	seqHeader = Header{Class: ClassUniversal, Form: Constructed, Tag: TagSequence}
	setHeader = Header{Class: ClassUniversal, Form: Constructed, Tag: TagSet}
)

/*
SequenceOf implements the ASN.1 SEQUENCE OF type (tag 16): an ordered,
homogeneous list of values of type T.

Decoding requires *T to implement [Unmarshaler], which all reference
types of this package (other than [Tagged]) do.
*/
type SequenceOf[T Marshaler] []T

/*
Tag returns the integer constant [TagSequence].
*/
func (r SequenceOf[T]) Tag() uint64 { return TagSequence }

/*
MarshalTLV returns the constructed UNIVERSAL SEQUENCE [TLV] holding the
elements of the receiver instance in order.
*/
func (r SequenceOf[T]) MarshalTLV() TLV {
	return NewConstructed(ClassUniversal, TagSequence, marshalElements([]T(r))...)
}

/*
UnmarshalTLV returns an error following an attempt to read the elements
of tlv, which must be a constructed UNIVERSAL SEQUENCE, into the
receiver instance.
*/
func (r *SequenceOf[T]) UnmarshalTLV(tlv TLV) error {
	if r == nil {
		return ErrNilValue
	}
	if err := errorExpectHeader(seqHeader, tlv); err != nil {
		return err
	}

	elems, err := unmarshalElements[T](tlv.Children)
	if err == nil {
		*r = elems
	}
	return err
}

func marshalElements[T Marshaler](elems []T) []TLV {
	if len(elems) == 0 {
		return nil
	}
	out := make([]TLV, len(elems))
	for i, elem := range elems {
		out[i] = elem.MarshalTLV()
	}
	return out
}

func unmarshalElements[T Marshaler](kids []TLV) ([]T, error) {
	out := make([]T, len(kids))
	for i := range kids {
		u, ok := any(&out[i]).(Unmarshaler)
		if !ok {
			return nil, errorNotUnmarshaler
		}
		if err := u.UnmarshalTLV(kids[i]); err != nil {
			return nil, err
		}
	}
	debugComposite(newLItem(len(out), "elements"))

	return out, nil
}
