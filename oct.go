package bertlv

/*
oct.go contains all types and methods pertaining to the ASN.1
OCTET STRING type.
*/

/*
OctetString implements the ASN.1 OCTET STRING type (tag 4).
*/
type OctetString []byte

/*
Tag returns the integer constant [TagOctetString].
*/
func (r OctetString) Tag() uint64 { return TagOctetString }

/*
String returns the string representation of the receiver instance.
*/
func (r OctetString) String() string { return string(r) }

/*
Len returns the integer byte length of the receiver instance.
*/
func (r OctetString) Len() int { return len(r) }

/*
MarshalTLV returns the primitive UNIVERSAL OCTET STRING [TLV] holding
the receiver instance. The content is not copied.
*/
func (r OctetString) MarshalTLV() TLV {
	return NewPrimitive(ClassUniversal, TagOctetString, r)
}

/*
UnmarshalTLV returns an error following an attempt to read tlv into the
receiver instance, which receives a copy of the content octets.

Both the primitive form and the constructed form are accepted. The
latter is a series of OCTET STRING segments, each of which may itself
be constructed, whose content is concatenated in order.
*/
func (r *OctetString) UnmarshalTLV(tlv TLV) (err error) {
	if r == nil {
		return ErrNilValue
	}

	var out []byte
	if out, err = appendOctetSegments(make([]byte, 0, len(tlv.Value)), tlv); err == nil {
		*r = out
		debugPrim(newLItem(len(out), "OCTET STRING len"))
	}

	return
}

func appendOctetSegments(dst []byte, tlv TLV) ([]byte, error) {
	if tlv.Class != ClassUniversal || tlv.Tag != TagOctetString || !tlv.Form.valid() {
		return nil, &TagMismatchError{
			Want: Header{Class: ClassUniversal, Form: tlv.Form, Tag: TagOctetString},
			Got:  tlv.Header(),
		}
	}

	if tlv.Form == Primitive {
		return append(dst, tlv.Value...), nil
	}

	var err error
	for _, seg := range tlv.Children {
		if dst, err = appendOctetSegments(dst, seg); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
