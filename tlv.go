package bertlv

/*
tlv.go contains all types, methods and functions for the
Type-Length-Value type.
*/

/*
Header describes the identifier octets of a [TLV]: its class, encoding
form and tag number. It carries no length, as lengths are derived from
content when writing and consumed transiently when parsing.
*/
type Header struct {
	Class Class
	Form  Form
	Tag   uint64
}

/*
String returns the string representation of the receiver instance.
*/
func (r Header) String() string {
	return "{Class:" + r.Class.String() +
		", Form:" + r.Form.String() +
		", Tag:" + fmtUint(r.Tag, 10) + "}"
}

/*
TLV is a node within a decoded (or to-be-encoded) BER tree.

A TLV whose Form is [Primitive] carries its content octets verbatim in
Value. A TLV whose Form is [Constructed] carries an ordered sequence of
nested nodes in Children. The field not selected by Form is ignored by
every function in this package.

Instances are produced by [Parse], [Packet.Next] and the [NewPrimitive]
and [NewConstructed] constructors, and are serialized by [Append] and
[Marshal]. A TLV should be treated as immutable once built.
*/
type TLV struct {
	Class    Class
	Tag      uint64
	Form     Form
	Value    []byte
	Children []TLV
}

/*
NewPrimitive returns a primitive [TLV] holding value.
*/
func NewPrimitive(class Class, tag uint64, value []byte) TLV {
	return TLV{Class: class, Tag: tag, Form: Primitive, Value: value}
}

/*
NewConstructed returns a constructed [TLV] holding the ordered children.
*/
func NewConstructed(class Class, tag uint64, children ...TLV) TLV {
	return TLV{Class: class, Tag: tag, Form: Constructed, Children: children}
}

/*
Header returns the [Header] of the receiver instance.
*/
func (r TLV) Header() Header { return Header{Class: r.Class, Form: r.Form, Tag: r.Tag} }

/*
IsConstructed returns a Boolean value indicative of the receiver being
of the [Constructed] form.
*/
func (r TLV) IsConstructed() bool { return r.Form == Constructed }

/*
Eq returns a Boolean value indicative of structural equality between
the receiver and input [TLV] instances: class, tag number and form must
match, as must the content octets (primitive) or, recursively, every
child (constructed). A nil and an empty content slice are equal.
*/
func (r TLV) Eq(tlv TLV) bool { return tlvEqual(r, tlv) }

func tlvEqual(a, b TLV) bool {
	if a.Class != b.Class || a.Tag != b.Tag || a.Form != b.Form {
		return false
	}

	if a.Form != Constructed {
		return beq(a.Value, b.Value)
	}

	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !tlvEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

/*
Clone returns a deep copy of the receiver instance which shares no
memory with it.
*/
func (r TLV) Clone() TLV {
	out := TLV{Class: r.Class, Tag: r.Tag, Form: r.Form}
	if r.Form != Constructed {
		out.Value = bclone(r.Value)
		return out
	}
	if r.Children != nil {
		out.Children = make([]TLV, len(r.Children))
		for i := range r.Children {
			out.Children[i] = r.Children[i].Clone()
		}
	}
	return out
}

/*
Retag returns a shallow copy of the receiver bearing the input class
and tag number. The form and content are preserved.

This is the decoding counterpart of [Implicit]: an IMPLICIT [1] INTEGER
may be read by retagging it to UNIVERSAL 2 before handing it to the
[Integer] unmarshaler.
*/
func (r TLV) Retag(class Class, tag uint64) TLV {
	r.Class = class
	r.Tag = tag
	return r
}

/*
Unwrap returns the sole child of the receiver instance, provided the
receiver is a constructed [TLV] bearing the input class and tag number.

This is the decoding counterpart of [Explicit].
*/
func (r TLV) Unwrap(class Class, tag uint64) (TLV, error) {
	if err := errorExpectHeader(Header{class, Constructed, tag}, r); err != nil {
		return TLV{}, err
	}
	if len(r.Children) != 1 {
		return TLV{}, errorUnwrapChildCount
	}
	return r.Children[0], nil
}

/*
MarshalTLV returns the receiver instance, thereby qualifying [TLV] as a
[Marshaler].
*/
func (r TLV) MarshalTLV() TLV { return r }

/*
UnmarshalTLV replaces the receiver with tlv, thereby qualifying *[TLV]
as an [Unmarshaler].
*/
func (r *TLV) UnmarshalTLV(tlv TLV) error {
	if r == nil {
		return ErrNilValue
	}
	*r = tlv
	return nil
}

/*
String returns the string representation of the receiver instance.
*/
func (r TLV) String() string { return tlvString(r) }

func tlvString(tlv TLV) string {
	b := newStrBuilder()
	b.WriteString("{Class:" + tlv.Class.String() +
		", Tag:" + fmtUint(tlv.Tag, 10) +
		", Form:" + tlv.Form.String())

	if tlv.Form == Constructed {
		b.WriteString(", Children:[")
		for i, child := range tlv.Children {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(tlvString(child))
		}
		b.WriteString("]}")
		return b.String()
	}

	var value []string
	for i := 0; i < len(tlv.Value); i++ {
		value = append(value, itoa(int(tlv.Value[i])))
	}
	b.WriteString(", Value:[" + join(value, ` `) + "]}")
	return b.String()
}
