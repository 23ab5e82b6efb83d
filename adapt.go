package bertlv

/*
adapt.go contains bridges between the TLV type and the BER facilities of
golang.org/x/crypto/cryptobyte and github.com/go-asn1-ber/asn1-ber.
*/

import (
	asn1ber "github.com/go-asn1-ber/asn1-ber"
	"golang.org/x/crypto/cryptobyte"
)

/*
Marshal appends the BER encoding of the receiver to b, thereby
qualifying [TLV] as a [cryptobyte.MarshalingValue]:

	b := cryptobyte.NewBuilder(nil)
	b.AddValue(tlv)
	der, err := b.Bytes()

Any error raised by the writer (e.g.: [ErrInvalidClass]) is returned
and, through [cryptobyte.Builder.AddValue], recorded on b.
*/
func (r TLV) Marshal(b *cryptobyte.Builder) error {
	debugEnter(newLItem(r, "tlv"))

	scratch := getBuf()
	defer putBuf(scratch)

	var err error
	if *scratch, err = appendTLV(*scratch, r); err == nil {
		b.AddBytes(*scratch)
	}
	debugExit(newLItem(err))

	return err
}

/*
ReadTLV returns the [TLV] found at the start of s alongside an error,
advancing s past it on success. s is not modified on error.

Unlike [cryptobyte.String.ReadAnyASN1Element], ReadTLV accepts tag
numbers beyond 31 bits, non-minimal long-form lengths and nested
content. Primitive content of the returned tree aliases s.
*/
func ReadTLV(s *cryptobyte.String, opts ...Option) (tlv TLV, err error) {
	if s == nil {
		return TLV{}, ErrNilValue
	}
	debugAdapter(newLItem(len(*s), "cryptobyte input len"))

	var rest []byte
	if tlv, rest, err = Parse([]byte(*s), opts...); err == nil {
		s.Skip(len(*s) - len(rest))
	}

	return
}

/*
FromPacket returns a [TLV] tree equivalent to p alongside an error.
Content octets are copied; the result shares no memory with p.

p is typically the product of [asn1ber.DecodePacketErr], which also
accepts indefinite-length input. FromPacket therefore offers a route
for such input into this package, which cannot parse it directly.
*/
func FromPacket(p *asn1ber.Packet) (tlv TLV, err error) {
	debugEnter(newLItem(p != nil, "packet present"))
	defer func() { debugExit(newLItem(tlv, "tlv"), newLItem(err)) }()

	if p == nil {
		err = errorNilPacket
		return
	}

	tlv = TLV{
		Class: Class(p.ClassType >> 6),
		Tag:   uint64(p.Tag),
	}

	if p.TagType != asn1ber.TypeConstructed {
		tlv.Form = Primitive
		if p.Data != nil && p.Data.Len() > 0 {
			tlv.Value = bclone(p.Data.Bytes())
		} else {
			tlv.Value = bclone(p.ByteValue)
		}
		debugAdapter(newLItem(tlv.Header(), "from asn1ber primitive"))
		return
	}

	tlv.Form = Constructed
	if len(p.Children) > 0 {
		tlv.Children = make([]TLV, len(p.Children))
	}
	for i, child := range p.Children {
		if tlv.Children[i], err = FromPacket(child); err != nil {
			return TLV{}, err
		}
	}
	debugAdapter(newLItem(tlv.Header(), "from asn1ber constructed"),
		newLItem(len(tlv.Children), "children"))

	return
}

/*
ToPacket returns an [asn1ber.Packet] tree equivalent to tlv alongside
an error. The class and form of every node must be valid, as in [Append].

Only the identifier and content of each packet are populated; no
Description or decoded Value is set.
*/
func ToPacket(tlv TLV) (p *asn1ber.Packet, err error) {
	debugEnter(newLItem(tlv, "tlv"))
	defer func() { debugExit(newLItem(err)) }()

	if !tlv.Class.valid() {
		return nil, ErrInvalidClass
	} else if !tlv.Form.valid() {
		return nil, ErrInvalidForm
	}

	class := asn1ber.Class(tlv.Class) << 6
	if tlv.Form == Primitive {
		p = asn1ber.Encode(class, asn1ber.TypePrimitive, asn1ber.Tag(tlv.Tag), nil, "")
		p.Data.Write(tlv.Value)
		p.ByteValue = bclone(tlv.Value)
		return
	}

	p = asn1ber.Encode(class, asn1ber.TypeConstructed, asn1ber.Tag(tlv.Tag), nil, "")
	for _, child := range tlv.Children {
		var sub *asn1ber.Packet
		if sub, err = ToPacket(child); err != nil {
			return nil, err
		}
		p.AppendChild(sub)
	}

	return
}
