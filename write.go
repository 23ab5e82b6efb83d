package bertlv

/*
write.go contains the TLV writer and its pooled scratch buffers.
*/

import "sync"

/*
Marshaler is implemented by any value which can project itself onto a
[TLV] tree. [TLV] implements it, as do the reference types of this
package.
*/
type Marshaler interface {
	MarshalTLV() TLV
}

/*
Append appends the BER encoding of v to dst and returns the extended
slice alongside an error. The existing content of dst is never replaced.

Constructed content is written to a scratch buffer first so that its
length is known before the header is written; nothing is back-patched.

[ErrNilValue] is returned for a nil v, [ErrInvalidClass] for any node
whose class exceeds [ClassPrivate] and [ErrInvalidForm] for any node
whose form is neither [Primitive] nor [Constructed]. On error dst is
returned unmodified.
*/
func Append(dst []byte, v Marshaler) ([]byte, error) {
	if v == nil {
		return dst, ErrNilValue
	}

	out, err := appendTLV(dst, v.MarshalTLV())
	if err != nil {
		return dst, err
	}
	return out, nil
}

/*
Marshal returns the BER encoding of v alongside an error. The output
buffer is allocated once, sized by [Size].
*/
func Marshal(v Marshaler) ([]byte, error) {
	if v == nil {
		return nil, ErrNilValue
	}

	tlv := v.MarshalTLV()
	out, err := appendTLV(make([]byte, 0, Size(tlv)), tlv)
	if err != nil {
		return nil, err
	}
	return out, nil
}

/*
Size returns the exact number of octets [Append] would write for tlv.
*/
func Size(tlv TLV) int {
	n, _ := sizeTLV(tlv)
	return n
}

/*
sizeTLV returns the full encoded size of tlv and the size of its
content octets alone.
*/
func sizeTLV(tlv TLV) (total, content int) {
	if tlv.Form == Constructed {
		for _, child := range tlv.Children {
			n, _ := sizeTLV(child)
			content += n
		}
	} else {
		content = len(tlv.Value)
	}

	total = sizeHeader(tlv.Tag) + sizeLength(uint64(content)) + content
	return
}

func appendTLV(dst []byte, tlv TLV) ([]byte, error) {
	if !tlv.Class.valid() {
		return dst, ErrInvalidClass
	}
	if !tlv.Form.valid() {
		return dst, ErrInvalidForm
	}

	h := tlv.Header()
	if tlv.Form == Primitive {
		debugTLV(newLItem(h, "write primitive"), newLItem(len(tlv.Value), "length"))
		dst = AppendHeader(dst, h)
		dst = AppendLength(dst, uint64(len(tlv.Value)))
		return append(dst, tlv.Value...), nil
	}

	scratch := getBuf()
	defer putBuf(scratch)

	var err error
	for _, child := range tlv.Children {
		if *scratch, err = appendTLV(*scratch, child); err != nil {
			return dst, err
		}
	}

	debugTLV(newLItem(h, "write constructed"), newLItem(len(*scratch), "length"))
	dst = AppendHeader(dst, h)
	dst = AppendLength(dst, uint64(len(*scratch)))
	return append(dst, *scratch...), nil
}

// buffers grown beyond this are left to the collector
const maxPooledBuf = 64 << 10

var bufPool = sync.Pool{
	New: func() any { b := make([]byte, 0, 256); return &b },
}

func getBuf() *[]byte { return bufPool.Get().(*[]byte) }

func putBuf(p *[]byte) {
	if cap(*p) > maxPooledBuf {
		debugTrace(newLItem(cap(*p), "dropped buffer cap"))
		return
	}
	*p = (*p)[:0]
	bufPool.Put(p)
}
