package bertlv

/*
parse.go contains the recursive, length-bounded TLV parser.
*/

/*
Unmarshaler is implemented by types which can be built from a decoded
[TLV]. *[TLV] implements it, as do pointers to the reference types of
this package.
*/
type Unmarshaler interface {
	UnmarshalTLV(TLV) error
}

/*
Parse returns the first complete [TLV] found at the start of b alongside
the unconsumed remainder of b and an error.

Primitive content in the returned tree aliases b (with capacity clipped
to the content), so b must not be modified while the tree is in use. See
[TLV.Clone] for a detached copy.

Every error returned is of type *[ParseError], whose Offset is the
position within b of the first octet of the element that failed. On
error the returned [TLV] is zero and the remainder is nil.
*/
func Parse(b []byte, opts ...Option) (tlv TLV, rest []byte, err error) {
	debugEnter(newLItem(len(b), "input len"))
	defer func() { debugExit(newLItem(len(rest), "rest len"), newLItem(err)) }()

	d := decoder{buf: b, cfg: newConfig(opts...)}

	var end int
	if tlv, end, err = d.node(0, len(b), 1); err != nil {
		return TLV{}, nil, err
	}
	rest = b[end:]

	return
}

/*
Unmarshal parses the first [TLV] found at the start of b and hands it to
u. The unconsumed remainder of b is returned.
*/
func Unmarshal(b []byte, u Unmarshaler, opts ...Option) (rest []byte, err error) {
	if u == nil {
		return nil, ErrNilValue
	}

	var tlv TLV
	if tlv, rest, err = Parse(b, opts...); err == nil {
		if err = u.UnmarshalTLV(tlv); err != nil {
			rest = nil
		}
	}

	return
}

type decoder struct {
	buf []byte
	cfg config
}

/*
node decodes the element starting at off, which may not extend beyond
limit. It returns the element and the offset just past it.
*/
func (r decoder) node(off, limit, depth int) (tlv TLV, next int, err error) {
	if bound := r.cfg.depthLimit(); depth > bound {
		err = parseErrorf(off, ErrDepthExceeded, "depth ", depth,
			" exceeds ", bound)
		return
	}

	var (
		h      Header
		idLen  int
		lenLen int
		length uint64
	)

	if h, idLen, err = ParseHeader(r.buf[off:limit]); err != nil {
		err = rebase(err, off)
		return
	}
	if length, lenLen, err = ParseLength(r.buf[off+idLen : limit]); err != nil {
		err = rebase(err, off)
		return
	}

	start := off + idLen + lenLen
	if length > uint64(limit-start) {
		err = parseErrorf(off, ErrTruncatedInput, "want ", length,
			" content octets, have ", limit-start)
		return
	}
	next = start + int(length)

	tlv = TLV{Class: h.Class, Tag: h.Tag, Form: h.Form}
	if h.Form == Primitive {
		tlv.Value = r.buf[start:next:next]
		debugTLV(newLItem(h, "primitive"), newLItem(length, "length"))
		return
	}

	debugTLV(newLItem(h, "constructed"), newLItem(length, "length"))
	if tlv.Children, err = r.children(start, next, depth); err != nil {
		return TLV{}, 0, err
	}

	return
}

/*
children decodes the elements found in the constructed content spanning
start to end. Zero elements is valid.
*/
func (r decoder) children(start, end, depth int) (kids []TLV, err error) {
	for pos := start; pos < end; {
		var kid TLV
		if kid, pos, err = r.node(pos, end, depth+1); err != nil {
			// The parent content lies wholly within the buffer, so a
			// child running out of input has overrun that content.
			if pe, ok := err.(*ParseError); ok && pe.Err == ErrTruncatedInput {
				pe.Err = ErrMalformedLength
			}
			return nil, err
		}
		kids = append(kids, kid)
	}

	return
}
