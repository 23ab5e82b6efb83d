package bertlv

/*
hdr.go contains the identifier octet codec: class, form and tag number,
including the high-tag-number (base-128) form.
*/

import "math/bits"

/*
AppendHeader appends the identifier octets of h to dst and returns the
extended slice.

Tag numbers of 30 or less are packed into the low five bits of a single
octet. Larger tag numbers set those bits to 11111 and follow with the
minimal base-128 expression of the tag number, most significant group
first.

AppendHeader does not validate h; see [Append] for a checked writer.
*/
func AppendHeader(dst []byte, h Header) []byte {
	id := byte(h.Class&0x03) << 6
	if h.Form == Constructed {
		id |= 0x20
	}

	if h.Tag < 0x1F {
		return append(dst, id|byte(h.Tag))
	}

	dst = append(dst, id|0x1F)
	return appendBase128(dst, h.Tag)
}

/*
sizeHeader returns the number of identifier octets that [AppendHeader]
would write for tag.
*/
func sizeHeader(tag uint64) int {
	if tag < 0x1F {
		return 1
	}
	return 1 + sizeBase128(tag)
}

/*
ParseHeader returns a [Header] alongside the number of identifier octets
consumed and an error following an attempt to read the identifier octets
at the start of b.

Errors are always of type *[ParseError]. [ErrTruncatedInput] is returned
for an empty b. [ErrMalformedHeader] is returned when b ends before the
final base-128 group, when the base-128 expression bears a leading zero
group, when it expresses a tag number below 31 (which has a single octet
form) or when the tag number does not fit in 64 bits.
*/
func ParseHeader(b []byte) (h Header, idLen int, err error) {
	debugEnter(newLItem(len(b), "input len"))
	defer func() { debugExit(newLItem(h, "header"), newLItem(idLen, "idLen"), newLItem(err)) }()

	if len(b) == 0 {
		err = parseErrorf(0, ErrTruncatedInput, "no identifier octet")
		return
	}

	first := b[0]
	h.Class = Class(first >> 6)     // bits 8–7
	h.Form = Form((first >> 5) & 1) // bit 6 (P/C)
	h.Tag = uint64(first & 0x1F)    // bits 5–1
	idLen = 1

	if h.Tag != 0x1F {
		debugIO(newLItem(b[:idLen], "identifier octets"))
		return // low-tag-number form
	}

	if h.Tag, idLen, err = parseHighTag(b); err != nil {
		return Header{}, 0, err
	}
	debugCodec(newLItem(h.Tag, "high tag number"))
	debugIO(newLItem(b[:idLen], "identifier octets"))

	return
}

/*
parseHighTag reads the base-128 groups following an identifier octet
whose low five bits are all set. b[0] is that identifier octet.
*/
func parseHighTag(b []byte) (tag uint64, idLen int, err error) {
	idLen = 1
	for i := 1; i < len(b); i++ {
		ch := b[i]
		idLen++

		if i == 1 && ch == 0x80 {
			return 0, 0, parseErrorf(0, ErrMalformedHeader,
				"leading zero group in high tag number")
		}
		if bits.LeadingZeros64(tag) < 7 {
			return 0, 0, parseErrorf(0, ErrMalformedHeader,
				"tag number overflows 64 bits")
		}

		tag = tag<<7 | uint64(ch&0x7F)

		if ch&0x80 == 0 { // MSB 0 ⇒ last group
			if tag < 0x1F {
				return 0, 0, parseErrorf(0, ErrMalformedHeader,
					"high tag number form used for tag ", tag)
			}
			return
		}
	}

	return 0, 0, parseErrorf(0, ErrMalformedHeader,
		"input exhausted within high tag number")
}
