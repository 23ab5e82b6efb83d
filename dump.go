package bertlv

/*
dump.go contains human-readable renderings of TLV trees and their
encodings.
*/

import "io"

const (
	defaultDumpWidth = 24
	minDumpWidth     = 16
)

/*
Dump returns an error following an attempt to write an indented listing
of tlv into w. Each element occupies one line bearing its identifier and
length octets in hexadecimal, followed by its name and content length.
Primitive content follows on lines of its own, one level deeper.

The variadic wrapAt value defines the maximum number of content octets
displayed per line. The default is 24, and can be configured no less
than 16.
*/
func Dump(w io.Writer, tlv TLV, wrapAt ...int) error {
	width := defaultDumpWidth
	if len(wrapAt) > 0 && wrapAt[0] >= minDumpWidth {
		width = wrapAt[0]
	}

	return dumpLevel(w, tlv, 0, width)
}

func dumpLevel(w io.Writer, tlv TLV, depth, width int) error {
	if !tlv.Class.valid() {
		return ErrInvalidClass
	} else if !tlv.Form.valid() {
		return ErrInvalidForm
	}

	_, length := sizeTLV(tlv)
	indent := strrpt("  ", depth)

	var hdr [1 + 10 + 1 + 8]byte
	id := AppendHeader(hdr[:0], tlv.Header())
	lo := AppendLength(id[len(id):], uint64(length))

	line := newStrBuilder()
	line.WriteString(indent)
	writeHex(&line, id)
	line.WriteByte(' ')
	writeHex(&line, lo)
	line.WriteString("    # ")
	line.WriteString(tagName(tlv.Class, tlv.Tag))
	line.WriteString(", len=")
	line.WriteString(itoa(length))
	line.WriteByte('\n')

	if tlv.Form == Primitive {
		for i := 0; i < len(tlv.Value); i += width {
			end := i + width
			if end > len(tlv.Value) {
				end = len(tlv.Value)
			}
			line.WriteString(indent)
			line.WriteString("  ")
			writeHex(&line, tlv.Value[i:end])
			line.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(w, line.String()); err != nil {
		return err
	}

	for _, child := range tlv.Children {
		if tlv.Form != Constructed {
			break
		}
		if err := dumpLevel(w, child, depth+1, width); err != nil {
			return err
		}
	}

	return nil
}

/*
tagName returns the name of a UNIVERSAL tag number, or a bracketed
class and number for anything else.
*/
func tagName(class Class, tag uint64) string {
	if class == ClassUniversal {
		if name, ok := TagNames[tag]; ok {
			return name
		}
	}
	return "[" + class.String() + " " + fmtUint(tag, 10) + "]"
}

func writeHex(b interface{ WriteByte(byte) error }, data []byte) {
	for _, c := range data {
		_ = b.WriteByte(hexDigits[c>>4])
		_ = b.WriteByte(hexDigits[c&0xF])
	}
}

/*
Hex returns the uppercase hexadecimal rendering of the first element
encoded in b, split into its identifier, length and content octets by
single spaces (e.g.: "02 02 FF7F"). Anything following the element is
appended to the content field.

Input that cannot be split is rendered as one unbroken field.
*/
func Hex(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	_, idLen, err := ParseHeader(b)
	if err != nil {
		return uc(hexstr(b))
	}
	_, lenLen, err := ParseLength(b[idLen:])
	if err != nil {
		return uc(hexstr(b))
	}

	cut := idLen + lenLen
	return trimS(uc(hexstr(b[:idLen]) + " " +
		hexstr(b[idLen:cut]) + " " +
		hexstr(b[cut:])))
}
