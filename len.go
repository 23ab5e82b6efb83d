package bertlv

/*
len.go contains the length octet codec: short form, long form and the
(unsupported) indefinite form.
*/

/*
MaxShortFormLength is the largest length expressible in the short form.
*/
const MaxShortFormLength = 0x7F

/*
maxLengthOctets is the largest long-form octet count this package will
read, bounded by the width of uint64.
*/
const maxLengthOctets = 8

/*
AppendLength appends the length octets for n to dst and returns the
extended slice.

Lengths below 128 use the short form (a single octet). All others use
the long form: one octet bearing 0x80 OR'd with the count of following
octets, then the minimal big-endian expression of n. The form is chosen
by value alone.
*/
func AppendLength(dst []byte, n uint64) []byte {
	if n <= MaxShortFormLength {
		return append(dst, byte(n))
	}

	count := sizeUintBE(n)
	dst = append(dst, 0x80|byte(count))
	return appendUintBE(dst, n, count)
}

/*
sizeLength returns the number of length octets that [AppendLength]
would write for n.
*/
func sizeLength(n uint64) int {
	if n <= MaxShortFormLength {
		return 1
	}
	return 1 + sizeUintBE(n)
}

/*
ParseLength returns the decoded length alongside the number of length
octets consumed and an error following an attempt to read the length
octets at the start of b.

Any long-form octet count between one and eight is accepted; non-minimal
long forms are accepted as BER allows them. Errors are always of type
*[ParseError]: [ErrIndefiniteLength] for the 0x80 octet,
[ErrLengthOverflow] for more than eight length octets (including the
reserved 0xFF), and [ErrTruncatedInput] when b is too short.
*/
func ParseLength(b []byte) (length uint64, lenLen int, err error) {
	debugEnter(newLItem(len(b), "input len"))
	defer func() { debugExit(newLItem(length, "length"), newLItem(lenLen, "lenLen"), newLItem(err)) }()

	if len(b) == 0 {
		err = parseErrorf(0, ErrTruncatedInput, "no length octet")
		return
	}

	first := b[0]

	// Short-form  (bit 8 = 0)
	if first&0x80 == 0 {
		length, lenLen = uint64(first), 1
		debugCodec(newLItem(length, "short form"))
		debugIO(newLItem(b[:lenLen], "length octets"))
		return
	}

	// Long- or indefinite-form  (bit 8 = 1)
	n := int(first & 0x7F)
	switch {
	case n == 0:
		err = parseErrorf(0, ErrIndefiniteLength)
		return
	case n > maxLengthOctets:
		err = parseErrorf(0, ErrLengthOverflow, itoa(n), " length octets")
		return
	case n > len(b)-1:
		err = parseErrorf(0, ErrTruncatedInput, "want ", n,
			" length octets, have ", len(b)-1)
		return
	}

	for i := 1; i <= n; i++ {
		length = length<<8 | uint64(b[i])
	}
	lenLen = 1 + n
	debugCodec(newLItem(length, "long form"), newLItem(n, "octets"))
	debugIO(newLItem(b[:lenLen], "length octets"))

	return
}
