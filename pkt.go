package bertlv

/*
pkt.go contains all types and methods pertaining to the Packet type, a
pooled buffer of concatenated BER encodings read and written through a
cursor.
*/

import (
	"io"
	"sync"
)

/*
Packet implements a reusable buffer holding zero or more concatenated
BER encodings, alongside a read offset. Elements are appended with
[Packet.Write] and consumed in order with [Packet.Next].

Instances are obtained with [NewPacket] and should be returned with
[Packet.Free] once no longer needed. A Packet is not safe for concurrent
use.
*/
type Packet struct {
	id     string
	data   []byte
	offset int
	cfg    config
}

var pktPool = sync.Pool{New: func() any { return &Packet{} }}

/*
NewPacket returns a *[Packet] whose buffer holds a copy of src. The
options are applied to every decoding operation of the instance.
*/
func NewPacket(src []byte, opts ...Option) (pkt *Packet) {
	debugEnter(newLItem(len(src), "src len"))
	defer func() { debugExit(newLItem(pkt.id, "packet")) }()

	pkt = pktPool.Get().(*Packet)
	pkt.id = makePacketID()
	pkt.cfg = newConfig(opts...)
	pkt.offset = 0
	pkt.data = pkt.data[:0]
	pkt.grow(len(src))
	pkt.data = append(pkt.data, src...)

	return
}

/*
grow ensures the buffer can take n more octets without reallocation.
*/
func (r *Packet) grow(n int) {
	need := len(r.data) + n
	if cap(r.data) >= need {
		return
	}
	debugPacket(newLItem(r.id, "grow"), newLItem(need, "need"), newLItem(cap(r.data), "cap"))

	bufPtr := getBuf()
	if cap(*bufPtr) < need {
		*bufPtr = make([]byte, 0, need*2)
	}
	newBuf := append((*bufPtr)[:0], r.data...)

	if cap(r.data) != 0 {
		old := r.data[:0]
		putBuf(&old)
	}
	r.data = newBuf
}

/*
Write returns an error following an attempt to append the BER encoding
of v to the end of the receiver buffer. The offset is not modified.
*/
func (r *Packet) Write(v Marshaler) (err error) {
	debugEnter(newLItem(r.id, "packet"))
	defer func() { debugExit(newLItem(err)) }()

	if v == nil {
		return ErrNilValue
	}

	tlv := v.MarshalTLV()
	r.grow(Size(tlv))
	if r.data, err = appendTLV(r.data, tlv); err == nil {
		debugPacket(newLItem(r.id, "write"), newLItem(len(r.data), "len"))
	}

	return
}

/*
Next returns the [TLV] found at the current offset alongside an error,
advancing the offset past it. The returned tree is detached from the
receiver buffer and remains valid after [Packet.Free].

Error offsets are relative to the start of the buffer, not the current
offset. The offset is not advanced on error.
*/
func (r *Packet) Next() (tlv TLV, err error) {
	var n int
	if tlv, n, err = r.peek(); err == nil {
		r.offset += n
		tlv = tlv.Clone()
		debugPacket(newLItem(r.id, "next"), newLItem(r.offset, "offset"))
	}
	return
}

/*
Peek returns the [TLV] found at the current offset alongside an error,
without advancing the offset. Unlike [Packet.Next], primitive content
of the returned tree aliases the receiver buffer and is only valid until
the next call to [Packet.Write], [Packet.Reset] or [Packet.Free].
*/
func (r *Packet) Peek() (tlv TLV, err error) {
	tlv, _, err = r.peek()
	return
}

func (r *Packet) peek() (tlv TLV, n int, err error) {
	debugEnter(newLItem(r.id, "packet"), newLItem(r.offset, "offset"))
	defer func() { debugExit(newLItem(n, "consumed"), newLItem(err)) }()

	if !r.HasMoreData() {
		err = parseErrorf(r.offset, ErrTruncatedInput, "no data past offset")
		return
	}

	d := decoder{buf: r.data, cfg: r.cfg}
	var end int
	if tlv, end, err = d.node(r.offset, len(r.data), 1); err != nil {
		return TLV{}, 0, err
	}
	n = end - r.offset

	return
}

/*
HasMoreData returns a Boolean value indicative of whether there are
more octets remaining past the current offset.
*/
func (r *Packet) HasMoreData() bool { return r.offset < len(r.data) }

/*
Data returns the underlying buffer. The returned slice is only valid
until the next call to [Packet.Write], [Packet.Reset] or [Packet.Free].
*/
func (r *Packet) Data() []byte { return r.data }

/*
Len returns the integer length of the underlying buffer.
*/
func (r *Packet) Len() int { return len(r.data) }

/*
Offset returns the current offset position index within the receiver.
*/
func (r *Packet) Offset() int { return r.offset }

/*
SetOffset replaces the current offset position index within the
receiver with a user-supplied value, which is clamped to the bounds of
the buffer.

Supplying an integer of negative one (-1) sets the offset to the end of
the buffer. If no variadic input is provided, the offset is set to zero
(0).
*/
func (r *Packet) SetOffset(offset ...int) {
	var off int
	if len(offset) > 0 {
		switch o := offset[0]; {
		case o == -1, o > len(r.data):
			off = len(r.data)
		case o > 0:
			off = o
		}
	}
	r.offset = off
}

/*
Reset empties the receiver buffer, retaining its capacity, and sets the
offset to zero (0).
*/
func (r *Packet) Reset() {
	r.data = r.data[:0]
	r.offset = 0
}

/*
Free releases the receiver buffer and returns the receiver to its pool.
The receiver must not be used afterwards.
*/
func (r *Packet) Free() {
	if r == nil {
		return
	}
	debugEnter(newLItem(r.id, "packet"))
	defer func() { debugExit() }()

	if cap(r.data) != 0 {
		buf := r.data[:0]
		putBuf(&buf)
	}
	*r = Packet{}
	pktPool.Put(r)
}

/*
Hex returns the hexadecimal rendering of the underlying buffer. See
[Hex] for the format.
*/
func (r *Packet) Hex() string { return Hex(r.data) }

/*
Dump returns an error following an attempt to write an indented listing
of every element in the receiver buffer into w, regardless of the
current offset. See [Dump] for the format and the meaning of wrapAt.
*/
func (r *Packet) Dump(w io.Writer, wrapAt ...int) error {
	d := decoder{buf: r.data, cfg: r.cfg}
	for off := 0; off < len(r.data); {
		tlv, end, err := d.node(off, len(r.data), 1)
		if err != nil {
			return err
		}
		if err = Dump(w, tlv, wrapAt...); err != nil {
			return err
		}
		off = end
	}
	return nil
}

/*
String returns the string representation of the receiver instance.
*/
func (r *Packet) String() string {
	return "{Len:" + itoa(len(r.data)) + ", Offset:" + itoa(r.offset) + "}"
}
