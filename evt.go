package bertlv

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags bertlv_debug" flag.
*/

/*
EventType describes a specific kind of tracer event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags bertlv_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType uint16

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter     EventType = 1 << iota //    1: Called-function begin
	EventInfo                            //    2: Interim function event
	EventExit                            //    4: Called function exit
	EventIO                              //    8: Called function inputs/outputs
	EventPacket                          //   16: Packet buffer ops
	EventTLV                             //   32: TLV reads and writes
	EventComposite                       //   64: SEQUENCE/SET recursion
	EventPrim                            //  128: Reference PRIMITIVE ops
	EventAdapter                         //  256: cryptobyte and asn1-ber bridges
	EventTrace                           //  512: Low-level ops; allocs, pools, appends
	EventCodec                           // 1024: Header and length octets
)

var eventNames = map[EventType]string{
	EventNone:      "none",
	EventAll:       "all",
	EventEnter:     "enter",
	EventInfo:      "info",
	EventExit:      "exit",
	EventIO:        "io",
	EventPacket:    "packet",
	EventTLV:       "tlv",
	EventComposite: "composite",
	EventPrim:      "primitive",
	EventAdapter:   "adapter",
	EventTrace:     "trace",
	EventCodec:     "codec",
}

/*
String returns the comma-delimited names of the bits set within the
receiver instance.
*/
func (r EventType) String() string {
	if name, ok := eventNames[r]; ok {
		return name
	}

	var names []string
	for i := 0; i < 16; i++ {
		bit := EventType(1 << i)
		if r&bit == 0 {
			continue
		}
		if name, ok := eventNames[bit]; ok {
			names = append(names, name)
		} else {
			names = append(names, itoa(int(bit)))
		}
	}
	return join(names, ",")
}

/*
parseEventType returns the [EventType] named by s, which may be an event
name (case is not significant) or a decimal integer. A negative integer
selects [EventAll].
*/
func parseEventType(s string) (EventType, bool) {
	s = trimS(s)
	if n, err := atoi(s); err == nil {
		switch {
		case n < 0:
			return EventAll, true
		case n <= int(EventAll):
			return EventType(n), true
		}
		return EventNone, false
	}

	for ev, name := range eventNames {
		if streqf(name, s) {
			return ev, true
		}
	}
	return EventNone, false
}
