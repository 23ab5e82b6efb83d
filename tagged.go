package bertlv

/*
tagged.go contains the Tagged wrapper, which applies IMPLICIT or
EXPLICIT tagging to any Marshaler.
*/

/*
Tagged wraps a [Marshaler] so that it is written under another class
and tag number.

With Explicit false (IMPLICIT tagging) the inner value's identifier is
replaced, its form and content being kept. With Explicit true the inner
value is written whole as the sole child of a constructed element
bearing the new identifier.

Tagged is write-only. To read such values, use [TLV.Retag] (implicit)
or [TLV.Unwrap] (explicit) on the parsed [TLV] before handing it to the
appropriate [Unmarshaler].
*/
type Tagged struct {
	Class    Class
	Tag      uint64
	Explicit bool
	Inner    Marshaler
}

/*
Implicit returns a [Tagged] instance applying IMPLICIT tagging to v.
*/
func Implicit(class Class, tag uint64, v Marshaler) Tagged {
	return Tagged{Class: class, Tag: tag, Inner: v}
}

/*
Explicit returns a [Tagged] instance applying EXPLICIT tagging to v.
*/
func Explicit(class Class, tag uint64, v Marshaler) Tagged {
	return Tagged{Class: class, Tag: tag, Explicit: true, Inner: v}
}

/*
MarshalTLV returns the retagged or wrapped [TLV] of the inner value. A
nil inner value yields an empty primitive (implicit) or an empty
constructed element (explicit).
*/
func (r Tagged) MarshalTLV() TLV {
	if r.Explicit {
		if r.Inner == nil {
			return NewConstructed(r.Class, r.Tag)
		}
		return NewConstructed(r.Class, r.Tag, r.Inner.MarshalTLV())
	}

	if r.Inner == nil {
		return NewPrimitive(r.Class, r.Tag, nil)
	}
	return r.Inner.MarshalTLV().Retag(r.Class, r.Tag)
}

/*
String returns the string representation of the receiver instance.
*/
func (r Tagged) String() string {
	mode := "IMPLICIT"
	if r.Explicit {
		mode = "EXPLICIT"
	}
	return "[" + r.Class.String() + " " + fmtUint(r.Tag, 10) + "] " + mode
}
