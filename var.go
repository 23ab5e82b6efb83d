package bertlv

/*
var.go contains global variables and constants used throughout this package.
*/

/*
Class describes one of the four ASN.1 tag namespaces. It occupies the
two most significant bits of an identifier octet.
*/
type Class uint8

/*
ASN.1 class constants. These are defined largely for convenience so that
[encoding/asn1] need not be imported by the caller.
*/
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

/*
Form describes whether the content octets of a [TLV] are opaque bytes
([Primitive]) or a concatenation of nested TLV encodings ([Constructed]).
It occupies bit 6 of an identifier octet.
*/
type Form uint8

const (
	Primitive Form = iota
	Constructed
)

/*
Universal tag number constants. Only those used by the reference
types of this package, or named by [Dump], are defined.
*/
const (
	TagEOC         uint64 = 0
	TagBoolean     uint64 = 1
	TagInteger     uint64 = 2
	TagBitString   uint64 = 3
	TagOctetString uint64 = 4
	TagNull        uint64 = 5
	TagOID         uint64 = 6
	TagEnum        uint64 = 10
	TagUTF8String  uint64 = 12
	TagSequence    uint64 = 16
	TagSet         uint64 = 17
	TagPrintable   uint64 = 19
	TagIA5String   uint64 = 22
	TagUTCTime     uint64 = 23
	TagGenTime     uint64 = 24
	TagBMPString   uint64 = 30
)

/*
ClassNames facilitates access to string ASN.1 class names.
*/
var ClassNames = map[Class]string{
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT SPECIFIC",
	ClassPrivate:         "PRIVATE",
}

/*
FormNames facilitates access to string ASN.1 encoding form names.
*/
var FormNames = map[Form]string{
	Primitive:   "PRIMITIVE",
	Constructed: "CONSTRUCTED",
}

/*
TagNames facilitates access to string names of UNIVERSAL tag numbers.
*/
var TagNames = map[uint64]string{
	TagEOC:         "END-OF-CONTENTS",
	TagBoolean:     "BOOLEAN",
	TagInteger:     "INTEGER",
	TagBitString:   "BIT STRING",
	TagOctetString: "OCTET STRING",
	TagNull:        "NULL",
	TagOID:         "OBJECT IDENTIFIER",
	TagEnum:        "ENUM",
	TagUTF8String:  "UTF8 STRING",
	TagSequence:    "SEQUENCE",
	TagSet:         "SET",
	TagPrintable:   "PRINTABLE STRING",
	TagIA5String:   "IA5 STRING",
	TagUTCTime:     "UTC TIME",
	TagGenTime:     "GENERALIZED TIME",
	TagBMPString:   "BMP STRING",
}

/*
String returns the string name of the receiver instance.
*/
func (r Class) String() (s string) {
	var found bool
	if s, found = ClassNames[r]; !found {
		s = "INVALID CLASS"
	}
	return
}

/*
String returns the string name of the receiver instance.
*/
func (r Form) String() (s string) {
	var found bool
	if s, found = FormNames[r]; !found {
		s = "INVALID FORM"
	}
	return
}

func (r Class) valid() bool { return r <= ClassPrivate }
func (r Form) valid() bool  { return r <= Constructed }
