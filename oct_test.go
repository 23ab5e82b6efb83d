package bertlv

import (
	"bytes"
	"errors"
	"testing"
)

func TestOctetString(t *testing.T) {
	oct := OctetString("Hello0")
	der, err := Marshal(oct)
	want := append([]byte{0x04, 0x06}, "Hello0"...)
	if err != nil || !bytes.Equal(der, want) {
		t.Fatalf("%s failed: got % X (%v)", t.Name(), der, err)
	}

	var got OctetString
	if _, err = Unmarshal(der, &got); err != nil || got.String() != "Hello0" || got.Len() != 6 {
		t.Fatalf("%s failed: got %q (%v)", t.Name(), got, err)
	}

	// decoded content is a copy
	der[2] = 'J'
	if got[0] != 'H' {
		t.Errorf("%s failed: decoded value aliases input", t.Name())
	}
	if got.Tag() != TagOctetString {
		t.Errorf("%s failed: unexpected tag", t.Name())
	}
}

func TestOctetString_constructed(t *testing.T) {
	input := []byte{
		0x24, 0x0C,
		0x04, 0x02, 'a', 'b',
		0x24, 0x06,
		0x04, 0x01, 'c',
		0x04, 0x01, 'd',
	}

	var got OctetString
	if _, err := Unmarshal(input, &got); err != nil || string(got) != "abcd" {
		t.Errorf("%s failed: got %q (%v)", t.Name(), got, err)
	}

	bad := NewConstructed(ClassUniversal, TagOctetString,
		NewPrimitive(ClassUniversal, TagOctetString, []byte("a")),
		NewPrimitive(ClassUniversal, TagUTF8String, []byte("b")))
	err := got.UnmarshalTLV(bad)
	if !errors.Is(err, errorTagMismatch) {
		t.Errorf("%s failed: want %v, got %v", t.Name(), errorTagMismatch, err)
	}
	if string(got) != "abcd" {
		t.Errorf("%s failed: receiver modified on error", t.Name())
	}

	var nilOct *OctetString
	if err = nilOct.UnmarshalTLV(bad); !errors.Is(err, ErrNilValue) {
		t.Errorf("%s failed: want %v, got %v", t.Name(), ErrNilValue, err)
	}
}
