package bertlv

import (
	"errors"
	"testing"
)

func testWantSub(t *testing.T, err error, sub string) {
	t.Helper()
	if err == nil || !cntns(err.Error(), sub) {
		t.Fatalf("expected error containing %q, got %v", sub, err)
	}
}

func TestTLV_Eq(t *testing.T) {
	a := NewConstructed(ClassUniversal, TagSequence,
		NewPrimitive(ClassUniversal, TagOctetString, nil),
		NewPrimitive(ClassUniversal, TagInteger, []byte{0x01}))
	b := NewConstructed(ClassUniversal, TagSequence,
		NewPrimitive(ClassUniversal, TagOctetString, []byte{}),
		NewPrimitive(ClassUniversal, TagInteger, []byte{0x01}))

	if !a.Eq(b) || !b.Eq(a) {
		t.Errorf("%s failed: nil and empty content should compare equal", t.Name())
	}

	for idx, c := range []TLV{
		a.Retag(ClassApplication, TagSequence),
		a.Retag(ClassUniversal, TagSet),
		NewConstructed(ClassUniversal, TagSequence, a.Children[0]),
		NewConstructed(ClassUniversal, TagSequence, a.Children[0],
			NewPrimitive(ClassUniversal, TagInteger, []byte{0x02})),
		{Class: ClassUniversal, Tag: TagSequence, Form: Primitive},
	} {
		if a.Eq(c) {
			t.Errorf("%s[%d] failed: unexpected equality with %s", t.Name(), idx, c)
		}
	}

	// the field not selected by Form is ignored
	p1 := TLV{Tag: 4, Value: []byte{1}, Children: []TLV{{}}}
	p2 := TLV{Tag: 4, Value: []byte{1}}
	if !p1.Eq(p2) {
		t.Errorf("%s failed: Children compared for a primitive", t.Name())
	}
}

func TestTLV_Clone(t *testing.T) {
	orig := NewConstructed(ClassUniversal, TagSequence,
		NewPrimitive(ClassUniversal, TagOctetString, []byte("abc")))
	clone := orig.Clone()

	if !clone.Eq(orig) {
		t.Fatalf("%s failed: clone differs", t.Name())
	}

	clone.Children[0].Value[0] = 'z'
	clone.Children[0].Tag = 9
	if orig.Children[0].Value[0] != 'a' || orig.Children[0].Tag != TagOctetString {
		t.Errorf("%s failed: clone shares memory with original", t.Name())
	}

	if empty := NewConstructed(ClassPrivate, 1).Clone(); empty.Children != nil || !empty.IsConstructed() {
		t.Errorf("%s failed: unexpected clone of empty constructed: %s", t.Name(), empty)
	}
}

func TestTLV_RetagUnwrap(t *testing.T) {
	inner := Integer(5).MarshalTLV()

	implicit := inner.Retag(ClassContextSpecific, 0)
	if implicit.Header() != (Header{ClassContextSpecific, Primitive, 0}) {
		t.Errorf("%s failed: unexpected header %s", t.Name(), implicit.Header())
	}
	if inner.Class != ClassUniversal {
		t.Errorf("%s failed: Retag modified its receiver", t.Name())
	}

	explicit := NewConstructed(ClassContextSpecific, 1, inner)
	got, err := explicit.Unwrap(ClassContextSpecific, 1)
	if err != nil || !got.Eq(inner) {
		t.Errorf("%s failed: got %s, %v", t.Name(), got, err)
	}

	_, err = explicit.Unwrap(ClassContextSpecific, 2)
	if !errors.Is(err, errorTagMismatch) {
		t.Errorf("%s failed: want tag mismatch, got %v", t.Name(), err)
	}
	var tm *TagMismatchError
	if !errors.As(err, &tm) || tm.Got.Tag != 1 || tm.Want.Tag != 2 {
		t.Errorf("%s failed: want *TagMismatchError, got %#v", t.Name(), err)
	}

	_, err = implicit.Unwrap(ClassContextSpecific, 0)
	testWantSub(t, err, "want {Class:CONTEXT SPECIFIC, Form:CONSTRUCTED, Tag:0}")

	_, err = NewConstructed(ClassContextSpecific, 1, inner, inner).Unwrap(ClassContextSpecific, 1)
	if !errors.Is(err, errorUnwrapChildCount) {
		t.Errorf("%s failed: want %v, got %v", t.Name(), errorUnwrapChildCount, err)
	}
}

func TestTLV_UnmarshalTLV(t *testing.T) {
	var tlv TLV
	src := NewPrimitive(ClassUniversal, TagNull, nil)
	if err := tlv.UnmarshalTLV(src); err != nil || !tlv.Eq(src) {
		t.Errorf("%s failed: %v", t.Name(), err)
	}

	var nilTLV *TLV
	if err := nilTLV.UnmarshalTLV(src); !errors.Is(err, ErrNilValue) {
		t.Errorf("%s failed: want %v, got %v", t.Name(), ErrNilValue, err)
	}
}

func TestTLV_String(t *testing.T) {
	for idx, tc := range []struct {
		tlv  TLV
		want string
	}{
		{
			NewPrimitive(ClassUniversal, TagInteger, []byte{0xFF, 0x7F}),
			"{Class:UNIVERSAL, Tag:2, Form:PRIMITIVE, Value:[255 127]}",
		},
		{
			NewConstructed(ClassApplication, 3,
				NewPrimitive(ClassUniversal, TagNull, nil),
				NewPrimitive(ClassPrivate, 0, []byte{1})),
			"{Class:APPLICATION, Tag:3, Form:CONSTRUCTED, Children:[" +
				"{Class:UNIVERSAL, Tag:5, Form:PRIMITIVE, Value:[]} " +
				"{Class:PRIVATE, Tag:0, Form:PRIMITIVE, Value:[1]}]}",
		},
	} {
		if got := tc.tlv.String(); got != tc.want {
			t.Errorf("%s[%d] failed:\n\twant %s\n\tgot  %s", t.Name(), idx, tc.want, got)
		}
	}
}
