package bertlv

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"
)

func ExampleInteger() {
	der, err := Marshal(Integer(35148))
	if err != nil {
		fmt.Println(err)
		return
	}

	var i Integer
	if _, err = Unmarshal(der, &i); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("% X => %s", der, i)
	// Output: 02 03 00 89 4C => 35148
}

func ExampleIntegerOf() {
	der, err := Marshal(IntegerOf[uint64]{V: math.MaxUint64})
	if err != nil {
		fmt.Println(err)
		return
	}

	var u IntegerOf[uint64]
	if _, err = Unmarshal(der, &u); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("% X => %s", der, u)
	// Output: 02 09 00 FF FF FF FF FF FF FF FF => 18446744073709551615
}

var integerTests = []struct {
	value   int64
	content []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7F}},
	{128, []byte{0x00, 0x80}},
	{255, []byte{0x00, 0xFF}},
	{256, []byte{0x01, 0x00}},
	{35148, []byte{0x00, 0x89, 0x4C}},
	{-1, []byte{0xFF}},
	{-128, []byte{0x80}},
	{-129, []byte{0xFF, 0x7F}},
	{-32768, []byte{0x80, 0x00}},
	{math.MaxInt64, []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	{math.MinInt64, []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
}

func TestInteger(t *testing.T) {
	for _, tc := range integerTests {
		tlv := Integer(tc.value).MarshalTLV()
		if tlv.Header() != intHeader || !bytes.Equal(tlv.Value, tc.content) {
			t.Errorf("%s failed [%d]: want % X, got %s", t.Name(), tc.value, tc.content, tlv)
			continue
		}

		var i Integer
		if err := i.UnmarshalTLV(tlv); err != nil || int64(i) != tc.value {
			t.Errorf("%s failed [%d]: got %d (%v)", t.Name(), tc.value, i, err)
		}
		if i.String() != fmtInt(tc.value, 10) || i.Tag() != TagInteger {
			t.Errorf("%s failed [%d]: unexpected String/Tag", t.Name(), tc.value)
		}
	}
}

func TestInteger_errors(t *testing.T) {
	for idx, tc := range []struct {
		tlv  TLV
		kind error
	}{
		{NewPrimitive(ClassUniversal, TagInteger, nil), errorEmptyInteger},
		{NewPrimitive(ClassUniversal, TagInteger, []byte{0x00, 0x7F}), errorIntegerNonMin},
		{NewPrimitive(ClassUniversal, TagInteger, []byte{0xFF, 0x80}), errorIntegerNonMin},
		{NewPrimitive(ClassUniversal, TagInteger, make([]byte, 9)), errorIntegerTooLarge},
		{NewPrimitive(ClassUniversal, TagEnum, []byte{0x01}), errorTagMismatch},
		{NewConstructed(ClassUniversal, TagInteger), errorTagMismatch},
	} {
		var i Integer
		if err := i.UnmarshalTLV(tc.tlv); !errors.Is(err, tc.kind) {
			t.Errorf("%s[%d] failed: want %v, got %v", t.Name(), idx, tc.kind, err)
		}
	}

	var nilInt *Integer
	if err := nilInt.UnmarshalTLV(Integer(1).MarshalTLV()); !errors.Is(err, ErrNilValue) {
		t.Errorf("%s failed: want %v, got %v", t.Name(), ErrNilValue, err)
	}
}

func TestIntegerOf(t *testing.T) {
	// signed types share the int64 encoding
	for _, tc := range integerTests {
		if tc.value < math.MinInt32 || tc.value > math.MaxInt32 {
			continue
		}
		tlv := IntegerOf[int32]{V: int32(tc.value)}.MarshalTLV()
		if !bytes.Equal(tlv.Value, tc.content) {
			t.Errorf("%s failed [%d]: want % X, got % X", t.Name(), tc.value, tc.content, tlv.Value)
		}
		var got IntegerOf[int32]
		if err := got.UnmarshalTLV(tlv); err != nil || int64(got.V) != tc.value {
			t.Errorf("%s failed [%d]: got %d (%v)", t.Name(), tc.value, got.V, err)
		}
	}

	for _, v := range []uint64{0, 255, math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64} {
		tlv := IntegerOf[uint64]{V: v}.MarshalTLV()
		var got IntegerOf[uint64]
		if err := got.UnmarshalTLV(tlv); err != nil || got.V != v {
			t.Errorf("%s failed [%d]: got %d (%v)", t.Name(), v, got.V, err)
		}
		if got.String() != fmtUint(v, 10) {
			t.Errorf("%s failed [%d]: unexpected string %q", t.Name(), v, got)
		}
	}

	if s := (IntegerOf[int8]{V: -5}).String(); s != "-5" {
		t.Errorf("%s failed: unexpected string %q", t.Name(), s)
	}
}

func TestIntegerOf_overflow(t *testing.T) {
	overflow := func(err error) bool { return errors.Is(err, errorIntegerOverflow) }

	var u8 IntegerOf[uint8]
	if err := u8.UnmarshalTLV(Integer(256).MarshalTLV()); !overflow(err) {
		t.Errorf("%s failed: uint8 accepted 256: %v", t.Name(), err)
	}
	if err := u8.UnmarshalTLV(Integer(255).MarshalTLV()); err != nil || u8.V != 255 {
		t.Errorf("%s failed: uint8 rejected 255: %v", t.Name(), err)
	}

	var u16 IntegerOf[uint16]
	if err := u16.UnmarshalTLV(Integer(-1).MarshalTLV()); !overflow(err) {
		t.Errorf("%s failed: uint16 accepted -1: %v", t.Name(), err)
	}

	var i8 IntegerOf[int8]
	if err := i8.UnmarshalTLV(Integer(-129).MarshalTLV()); !overflow(err) {
		t.Errorf("%s failed: int8 accepted -129: %v", t.Name(), err)
	}
	if err := i8.UnmarshalTLV(Integer(-128).MarshalTLV()); err != nil || i8.V != -128 {
		t.Errorf("%s failed: int8 rejected -128: %v", t.Name(), err)
	}

	nine := IntegerOf[uint64]{V: math.MaxUint64}.MarshalTLV()
	var i64 IntegerOf[int64]
	if err := i64.UnmarshalTLV(nine); !overflow(err) {
		t.Errorf("%s failed: int64 accepted MaxUint64: %v", t.Name(), err)
	}

	var u64 IntegerOf[uint64]
	bad := NewPrimitive(ClassUniversal, TagInteger,
		[]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	if err := u64.UnmarshalTLV(bad); !overflow(err) {
		t.Errorf("%s failed: nine octet negative accepted: %v", t.Name(), err)
	}
	if err := u64.UnmarshalTLV(NewPrimitive(ClassUniversal, TagInteger, make([]byte, 10))); !errors.Is(err, errorIntegerTooLarge) {
		t.Errorf("%s failed: want %v, got %v", t.Name(), errorIntegerTooLarge, err)
	}

	var nilOf *IntegerOf[int]
	if err := nilOf.UnmarshalTLV(nine); !errors.Is(err, ErrNilValue) {
		t.Errorf("%s failed: want %v, got %v", t.Name(), ErrNilValue, err)
	}
}

func BenchmarkInteger_roundTrip(b *testing.B) {
	var i Integer
	for n := 0; n < b.N; n++ {
		der, err := Marshal(Integer(n))
		if err == nil {
			_, err = Unmarshal(der, &i)
		}
		if err != nil {
			b.Fatal(err)
		}
	}
}
